package handlers

import (
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/interfaces"
	"github.com/ternarybob/attachtext/internal/models"
	"github.com/ternarybob/attachtext/internal/services/extraction"
)

// AttachmentHandler serves text extraction for remote attachments.
type AttachmentHandler struct {
	service       interfaces.ExtractionService
	defaultFormat models.OutputFormat
	logger        arbor.ILogger
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(service interfaces.ExtractionService, defaultFormat models.OutputFormat, logger arbor.ILogger) *AttachmentHandler {
	if defaultFormat == "" {
		defaultFormat = models.FormatHTML
	}
	return &AttachmentHandler{
		service:       service,
		defaultFormat: defaultFormat,
		logger:        logger,
	}
}

// ExtractHandler handles GET /attachment/{headerId}/{attachmentId}.
// The merged text is returned as text/plain.
func (h *AttachmentHandler) ExtractHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	req, ok := h.request(w, r, r.PathValue("attachmentId"))
	if !ok {
		return
	}
	headerID, attachmentID := req.HeaderID, req.AttachmentIDs[0]

	text, err := h.service.ExtractDocument(r.Context(), headerID, attachmentID, req.Format)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("header_id", headerID).
			Str("attachment_id", attachmentID).
			Msg("Failed to extract attachment")
		h.writeFailure(w, err)
		return
	}

	WriteText(w, http.StatusOK, text)
}

// ExtractPairHandler handles GET /attachment/{headerId}/{orderingDocumentId}/{purchasingOrderId}.
// Both documents succeed or the request fails as a whole.
func (h *AttachmentHandler) ExtractPairHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	req, ok := h.request(w, r, r.PathValue("orderingDocumentId"), r.PathValue("purchasingOrderId"))
	if !ok {
		return
	}
	headerID, firstID, secondID := req.HeaderID, req.AttachmentIDs[0], req.AttachmentIDs[1]

	result, err := h.service.ExtractPair(r.Context(), headerID, firstID, secondID, req.Format)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("header_id", headerID).
			Strs("attachment_ids", []string{firstID, secondID}).
			Msg("Failed to extract attachment pair")
		h.writeFailure(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// InfoHandler handles GET /api/attachment/{headerId}/{attachmentId}/info
func (h *AttachmentHandler) InfoHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	req := models.AttachmentRequest{
		HeaderID:      r.PathValue("headerId"),
		AttachmentIDs: []string{r.PathValue("attachmentId")},
	}
	if err := req.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	headerID, attachmentID := req.HeaderID, req.AttachmentIDs[0]

	meta, err := h.service.Inspect(r.Context(), headerID, attachmentID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("header_id", headerID).
			Str("attachment_id", attachmentID).
			Msg("Failed to inspect attachment")
		h.writeFailure(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, meta)
}

// request builds and validates the extraction request from the path and ?format query.
func (h *AttachmentHandler) request(w http.ResponseWriter, r *http.Request, attachmentIDs ...string) (models.AttachmentRequest, bool) {
	format, err := models.ParseOutputFormat(r.URL.Query().Get("format"), h.defaultFormat)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return models.AttachmentRequest{}, false
	}

	req := models.AttachmentRequest{
		HeaderID:      r.PathValue("headerId"),
		AttachmentIDs: attachmentIDs,
		Format:        format,
	}
	if err := req.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return models.AttachmentRequest{}, false
	}
	return req, true
}

func (h *AttachmentHandler) writeFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, extraction.ErrUnsupportedFormat) {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteError(w, http.StatusInternalServerError, err.Error())
}

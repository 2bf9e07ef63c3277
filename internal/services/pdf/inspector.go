package pdf

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/interfaces"
	"github.com/ternarybob/attachtext/internal/models"
)

// Inspector reads PDF metadata from the pdfcpu context: structure (page count, encryption)
// and the decoded document information dictionary.
type Inspector struct {
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.PDFInspector = (*Inspector)(nil)

// NewInspector creates a new PDF inspector
func NewInspector(logger arbor.ILogger) *Inspector {
	return &Inspector{
		logger: logger,
	}
}

// Inspect retrieves PDF metadata without extracting text content.
func (i *Inspector) Inspect(data []byte) (*models.PDFMetadata, error) {
	if !hasPDFHeader(data) {
		return nil, &DocumentFormatError{Cause: errMissingHeader}
	}

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadAndValidate(bytes.NewReader(data), conf)
	if err != nil {
		return nil, &DocumentFormatError{Cause: err}
	}

	// Info entries are optional; absent ones stay empty and are omitted from JSON.
	metadata := &models.PDFMetadata{
		PageCount:   pdfCtx.PageCount,
		FileSize:    int64(len(data)),
		IsEncrypted: pdfCtx.Encrypt != nil,
		Title:       pdfCtx.XRefTable.Title,
		Author:      pdfCtx.XRefTable.Author,
		Subject:     pdfCtx.XRefTable.Subject,
		Creator:     pdfCtx.XRefTable.Creator,
		Producer:    pdfCtx.XRefTable.Producer,
	}

	i.logger.Debug().
		Int("page_count", metadata.PageCount).
		Int64("file_size", metadata.FileSize).
		Bool("encrypted", metadata.IsEncrypted).
		Msg("Extracted PDF metadata")

	return metadata, nil
}

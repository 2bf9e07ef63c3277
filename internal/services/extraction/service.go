// -----------------------------------------------------------------------
// Extraction Service - Fetch, render, sanitize and merge remote PDF attachments
// -----------------------------------------------------------------------

package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/interfaces"
	"github.com/ternarybob/attachtext/internal/models"
	"github.com/ternarybob/attachtext/internal/services/transform"
)

// ErrUnsupportedFormat is returned for an output format the service cannot produce.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Service implements the ExtractionService interface.
// It holds no per-request state; every call owns its bytes, document and trees.
type Service struct {
	fetcher   interfaces.AttachmentFetcher
	renderer  interfaces.PDFRenderer
	inspector interfaces.PDFInspector
	transform *transform.Service
	roles     []string
	logger    arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.ExtractionService = (*Service)(nil)

// NewService creates an extraction service. roles are the result keys for ExtractPair;
// fewer than two falls back to ordering_document / purchasing_order.
func NewService(
	fetcher interfaces.AttachmentFetcher,
	renderer interfaces.PDFRenderer,
	inspector interfaces.PDFInspector,
	transformer *transform.Service,
	roles []string,
	logger arbor.ILogger,
) *Service {
	if len(roles) < 2 {
		roles = []string{models.RoleOrderingDocument, models.RolePurchasingOrder}
	}
	return &Service{
		fetcher:   fetcher,
		renderer:  renderer,
		inspector: inspector,
		transform: transformer,
		roles:     roles[:2],
		logger:    logger,
	}
}

// ExtractDocument fetches one attachment and returns its text in the requested format.
// For FormatHTML pages are joined with "\n"; a PDF with no pages yields "".
func (s *Service) ExtractDocument(ctx context.Context, headerID, attachmentID string, format models.OutputFormat) (string, error) {
	if err := checkFormat(format); err != nil {
		return "", err
	}

	start := time.Now()

	data, err := s.fetcher.Fetch(ctx, headerID, attachmentID)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("header_id", headerID).
			Str("attachment_id", attachmentID).
			Msg("Attachment retrieval failed")
		return "", err
	}

	text, err := s.extract(data, format)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("header_id", headerID).
			Str("attachment_id", attachmentID).
			Msg("Attachment extraction failed")
		return "", err
	}

	s.logger.Info().
		Str("header_id", headerID).
		Str("attachment_id", attachmentID).
		Str("format", string(format)).
		Int("bytes", len(data)).
		Int("text_length", len(text)).
		Dur("duration", time.Since(start)).
		Msg("Attachment extracted")

	return text, nil
}

// ExtractPair extracts firstID then secondID, strictly in that order, and keys the
// results by role. The first failure aborts: the second attachment is never fetched
// when the first fails, and no partial result is returned.
func (s *Service) ExtractPair(ctx context.Context, headerID, firstID, secondID string, format models.OutputFormat) (*models.AggregateResult, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}

	result := models.NewAggregateResult()
	for i, attachmentID := range []string{firstID, secondID} {
		text, err := s.ExtractDocument(ctx, headerID, attachmentID, format)
		if err != nil {
			return nil, err
		}
		result.Set(s.roles[i], text)
	}

	return result, nil
}

// Inspect fetches one attachment and reports its document metadata.
func (s *Service) Inspect(ctx context.Context, headerID, attachmentID string) (*models.PDFMetadata, error) {
	data, err := s.fetcher.Fetch(ctx, headerID, attachmentID)
	if err != nil {
		return nil, err
	}
	return s.inspector.Inspect(data)
}

func (s *Service) extract(data []byte, format models.OutputFormat) (string, error) {
	if format == models.FormatText {
		pages, err := s.renderer.ExtractText(data)
		if err != nil {
			return "", err
		}
		return strings.Join(pages, "\n"), nil
	}

	pages, err := s.renderer.RenderPages(data)
	if err != nil {
		return "", err
	}

	doc, err := s.transform.NormalizePages(pages)
	if err != nil {
		return "", err
	}

	if format == models.FormatMarkdown {
		return s.transform.ToMarkdown(doc), nil
	}
	return doc.HTML(), nil
}

func checkFormat(format models.OutputFormat) error {
	switch format {
	case models.FormatHTML, models.FormatText, models.FormatMarkdown:
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
}

package interfaces

import (
	"context"

	"github.com/ternarybob/attachtext/internal/models"
)

// ExtractionService runs the fetch -> render -> sanitize -> merge pipeline.
type ExtractionService interface {
	// ExtractDocument returns the text of a single attachment.
	ExtractDocument(ctx context.Context, headerID, attachmentID string, format models.OutputFormat) (string, error)

	// ExtractPair extracts two attachments sequentially and keys them by role in request order.
	// Any failure aborts the whole request; no partial result is returned.
	ExtractPair(ctx context.Context, headerID, firstID, secondID string, format models.OutputFormat) (*models.AggregateResult, error)

	// Inspect returns metadata for a single attachment.
	Inspect(ctx context.Context, headerID, attachmentID string) (*models.PDFMetadata, error)
}

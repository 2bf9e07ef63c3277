// -----------------------------------------------------------------------
// PDF Renderer Interface - Render PDF pages to markup or raw text
// -----------------------------------------------------------------------

package interfaces

import (
	"github.com/ternarybob/attachtext/internal/models"
)

// PDFRenderer turns PDF bytes into per-page output, in page order.
// This interface abstracts the PDF backend so the pipeline can be tested without one.
type PDFRenderer interface {
	// RenderPages renders every page to HTML that keeps paragraph and text-run structure.
	// A document with zero pages yields an empty slice and no error.
	RenderPages(data []byte) ([]models.PageMarkup, error)

	// ExtractText returns the raw text of every page without the HTML round trip.
	ExtractText(data []byte) ([]string, error)
}

// PDFInspector reads document-level metadata without extracting text.
type PDFInspector interface {
	Inspect(data []byte) (*models.PDFMetadata, error)
}

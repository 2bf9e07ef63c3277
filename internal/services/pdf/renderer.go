// -----------------------------------------------------------------------
// PDF Renderer - Render PDF pages to HTML using MuPDF (go-fitz)
// -----------------------------------------------------------------------

package pdf

import (
	"bytes"

	"github.com/gen2brain/go-fitz"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/interfaces"
	"github.com/ternarybob/attachtext/internal/models"
)

// headerWindow is how far into the data the %PDF- marker may appear.
// Readers tolerate leading junk before the header, up to this offset.
const headerWindow = 1024

// Renderer implements the PDFRenderer interface using MuPDF.
// Each call opens its own document, so a Renderer is safe for concurrent use.
type Renderer struct {
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.PDFRenderer = (*Renderer)(nil)

// NewRenderer creates a new PDF renderer
func NewRenderer(logger arbor.ILogger) *Renderer {
	return &Renderer{
		logger: logger,
	}
}

// RenderPages renders every page to an HTML document.
// MuPDF emits one <p> per text line with <span> runs inside, carrying position and font styling.
func (r *Renderer) RenderPages(data []byte) ([]models.PageMarkup, error) {
	doc, err := open(data)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]models.PageMarkup, 0, pageCount)

	for i := 0; i < pageCount; i++ {
		html, err := doc.HTML(i, true)
		if err != nil {
			return nil, &DocumentFormatError{Page: i + 1, Cause: err}
		}
		pages = append(pages, models.PageMarkup{
			Number: i + 1,
			HTML:   html,
		})
	}

	r.logger.Debug().
		Int("page_count", pageCount).
		Int("file_size", len(data)).
		Msg("Rendered PDF pages")

	return pages, nil
}

// ExtractText returns MuPDF's plain text for every page, one entry per page.
func (r *Renderer) ExtractText(data []byte) ([]string, error) {
	doc, err := open(data)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	texts := make([]string, 0, pageCount)

	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, &DocumentFormatError{Page: i + 1, Cause: err}
		}
		texts = append(texts, text)
	}

	return texts, nil
}

func open(data []byte) (*fitz.Document, error) {
	if !hasPDFHeader(data) {
		return nil, &DocumentFormatError{Cause: errMissingHeader}
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &DocumentFormatError{Cause: err}
	}
	return doc, nil
}

func hasPDFHeader(data []byte) bool {
	window := data
	if len(window) > headerWindow {
		window = window[:headerWindow]
	}
	return bytes.Contains(window, []byte("%PDF-"))
}

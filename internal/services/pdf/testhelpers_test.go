package pdf

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

// buildPDF generates a real PDF with one page per entry of pages, one text line per string.
func buildPDF(t *testing.T, pages ...[]string) []byte {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Purchase Order", true)
	doc.SetAuthor("attachtext tests", true)
	return renderPages(t, doc, pages)
}

// buildUntitledPDF is buildPDF without Title or Author in the info dictionary.
func buildUntitledPDF(t *testing.T, pages ...[]string) []byte {
	t.Helper()
	return renderPages(t, fpdf.New("P", "mm", "A4", ""), pages)
}

func renderPages(t *testing.T, doc *fpdf.Fpdf, pages [][]string) []byte {
	t.Helper()

	for _, lines := range pages {
		doc.AddPage()
		doc.SetFont("Arial", "", 12)
		for _, line := range lines {
			doc.Cell(0, 10, line)
			doc.Ln(14)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

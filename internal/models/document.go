package models

import "strings"

// PageMarkup is the rendered HTML of a single PDF page.
type PageMarkup struct {
	Number int    `json:"number"` // 1-based
	HTML   string `json:"html"`
}

// PageText holds the merged paragraphs of one page in source order.
type PageText struct {
	Number     int      `json:"number"`
	Paragraphs []string `json:"paragraphs"`
}

// HTML wraps each paragraph in a <p> unit and concatenates them with no separator.
// Paragraph text is written as extracted, without escaping.
func (p PageText) HTML() string {
	var sb strings.Builder
	for _, para := range p.Paragraphs {
		sb.WriteString("<p>")
		sb.WriteString(para)
		sb.WriteString("</p>")
	}
	return sb.String()
}

// DocumentText is the merged text of a whole document, one entry per page.
type DocumentText struct {
	Pages []PageText `json:"pages"`
}

// HTML joins the pages' paragraph units with a newline between pages.
// A document with no pages renders as the empty string.
func (d DocumentText) HTML() string {
	pages := make([]string, len(d.Pages))
	for i, page := range d.Pages {
		pages[i] = page.HTML()
	}
	return strings.Join(pages, "\n")
}

package transform

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// paragraphSelector matches the block elements the renderer uses for lines of text.
const paragraphSelector = "p"

// ParseHTML parses rendered page markup into a tree owned by the caller.
func ParseHTML(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Sanitize strips every attribute from every element, then removes paragraphs
// whose trimmed text is empty. Attributes go first so emptiness is judged on text alone.
// The tree is modified in place; applying Sanitize twice changes nothing further.
func Sanitize(doc *goquery.Document) {
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			node.Attr = nil
		}
	})

	doc.Find(paragraphSelector).Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" {
			s.Remove()
		}
	})
}

// SanitizeHTML is the string form of Sanitize: it parses markup, sanitizes a private
// copy and renders it back.
func SanitizeHTML(markup string) (string, error) {
	doc, err := ParseHTML(markup)
	if err != nil {
		return "", err
	}
	Sanitize(doc)

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return out, nil
}

package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ternarybob/attachtext/internal/models"
)

// MergePage collects one normalized paragraph per <p> in document order.
// Each paragraph's text runs are trimmed and joined with a single space; paragraphs
// with no text are skipped. Distinct non-empty paragraphs are never joined together.
func MergePage(doc *goquery.Document) []string {
	var paragraphs []string
	doc.Find(paragraphSelector).Each(func(_ int, s *goquery.Selection) {
		if text := paragraphText(s); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

// MergeHTML parses, sanitizes and merges a single page of markup.
func MergeHTML(number int, markup string) (models.PageText, error) {
	doc, err := ParseHTML(markup)
	if err != nil {
		return models.PageText{}, err
	}
	Sanitize(doc)

	return models.PageText{
		Number:     number,
		Paragraphs: MergePage(doc),
	}, nil
}

func paragraphText(s *goquery.Selection) string {
	var runs []string
	for _, node := range s.Nodes {
		collectRuns(node, &runs)
	}
	return strings.Join(runs, " ")
}

func collectRuns(n *html.Node, runs *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*runs = append(*runs, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRuns(c, runs)
	}
}

package transform

import (
	"fmt"
	"html"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/models"
)

// Service normalizes rendered PDF pages and converts merged text to other formats.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new transform service
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
	}
}

// NormalizePages sanitizes and merges every page, preserving page order.
func (s *Service) NormalizePages(pages []models.PageMarkup) (models.DocumentText, error) {
	result := models.DocumentText{Pages: make([]models.PageText, 0, len(pages))}

	for _, page := range pages {
		text, err := MergeHTML(page.Number, page.HTML)
		if err != nil {
			return models.DocumentText{}, fmt.Errorf("page %d: %w", page.Number, err)
		}
		result.Pages = append(result.Pages, text)
	}

	s.logger.Debug().
		Int("page_count", len(result.Pages)).
		Msg("Normalized document pages")

	return result, nil
}

// ToMarkdown converts merged paragraphs to markdown, page by page.
// Pages are separated by a "--- Page N ---" marker.
func (s *Service) ToMarkdown(doc models.DocumentText) string {
	converter := md.NewConverter("", true, nil)

	var builder strings.Builder
	for i, page := range doc.Pages {
		if i > 0 {
			builder.WriteString(fmt.Sprintf("\n\n--- Page %d ---\n\n", page.Number))
		}

		converted, err := converter.ConvertString(escapedPageHTML(page))
		if err != nil {
			s.logger.Warn().Err(err).Int("page", page.Number).Msg("HTML to markdown conversion failed, using plain paragraphs")
			converted = strings.Join(page.Paragraphs, "\n\n")
		}
		builder.WriteString(strings.TrimSpace(converted))
	}

	return builder.String()
}

// escapedPageHTML rebuilds a page as HTML with paragraph text escaped, so literal
// angle brackets in the text survive conversion.
func escapedPageHTML(page models.PageText) string {
	var sb strings.Builder
	for _, para := range page.Paragraphs {
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(para))
		sb.WriteString("</p>")
	}
	return sb.String()
}

package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default result keys for the two-document route, in request order.
const (
	RoleOrderingDocument = "ordering_document"
	RolePurchasingOrder  = "purchasing_order"
)

// AttachmentRequest identifies one or two attachments under a parent sales-order header.
// Built once per inbound request and never shared.
type AttachmentRequest struct {
	HeaderID      string       `json:"header_id" validate:"required"`
	AttachmentIDs []string     `json:"attachment_ids" validate:"min=1,max=2,dive,required"`
	Format        OutputFormat `json:"format" validate:"omitempty,oneof=html text markdown"`
}

var requestValidator = validator.New()

// Validate checks that every identifier is present and the format is known.
func (r AttachmentRequest) Validate() error {
	if err := requestValidator.Struct(r); err != nil {
		return fmt.Errorf("invalid attachment request: %w", err)
	}
	return nil
}

// OutputFormat selects how extracted pages are rendered.
type OutputFormat string

const (
	// FormatHTML is the canonical output: one <p> unit per merged paragraph, pages separated by "\n".
	FormatHTML OutputFormat = "html"
	// FormatText is raw per-page text without the HTML round trip.
	FormatText OutputFormat = "text"
	// FormatMarkdown converts the merged paragraphs to markdown.
	FormatMarkdown OutputFormat = "markdown"
)

// ParseOutputFormat converts a query value into an OutputFormat.
// An empty value yields the fallback.
func ParseOutputFormat(value string, fallback OutputFormat) (OutputFormat, error) {
	if value == "" {
		return fallback, nil
	}
	switch f := OutputFormat(value); f {
	case FormatHTML, FormatText, FormatMarkdown:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q", value)
}

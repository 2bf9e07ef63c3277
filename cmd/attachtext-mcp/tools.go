package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const formatDescription = "Output format: html (merged <p> paragraphs), text (raw page text), markdown. Defaults to extraction.default_format"

// createExtractAttachmentTool returns the extract_attachment tool definition
func createExtractAttachmentTool() mcp.Tool {
	return mcp.NewTool("extract_attachment",
		mcp.WithDescription("Fetch a PDF attachment of a sales order and return its text, one line per page"),
		mcp.WithString("header_id",
			mcp.Required(),
			mcp.Description("Sales order header ID"),
		),
		mcp.WithString("attachment_id",
			mcp.Required(),
			mcp.Description("Attachment ID under the header"),
		),
		mcp.WithString("format",
			mcp.Description(formatDescription),
		),
	)
}

// createExtractOrderDocumentsTool returns the extract_order_documents tool definition
func createExtractOrderDocumentsTool(roles []string) mcp.Tool {
	return mcp.NewTool("extract_order_documents",
		mcp.WithDescription(fmt.Sprintf("Extract two attachments of one sales order and return a JSON object keyed %s and %s. Fails as a whole if either attachment fails", roles[0], roles[1])),
		mcp.WithString("header_id",
			mcp.Required(),
			mcp.Description("Sales order header ID"),
		),
		mcp.WithString("ordering_document_id",
			mcp.Required(),
			mcp.Description("Attachment ID of the ordering document"),
		),
		mcp.WithString("purchasing_order_id",
			mcp.Required(),
			mcp.Description("Attachment ID of the purchasing order"),
		),
		mcp.WithString("format",
			mcp.Description(formatDescription),
		),
	)
}

// createInspectAttachmentTool returns the inspect_attachment tool definition
func createInspectAttachmentTool() mcp.Tool {
	return mcp.NewTool("inspect_attachment",
		mcp.WithDescription("Report page count, encryption and document properties of a PDF attachment"),
		mcp.WithString("header_id",
			mcp.Required(),
			mcp.Description("Sales order header ID"),
		),
		mcp.WithString("attachment_id",
			mcp.Required(),
			mcp.Description("Attachment ID under the header"),
		),
	)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/interfaces"
	"github.com/ternarybob/attachtext/internal/models"
)

// handleExtractAttachment implements the extract_attachment tool. An omitted format
// argument falls back to defaultFormat (extraction.default_format).
func handleExtractAttachment(service interfaces.ExtractionService, defaultFormat models.OutputFormat, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		headerID, err := request.RequireString("header_id")
		if err != nil || headerID == "" {
			return textResult("Error: header_id parameter is required"), nil
		}
		attachmentID, err := request.RequireString("attachment_id")
		if err != nil || attachmentID == "" {
			return textResult("Error: attachment_id parameter is required"), nil
		}

		format, err := models.ParseOutputFormat(request.GetString("format", ""), defaultFormat)
		if err != nil {
			return textResult(fmt.Sprintf("Error: %v", err)), nil
		}

		text, err := service.ExtractDocument(ctx, headerID, attachmentID, format)
		if err != nil {
			logger.Error().Err(err).Str("header_id", headerID).Str("attachment_id", attachmentID).Msg("Extraction failed")
			return textResult(fmt.Sprintf("Extraction error: %v", err)), nil
		}

		return textResult(text), nil
	}
}

// handleExtractOrderDocuments implements the extract_order_documents tool
func handleExtractOrderDocuments(service interfaces.ExtractionService, defaultFormat models.OutputFormat, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		headerID, err := request.RequireString("header_id")
		if err != nil || headerID == "" {
			return textResult("Error: header_id parameter is required"), nil
		}
		firstID, err := request.RequireString("ordering_document_id")
		if err != nil || firstID == "" {
			return textResult("Error: ordering_document_id parameter is required"), nil
		}
		secondID, err := request.RequireString("purchasing_order_id")
		if err != nil || secondID == "" {
			return textResult("Error: purchasing_order_id parameter is required"), nil
		}

		format, err := models.ParseOutputFormat(request.GetString("format", ""), defaultFormat)
		if err != nil {
			return textResult(fmt.Sprintf("Error: %v", err)), nil
		}

		result, err := service.ExtractPair(ctx, headerID, firstID, secondID, format)
		if err != nil {
			logger.Error().Err(err).Str("header_id", headerID).Msg("Pair extraction failed")
			return textResult(fmt.Sprintf("Extraction error: %v", err)), nil
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return textResult(fmt.Sprintf("Encoding error: %v", err)), nil
		}
		return textResult(string(data)), nil
	}
}

// handleInspectAttachment implements the inspect_attachment tool
func handleInspectAttachment(service interfaces.ExtractionService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		headerID, err := request.RequireString("header_id")
		if err != nil || headerID == "" {
			return textResult("Error: header_id parameter is required"), nil
		}
		attachmentID, err := request.RequireString("attachment_id")
		if err != nil || attachmentID == "" {
			return textResult("Error: attachment_id parameter is required"), nil
		}

		meta, err := service.Inspect(ctx, headerID, attachmentID)
		if err != nil {
			logger.Error().Err(err).Str("header_id", headerID).Str("attachment_id", attachmentID).Msg("Inspect failed")
			return textResult(fmt.Sprintf("Inspect error: %v", err)), nil
		}

		return textResult(formatMetadata(headerID, attachmentID, meta)), nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

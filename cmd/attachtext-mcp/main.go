package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/attachtext/internal/app"
	"github.com/ternarybob/attachtext/internal/common"
	"github.com/ternarybob/attachtext/internal/models"
)

func main() {
	configPath := os.Getenv("ATTACHTEXT_CONFIG")
	if configPath == "" {
		if _, err := os.Stat("attachtext.toml"); err == nil {
			configPath = "attachtext.toml"
		}
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	application, err := app.New(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}
	defer application.Close()

	mcpServer := server.NewMCPServer(
		"attachtext",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	defaultFormat, err := models.ParseOutputFormat(config.Extraction.DefaultFormat, models.FormatHTML)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid extraction.default_format")
		os.Exit(1)
	}

	roles := config.Extraction.Roles
	mcpServer.AddTool(createExtractAttachmentTool(), handleExtractAttachment(application.ExtractionService, defaultFormat, logger))
	mcpServer.AddTool(createExtractOrderDocumentsTool(roles), handleExtractOrderDocuments(application.ExtractionService, defaultFormat, logger))
	mcpServer.AddTool(createInspectAttachmentTool(), handleInspectAttachment(application.ExtractionService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}

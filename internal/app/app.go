package app

import (
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/common"
	"github.com/ternarybob/attachtext/internal/handlers"
	"github.com/ternarybob/attachtext/internal/httpclient"
	"github.com/ternarybob/attachtext/internal/interfaces"
	"github.com/ternarybob/attachtext/internal/models"
	"github.com/ternarybob/attachtext/internal/services/extraction"
	"github.com/ternarybob/attachtext/internal/services/fetcher"
	"github.com/ternarybob/attachtext/internal/services/pdf"
	"github.com/ternarybob/attachtext/internal/services/transform"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Outbound
	RemoteClient *http.Client
	Fetcher      interfaces.AttachmentFetcher

	// Pipeline services
	Renderer          interfaces.PDFRenderer
	Inspector         interfaces.PDFInspector
	TransformService  *transform.Service
	ExtractionService interfaces.ExtractionService

	// HTTP handlers
	APIHandler        *handlers.APIHandler
	AttachmentHandler *handlers.AttachmentHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize services
	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// Initialize handlers
	if err := app.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	logger.Info().
		Str("remote", cfg.Remote.BaseURL).
		Str("default_format", cfg.Extraction.DefaultFormat).
		Bool("auth_enabled", cfg.AuthEnabled()).
		Msg("Application initialization complete")

	return app, nil
}

// initServices initializes the extraction pipeline in dependency order.
func (a *App) initServices() error {
	a.RemoteClient = httpclient.NewRemoteClient(a.Config.Remote)
	a.Fetcher = fetcher.NewService(a.RemoteClient, a.Config.Remote, a.Logger)

	a.Renderer = pdf.NewRenderer(a.Logger)
	a.Inspector = pdf.NewInspector(a.Logger)
	a.TransformService = transform.NewService(a.Logger)

	a.ExtractionService = extraction.NewService(
		a.Fetcher,
		a.Renderer,
		a.Inspector,
		a.TransformService,
		a.Config.Extraction.Roles,
		a.Logger,
	)

	a.Logger.Debug().
		Dur("remote_timeout", a.Config.Remote.TimeoutDuration()).
		Dur("remote_rate_limit", a.Config.Remote.RateLimitDuration()).
		Msg("Extraction services initialized")

	return nil
}

// initHandlers initializes all HTTP handlers
func (a *App) initHandlers() error {
	defaultFormat, err := models.ParseOutputFormat(a.Config.Extraction.DefaultFormat, models.FormatHTML)
	if err != nil {
		return fmt.Errorf("invalid extraction.default_format: %w", err)
	}

	a.APIHandler = handlers.NewAPIHandler(a.Logger)
	a.AttachmentHandler = handlers.NewAttachmentHandler(a.ExtractionService, defaultFormat, a.Logger)

	return nil
}

// Close releases idle outbound connections.
func (a *App) Close() error {
	if a.RemoteClient != nil {
		a.RemoteClient.CloseIdleConnections()
	}
	a.Logger.Info().Msg("Application closed")
	return nil
}

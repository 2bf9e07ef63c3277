package server

import (
	"net/http"
)

// route binds a path pattern to a handler. RequiresAuth puts the handler behind basic auth.
type route struct {
	Pattern      string
	Handler      http.HandlerFunc
	RequiresAuth bool
}

// routes lists every endpoint the server exposes.
func (s *Server) routes() []route {
	protectExtraction := s.app.Config.Auth.ProtectExtraction

	return []route{
		// Liveness
		{Pattern: "/{$}", Handler: s.app.APIHandler.IndexHandler},

		// Extraction
		{Pattern: "/attachment/{headerId}/{attachmentId}", Handler: s.app.AttachmentHandler.ExtractHandler, RequiresAuth: protectExtraction},
		{Pattern: "/attachment/{headerId}/{orderingDocumentId}/{purchasingOrderId}", Handler: s.app.AttachmentHandler.ExtractPairHandler, RequiresAuth: protectExtraction},

		// API routes - Attachments
		{Pattern: "/api/attachment/{headerId}/{attachmentId}/info", Handler: s.app.AttachmentHandler.InfoHandler, RequiresAuth: true},

		// API routes - System
		{Pattern: "/api/version", Handler: s.app.APIHandler.VersionHandler},
		{Pattern: "/api/health", Handler: s.app.APIHandler.HealthHandler},

		// 404 handler for unmatched API routes
		{Pattern: "/api/", Handler: s.app.APIHandler.NotFoundHandler},
	}
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	for _, r := range s.routes() {
		var handler http.Handler = r.Handler
		if r.RequiresAuth {
			handler = s.basicAuthMiddleware(handler)
		}
		mux.Handle(r.Pattern, handler)
	}

	return mux
}

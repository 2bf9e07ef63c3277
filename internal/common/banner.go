package common

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner and the resolved endpoints.
func PrintBanner(config *Config, logger arbor.ILogger) {
	banner.PrintSimple("attachtext", GetVersion())

	logger.Info().
		Str("environment", config.Environment).
		Bool("production", config.IsProduction()).
		Str("remote", config.Remote.BaseURL).
		Str("default_format", config.Extraction.DefaultFormat).
		Bool("protect_extraction", config.Auth.ProtectExtraction).
		Msg("Configuration")
}

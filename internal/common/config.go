package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/subosito/gotenv"
)

// DefaultResourcePath is the sales-order attachment enclosure path on the remote service.
// {header_id} and {attachment_id} are substituted per request.
const DefaultResourcePath = "fscmRestApi/resources/11.13.18.05/omSalesOrders/{header_id}/child/attachments/{attachment_id}/enclosure/FileContents"

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Remote      RemoteConfig     `toml:"remote"`
	Auth        AuthConfig       `toml:"auth"`
	Extraction  ExtractionConfig `toml:"extraction"`
	Logging     LoggingConfig    `toml:"logging"`
}

type ServerConfig struct {
	Port         int           `toml:"port" validate:"min=1,max=65535"`
	Host         string        `toml:"host"`
	ReadTimeout  string `toml:"read_timeout"`  // duration string, e.g. "15s"
	WriteTimeout string `toml:"write_timeout"` // "" or "0s" = no limit, extraction of large PDFs can be slow
}

// RemoteConfig describes the attachment service the fetcher talks to.
// Credentials here are delegated to the remote service and are independent of [AuthConfig].
type RemoteConfig struct {
	BaseURL      string `toml:"base_url" validate:"required,url"`
	ResourcePath string `toml:"resource_path" validate:"required"`
	Username     string `toml:"username"`
	Password     string `toml:"password"`
	Timeout      string `toml:"timeout"`    // duration string, "" or "0s" = wait indefinitely
	RateLimit    string `toml:"rate_limit"` // minimum spacing between outbound fetches, "" or "0s" = disabled
}

// AuthConfig holds inbound basic-auth credentials.
type AuthConfig struct {
	Username          string `toml:"username"`
	Password          string `toml:"password"`
	Realm             string `toml:"realm"`
	ProtectExtraction bool   `toml:"protect_extraction"` // require basic auth on the /attachment routes
}

type ExtractionConfig struct {
	DefaultFormat string   `toml:"default_format" validate:"oneof=html text markdown"`
	Roles         []string `toml:"roles" validate:"len=2,dive,required"` // result keys for the two-document route, in request order
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // default "15:04:05"
}

// NewDefaultConfig returns the configuration used before any file or environment overrides.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			ReadTimeout: "15s",
		},
		Remote: RemoteConfig{
			ResourcePath: DefaultResourcePath,
		},
		Auth: AuthConfig{
			Realm: "Login Required",
		},
		Extraction: ExtractionConfig{
			DefaultFormat: "html",
			Roles:         []string{"ordering_document", "purchasing_order"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
	}
}

// LoadFromFile loads a single configuration file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	return LoadFromFiles(path)
}

// LoadFromFiles builds the configuration: defaults -> file1 -> file2 -> ... -> .env -> env.
// Later files override earlier ones.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	// .env never overrides variables already present in the process environment
	if _, err := os.Stat(".env"); err == nil {
		if err := gotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

func applyEnvOverrides(config *Config) {
	if env := os.Getenv("ATTACHTEXT_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("ATTACHTEXT_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("ATTACHTEXT_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Remote service. The HACKATHON_* names are what existing deployments export.
	if baseURL := firstEnv("ATTACHTEXT_REMOTE_BASE_URL", "HACKATHON_BASEURL"); baseURL != "" {
		config.Remote.BaseURL = baseURL
	}
	if username := firstEnv("ATTACHTEXT_REMOTE_USERNAME", "HACKATHON_USERNAME"); username != "" {
		config.Remote.Username = username
	}
	if password := firstEnv("ATTACHTEXT_REMOTE_PASSWORD", "HACKATHON_PASSWORD"); password != "" {
		config.Remote.Password = password
	}
	if timeout := os.Getenv("ATTACHTEXT_REMOTE_TIMEOUT"); timeout != "" {
		config.Remote.Timeout = timeout
	}
	if rateLimit := os.Getenv("ATTACHTEXT_REMOTE_RATE_LIMIT"); rateLimit != "" {
		config.Remote.RateLimit = rateLimit
	}

	// Inbound basic auth
	if username := firstEnv("ATTACHTEXT_AUTH_USERNAME", "username"); username != "" {
		config.Auth.Username = username
	}
	if password := firstEnv("ATTACHTEXT_AUTH_PASSWORD", "password"); password != "" {
		config.Auth.Password = password
	}
	if protect := os.Getenv("ATTACHTEXT_AUTH_PROTECT_EXTRACTION"); protect != "" {
		if b, err := strconv.ParseBool(protect); err == nil {
			config.Auth.ProtectExtraction = b
		}
	}

	if format := os.Getenv("ATTACHTEXT_EXTRACTION_DEFAULT_FORMAT"); format != "" {
		config.Extraction.DefaultFormat = format
	}

	// Logging configuration
	if level := os.Getenv("ATTACHTEXT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("ATTACHTEXT_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority).
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !strings.Contains(c.Remote.ResourcePath, "{attachment_id}") {
		return fmt.Errorf("invalid configuration: remote.resource_path must contain {attachment_id}")
	}

	durations := []struct {
		key   string
		value string
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"remote.timeout", c.Remote.Timeout},
		{"remote.rate_limit", c.Remote.RateLimit},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		if parsed, err := time.ParseDuration(d.value); err != nil || parsed < 0 {
			return fmt.Errorf("invalid configuration: %s must be a non-negative duration, got %q", d.key, d.value)
		}
	}
	return nil
}

// ReadTimeoutDuration returns the parsed read timeout, 0 when unset.
func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return parseDuration(s.ReadTimeout)
}

// WriteTimeoutDuration returns the parsed write timeout, 0 (no limit) when unset.
func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return parseDuration(s.WriteTimeout)
}

// TimeoutDuration returns the fetch timeout, 0 (wait indefinitely) when unset.
func (r RemoteConfig) TimeoutDuration() time.Duration {
	return parseDuration(r.Timeout)
}

// RateLimitDuration returns the minimum spacing between fetches, 0 (disabled) when unset.
func (r RemoteConfig) RateLimitDuration() time.Duration {
	return parseDuration(r.RateLimit)
}

// parseDuration parses a duration string. Empty or malformed values yield 0;
// Validate reports malformed values before they get here.
func parseDuration(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// IsProduction reports whether the environment is production.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "production" || env == "prod"
}

// AuthEnabled reports whether inbound credentials are configured.
func (c *Config) AuthEnabled() bool {
	return c.Auth.Username != "" || c.Auth.Password != ""
}

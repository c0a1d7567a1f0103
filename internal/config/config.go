// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New initializer to build a Config with defaults.
// - Functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
	"strings"
	"time"
)

// Identity defaults used when neither file nor environment sets them.
const (
	DefaultUserID   = "911578685892915200"
	DefaultLeagueID = "1180303867694456832"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// UserID is the Sleeper user treated as "you" in the report.
	UserID string `koanf:"user_id"`

	// LeagueID is the Sleeper league analyzed.
	LeagueID string `koanf:"league_id"`

	// BaseURL is the root of the Sleeper API.
	BaseURL string `koanf:"base_url"`

	// UserAgent is sent with every upstream request.
	UserAgent string `koanf:"user_agent"`

	// HTTPTimeoutMS bounds each upstream request.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`

	// FetchConcurrency bounds parallel draft pick fetches; 1 is sequential.
	FetchConcurrency int `koanf:"fetch_concurrency"`

	// AllowedOrigins is a comma separated CORS origin list.
	AllowedOrigins string `koanf:"allowed_origins"`
}

// New creates a Config populated with defaults. Context is accepted first to
// satisfy the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":9080",
		UserID:           DefaultUserID,
		LeagueID:         DefaultLeagueID,
		BaseURL:          "https://api.sleeper.app/v1",
		UserAgent:        "draftintel/1.0",
		HTTPTimeoutMS:    20_000,
		FetchConcurrency: 1,
		AllowedOrigins:   "*",
	}
}

// HTTPTimeout returns HTTPTimeoutMS as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

// Origins splits AllowedOrigins, dropping blanks.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

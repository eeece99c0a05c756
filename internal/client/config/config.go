package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Mobie Hub CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend; movie routes live under {APIBaseURL}/movies.
//   - Locale: BCP 47 tag used for locale-aware name sorting.
//   - LogLevel / LogFormat: slog level name and handler ("text" or "json").
//   - RequestTimeout: per-request HTTP timeout; zero means requests run to completion.
type Config struct {
	APIBaseURL     string
	Locale         string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.Locale = "es"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:], dotEnvFile)
}

func load(args []string, envFile string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, envFile)
	parseFlags(cfg, args)
	return cfg
}

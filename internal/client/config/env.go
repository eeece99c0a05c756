package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

const (
	envAPIBaseURL     = "MOBIEHUB_API_URL"
	envLocale         = "MOBIEHUB_LOCALE"
	envLogLevel       = "MOBIEHUB_LOG_LEVEL"
	envLogFormat      = "MOBIEHUB_LOG_FORMAT"
	envRequestTimeout = "MOBIEHUB_REQUEST_TIMEOUT"
)

// parseEnv loads envFile into the process environment (a missing file is
// fine) and overlays cfg with the MOBIEHUB_* variables that are set.
// An unparseable MOBIEHUB_REQUEST_TIMEOUT panics like a bad flag would.
func parseEnv(cfg *Config, envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("skipping %s: %v", envFile, err)
		}
	}

	setIfNotEmpty(&cfg.APIBaseURL, os.Getenv(envAPIBaseURL))
	setIfNotEmpty(&cfg.Locale, os.Getenv(envLocale))
	setIfNotEmpty(&cfg.LogLevel, os.Getenv(envLogLevel))
	setIfNotEmpty(&cfg.LogFormat, os.Getenv(envLogFormat))

	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

// Package config loads runtime configuration for the Mobie Hub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, after an optional .env file in the working
//     directory has been loaded (see parseEnv). Variables already set in the
//     process environment win over the .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API (the client appends /movies)
//	-l string   locale used for name sorting (BCP 47, e.g. "es", "en-US")
//	-v string   log level: debug, info, warn, error
//	-f string   log format: text or json
//	-t int      request timeout in seconds, 0 disables it
//
// Environment
//
//	MOBIEHUB_API_URL, MOBIEHUB_LOCALE, MOBIEHUB_LOG_LEVEL,
//	MOBIEHUB_LOG_FORMAT, MOBIEHUB_REQUEST_TIMEOUT (Go duration, e.g. "10s")
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "locale": "es",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "request_timeout": "10s"
//	}
//
// request_timeout accepts a duration string or integer nanoseconds.
package config

// Package config loads runtime configuration for the cvdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. A .env file and the process environment (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the CV-desk backend
//	-s string   path of the local state database
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8000",
//	  "state_path": "cvdesk.db",
//	  "request_timeout": "30s",
//	  "log_level": "info"
//	}
//
// The assembled Config is validated (URL shape, positive timeout, known log
// level) before it is handed to the application.
package config

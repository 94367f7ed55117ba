// Package config loads runtime configuration for the doorbell CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / --config. Comments are allowed.
//  3. DOORBELL_* environment variables (see the env tags on Config).
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  // backend
//	  "server_base_url": "https://bell.example.com",
//	  "online_check_interval": "3s",
//	  "http_timeout": "30s",
//	  "data_dir": "/home/me/.doorbell",
//	  "store_cipher": "age",
//	  "debounce_interval": "150ms",
//	  "otp_resend_interval": "2m",
//	  "ready_delay": "100ms",
//	  "log_level": "debug"
//	}
//
// The store passphrase is never read from JSON or flags; set
// DOORBELL_STORE_PASSPHRASE instead.
package config

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/flagx"
	"github.com/spf13/pflag"
)

// newFlagSet declares the flags this package understands, with cfg's
// current values as defaults.
//
//	-a, --server string            backend base URL
//	-i, --online-check-interval n  online check interval in seconds
//	-t, --http-timeout duration    per-request HTTP timeout
//	-d, --data-dir string          directory for the credential store
//	-l, --log-level string         debug, info, warn or error
//	-c, --config string            JSON config file (handled by parseJSON)
func newFlagSet(cfg *Config, onlineSeconds *int) *pflag.FlagSet {
	fs := pflag.NewFlagSet("doorbell", pflag.ContinueOnError)
	fs.StringVarP(&cfg.ServerBaseURL, "server", "a", cfg.ServerBaseURL, "backend base URL")
	fs.IntVarP(onlineSeconds, "online-check-interval", "i", int(cfg.OnlineCheckInterval/time.Second), "online check interval (in seconds)")
	fs.DurationVarP(&cfg.HTTPTimeout, "http-timeout", "t", cfg.HTTPTimeout, "per-request HTTP timeout")
	fs.StringVarP(&cfg.DataDir, "data-dir", "d", cfg.DataDir, "directory for local state")
	fs.StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringP("config", "c", "", "path to JSON config file")
	return fs
}

// parseFlags overlays cfg with command-line flags. Arguments this package
// does not define are ignored.
func parseFlags(cfg *Config, args []string) error {
	var onlineSeconds int
	fs := newFlagSet(cfg, &onlineSeconds)

	if err := fs.Parse(flagx.FilterArgs(args, fs)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if fs.Changed("online-check-interval") {
		cfg.OnlineCheckInterval = time.Duration(onlineSeconds) * time.Second
	}
	return nil
}

// ParseLevel maps a level name onto slog.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

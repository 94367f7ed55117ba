package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/flagx"
	"github.com/dmitrijs2005/doorbell/internal/timex"
	"github.com/tidwall/jsonc"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the current value alone, so every field is a pointer.
type JsonConfig struct {
	ServerBaseURL       *string         `json:"server_base_url"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	HTTPTimeout         *timex.Duration `json:"http_timeout"`
	DataDir             *string         `json:"data_dir"`
	StoreCipher         *string         `json:"store_cipher"`
	DebounceInterval    *timex.Duration `json:"debounce_interval"`
	OTPResendInterval   *timex.Duration `json:"otp_resend_interval"`
	ReadyDelay          *timex.Duration `json:"ready_delay"`
	LogLevel            *string         `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c / --config, if any. The
// file may contain comments.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.StoreCipher, jc.StoreCipher)
	setString(&cfg.LogLevel, jc.LogLevel)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval)
	setDuration(&cfg.HTTPTimeout, jc.HTTPTimeout)
	setDuration(&cfg.DebounceInterval, jc.DebounceInterval)
	setDuration(&cfg.OTPResendInterval, jc.OTPResendInterval)
	setDuration(&cfg.ReadyDelay, jc.ReadyDelay)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}

package config

import (
	"fmt"
	"os"
	"time"
)

// Cipher names accepted by StoreCipher.
const (
	CipherAESGCM = "aesgcm"
	CipherAge    = "age"
)

// Config holds runtime settings for the doorbell CLI.
//
// Units: every interval is a time.Duration.
type Config struct {
	ServerBaseURL       string        `env:"SERVER_BASE_URL"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	HTTPTimeout         time.Duration `env:"HTTP_TIMEOUT"`
	DataDir             string        `env:"DATA_DIR"`
	StoreCipher         string        `env:"STORE_CIPHER"`
	// StorePassphrase, when set, derives the AES key instead of using the
	// random one in the key file. Only read from the environment.
	StorePassphrase   string        `env:"STORE_PASSPHRASE"`
	DebounceInterval  time.Duration `env:"DEBOUNCE_INTERVAL"`
	OTPResendInterval time.Duration `env:"OTP_RESEND_INTERVAL"`
	ReadyDelay        time.Duration `env:"READY_DELAY"`
	LogLevel          string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.OnlineCheckInterval = 3 * time.Second
	c.HTTPTimeout = 30 * time.Second
	c.DataDir = ".doorbell"
	c.StoreCipher = CipherAESGCM
	c.DebounceInterval = 150 * time.Millisecond
	c.OTPResendInterval = 120 * time.Second
	c.ReadyDelay = 100 * time.Millisecond
	c.LogLevel = "info"
}

// Validate rejects settings the client cannot run with.
func (c *Config) Validate() error {
	if c.ServerBaseURL == "" {
		return fmt.Errorf("server base url is empty")
	}
	if c.StoreCipher != CipherAESGCM && c.StoreCipher != CipherAge {
		return fmt.Errorf("unknown store cipher %q", c.StoreCipher)
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named by -c /
// --config, then environ (DOORBELL_* variables; nil means the process
// environment), then the flags in args. Later sources win.
func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], nil)
}

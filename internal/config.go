package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/harrylevesque/storefront/internal/utils"
)

// Config holds the front end settings. Values come from the defaults below,
// then config.json, then environment variables.
type Config struct {
	Addr           string        `env:"ADDR"`
	APIBaseURL     string        `env:"API_BASE_URL"`
	SessionSecret  string        `env:"SESSION_SECRET"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogFile        string        `env:"LOG_FILE"`
	SecureCookies  bool          `env:"SECURE_COOKIES"`
}

// fileConfig mirrors config.json. Pointers tell "absent" from "zero".
type fileConfig struct {
	Addr           *string `json:"addr"`
	APIBaseURL     *string `json:"api_base_url"`
	SessionSecret  *string `json:"session_secret"`
	RequestTimeout *string `json:"request_timeout"`
	LogFile        *string `json:"log_file"`
	SecureCookies  *bool   `json:"secure_cookies"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Addr:           ":8080",
		APIBaseURL:     "http://127.0.0.1:5000",
		RequestTimeout: 10 * time.Second,
	}
}

// Load builds a Config from path and the environment. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if err := applyFile(&cfg, path); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var fc fileConfig
	if err := json.NewDecoder(f).Decode(&fc); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if fc.Addr != nil {
		cfg.Addr = *fc.Addr
	}
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.SessionSecret != nil {
		cfg.SessionSecret = *fc.SessionSecret
	}
	if fc.RequestTimeout != nil {
		d, err := time.ParseDuration(*fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.SecureCookies != nil {
		cfg.SecureCookies = *fc.SecureCookies
	}
	return nil
}

var (
	config     Config
	configErr  error
	configOnce sync.Once
)

// LoadConfig loads the nearest config.json once per process.
func LoadConfig() (Config, error) {
	configOnce.Do(func() {
		config, configErr = Load(utils.DefaultConfigPath())
	})
	return config, configErr
}

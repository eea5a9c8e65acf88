// Package config loads Merge client configuration from a YAML file and
// MERGE_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment selects the Merge data region.
type Environment string

const (
	EnvProduction Environment = "production"
	EnvEU         Environment = "eu"
	EnvAPAC       Environment = "apac"
)

const (
	// DefaultTimeout bounds a single API call when no timeout is configured.
	DefaultTimeout = 60 * time.Second

	defaultMaxConcurrency = 8
	defaultLogLevel       = "info"
)

var baseURLs = map[Environment]string{
	EnvProduction: "https://api.merge.dev/api",
	EnvEU:         "https://api-eu.merge.dev/api",
	EnvAPAC:       "https://api-ap.merge.dev/api",
}

// BaseURL returns the API root for env.
func (e Environment) BaseURL() (string, bool) {
	u, ok := baseURLs[e]
	return u, ok
}

// ErrMissingAPIKey is returned by Validate when no API key is configured.
var ErrMissingAPIKey = errors.New("config: api key is required")

// Config holds client configuration.
type Config struct {
	Environment    Environment   `yaml:"environment" json:"environment"`
	BaseURL        string        `yaml:"base_url" json:"base_url"`
	APIKey         string        `yaml:"api_key" json:"-"`
	AccountToken   string        `yaml:"account_token" json:"-"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout"`
	Debug          bool          `yaml:"debug" json:"debug"`
	LogLevel       string        `yaml:"log_level" json:"log_level"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent"`
	MaxConcurrency int           `yaml:"max_concurrency" json:"max_concurrency"`
}

// Load reads path (if non-empty), applies MERGE_* environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if cfg, err = Decode(f); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads YAML configuration. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML. Secrets are written as-is.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ApplyEnv overrides fields from environment variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	var env string
	str("MERGE_ENVIRONMENT", &env)
	if env != "" {
		c.Environment = Environment(strings.ToLower(env))
	}
	str("MERGE_BASE_URL", &c.BaseURL)
	str("MERGE_API_KEY", &c.APIKey)
	str("MERGE_ACCOUNT_TOKEN", &c.AccountToken)
	str("MERGE_LOG_LEVEL", &c.LogLevel)
	str("MERGE_USER_AGENT", &c.UserAgent)

	if v, ok := lookup("MERGE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid MERGE_TIMEOUT %q: %w", v, err)
		}
		c.Timeout = d
	}
	if v, ok := lookup("MERGE_DEBUG"); ok && v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid MERGE_DEBUG %q", v)
		}
		c.Debug = b
	}
	if v, ok := lookup("MERGE_MAX_CONCURRENCY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid MERGE_MAX_CONCURRENCY %q: %w", v, err)
		}
		c.MaxConcurrency = n
	}
	return nil
}

// Validate fills defaults and reports invalid settings.
func (c *Config) Validate() error {
	if c.Environment == "" {
		c.Environment = EnvProduction
	}
	base, ok := c.Environment.BaseURL()
	if !ok {
		return fmt.Errorf("config: unknown environment %q (allowed: %s|%s|%s)", c.Environment, EnvProduction, EnvEU, EnvAPAC)
	}
	if c.BaseURL == "" {
		c.BaseURL = base
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("config: max_concurrency must not be negative, got %d", c.MaxConcurrency)
	}
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = defaultMaxConcurrency
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: invalid log level %q", c.LogLevel)
	}
	return l, nil
}

func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err == nil {
		return b, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return false, err
}

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Config{APIKey: "key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Environment != EnvProduction {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvProduction)
	}
	if cfg.BaseURL != "https://api.merge.dev/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.MaxConcurrency != defaultMaxConcurrency {
		t.Errorf("MaxConcurrency = %d", cfg.MaxConcurrency)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
		wantURL string
	}{
		{name: "missing key", cfg: Config{}, wantErr: "api key is required"},
		{name: "unknown environment", cfg: Config{APIKey: "k", Environment: "mars"}, wantErr: `unknown environment "mars"`},
		{name: "negative timeout", cfg: Config{APIKey: "k", Timeout: -time.Second}, wantErr: "timeout must not be negative"},
		{name: "bad log level", cfg: Config{APIKey: "k", LogLevel: "loud"}, wantErr: `invalid log level "loud"`},
		{name: "eu", cfg: Config{APIKey: "k", Environment: EnvEU}, wantURL: "https://api-eu.merge.dev/api"},
		{name: "apac", cfg: Config{APIKey: "k", Environment: EnvAPAC}, wantURL: "https://api-ap.merge.dev/api"},
		{name: "explicit base url", cfg: Config{APIKey: "k", BaseURL: "http://localhost:8080/api/"}, wantURL: "http://localhost:8080/api"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if tt.cfg.BaseURL != tt.wantURL {
				t.Errorf("BaseURL = %q, want %q", tt.cfg.BaseURL, tt.wantURL)
			}
		})
	}
}

func TestValidate_MissingKeyIsSentinel(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Validate() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Config{APIKey: "file-key", Timeout: time.Second}
	err := cfg.ApplyEnv(env(map[string]string{
		"MERGE_ENVIRONMENT":     "EU",
		"MERGE_API_KEY":         "env-key",
		"MERGE_ACCOUNT_TOKEN":   "acct",
		"MERGE_TIMEOUT":         "90s",
		"MERGE_DEBUG":           "yes",
		"MERGE_MAX_CONCURRENCY": "3",
		"MERGE_USER_AGENT":      "  ",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	want := Config{
		Environment:    EnvEU,
		APIKey:         "env-key",
		AccountToken:   "acct",
		Timeout:        90 * time.Second,
		Debug:          true,
		MaxConcurrency: 3,
	}
	if cfg != want {
		t.Errorf("ApplyEnv() = %+v, want %+v", cfg, want)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"MERGE_TIMEOUT":         "soon",
		"MERGE_DEBUG":           "maybe",
		"MERGE_MAX_CONCURRENCY": "many",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			var cfg Config
			err := cfg.ApplyEnv(env(map[string]string{key: val}))
			if err == nil || !strings.Contains(err.Error(), key) {
				t.Errorf("ApplyEnv() error = %v, want mention of %s", err, key)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
environment: apac
api_key: abc
timeout: 15s
debug: true
max_concurrency: 2
`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.Environment != EnvAPAC || cfg.APIKey != "abc" || cfg.Timeout != 15*time.Second || !cfg.Debug || cfg.MaxConcurrency != 2 {
		t.Errorf("Decode() = %+v", cfg)
	}

	if _, err := Decode(strings.NewReader("api_kee: abc\n")); err == nil {
		t.Error("Decode() accepted unknown key")
	}
	if _, err := Decode(strings.NewReader("")); err != nil {
		t.Errorf("Decode(empty) error = %v", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	in := Config{Environment: EnvEU, APIKey: "k", Timeout: 5 * time.Second, LogLevel: "debug"}
	data, err := in.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(data), "timeout: 5s") {
		t.Errorf("Encode() = %s", data)
	}
	out, err := Decode(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merge.yaml")
	if err := os.WriteFile(path, []byte("api_key: from-file\nlog_level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MERGE_ACCOUNT_TOKEN", "tok")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "from-file" || cfg.AccountToken != "tok" {
		t.Errorf("Load() = %+v", cfg)
	}
	if lvl, _ := cfg.SlogLevel(); lvl != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", lvl)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}

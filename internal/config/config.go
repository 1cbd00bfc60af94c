// Package config loads service configuration from an optional YAML file and
// MEDIALERT_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "MEDIALERT_"
	// FileEnv names the variable holding the YAML config path.
	FileEnv = EnvPrefix + "CONFIG"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Config is the complete service configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Alert    AlertConfig    `koanf:"alert"`
	OpenAI   OpenAIConfig   `koanf:"openai"`
	Line     LineConfig     `koanf:"line"`
	Twilio   TwilioConfig   `koanf:"twilio"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type DatabaseConfig struct {
	URL     string `koanf:"url"`  // PostgreSQL DSN; empty selects SQLite
	Path    string `koanf:"path"` // SQLite file
	Verbose bool   `koanf:"verbose"`
}

type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

type AlertConfig struct {
	PollSpec     string        `koanf:"poll_spec"`
	ToneInterval time.Duration `koanf:"tone_interval"`
	Timezone     string        `koanf:"timezone"`
	Quiet        bool          `koanf:"quiet"` // disables the terminal bell
}

// Location resolves Timezone, falling back to the local zone when empty.
func (a AlertConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(a.Timezone)
}

type OpenAIConfig struct {
	APIKey        string `koanf:"api_key"`
	Model         string `koanf:"model"`
	RatePerMinute int    `koanf:"rate_per_minute"`
}

type LineConfig struct {
	ChannelSecret string `koanf:"channel_secret"`
	ChannelToken  string `koanf:"channel_token"`
	NotifyUser    string `koanf:"notify_user"`
}

// Enabled reports whether LINE credentials are present.
func (l LineConfig) Enabled() bool {
	return l.ChannelSecret != "" && l.ChannelToken != ""
}

type TwilioConfig struct {
	AccountSID string `koanf:"account_sid"`
	AuthToken  string `koanf:"auth_token"`
	From       string `koanf:"from"`
	To         string `koanf:"to"`
}

// Enabled reports whether every Twilio setting is present.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.From != "" && t.To != ""
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load reads the YAML file named by MEDIALERT_CONFIG, if any, then applies
// environment overrides and defaults.
//
// Environment variables map to keys by dropping the prefix and splitting on the
// first underscore:
//
//	MEDIALERT_AUTH_JWT_SECRET -> auth.jwt_secret
//	MEDIALERT_ALERT_POLL_SPEC -> alert.poll_spec
func Load() (*Config, error) {
	return LoadFile(os.Getenv(FileEnv))
}

// LoadFile is Load with an explicit YAML path. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		// Use rawbytes provider since the file is already read
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envKey maps MEDIALERT_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "medialert.db"
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Alert.PollSpec == "" {
		cfg.Alert.PollSpec = "0,30 * * * * *"
	}
	if cfg.Alert.ToneInterval == 0 {
		cfg.Alert.ToneInterval = 1200 * time.Millisecond
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o-mini"
	}
	if cfg.OpenAI.RatePerMinute == 0 {
		cfg.OpenAI.RatePerMinute = 5
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.Auth.TokenTTL < 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.Alert.ToneInterval < 0 {
		errs = append(errs, errors.New("alert.tone_interval must be positive"))
	}
	if _, err := c.Alert.Location(); err != nil {
		errs = append(errs, fmt.Errorf("alert.timezone: %w", err))
	}
	if c.OpenAI.RatePerMinute < 0 {
		errs = append(errs, errors.New("openai.rate_per_minute must not be negative"))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

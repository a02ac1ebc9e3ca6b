// Package config loads server configuration.
//
// Values are layered, later sources winning:
//
//  1. Default()
//  2. a YAML file named by --config or HISAAB_CONFIG (optional)
//  3. environment variables (HISAAB_SECRET, HISAAB_TOKEN_TTL, HISAAB_DB,
//     HISAAB_ADDR, LOG_LEVEL)
//  4. command-line flags that were set explicitly
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// minSecretLength is the shortest HMAC secret the server accepts.
const minSecretLength = 16

// Config is the server configuration.
type Config struct {
	// Secret signs session tokens. Required.
	Secret string `yaml:"secret"`

	// TokenTTL is how long an issued token stays valid.
	TokenTTL time.Duration `yaml:"token_ttl"`

	// ConnectionString is the SQLite database path.
	ConnectionString string `yaml:"db"`

	// Addr is the listen address.
	Addr string `yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		TokenTTL:         24 * time.Hour,
		ConnectionString: "./data/hisaab.db",
		Addr:             ":8080",
		LogLevel:         "info",
	}
}

// Load builds a Config from defaults, the optional config file, the
// environment and the given command-line arguments. getenv is usually
// os.Getenv.
func Load(args []string, getenv func(string) string) (*Config, error) {
	fs := pflag.NewFlagSet("hisaab", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	addr := fs.String("addr", "", "listen address")
	db := fs.String("db", "", "SQLite database path")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	tokenTTL := fs.Duration("token-ttl", 0, "session token lifetime")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()

	path := *configPath
	if path == "" {
		path = getenv("HISAAB_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}

	if fs.Changed("addr") {
		cfg.Addr = *addr
	}
	if fs.Changed("db") {
		cfg.ConnectionString = *db
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if fs.Changed("token-ttl") {
		cfg.TokenTTL = *tokenTTL
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("HISAAB_SECRET"); v != "" {
		c.Secret = v
	}
	if v := getenv("HISAAB_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid HISAAB_TOKEN_TTL: %w", err)
		}
		c.TokenTTL = d
	}
	if v := getenv("HISAAB_DB"); v != "" {
		c.ConnectionString = v
	}
	if v := getenv("HISAAB_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Secret == "" {
		errs = append(errs, errors.New("secret is required (set HISAAB_SECRET)"))
	} else if len(c.Secret) < minSecretLength {
		errs = append(errs, fmt.Errorf("secret must be at least %d characters", minSecretLength))
	}

	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("token_ttl must be positive, got %s", c.TokenTTL))
	}

	if c.ConnectionString == "" {
		errs = append(errs, errors.New("db is required"))
	}

	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

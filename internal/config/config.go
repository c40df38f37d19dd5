// Package config loads service configuration from TOML files and the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/juice/internal/completions"
	"github.com/JaimeStill/juice/internal/prompts"
	"github.com/JaimeStill/juice/pkg/auth"
	"github.com/JaimeStill/juice/pkg/database"
	"github.com/JaimeStill/juice/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvJuiceEnv             = "JUICE_ENV"
	EnvJuiceShutdownTimeout = "JUICE_SHUTDOWN_TIMEOUT"
	EnvJuiceVersion         = "JUICE_VERSION"

	// Variable names recognized for compatibility with existing deployments.
	// The JUICE_ equivalents take precedence.
	EnvLegacyPort        = "PORT"
	EnvLegacyDatabaseURL = "DATABASE_URL"
	EnvLegacyOpenAIKey   = "OPENAI_API_KEY"
)

var databaseEnv = &database.Env{
	URL:             "JUICE_DB_URL",
	Host:            "JUICE_DB_HOST",
	Port:            "JUICE_DB_PORT",
	Name:            "JUICE_DB_NAME",
	User:            "JUICE_DB_USER",
	Password:        "JUICE_DB_PASSWORD",
	SSLMode:         "JUICE_DB_SSL_MODE",
	MaxOpenConns:    "JUICE_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "JUICE_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "JUICE_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "JUICE_DB_CONN_TIMEOUT",
	QueryTimeout:    "JUICE_DB_QUERY_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "JUICE_STORAGE_CONTAINER_NAME",
	ConnectionString: "JUICE_STORAGE_CONNECTION_STRING",
	ServiceURL:       "JUICE_STORAGE_SERVICE_URL",
}

var corpusEnv = &prompts.Env{
	Path:    "JUICE_CORPUS_PATH",
	BlobKey: "JUICE_CORPUS_BLOB_KEY",
}

var completionEnv = &completions.Env{
	APIKey:        "JUICE_COMPLETION_API_KEY",
	BaseURL:       "JUICE_COMPLETION_BASE_URL",
	Model:         "JUICE_COMPLETION_MODEL",
	Temperature:   "JUICE_COMPLETION_TEMPERATURE",
	MaxTokens:     "JUICE_COMPLETION_MAX_TOKENS",
	Timeout:       "JUICE_COMPLETION_TIMEOUT",
	MaxConcurrent: "JUICE_COMPLETION_MAX_CONCURRENT",
}

var authEnv = &auth.Env{
	Issuer:   "JUICE_AUTH_ISSUER",
	JWKSURL:  "JUICE_AUTH_JWKS_URL",
	Audience: "JUICE_AUTH_AUDIENCE",
}

// Config is the root configuration for the Creative Juice service.
type Config struct {
	Server          ServerConfig       `toml:"server"`
	Database        database.Config    `toml:"database"`
	Storage         storage.Config     `toml:"storage"`
	Corpus          prompts.Config     `toml:"corpus"`
	Completion      completions.Config `toml:"completion"`
	Auth            auth.Config        `toml:"auth"`
	API             APIConfig          `toml:"api"`
	ShutdownTimeout string             `toml:"shutdown_timeout"`
	Version         string             `toml:"version"`
}

// Env returns the JUICE_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvJuiceEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Corpus.Merge(&overlay.Corpus)
	c.Completion.Merge(&overlay.Completion)
	c.Auth.Merge(&overlay.Auth)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()
	c.loadLegacyEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Corpus.Finalize(corpusEnv); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}
	if c.Corpus.BlobKey != "" && !c.Storage.Enabled() {
		return fmt.Errorf("corpus: blob_key %s requires a storage section", c.Corpus.BlobKey)
	}
	if err := c.Completion.Finalize(completionEnv); err != nil {
		return fmt.Errorf("completion: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvJuiceShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvJuiceVersion); v != "" {
		c.Version = v
	}
}

// loadLegacyEnv runs before section Finalize so JUICE_ variables win.
// PORT is handled by ServerConfig.Finalize.
func (c *Config) loadLegacyEnv() {
	if v := os.Getenv(EnvLegacyDatabaseURL); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv(EnvLegacyOpenAIKey); v != "" {
		c.Completion.APIKey = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvJuiceEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

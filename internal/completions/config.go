package completions

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds completion API policy. Callers cannot override model or
// sampling parameters per request.
type Config struct {
	APIKey        string  `toml:"api_key"`
	BaseURL       string  `toml:"base_url"`
	Model         string  `toml:"model"`
	Temperature   float64 `toml:"temperature"`
	MaxTokens     int     `toml:"max_tokens"`
	Timeout       string  `toml:"timeout"`
	MaxConcurrent int     `toml:"max_concurrent"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	APIKey        string
	BaseURL       string
	Model         string
	Temperature   string
	MaxTokens     string
	Timeout       string
	MaxConcurrent string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// A missing APIKey is not an error here; Generate reports it per call.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxConcurrent != 0 {
		c.MaxConcurrent = overlay.MaxConcurrent
	}
}

func (c *Config) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 2500
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
	if c.MaxConcurrent == 0 {
		c.MaxConcurrent = 8
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := lookup(env.APIKey); v != "" {
		c.APIKey = v
	}
	if v := lookup(env.BaseURL); v != "" {
		c.BaseURL = v
	}
	if v := lookup(env.Model); v != "" {
		c.Model = v
	}
	if v := lookup(env.Temperature); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = f
		}
	}
	if v := lookup(env.MaxTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := lookup(env.Timeout); v != "" {
		c.Timeout = v
	}
	if v := lookup(env.MaxConcurrent); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxConcurrent = n
		}
	}
}

func lookup(key string) string {
	if key == "" {
		return ""
	}
	return os.Getenv(key)
}

func (c *Config) validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2: %v", c.Temperature)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive: %d", c.MaxTokens)
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("max_concurrent must be positive: %d", c.MaxConcurrent)
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	return nil
}

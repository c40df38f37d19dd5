package openapi

import (
	"fmt"
	"os"
	"strings"
)

// Config holds document metadata and where the document is served,
// relative to the API base path.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Path        string `toml:"path"`
}

// ConfigEnv maps config fields to environment variable names for override injection.
type ConfigEnv struct {
	Title       string
	Description string
	Path        string
}

type configField struct {
	value *string
	env   string
	def   string
}

func (c *Config) fields(env *ConfigEnv) []configField {
	if env == nil {
		env = &ConfigEnv{}
	}
	return []configField{
		{&c.Title, env.Title, "Creative Juice API"},
		{&c.Description, env.Description, "Random creative prompts, AI generated product requirement documents, and saved favorites."},
		{&c.Path, env.Path, "/openapi.json"},
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *ConfigEnv) error {
	for _, f := range c.fields(env) {
		if *f.value == "" {
			*f.value = f.def
		}
		if f.env == "" {
			continue
		}
		if v := os.Getenv(f.env); v != "" {
			*f.value = v
		}
	}

	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /: %s", c.Path)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

package prompts

import "os"

// Config selects where the prompt corpus is loaded from. An empty Config
// loads the embedded default corpus.
type Config struct {
	Path    string `toml:"path"`
	BlobKey string `toml:"blob_key"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Path    string
	BlobKey string
}

// Finalize applies environment variable overrides.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.BlobKey != "" {
		c.BlobKey = overlay.BlobKey
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
	if env.BlobKey != "" {
		if v := os.Getenv(env.BlobKey); v != "" {
			c.BlobKey = v
		}
	}
}

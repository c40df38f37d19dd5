package auth

import (
	"fmt"
	"os"
)

// Config holds OIDC bearer token verification settings. Auth is disabled
// unless Issuer is set. Signing keys come from the issuer's discovery document
// unless JWKSURL overrides them.
type Config struct {
	Issuer   string `toml:"issuer"`
	JWKSURL  string `toml:"jwks_url"`
	Audience string `toml:"audience"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Issuer   string
	JWKSURL  string
	Audience string
}

// Enabled reports whether token verification is configured.
func (c *Config) Enabled() bool {
	return c.Issuer != ""
}

// Finalize applies environment variable overrides and validation.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.JWKSURL != "" {
		c.JWKSURL = overlay.JWKSURL
	}
	if overlay.Audience != "" {
		c.Audience = overlay.Audience
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Issuer != "" {
		if v := os.Getenv(env.Issuer); v != "" {
			c.Issuer = v
		}
	}
	if env.JWKSURL != "" {
		if v := os.Getenv(env.JWKSURL); v != "" {
			c.JWKSURL = v
		}
	}
	if env.Audience != "" {
		if v := os.Getenv(env.Audience); v != "" {
			c.Audience = v
		}
	}
}

func (c *Config) validate() error {
	if c.Issuer == "" && (c.JWKSURL != "" || c.Audience != "") {
		return fmt.Errorf("issuer required when jwks_url or audience is set")
	}
	return nil
}

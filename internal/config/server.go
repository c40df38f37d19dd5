package config

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost              = "JUICE_SERVER_HOST"
	EnvServerPort              = "JUICE_SERVER_PORT"
	EnvServerReadTimeout       = "JUICE_SERVER_READ_TIMEOUT"
	EnvServerReadHeaderTimeout = "JUICE_SERVER_READ_HEADER_TIMEOUT"
	EnvServerWriteTimeout      = "JUICE_SERVER_WRITE_TIMEOUT"
	EnvServerIdleTimeout       = "JUICE_SERVER_IDLE_TIMEOUT"
	EnvServerShutdownTimeout   = "JUICE_SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig holds HTTP listener settings. Timeouts are Go duration strings.
// WriteTimeout must outlast a completion call, since /generate-prd writes
// only after the upstream responds.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ReadTimeout       string `toml:"read_timeout"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
	WriteTimeout      string `toml:"write_timeout"`
	IdleTimeout       string `toml:"idle_timeout"`
	ShutdownTimeout   string `toml:"shutdown_timeout"`
}

type timeoutField struct {
	name   string
	env    string
	def    string
	target func(*ServerConfig) *string
}

var serverTimeouts = []timeoutField{
	{"read_timeout", EnvServerReadTimeout, "1m", func(c *ServerConfig) *string { return &c.ReadTimeout }},
	{"read_header_timeout", EnvServerReadHeaderTimeout, "10s", func(c *ServerConfig) *string { return &c.ReadHeaderTimeout }},
	{"write_timeout", EnvServerWriteTimeout, "2m", func(c *ServerConfig) *string { return &c.WriteTimeout }},
	{"idle_timeout", EnvServerIdleTimeout, "2m", func(c *ServerConfig) *string { return &c.IdleTimeout }},
	{"shutdown_timeout", EnvServerShutdownTimeout, "30s", func(c *ServerConfig) *string { return &c.ShutdownTimeout }},
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// HTTPServer returns an http.Server bound to Addr with the configured timeouts.
func (c *ServerConfig) HTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              c.Addr(),
		Handler:           handler,
		ReadTimeout:       duration(c.ReadTimeout),
		ReadHeaderTimeout: duration(c.ReadHeaderTimeout),
		WriteTimeout:      duration(c.WriteTimeout),
		IdleTimeout:       duration(c.IdleTimeout),
	}
}

// ShutdownTimeoutDuration bounds graceful drain of in-flight requests.
func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return duration(c.ShutdownTimeout)
}

// Finalize applies defaults, environment variable overrides, and validation.
// PORT is honored for compatibility; JUICE_SERVER_PORT takes precedence.
func (c *ServerConfig) Finalize() error {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 5555
	}
	for _, f := range serverTimeouts {
		if p := f.target(c); *p == "" {
			*p = f.def
		}
	}

	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	for _, name := range []string{EnvLegacyPort, EnvServerPort} {
		if v := os.Getenv(name); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: invalid port %q", name, v)
			}
			c.Port = port
		}
	}
	for _, f := range serverTimeouts {
		if v := os.Getenv(f.env); v != "" {
			*f.target(c) = v
		}
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for _, f := range serverTimeouts {
		d, err := time.ParseDuration(*f.target(c))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.name, err)
		}
		if d < 0 {
			return fmt.Errorf("%s must not be negative", f.name)
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	for _, f := range serverTimeouts {
		if v := *f.target(overlay); v != "" {
			*f.target(c) = v
		}
	}
}

func duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

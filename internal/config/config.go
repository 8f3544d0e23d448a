// Package config provides centralized configuration management for the site.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strings"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	SMTP     SMTPConfig
	Careers  CareersConfig
	Geo      GeoConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 0 for SSE)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"0s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// SMTPConfig holds the outbound mail transport settings.
//
// Host, User, and Pass are deliberately not required at startup: an
// unconfigured transport surfaces as a request-time configuration error on
// the careers endpoint, not as a boot failure for the whole site.
type SMTPConfig struct {
	// Host is the SMTP relay hostname
	Host string `env:"SMTP_HOST"`

	// Port is the SMTP port (default: 587)
	Port int `env:"SMTP_PORT" default:"587"`

	// User is the SMTP account username
	User string `env:"SMTP_USER"`

	// Pass is the SMTP account password
	Pass string `env:"SMTP_PASS"`

	// Secure selects implicit TLS (SMTPS) instead of STARTTLS
	Secure bool `env:"SMTP_SECURE" default:"false"`

	// From overrides the sender address; unset falls back to the SMTP
	// account when it looks like an email address
	From string `env:"CAREERS_FROM" envAlt:"SMTP_FROM"`
}

// Configured reports whether the transport has everything it needs to send.
func (c *SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

// ImplicitTLS reports whether the connection should use SMTPS. Port 465
// implies it even when SMTP_SECURE is unset.
func (c *SMTPConfig) ImplicitTLS() bool {
	return c.Secure || c.Port == 465
}

// CareersConfig holds careers-form settings.
type CareersConfig struct {
	// To is the application notice recipient (default: the hiring inbox)
	To string `env:"CAREERS_TO" envAlt:"CAREERS_TO_EMAIL" default:"anthony@barbaro.tech"`

	// MaxResumeBytes is the inclusive resume size cap (default: 10 MiB)
	MaxResumeBytes int64 `env:"CAREERS_MAX_RESUME_BYTES" default:"10485760"`
}

// GeoConfig holds nearest-store lookup settings.
type GeoConfig struct {
	// GeoIPDB is the path to a MaxMind City database. Empty disables
	// server-side IP positioning; lookups then report unsupported.
	GeoIPDB string `env:"GEOIP_DB"`

	// QuickTimeout bounds the fast, cached-position stage (default: 5s)
	QuickTimeout time.Duration `env:"GEO_QUICK_TIMEOUT" default:"5s"`

	// QuickMaxAge is the oldest cached position the fast stage accepts (default: 5m)
	QuickMaxAge time.Duration `env:"GEO_QUICK_MAX_AGE" default:"5m"`

	// PreciseTimeout bounds the high-accuracy fallback stage (default: 12s)
	PreciseTimeout time.Duration `env:"GEO_PRECISE_TIMEOUT" default:"12s"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`

	// CareersLimit is requests per minute for the careers endpoint (default: 5)
	CareersLimit int `env:"RATE_LIMIT_CAREERS" default:"5"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// String returns a safe string representation of the config for logging.
// Credentials are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString("Server: {Host: " + c.Server.Host + ", Port: " + itoa(c.Server.Port) + "}, ")
	if c.SMTP.Configured() {
		b.WriteString("SMTP: {Host: " + c.SMTP.Host + ", Port: " + itoa(c.SMTP.Port) + ", User: [MASKED], Pass: [MASKED]}, ")
	} else {
		b.WriteString("SMTP: {unconfigured}, ")
	}
	b.WriteString("Careers: {To: " + c.Careers.To + ", MaxResumeBytes: " + itoa(int(c.Careers.MaxResumeBytes)) + "}, ")
	b.WriteString("Logging: {Level: " + c.Logging.Level + ", Format: " + c.Logging.Format + "}")
	b.WriteString("}")
	return b.String()
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}

// Package config defines and loads the service configuration.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kbukum/travelpay/internal/logger"
)

// Config is the root configuration for the service.
type Config struct {
	Base          BaseConfig          `yaml:"base" mapstructure:"base"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Database      DatabaseConfig      `yaml:"database" mapstructure:"database"`
	Auth          AuthConfig          `yaml:"auth" mapstructure:"auth"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// BaseConfig contains essential service identity fields.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host         string   `yaml:"host" mapstructure:"host"`
	Port         int      `yaml:"port" mapstructure:"port"`
	ReadTimeout  int      `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int      `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  int      `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	CORSOrigins  []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// DatabaseConfig configures the Postgres connection.
type DatabaseConfig struct {
	DSN                string `yaml:"dsn" mapstructure:"dsn"`
	MaxOpenConns       int    `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns       int    `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime    string `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime    string `yaml:"conn_max_idle_time" mapstructure:"conn_max_idle_time"`
	MaxRetries         int    `yaml:"max_retries" mapstructure:"max_retries"`
	AutoMigrate        bool   `yaml:"auto_migrate" mapstructure:"auto_migrate"`
	LogLevel           string `yaml:"log_level" mapstructure:"log_level"`
	SlowQueryThreshold string `yaml:"slow_query_threshold" mapstructure:"slow_query_threshold"`
}

// AuthConfig configures the authentication core. The signing secret and
// algorithm are fixed for the process lifetime; rotation means redeploying,
// which invalidates all outstanding tokens.
type AuthConfig struct {
	// Secret is the HMAC signing key (required).
	Secret string `yaml:"secret" mapstructure:"secret"`

	// Algorithm is the JWT signing algorithm (default: HS256).
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm"`

	// AccessTokenTTL is the token lifetime in minutes (default: 10080).
	AccessTokenTTL int `yaml:"access_token_ttl" mapstructure:"access_token_ttl"`

	// Identifiers is the ordered capability set of identifying attributes
	// this deployment supports. Order drives both registration conflict
	// reporting and the login failure message.
	Identifiers []string `yaml:"identifiers" mapstructure:"identifiers"`

	// BcryptCost is the bcrypt cost parameter (default: 12).
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

// ObservabilityConfig configures OpenTelemetry export.
type ObservabilityConfig struct {
	Enabled        bool    `yaml:"enabled" mapstructure:"enabled"`
	OTLPEndpoint   string  `yaml:"otlp_endpoint" mapstructure:"otlp_endpoint"`
	Insecure       bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	MetricInterval string  `yaml:"metric_interval" mapstructure:"metric_interval"`
}

// TokenTTL returns the access token lifetime as a duration.
func (c *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTL) * time.Minute
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Base.Name == "" {
		c.Base.Name = "travelpay"
	}
	if c.Base.Environment == "" {
		c.Base.Environment = "development"
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 120
	}
	c.Logging.ApplyDefaults()
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == "" {
		c.Database.ConnMaxLifetime = "1h"
	}
	if c.Database.ConnMaxIdleTime == "" {
		c.Database.ConnMaxIdleTime = "5m"
	}
	if c.Database.MaxRetries <= 0 {
		c.Database.MaxRetries = 5
	}
	if c.Database.SlowQueryThreshold == "" {
		c.Database.SlowQueryThreshold = "200ms"
	}
	if c.Auth.Algorithm == "" {
		c.Auth.Algorithm = "HS256"
	}
	if c.Auth.AccessTokenTTL == 0 {
		c.Auth.AccessTokenTTL = 10080
	}
	if len(c.Auth.Identifiers) == 0 {
		c.Auth.Identifiers = []string{"username", "email", "phone_number", "citizen_id"}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 12
	}
	if c.Observability.OTLPEndpoint == "" {
		c.Observability.OTLPEndpoint = "localhost:4318"
	}
	if c.Observability.SampleRate == 0 {
		c.Observability.SampleRate = 1.0
	}
	if c.Observability.MetricInterval == "" {
		c.Observability.MetricInterval = "15s"
	}
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	envOK := false
	for _, v := range validEnvs {
		if c.Base.Environment == v {
			envOK = true
			break
		}
	}
	if !envOK {
		return fmt.Errorf("base.environment must be one of %v (got: %s)", validEnvs, c.Base.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.Auth.Secret == "" {
		return errors.New("auth.secret is required")
	}
	if c.Auth.Algorithm != "HS256" && c.Auth.Algorithm != "HS384" && c.Auth.Algorithm != "HS512" {
		return fmt.Errorf("auth.algorithm must be an HMAC method (got: %s)", c.Auth.Algorithm)
	}
	known := map[string]bool{"username": true, "email": true, "phone_number": true, "citizen_id": true}
	for _, id := range c.Auth.Identifiers {
		if !known[id] {
			return fmt.Errorf("auth.identifiers contains unknown attribute %q", id)
		}
	}
	return nil
}

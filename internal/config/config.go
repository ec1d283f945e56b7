// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional config blocks (observability, integrations).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix CORECORD_.

	Keys are normalized (prefix removed, lowercased) and nested struct fields
	are separated by a double underscore, which becomes the koanf "." delimiter:

	  CORECORD_SERVER__PORT               -> server.port
	  CORECORD_AUTH__ACCESS_TOKEN_EXPIRATION -> auth.access_token_expiration
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "CORECORD_"

// ServiceName tags logs, traces and APM data emitted by this backend.
const ServiceName = "corecord"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	// RateLimit is the sustained number of requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address  string `koanf:"address" validate:"required"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// AuthConfig stores authentication-related secrets and session settings.
//
// SecretKey is the Clerk secret used to verify provider-issued tokens.
// JWTSecret signs the access and refresh tokens this service issues.
type AuthConfig struct {
	SecretKey              string        `koanf:"secret_key" validate:"required"`
	JWTSecret              string        `koanf:"jwt_secret" validate:"required,min=32"`
	AccessTokenExpiration  time.Duration `koanf:"access_token_expiration" validate:"required"`
	RefreshTokenExpiration time.Duration `koanf:"refresh_token_expiration" validate:"required,gtfield=AccessTokenExpiration"`
	CookieDomain           string        `koanf:"cookie_domain"`
	CookieInsecure         bool          `koanf:"cookie_insecure"`
}

// IntegrationConfig holds credentials for third-party services.
// Every integration is optional; an empty key disables it.
type IntegrationConfig struct {
	ResendAPIKey      string  `koanf:"resend_api_key"`
	EmailFrom         string  `koanf:"email_from"`
	OpenAIAPIKey      string  `koanf:"openai_api_key"`
	OpenAIModel       string  `koanf:"openai_model"`
	OpenAIMaxTokens   int     `koanf:"openai_max_tokens"`
	OpenAITemperature float64 `koanf:"openai_temperature"`
}

// applyDefaults fills optional integration values.
func (c *IntegrationConfig) applyDefaults() {
	if c.EmailFrom == "" {
		c.EmailFrom = "Corecord <onboarding@resend.dev>"
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = "gpt-4o-mini"
	}
	if c.OpenAIMaxTokens == 0 {
		c.OpenAIMaxTokens = 800
	}
	if c.OpenAITemperature == 0 {
		c.OpenAITemperature = 0.3
	}
}

// envKey converts CORECORD_SERVER__READ_TIMEOUT into server.read_timeout.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it and applies defaults.
//
// Behavior summary:
//   - Loads env vars with prefix CORECORD_
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Sets default observability if missing and forces its service name + env
//   - Validates observability config as well
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	// Observability starts from defaults so partially configured blocks
	// only override the keys they set.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.Integration.applyDefaults()

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// DSN builds the postgres URL for the configured database.
// The password is URL-escaped and IPv6 hosts are bracketed.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.User,
		url.QueryEscape(c.Password),
		net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		c.Name,
		c.SSLMode,
	)
}

// IsLocal reports whether the service runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}

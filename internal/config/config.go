package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment represents the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment normalises v into one of the known environments.
// Unknown values fall back to Development.
func ParseEnvironment(v string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(v))) {
	case Production:
		return Production
	case Testing:
		return Testing
	default:
		return Development
	}
}

// Config is populated from the process environment.
type Config struct {
	Port             string `envconfig:"PORT" default:"8000"`
	AppEnv           string `envconfig:"APP_ENV" default:"development"`
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"seafood"`
	DBConnectTimeout int    `envconfig:"DB_CONNECT_TIMEOUT" default:"5"`
	RedisURL         string `envconfig:"REDIS_URL"`
	JWTSecret        string `envconfig:"JWT_SECRET"`
	InquiryRateLimit int    `envconfig:"INQUIRY_RATE_LIMIT" default:"20"`
}

// Environment returns the parsed APP_ENV value.
func (c *Config) Environment() Environment {
	return ParseEnvironment(c.AppEnv)
}

// ConnectTimeout returns DB_CONNECT_TIMEOUT as a duration.
func (c *Config) ConnectTimeout() time.Duration {
	if c.DBConnectTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.DBConnectTimeout) * time.Second
}

// Load reads an optional .env file and then the environment.
// The returned bool reports whether a .env file was found.
func Load() (*Config, bool, error) {
	foundDotEnv := godotenv.Load() == nil

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, foundDotEnv, err
	}
	return &cfg, foundDotEnv, nil
}

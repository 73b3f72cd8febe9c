package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env        string `envconfig:"APP_ENV" default:"dev"`
	Host       string `envconfig:"HOST" default:"0.0.0.0"`
	Port       string `envconfig:"PORT" default:"8000"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`

	// CloudService is set by Cloud Run; when present logs are emitted as
	// structured JSON for Cloud Logging.
	CloudService string `envconfig:"K_SERVICE"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`

	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`

	// Rate limiting is disabled when RedisAddr is empty or RateLimitRequests <= 0.
	RedisAddr         string        `envconfig:"REDIS_ADDR"`
	RedisPassword     string        `envconfig:"REDIS_PASSWORD"`
	RedisDB           int           `envconfig:"REDIS_DB" default:"0"`
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"60"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

func (c *Config) RunningOnCloud() bool {
	return c.CloudService != ""
}

func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddr != "" && c.RateLimitRequests > 0
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads .env.<env> if present and then decodes the process environment.
func Load(env string) (*Config, error) {
	envFile := ".env." + env
	if err := godotenv.Load(envFile); err != nil {
		slog.Warn("env file not found, using system environment variables", "file", envFile)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

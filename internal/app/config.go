package app

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":5000"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB  string `envconfig:"MONGO_DB" default:"workdesk"`

	RedisAddr string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"30s"`

	JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
	AuthTokenTTL  time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"1h"`
	ResetTokenTTL time.Duration `envconfig:"RESET_TOKEN_TTL" default:"15m"`

	// Client-side session policy, used by the command line tool. The local
	// session window is deliberately shorter than the token lifetime.
	ClientSessionTTL time.Duration `envconfig:"CLIENT_SESSION_TTL" default:"5m"`
	LockoutAttempts  int           `envconfig:"LOCKOUT_ATTEMPTS" default:"5"`
	LockoutDuration  time.Duration `envconfig:"LOCKOUT_DURATION" default:"5m"`
}

// LoadConfig reads configuration from a .env file when present, then the
// environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

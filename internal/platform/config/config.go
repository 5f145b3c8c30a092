package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env                string   `env:"APP_ENV" env-default:"prod"`
	Port               string   `env:"PORT"`
	DatabaseURL        string   `env:"DATABASE_URL" env-required:"true"`
	JWTSecret          string   `env:"JWT_SECRET" env-required:"true"`
	JWTExpHours        int      `env:"JWT_EXPIRATION_HOURS" env-default:"24"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`

	DB DBConfig

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type DBConfig struct {
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
}

// Load reads .env (if any) and the process environment. defaultPort is used
// when PORT is unset.
func Load(defaultPort string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on environment variables")
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseURL == "":
		return errors.New("DATABASE_URL is required")
	case c.JWTSecret == "":
		return errors.New("JWT_SECRET is required")
	case c.JWTExpHours <= 0:
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be positive, got %d", c.JWTExpHours)
	}
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown APP_ENV: %q", c.Env)
	}
	return nil
}

func (c *Config) JWTExp() time.Duration {
	return time.Duration(c.JWTExpHours) * time.Hour
}

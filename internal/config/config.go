// Package config provides environment configuration management.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment configuration for the application.
type Config struct {
	MongoURI  string        `env:"MONGO_URI"  envDefault:"mongodb://localhost:27017"`
	DBName    string        `env:"DB_NAME"    envDefault:"eventplanner"`
	Port      string        `env:"PORT"       envDefault:"3000"`
	JWTSecret string        `env:"JWT_SECRET"`
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"  envDefault:"24h"`
	LogLevel  string        `env:"LOG_LEVEL"  envDefault:"info"`
}

// LoadConfig parses environment variables into Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

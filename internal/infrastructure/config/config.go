package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the full application configuration
type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`
	Mode string `env:"MODE" envDefault:"debug"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"pokemon"`
	Password string `env:"PASSWORD" envDefault:"pokemon"`
	DBName   string `env:"NAME" envDefault:"pokemon"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// Load reads configuration from the environment. Every variable is
// prefixed with POKEMON_, e.g. POKEMON_SERVER_PORT.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "POKEMON_"}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config defines ecometer service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"ECOMETER_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"ECOMETER_POSTGRES_DSN"`
	} `yaml:"database"`
	CORS struct {
		AllowedOrigin string `yaml:"allowed_origin" env:"ECOMETER_CORS_ORIGIN"`
	} `yaml:"cors"`
}

// Load configuration from optional YAML file plus environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8081"
	cfg.CORS.AllowedOrigin = "http://localhost:3000"

	if err := loadInto(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8081"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

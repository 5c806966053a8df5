package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		Port string `yaml:"port"`
	} `yaml:"http"`

	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	Auth struct {
		TokenSecret string        `yaml:"tokenSecret"`
		TokenMaxAge time.Duration `yaml:"tokenMaxAge"`
	} `yaml:"auth"`

	Mailgun struct {
		APIKey    string `yaml:"apiKey"`
		Domain    string `yaml:"domain"`
		FromEmail string `yaml:"fromEmail"`
	} `yaml:"mailgun"`
}

func Load() (Config, error) {
	cfg := Config{}
	cfg.HTTP.Port = "8080"

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	// Environment overrides (expected in deploy).
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Port = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}
	if v := os.Getenv("TOKEN_MAX_AGE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse TOKEN_MAX_AGE: %w", err)
		}
		cfg.Auth.TokenMaxAge = d
	}
	if v := os.Getenv("MAILGUN_API_KEY"); v != "" {
		cfg.Mailgun.APIKey = v
	}
	if v := os.Getenv("MAILGUN_DOMAIN"); v != "" {
		cfg.Mailgun.Domain = v
	}
	if v := os.Getenv("MAILGUN_FROM_EMAIL"); v != "" {
		cfg.Mailgun.FromEmail = v
	}

	if cfg.Database.DSN == "" {
		return Config{}, errors.New("missing database DSN (set database.dsn in config or DATABASE_DSN)")
	}
	if cfg.Auth.TokenSecret == "" {
		return Config{}, errors.New("missing token secret (set auth.tokenSecret in config or TOKEN_SECRET)")
	}

	return cfg, nil
}

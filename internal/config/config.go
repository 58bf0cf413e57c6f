package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	OrderNumberRandom   = "random"
	OrderNumberSequence = "sequence"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET not set")

type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// Enabled reports whether enough is set to talk to the bucket.
func (r R2Config) Enabled() bool {
	return r.Endpoint != "" && r.Bucket != "" && r.AccessKey != "" && r.SecretKey != ""
}

type Config struct {
	Env      string
	Port     string
	LogLevel string

	// empty means in-memory
	DatabaseURL string
	RedisURL    string

	CartTTL time.Duration

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	OrderNumberMode string
	CORSOrigins     []string

	R2 R2Config
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the environment. A .env file is honoured outside production.
func Load() (*Config, error) {
	env := getEnvOrDefault("APP_ENV", "development")
	if env != "production" {
		// missing .env is fine
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getEnvOrDefault("CART_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("CART_TTL: %w", err)
	}

	return &Config{
		Env:             env,
		Port:            getEnvOrDefault("APP_PORT", "8080"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		CartTTL:         ttl,
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		OrderNumberMode: strings.ToLower(getEnvOrDefault("ORDER_NUMBER_MODE", OrderNumberRandom)),
		CORSOrigins:     splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),
		R2: R2Config{
			Endpoint:      os.Getenv("R2_ENDPOINT"),
			AccessKey:     os.Getenv("R2_ACCESS_KEY"),
			SecretKey:     os.Getenv("R2_SECRET_KEY"),
			Bucket:        os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.CartTTL <= 0 {
		return fmt.Errorf("CART_TTL must be positive, got %s", c.CartTTL)
	}

	switch c.OrderNumberMode {
	case OrderNumberRandom:
	case OrderNumberSequence:
		if c.RedisURL == "" {
			return errors.New("ORDER_NUMBER_MODE=sequence requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown ORDER_NUMBER_MODE %q", c.OrderNumberMode)
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

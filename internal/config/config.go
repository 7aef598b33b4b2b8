// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the production Findata API endpoint.
const DefaultBaseURL = "https://api.findata.io/v1"

// UpstreamTimeout is the fixed ceiling for one outbound provider call.
const UpstreamTimeout = 30 * time.Second

// ErrMissingAPIKey is returned when FINDATA_API_KEY is not set. The server
// refuses to start without a credential.
var ErrMissingAPIKey = errors.New("config: FINDATA_API_KEY is not set")

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	FindataAPIKey   string
	FindataBaseURL  string
	UpstreamTimeout time.Duration
}

// Load reads configuration from environment variables. It fails immediately
// when the provider credential is absent.
func Load() (*Config, error) {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	key := os.Getenv("FINDATA_API_KEY")
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		FindataAPIKey:   key,
		FindataBaseURL:  getEnv("FINDATA_BASE_URL", DefaultBaseURL),
		UpstreamTimeout: UpstreamTimeout,
	}, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// MustLoad is Load for main: it logs and exits on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	return cfg
}

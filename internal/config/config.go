package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all server configuration
type Config struct {
	ServerPort    int
	TransportMode string
	LogLevel      string
	GitHub        GitHubConfig
}

// GitHubConfig holds the credential and endpoint for the GitHub API
type GitHubConfig struct {
	Token   string
	BaseURL string
}

// ErrMissingToken signals that no GitHub credential was provided. The
// server must not start without one.
var ErrMissingToken = errors.New("GITHUB_TOKEN environment variable is not set")

// LoadConfig loads the configuration from a .env file (if present) and
// environment variables. Environment variables win over .env entries.
func LoadConfig() (*Config, error) {
	// Best effort: a missing .env file is not an error
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		port = 9090
	}

	cfg := &Config{
		ServerPort:    port,
		TransportMode: getEnv("TRANSPORT_MODE", "stdio"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		GitHub: GitHubConfig{
			Token:   os.Getenv("GITHUB_TOKEN"),
			BaseURL: os.Getenv("GITHUB_API_URL"),
		},
	}

	if cfg.GitHub.Token == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

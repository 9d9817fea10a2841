package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	// Setup
	err := os.Setenv("TEST_ENV_VAR", "test_value")
	if err != nil {
		t.Fatalf("Failed to set environment variable: %v", err)
	}
	defer func() {
		err := os.Unsetenv("TEST_ENV_VAR")
		if err != nil {
			t.Fatalf("Failed to unset environment variable: %v", err)
		}
	}()

	// Test with existing env var
	value := getEnv("TEST_ENV_VAR", "default_value")
	assert.Equal(t, "test_value", value)

	// Test with non-existing env var
	value = getEnv("NON_EXISTING_VAR", "default_value")
	assert.Equal(t, "default_value", value)
}

func TestLoadConfig(t *testing.T) {
	// Clear any environment variables that might affect the test
	vars := []string{
		"SERVER_PORT", "TRANSPORT_MODE", "LOG_LEVEL",
		"GITHUB_TOKEN", "GITHUB_API_URL",
	}

	for _, v := range vars {
		err := os.Unsetenv(v)
		if err != nil {
			t.Logf("Failed to unset %s: %v", v, err)
		}
	}

	// Get current working directory and handle .env file
	cwd, _ := os.Getwd()
	envPath := filepath.Join(cwd, ".env")
	tempPath := filepath.Join(cwd, ".env.bak")

	// Save existing .env if it exists
	envExists := false
	if _, err := os.Stat(envPath); err == nil {
		envExists = true
		err = os.Rename(envPath, tempPath)
		if err != nil {
			t.Fatalf("Failed to rename .env file: %v", err)
		}
		// Restore at the end
		defer func() {
			if envExists {
				if err := os.Rename(tempPath, envPath); err != nil {
					t.Logf("Failed to restore .env file: %v", err)
				}
			}
		}()
	}

	defer func() {
		for _, v := range vars {
			if err := os.Unsetenv(v); err != nil {
				t.Logf("Failed to unset %s: %v", v, err)
			}
		}
	}()

	// Without a token the server must refuse to start
	config, err := LoadConfig()
	assert.Nil(t, config)
	assert.ErrorIs(t, err, ErrMissingToken)

	// With only the token set, defaults apply
	err = os.Setenv("GITHUB_TOKEN", "ghp_test_token")
	if err != nil {
		t.Fatalf("Failed to set GITHUB_TOKEN: %v", err)
	}

	config, err = LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 9090, config.ServerPort)
	assert.Equal(t, "stdio", config.TransportMode)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "ghp_test_token", config.GitHub.Token)
	assert.Equal(t, "", config.GitHub.BaseURL)

	// Test with custom environment variables
	err = os.Setenv("SERVER_PORT", "8080")
	if err != nil {
		t.Fatalf("Failed to set SERVER_PORT: %v", err)
	}
	err = os.Setenv("TRANSPORT_MODE", "sse")
	if err != nil {
		t.Fatalf("Failed to set TRANSPORT_MODE: %v", err)
	}
	err = os.Setenv("LOG_LEVEL", "debug")
	if err != nil {
		t.Fatalf("Failed to set LOG_LEVEL: %v", err)
	}
	err = os.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")
	if err != nil {
		t.Fatalf("Failed to set GITHUB_API_URL: %v", err)
	}

	config, err = LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 8080, config.ServerPort)
	assert.Equal(t, "sse", config.TransportMode)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "https://ghe.example.com/api/v3/", config.GitHub.BaseURL)
}

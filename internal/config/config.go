package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// OpenAI configuration
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	OpenAITimeout time.Duration

	// SourceFlag when -openai-key was given, SourceEnv otherwise
	OpenAIAPIKeySource string

	// Secrets store
	SecretsFile string
	Secrets     Secrets
}

// LoadConfig loads configuration from environment variables and command-line flags
// Flags take precedence over environment variables
func LoadConfig() (*Config, error) {
	return Parse(os.Args[1:])
}

// Parse builds a Config from the given command-line arguments and the environment
func Parse(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	// Define flags
	serverPort := fs.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	openAIKey := fs.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIModel := fs.String("openai-model", getEnv("OPENAI_MODEL", DefaultModel), "OpenAI model for chat completions")
	openAIBaseURL := fs.String("openai-base-url", getEnv("OPENAI_BASE_URL", ""), "OpenAI API base URL (empty for the public API)")
	openAITimeout := fs.Duration("openai-timeout", getEnvAsDuration("OPENAI_TIMEOUT", 2*time.Minute), "Timeout for a single chat completion request")
	secretsFile := fs.String("secrets-file", getEnv("SECRETS_FILE", DefaultSecretsFile), "YAML secrets file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Set config values
	cfg.ServerPort = *serverPort
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIModel = *openAIModel
	cfg.OpenAIBaseURL = *openAIBaseURL
	cfg.OpenAITimeout = *openAITimeout
	cfg.SecretsFile = *secretsFile

	cfg.OpenAIAPIKeySource = SourceEnv
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "openai-key" {
			cfg.OpenAIAPIKeySource = SourceFlag
		}
	})

	if cfg.OpenAIModel == "" {
		return nil, fmt.Errorf("OPENAI_MODEL must not be empty")
	}

	secrets, err := LoadSecrets(cfg.SecretsFile)
	if err != nil {
		return nil, err
	}
	cfg.Secrets = secrets

	return cfg, nil
}

// CredentialSources lists where the server looks for an API key, lowest precedence first
func (c *Config) CredentialSources() []Source {
	return []Source{
		{Name: c.OpenAIAPIKeySource, Value: c.OpenAIAPIKey},
		{Name: SourceSecrets, Value: c.Secrets.OpenAIAPIKey},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Bare numbers are seconds
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

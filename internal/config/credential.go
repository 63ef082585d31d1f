package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultSecretsFile = "secrets.yaml"
)

// Credential source names
const (
	SourceEnv     = "env"
	SourceFlag    = "flag"
	SourceSecrets = "secrets"
	SourceField   = "field"
)

// Source is one place a credential may come from
type Source struct {
	Name  string
	Value string
}

// Resolve walks sources in order and returns the last non-empty value
// together with the name of the source it came from.
// An empty name means no source held a credential.
func Resolve(sources ...Source) (value, name string) {
	for _, s := range sources {
		if v := strings.TrimSpace(s.Value); v != "" {
			value, name = v, s.Name
		}
	}
	return value, name
}

// Secrets is the application secrets store
type Secrets struct {
	OpenAIAPIKey string `yaml:"openai_api_key"`
}

// LoadSecrets reads the YAML secrets file. A missing file yields empty secrets.
func LoadSecrets(path string) (Secrets, error) {
	var s Secrets
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}
	return s, nil
}

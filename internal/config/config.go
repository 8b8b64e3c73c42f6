// Package config provides YAML-based configuration loading for the game:
// which LLM backend generates scenarios, its credentials, and where the
// local database lives.
package config

import "time"

// Config is the full painters configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Storage  StorageConfig  `yaml:"storage"`
}

// ProviderConfig selects and configures the scenario-generation backend.
type ProviderConfig struct {
	// Name is the any-llm backend name: "gemini", "openai", "anthropic",
	// "ollama", "deepseek", "mistral", or "groq".
	Name string `yaml:"name"`

	// Model is the model identifier, e.g. "gemini-2.0-flash".
	Model string `yaml:"model"`

	// APIKey is the backend credential. When empty the backend reads its
	// usual environment variable (GEMINI_API_KEY, OPENAI_API_KEY, ...).
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the backend endpoint, mainly for local Ollama or
	// OpenAI-compatible servers.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds bounds a single generation request. Zero means the
	// default of 60 seconds.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (p ProviderConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// StorageConfig locates the local SQLite database.
type StorageConfig struct {
	// DBPath is the database file path. A leading ~ expands to the home
	// directory.
	DBPath string `yaml:"db_path"`
}

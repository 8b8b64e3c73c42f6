package config

import (
	_ "embed"
)

//go:embed defaults/painters.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: Gemini with the flash
// model, credentials from the environment, database under ~/.painters.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			Name:           "gemini",
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 60,
		},
		Storage: StorageConfig{
			DBPath: "~/.painters/painters.db",
		},
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "painters.yaml")
	data := []byte(`
provider:
  name: ollama
  model: llama3.2
  base_url: http://localhost:11434
  timeout_seconds: 30
storage:
  db_path: ./painters.db
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider.Name != "ollama" || cfg.Provider.Model != "llama3.2" {
		t.Errorf("provider = %+v", cfg.Provider)
	}
	if cfg.Provider.BaseURL != "http://localhost:11434" {
		t.Errorf("base_url = %q", cfg.Provider.BaseURL)
	}
	if cfg.Storage.DBPath != "./painters.db" {
		t.Errorf("db_path = %q", cfg.Storage.DBPath)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit path should error")
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "painters.yaml")
	if err := os.WriteFile(path, []byte("provider:\n  name: openai\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider.Name != "openai" {
		t.Errorf("name = %q, want openai", cfg.Provider.Name)
	}
	def := DefaultConfig()
	if cfg.Provider.Model != def.Provider.Model {
		t.Errorf("model = %q, want default %q", cfg.Provider.Model, def.Provider.Model)
	}
	if cfg.Storage.DBPath != def.Storage.DBPath {
		t.Errorf("db_path = %q, want default %q", cfg.Storage.DBPath, def.Storage.DBPath)
	}
}

func TestProviderTimeout(t *testing.T) {
	p := ProviderConfig{TimeoutSeconds: 15}
	if got := p.Timeout().Seconds(); got != 15 {
		t.Errorf("Timeout() = %vs, want 15s", got)
	}
	p.TimeoutSeconds = 0
	if got := p.Timeout().Seconds(); got != 60 {
		t.Errorf("Timeout() with zero = %vs, want 60s", got)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Provider.Name == "" || cfg.Provider.Model == "" {
		t.Errorf("embedded default incomplete: %+v", cfg.Provider)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider: got %q", cfg.Provider)
	}
	if cfg.ChunkSize != 500 || cfg.ChunkOverlap != 20 {
		t.Errorf("chunking defaults: got %d/%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.DataDir != ".plansearch" {
		t.Errorf("DataDir: got %q", cfg.DataDir)
	}
	if cfg.DefaultProject != "General" {
		t.Errorf("DefaultProject: got %q", cfg.DefaultProject)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".plansearch.yml")
	yml := `provider: ollama
model: llama3
docs_dir: plans
chunk_size: 800
default_project: Lift Station 46
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOllama {
		t.Errorf("Provider: got %q", cfg.Provider)
	}
	if cfg.Model != "llama3" {
		t.Errorf("Model: got %q", cfg.Model)
	}
	if cfg.DocsDir != "plans" {
		t.Errorf("DocsDir: got %q", cfg.DocsDir)
	}
	if cfg.ChunkSize != 800 {
		t.Errorf("ChunkSize: got %d", cfg.ChunkSize)
	}
	if cfg.DefaultProject != "Lift Station 46" {
		t.Errorf("DefaultProject: got %q", cfg.DefaultProject)
	}
	// Untouched keys keep their defaults.
	if cfg.ChunkOverlap != 20 {
		t.Errorf("ChunkOverlap: got %d", cfg.ChunkOverlap)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PLANSEARCH_MODEL", "gpt-4o")
	t.Setenv("PLANSEARCH_EMBEDDING_MODEL", "text-embedding-3-large")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Model: got %q, want env override", cfg.Model)
	}
	if cfg.EmbeddingModel != "text-embedding-3-large" {
		t.Errorf("EmbeddingModel: got %q, want env override", cfg.EmbeddingModel)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".plansearch.yml")

	cfg := DefaultConfig()
	cfg.DocsDir = "site-documents"
	cfg.SearchLimit = 15
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.DocsDir != "site-documents" {
		t.Errorf("DocsDir: got %q", loaded.DocsDir)
	}
	if loaded.SearchLimit != 15 {
		t.Errorf("SearchLimit: got %d", loaded.SearchLimit)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty provider", func(c *Config) { c.Provider = "" }},
		{"unknown provider", func(c *Config) { c.Provider = "gemini" }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"unknown embedding provider", func(c *Config) { c.EmbeddingProvider = "gemini" }},
		{"empty docs dir", func(c *Config) { c.DocsDir = "" }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"overlap >= size", func(c *Config) { c.ChunkOverlap = 500 }},
		{"negative threshold", func(c *Config) { c.MaxFileMB = -1 }},
		{"zero search limit", func(c *Config) { c.SearchLimit = 0 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	if got := APIKeyEnvVar(ProviderOpenAI); got != "OPENAI_API_KEY" {
		t.Errorf("openai: got %q", got)
	}
	if got := APIKeyEnvVar(ProviderOllama); got != "" {
		t.Errorf("ollama: got %q, want empty", got)
	}
}

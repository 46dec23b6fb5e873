package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .plansearch.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to plansearch! Let's configure your document index.")
	fmt.Println()

	cfg := DefaultConfig()

	providerPrompt := promptui.Select{
		Label: "Select model provider",
		Items: []string{"openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)
	cfg.EmbeddingProvider = cfg.Provider
	if cfg.Provider == ProviderOllama {
		cfg.Model = "llama3"
		cfg.EmbeddingModel = "nomic-embed-text"
	}

	docsPrompt := promptui.Prompt{
		Label:   "Document directory to index",
		Default: cfg.DocsDir,
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs directory: %w", err)
	}
	cfg.DocsDir = strings.TrimSpace(docsDir)

	projectPrompt := promptui.Prompt{
		Label:   "Fallback project name",
		Default: cfg.DefaultProject,
	}
	project, err := projectPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("project name: %w", err)
	}
	cfg.DefaultProject = strings.TrimSpace(project)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(".plansearch.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .plansearch.yml")
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("Remember to set %s before running `plansearch index`.\n", envVar)
	}

	return cfg, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/buildvault/plansearch/internal/config"
	"github.com/buildvault/plansearch/internal/embeddings"
	"github.com/buildvault/plansearch/internal/llm"
	"github.com/buildvault/plansearch/internal/vectordb"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `plansearch init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
// Shared by the index, query and serve commands.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}
	model := cfg.EmbeddingModel
	if model == "" {
		model = string(embeddings.ModelTextEmbedding3Small)
	}

	switch provider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(model)), nil
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(model, 768, ""), nil
	default:
		// For providers without native embeddings, fall back to OpenAI.
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required (used for embeddings when provider is %s)", provider)
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(model)), nil
	}
}

// createProviderFromConfig creates an LLM provider based on config settings.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	return llm.NewProvider(string(cfg.Provider), cfg.Model)
}

// openStore creates a store bound to the configured embedder and loads the
// persisted index from the data directory. The returned bool reports whether
// an existing index was loaded; false with a nil error means the directory
// simply holds no index yet. Any other load failure, a corrupt database or
// a missing required collection included, is returned to the caller.
func openStore(ctx context.Context, cfg *config.Config) (vectordb.Store, bool, error) {
	embedder, err := createEmbedderFromConfig(cfg)
	if err != nil {
		return nil, false, fmt.Errorf("creating embedder: %w", err)
	}

	store, err := vectordb.NewChromemStore(embedder)
	if err != nil {
		return nil, false, fmt.Errorf("creating vector store: %w", err)
	}

	if err := store.Load(ctx, cfg.DataDir); err != nil {
		if errors.Is(err, vectordb.ErrNoIndex) {
			return store, false, nil
		}
		return store, false, err
	}
	return store, true, nil
}

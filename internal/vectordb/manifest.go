package vectordb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const manifestFileName = "manifest.json"

// manifest stamps a persisted index with the embedding model that built it.
// Loading the index under a different model is rejected: the stored vectors
// and fresh query vectors would not live in the same space.
type manifest struct {
	EmbeddingModel string    `json:"embedding_model"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func writeManifest(dir, embedderName string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}
	data, err := json.MarshalIndent(manifest{
		EmbeddingModel: embedderName,
		UpdatedAt:      time.Now(),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, manifestFileName), data, 0o644)
}

func checkManifest(dir, embedderName string) error {
	data, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			// Indexes written before manifests existed load without a
			// check.
			return nil
		}
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}
	if m.EmbeddingModel != "" && m.EmbeddingModel != embedderName {
		return fmt.Errorf("%w: index built with %q, configured %q",
			ErrEmbedderMismatch, m.EmbeddingModel, embedderName)
	}
	return nil
}

package embeddings

import "context"

// Embedder generates text embeddings. The same embedder identity must be
// used at index time and query time; the vector store records Name() and
// refuses to load under a different one.
type Embedder interface {
	// Embed generates embeddings for one or more texts.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the number of dimensions in the embedding vectors.
	Dimensions() int

	// Name returns the identifier of the embedding model.
	Name() string
}

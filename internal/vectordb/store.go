package vectordb

import (
	"context"
	"errors"
)

// Collection names the three parallel similarity-search tables.
type Collection string

const (
	CollectionCatalog Collection = "catalog"
	CollectionChunks  Collection = "chunks"
	CollectionImages  Collection = "images"
)

// ErrEmbedderMismatch is returned by Load when the persisted index was built
// with a different embedding model than the one configured now. Querying
// across models produces meaningless similarities.
var ErrEmbedderMismatch = errors.New("vectordb: index was built with a different embedding model")

// ErrCollectionMissing is returned when a required collection is absent from
// a loaded index.
var ErrCollectionMissing = errors.New("vectordb: collection not found, has the index been seeded?")

// ErrNoIndex is returned by Load when the data directory holds no persisted
// index at all. Callers treat this as "not yet indexed"; every other load
// failure means an index exists but cannot be used.
var ErrNoIndex = errors.New("vectordb: no index found")

// Document is one stored record: embedded content plus a flat metadata
// payload keyed by the public filter field names.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]string
}

// SearchResult pairs a document with its similarity score
// (similarity = 1 - vector distance).
type SearchResult struct {
	Document   Document
	Similarity float32
}

// Store is the persisted multi-collection vector index. Implementations are
// safe for concurrent readers; indexing runs as a single writer.
type Store interface {
	// Add inserts documents into the named collection, creating it on
	// first use.
	Add(ctx context.Context, col Collection, docs []Document) error

	// Search performs a top-k similarity query against one collection.
	Search(ctx context.Context, col Collection, query string, limit int) ([]SearchResult, error)

	// HasHash reports whether a record keyed by the given digest exists in
	// the collection. This is an exact record-ID lookup; no embedding call
	// is made. A lookup failure reads as "not found"; re-inserting the
	// same record ID is a harmless overwrite.
	HasHash(ctx context.Context, col Collection, hash string) bool

	// DeleteBySource removes all records whose source metadata field
	// matches the given path.
	DeleteBySource(ctx context.Context, col Collection, source string) error

	// Count returns the number of records in the collection.
	Count(col Collection) int

	// HasImages reports whether the image collection has ever been seeded.
	HasImages() bool

	// Persist saves the index and its embedder manifest to dir.
	Persist(ctx context.Context, dir string) error

	// Load restores the index from dir, verifying the embedder manifest.
	// Returns ErrNoIndex when dir holds no persisted index.
	Load(ctx context.Context, dir string) error
}

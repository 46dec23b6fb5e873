package vectordb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	chromem "github.com/philippgille/chromem-go"

	"github.com/buildvault/plansearch/internal/embeddings"
)

const dbFileName = "chromem.gob.gz"

// ChromemStore implements Store using chromem-go with one named collection
// per logical table. The catalog and chunks collections always exist; the
// images collection is created only once image records are added, so its
// absence signals "image search unavailable" rather than an error.
type ChromemStore struct {
	db          *chromem.DB
	embedder    embeddings.Embedder
	embedFunc   chromem.EmbeddingFunc
	collections map[Collection]*chromem.Collection
}

// NewChromemStore creates an empty in-memory store bound to the given
// embedder.
func NewChromemStore(embedder embeddings.Embedder) (*ChromemStore, error) {
	s := &ChromemStore{
		db:          chromem.NewDB(),
		embedder:    embedder,
		embedFunc:   embeddings.ToChromemFunc(embedder),
		collections: make(map[Collection]*chromem.Collection),
	}
	for _, col := range []Collection{CollectionCatalog, CollectionChunks} {
		if _, err := s.getOrCreate(col); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *ChromemStore) getOrCreate(col Collection) (*chromem.Collection, error) {
	if c, ok := s.collections[col]; ok {
		return c, nil
	}
	c, err := s.db.GetOrCreateCollection(string(col), nil, s.embedFunc)
	if err != nil {
		return nil, fmt.Errorf("create collection %s: %w", col, err)
	}
	s.collections[col] = c
	return c, nil
}

func (s *ChromemStore) Add(ctx context.Context, col Collection, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	c, err := s.getOrCreate(col)
	if err != nil {
		return err
	}

	chromemDocs := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		chromemDocs[i] = chromem.Document{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: doc.Metadata,
		}
	}
	return c.AddDocuments(ctx, chromemDocs, 1)
}

func (s *ChromemStore) Search(ctx context.Context, col Collection, query string, limit int) ([]SearchResult, error) {
	c, ok := s.collections[col]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCollectionMissing, col)
	}

	if limit <= 0 {
		limit = 10
	}
	// chromem-go requires nResults <= collection size.
	count := c.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := c.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", col, err)
	}

	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{
			Document: Document{
				ID:       r.ID,
				Content:  r.Content,
				Metadata: r.Metadata,
			},
			Similarity: r.Similarity,
		}
	}
	return out, nil
}

func (s *ChromemStore) HasHash(ctx context.Context, col Collection, hash string) bool {
	c, ok := s.collections[col]
	if !ok || c.Count() == 0 {
		return false
	}
	// The record ID is the hash, so this is a pure ID lookup. Nothing is
	// embedded; a miss is just "not found".
	_, err := c.GetByID(ctx, hash)
	return err == nil
}

func (s *ChromemStore) DeleteBySource(ctx context.Context, col Collection, source string) error {
	c, ok := s.collections[col]
	if !ok {
		return nil
	}
	if c.Count() == 0 {
		return nil
	}
	return c.Delete(ctx, map[string]string{"source": source}, nil)
}

func (s *ChromemStore) Count(col Collection) int {
	c, ok := s.collections[col]
	if !ok {
		return 0
	}
	return c.Count()
}

func (s *ChromemStore) HasImages() bool {
	c, ok := s.collections[CollectionImages]
	return ok && c.Count() > 0
}

func (s *ChromemStore) Persist(ctx context.Context, dir string) error {
	if err := writeManifest(dir, s.embedder.Name()); err != nil {
		return err
	}
	return s.db.ExportToFile(filepath.Join(dir, dbFileName), true, "")
}

func (s *ChromemStore) Load(ctx context.Context, dir string) error {
	dbFile := filepath.Join(dir, dbFileName)
	if _, err := os.Stat(dbFile); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w in %s", ErrNoIndex, dir)
		}
		return fmt.Errorf("stat %s: %w", dbFile, err)
	}

	if err := checkManifest(dir, s.embedder.Name()); err != nil {
		return err
	}

	if err := s.db.ImportFromFile(dbFile, ""); err != nil {
		return fmt.Errorf("import from %s: %w", dir, err)
	}

	// Re-acquire collection references after import. The catalog and
	// chunks collections are required; images stays optional.
	for _, col := range []Collection{CollectionCatalog, CollectionChunks} {
		c := s.db.GetCollection(string(col), s.embedFunc)
		if c == nil {
			return fmt.Errorf("%w: %s", ErrCollectionMissing, col)
		}
		s.collections[col] = c
	}
	if c := s.db.GetCollection(string(CollectionImages), s.embedFunc); c != nil {
		s.collections[CollectionImages] = c
	}
	return nil
}

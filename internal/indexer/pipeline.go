package indexer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/buildvault/plansearch/internal/catalog"
	"github.com/buildvault/plansearch/internal/config"
	"github.com/buildvault/plansearch/internal/extract"
	"github.com/buildvault/plansearch/internal/llm"
	"github.com/buildvault/plansearch/internal/metadata"
	"github.com/buildvault/plansearch/internal/segment"
	"github.com/buildvault/plansearch/internal/vectordb"
	"github.com/buildvault/plansearch/internal/walker"
)

// Pipeline orchestrates the full indexing workflow:
// walk -> hash gate -> extract -> merge metadata -> catalog -> chunk ->
// enrich -> store. Documents are processed sequentially; there is no
// concurrent writer.
type Pipeline struct {
	provider   llm.Provider
	store      vectordb.Store
	extractor  extract.Extractor
	images     extract.ImageStrategy
	cfg        *config.Config
	onProgress ProgressFunc
	logf       func(format string, args ...any)
}

// NewPipeline creates a new Pipeline. The image strategy defaults to the
// no-op implementation when nil.
func NewPipeline(
	provider llm.Provider,
	store vectordb.Store,
	extractor extract.Extractor,
	images extract.ImageStrategy,
	cfg *config.Config,
) *Pipeline {
	if images == nil {
		images = extract.NoopImages{}
	}
	return &Pipeline{
		provider:  provider,
		store:     store,
		extractor: extractor,
		images:    images,
		cfg:       cfg,
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
}

// SetProgressFunc sets the progress callback.
func (p *Pipeline) SetProgressFunc(fn ProgressFunc) {
	p.onProgress = fn
}

// SetLogFunc redirects pipeline warnings, for tests.
func (p *Pipeline) SetLogFunc(fn func(format string, args ...any)) {
	p.logf = fn
}

// Run executes the batch over the given files and persists the store.
// It always completes: every per-document failure is converted into a skip
// decision and collected in the result.
func (p *Pipeline) Run(ctx context.Context, files []walker.FileInfo) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString()}
	p.logf("run %s: indexing %d documents", result.RunID, len(files))

	workDir, err := os.MkdirTemp("", "plansearch-run-*")
	if err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			p.logf("warning: could not clean up %s: %v", workDir, err)
		}
	}()

	var staged []catalog.Record
	var chunks []catalog.ChunkRecord
	stagedHashes := make(map[string]struct{}, len(files))

	for i, f := range files {
		if p.onProgress != nil {
			p.onProgress(i+1, len(files), f.RelPath)
		}

		// Dedup gate: a byte-identical document is already indexed or was
		// staged earlier in this run, wherever it lives now. Its chunks
		// must not be re-embedded.
		if _, dup := stagedHashes[f.Hash]; dup || p.store.HasHash(ctx, vectordb.CollectionCatalog, f.Hash) {
			result.Skipped++
			continue
		}

		text := p.extractText(ctx, f)
		p.checkOversize(ctx, f)

		fileChunks, err := p.stageChunks(f, text)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("chunk %s: %w", f.RelPath, err))
		} else {
			chunks = append(chunks, fileChunks...)
		}

		rec, err := p.buildRecord(ctx, f, text)
		if err != nil {
			// The document keeps its chunks, just without enriched
			// metadata; the batch moves on.
			p.logf("warning: catalog record for %s failed: %v", f.RelPath, err)
			result.Errors = append(result.Errors, fmt.Errorf("catalog %s: %w", f.RelPath, err))
			result.Failed++
			continue
		}
		staged = append(staged, *rec)
		stagedHashes[f.Hash] = struct{}{}
		result.NewRecords++
	}

	chunks = catalog.EnrichChunks(chunks, staged)

	if err := p.storeRecords(ctx, staged, chunks, result); err != nil {
		return result, err
	}

	if err := p.indexImages(ctx, files, staged, result); err != nil {
		result.Errors = append(result.Errors, err)
	}

	if err := p.store.Persist(ctx, p.cfg.DataDir); err != nil {
		return result, fmt.Errorf("persist index: %w", err)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// extractText extracts the document's text, degrading to placeholder text
// on failure so a corrupt file still yields a catalog entry.
func (p *Pipeline) extractText(ctx context.Context, f walker.FileInfo) string {
	text, err := p.extractor.Text(ctx, f.Path)
	if err != nil {
		p.logf("warning: text extraction for %s failed, using placeholder: %v", f.RelPath, err)
		return extract.PlaceholderText
	}
	return text
}

// checkOversize logs the intended page-range split for oversized documents.
// The document is still processed whole, with a limited-content caveat.
func (p *Pipeline) checkOversize(ctx context.Context, f walker.FileInfo) {
	pages, err := p.extractor.PageCount(ctx, f.Path)
	if err != nil {
		pages = 0
	}
	if !segment.NeedsSplit(f.Size, pages, p.cfg.MaxFileMB, p.cfg.MaxPages) {
		return
	}
	p.logf("warning: %s exceeds size thresholds (%d bytes, %d pages); extraction may be limited", f.RelPath, f.Size, pages)
	for _, part := range segment.SplitPlan(f.RelPath, pages, p.cfg.MaxPages) {
		p.logf("  would split into %s", part)
	}
}

// stageChunks splits the document text into embedding-ready windows carrying
// only their own location markers. Enrichment happens after cataloging.
func (p *Pipeline) stageChunks(f walker.FileInfo, text string) ([]catalog.ChunkRecord, error) {
	split, err := segment.Split(text, p.cfg.ChunkSize, p.cfg.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	records := make([]catalog.ChunkRecord, len(split))
	for i, c := range split {
		records[i] = catalog.ChunkRecord{Source: f.RelPath, Chunk: c}
	}
	return records, nil
}

// buildRecord runs the three metadata extractors, merges them in priority
// order, and generates the one-sentence overview.
func (p *Pipeline) buildRecord(ctx context.Context, f walker.FileInfo, text string) (*catalog.Record, error) {
	contentMeta := metadata.FromContent(text)
	pathMeta := metadata.FromPath(f.RelPath, p.cfg.DefaultProject)

	section := segment.FirstSection(text, p.cfg.SectionChars)
	outcome := metadata.ExtractAI(ctx, p.provider, p.cfg.Model, section)
	if !outcome.OK() {
		p.logf("warning: AI metadata extraction for %s contributed nothing (%s): %v", f.RelPath, outcome.Reason, outcome.Err)
	}

	merged := metadata.Merge(contentMeta, pathMeta, outcome.Meta)

	overview, err := llm.Generate(ctx, p.provider, p.cfg.Model, buildOverviewPrompt(text), 128)
	if err != nil {
		return nil, fmt.Errorf("overview generation: %w", err)
	}

	return &catalog.Record{
		Source:   f.RelPath,
		Hash:     f.Hash,
		Meta:     merged,
		Overview: overview,
	}, nil
}

// storeRecords removes stale records for re-indexed sources, then inserts
// the staged catalog records and enriched chunks.
func (p *Pipeline) storeRecords(ctx context.Context, staged []catalog.Record, chunks []catalog.ChunkRecord, result *Result) error {
	for _, rec := range staged {
		// A new hash for a known source means the file changed; its
		// prior-version records would otherwise shadow this one.
		if err := p.store.DeleteBySource(ctx, vectordb.CollectionCatalog, rec.Source); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("delete stale catalog records for %s: %w", rec.Source, err))
		}
		if err := p.store.DeleteBySource(ctx, vectordb.CollectionChunks, rec.Source); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("delete stale chunks for %s: %w", rec.Source, err))
		}
	}

	catalogDocs := make([]vectordb.Document, len(staged))
	for i, rec := range staged {
		catalogDocs[i] = rec.Document()
	}
	if err := p.store.Add(ctx, vectordb.CollectionCatalog, catalogDocs); err != nil {
		return fmt.Errorf("store catalog records: %w", err)
	}

	chunkDocs := make([]vectordb.Document, len(chunks))
	for i, c := range chunks {
		chunkDocs[i] = c.Document()
	}
	if err := p.store.Add(ctx, vectordb.CollectionChunks, chunkDocs); err != nil {
		return fmt.Errorf("store chunks: %w", err)
	}
	result.ChunksIndexed = len(chunkDocs)
	return nil
}

// indexImages runs the image strategy over the freshly cataloged sources.
// With the default no-op strategy this stages nothing and the images
// collection is never created.
func (p *Pipeline) indexImages(ctx context.Context, files []walker.FileInfo, staged []catalog.Record, result *Result) error {
	metaBySource := make(map[string]metadata.Metadata, len(staged))
	for _, rec := range staged {
		metaBySource[rec.Source] = rec.Meta
	}

	var imageDocs []vectordb.Document
	for _, f := range files {
		meta, ok := metaBySource[f.RelPath]
		if !ok {
			continue
		}
		images, err := p.images.ExtractImages(ctx, f.Path)
		if err != nil {
			p.logf("warning: image extraction for %s failed: %v", f.RelPath, err)
			continue
		}
		for _, img := range images {
			desc, err := p.images.Describe(ctx, img)
			if err != nil || desc == "" {
				continue
			}
			rec := catalog.ImageRecord{
				ImagePath:   img.ImagePath,
				Source:      f.RelPath,
				Page:        img.Page,
				Description: desc,
				Meta:        meta,
			}
			imageDocs = append(imageDocs, rec.Document())
		}
	}

	if len(imageDocs) == 0 {
		return nil
	}
	if err := p.store.Add(ctx, vectordb.CollectionImages, imageDocs); err != nil {
		return fmt.Errorf("store image records: %w", err)
	}
	result.ImagesIndexed = len(imageDocs)
	return nil
}

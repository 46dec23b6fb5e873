package indexer

import "time"

// ProgressFunc receives per-file progress updates during a run.
type ProgressFunc func(processed, total int, current string)

// Result summarizes one batch indexing run. The batch always completes;
// per-document failures are collected here rather than aborting.
type Result struct {
	RunID string

	// NewRecords counts catalog records staged this run.
	NewRecords int
	// Skipped counts sources whose content hash was already cataloged.
	Skipped int
	// Failed counts sources whose catalog-record creation failed. Their
	// chunks are still indexed with minimal metadata.
	Failed int

	ChunksIndexed int
	ImagesIndexed int

	Errors   []error
	Duration time.Duration
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/buildvault/plansearch/internal/extract"
	"github.com/buildvault/plansearch/internal/indexer"
	"github.com/buildvault/plansearch/internal/progress"
	"github.com/buildvault/plansearch/internal/vectordb"
	"github.com/buildvault/plansearch/internal/walker"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the document tree into the vector database",
	Long:  `Scans the configured document tree, extracts text and metadata from every new document, and updates the semantic vector index.`,
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().String("docs", "", "document tree root (overrides config)")
	indexCmd.Flags().String("project", "", "default project name (overrides config)")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if docs, _ := cmd.Flags().GetString("docs"); docs != "" {
		cfg.DocsDir = docs
	}
	if project, _ := cmd.Flags().GetString("project"); project != "" {
		cfg.DefaultProject = project
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning documents in %s...\n", cfg.DocsDir)
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: cfg.DocsDir,
		Include: cfg.Include,
		Exclude: cfg.Exclude,
	})
	if err != nil {
		return fmt.Errorf("walking document tree: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Found %d documents to process\n", len(files))
	}

	if len(files) == 0 {
		fmt.Println("No documents found to index.")
		return nil
	}

	provider, err := createProviderFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("creating LLM provider: %w", err)
	}

	store, loaded, err := openStore(ctx, cfg)
	if err != nil {
		// Appending documents embedded with a different model would corrupt
		// the index. The user must re-index from scratch or restore the
		// original embedding_model setting.
		if errors.Is(err, vectordb.ErrEmbedderMismatch) {
			return fmt.Errorf("%w\nDelete %s to rebuild the index with the current embedding model", err, cfg.DataDir)
		}
		return err
	}
	if !loaded && verbose {
		fmt.Fprintf(os.Stderr, "No existing index found in %s (fresh index)\n", cfg.DataDir)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	pipeline := indexer.NewPipeline(provider, store, extract.NewPDFExtractor(), nil, cfg)

	reporter := progress.NewReporter()
	reporter.Start(len(files))
	pipeline.SetProgressFunc(func(processed int, total int, currentFile string) {
		reporter.Update(processed, currentFile)
	})

	result, err := pipeline.Run(ctx, files)
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	duration := time.Since(start)
	fmt.Println()
	fmt.Println("Indexing complete!")
	fmt.Printf("  New documents:      %d\n", result.NewRecords)
	fmt.Printf("  Skipped (unchanged): %d\n", result.Skipped)
	fmt.Printf("  Failed:             %d\n", result.Failed)
	fmt.Printf("  Chunks indexed:     %d\n", result.ChunksIndexed)
	if result.ImagesIndexed > 0 {
		fmt.Printf("  Images indexed:     %d\n", result.ImagesIndexed)
	}
	fmt.Printf("  Duration:           %s\n", duration.Round(time.Millisecond))
	fmt.Printf("  Run ID:             %s\n", result.RunID)
	fmt.Printf("  Index:              %s\n", cfg.DataDir)

	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "\nWarnings (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "  - %v\n", e)
		}
	}

	return nil
}

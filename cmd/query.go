package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildvault/plansearch/internal/metadata"
	"github.com/buildvault/plansearch/internal/vectordb"
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Semantically search the indexed documents",
	Long:  `Searches the vector index with a natural language query and returns the most relevant documents or text fragments, optionally filtered by metadata.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().String("collection", "catalog", "collection to search: catalog, chunks, images")
	queryCmd.Flags().Int("limit", 0, "maximum number of results (overrides config)")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	for _, field := range metadata.FilterFields {
		queryCmd.Flags().String(field, "", "exact-match filter on "+field)
	}
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	queryText := args[0]

	collection, _ := cmd.Flags().GetString("collection")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	col := vectordb.Collection(collection)
	switch col {
	case vectordb.CollectionCatalog, vectordb.CollectionChunks, vectordb.CollectionImages:
	default:
		return fmt.Errorf("unknown collection %q: must be catalog, chunks or images", collection)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = cfg.SearchLimit
	}

	store, loaded, err := openStore(ctx, cfg)
	if err != nil {
		if errors.Is(err, vectordb.ErrEmbedderMismatch) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			fmt.Fprintf(os.Stderr, "Results will be empty until the index is rebuilt with `plansearch index`.\n")
		} else {
			return err
		}
	}
	if !loaded || store.Count(col) == 0 {
		fmt.Println("The index is empty. Run `plansearch index` first.")
		return nil
	}

	filters := make(map[string]string)
	for _, field := range metadata.FilterFields {
		if v, _ := cmd.Flags().GetString(field); v != "" {
			filters[field] = v
		}
	}

	results, err := store.Search(ctx, col, queryText, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	results = filterResults(results, filters)

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	if jsonOutput {
		return printQueryResultsJSON(results)
	}

	printQueryResultsTable(results)
	return nil
}

// filterResults keeps only results whose metadata matches every filter
// exactly. A result lacking a filtered-on field is excluded.
func filterResults(results []vectordb.SearchResult, filters map[string]string) []vectordb.SearchResult {
	if len(filters) == 0 {
		return results
	}
	var out []vectordb.SearchResult
	for _, r := range results {
		keep := true
		for field, want := range filters {
			if r.Document.Metadata[field] != want {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

type queryResultJSON struct {
	Rank       int               `json:"rank"`
	Similarity float64           `json:"similarity"`
	Source     string            `json:"source"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Content    string            `json:"content"`
}

func printQueryResultsJSON(results []vectordb.SearchResult) error {
	var out []queryResultJSON
	for i, r := range results {
		out = append(out, queryResultJSON{
			Rank:       i + 1,
			Similarity: float64(r.Similarity),
			Source:     r.Document.Metadata["source"],
			Metadata:   r.Document.Metadata,
			Content:    truncate(r.Document.Content, 300),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printQueryResultsTable(results []vectordb.SearchResult) {
	fmt.Printf("Found %d results:\n\n", len(results))
	for i, r := range results {
		location := r.Document.Metadata["source"]
		if page := r.Document.Metadata["page"]; page != "" {
			location = fmt.Sprintf("%s (page %s)", location, page)
		}

		fmt.Printf("  %d. [%.1f%%] %s\n", i+1, r.Similarity*100, location)
		if project := r.Document.Metadata["project"]; project != "" {
			fmt.Printf("     Project: %s", project)
			if disc := r.Document.Metadata["discipline"]; disc != "" {
				fmt.Printf("  Discipline: %s", disc)
			}
			if dt := r.Document.Metadata["drawingType"]; dt != "" {
				fmt.Printf("  Type: %s", dt)
			}
			fmt.Println()
		}
		fmt.Printf("     %s\n\n", truncate(r.Document.Content, 160))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/buildvault/plansearch/internal/metadata"
	"github.com/buildvault/plansearch/internal/vectordb"
)

// imageUnavailableMessage guides the caller when the image collection was
// never seeded. This is a structured tool response, not a failure.
const imageUnavailableMessage = "Image search is unavailable: no images have been indexed yet. " +
	"Run `plansearch index` with an image extraction strategy configured to enable it."

// collectFilters reads the exact-match metadata filters from the request.
func collectFilters(request mcp.CallToolRequest) map[string]string {
	filters := make(map[string]string)
	for _, field := range metadata.FilterFields {
		if v := strings.TrimSpace(request.GetString(field, "")); v != "" {
			filters[field] = v
		}
	}
	return filters
}

// applyFilters post-filters similarity results by exact string equality on
// every provided filter field. Filtering is conjunctive: a result lacking a
// filtered-on field, or carrying a different value, is excluded. With no
// filters the similarity ranking passes through unchanged.
func applyFilters(results []vectordb.SearchResult, filters map[string]string) []vectordb.SearchResult {
	if len(filters) == 0 {
		return results
	}
	var out []vectordb.SearchResult
	for _, r := range results {
		if matchesAllFilters(r.Document.Metadata, filters) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAllFilters(md map[string]string, filters map[string]string) bool {
	for field, want := range filters {
		if md[field] != want {
			return false
		}
	}
	return true
}

// search runs one similarity query plus post-filtering against a collection.
// Every failure is converted to an error-flagged tool result; nothing is
// thrown past the tool boundary.
func (s *Server) search(ctx context.Context, request mcp.CallToolRequest, col vectordb.Collection, limit int, filtered bool) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	results, err := s.store.Search(ctx, col, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if filtered {
		results = applyFilters(results, collectFilters(request))
	}

	return mcp.NewToolResultText(formatResults(results)), nil
}

func (s *Server) handleSearchCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.search(ctx, request, vectordb.CollectionCatalog, s.cfg.SearchLimit, true)
}

func (s *Server) handleSearchChunks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.search(ctx, request, vectordb.CollectionChunks, s.cfg.SearchLimit, true)
}

func (s *Server) handleSearchAllChunks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.search(ctx, request, vectordb.CollectionChunks, s.cfg.BroadSearchLimit, false)
}

func (s *Server) handleSearchImages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.store.HasImages() {
		return mcp.NewToolResultError(imageUnavailableMessage), nil
	}
	return s.search(ctx, request, vectordb.CollectionImages, s.cfg.SearchLimit, true)
}

// displayFields orders metadata keys in the result text.
var displayFields = []string{
	"project",
	"discipline",
	"drawingNumber",
	"drawingType",
	"phase",
	"documentType",
	"revision",
	"buildingArea",
	"sheetNumber",
	"page",
	"imagePath",
}

// formatResults renders results as rich text for agent consumption. An
// empty list is a valid outcome, not an error.
func formatResults(results []vectordb.SearchResult) string {
	if len(results) == 0 {
		return "No results found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(results)))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		if src := r.Document.Metadata["source"]; src != "" {
			sb.WriteString(fmt.Sprintf("Source: %s\n", src))
		}
		for _, field := range displayFields {
			if v := r.Document.Metadata[field]; v != "" {
				sb.WriteString(fmt.Sprintf("%s: %s\n", fieldLabel(field), v))
			}
		}
		sb.WriteString(fmt.Sprintf("Similarity: %.1f%%\n", r.Similarity*100))
		sb.WriteString("\n")
		sb.WriteString(r.Document.Content)
		sb.WriteString("\n")
	}

	return sb.String()
}

func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

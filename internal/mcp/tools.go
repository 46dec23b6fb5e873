package mcp

import "github.com/mark3labs/mcp-go/mcp"

// filterOptions appends the shared exact-match metadata filter parameters
// to a tool definition.
func filterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("project", mcp.Description("Exact project name to filter on")),
		mcp.WithString("discipline", mcp.Description("Exact discipline, e.g. Structural, Electrical")),
		mcp.WithString("drawingNumber", mcp.Description("Exact drawing number, e.g. S-46-101")),
		mcp.WithString("drawingType", mcp.Description("Exact drawing type: Plans, Elevations, Sections, Details, Schedules, Diagrams")),
		mcp.WithString("phase", mcp.Description("Exact project phase, e.g. Construction Documents")),
		mcp.WithString("source", mcp.Description("Exact source file path")),
		mcp.WithString("buildingArea", mcp.Description("Exact building area code")),
	}
}

var searchCatalogTool = mcp.NewTool("search_catalog",
	append([]mcp.ToolOption{
		mcp.WithDescription("Search document-level overviews of indexed construction documents. Best for finding which documents cover a topic."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural language search query"),
		),
	}, filterOptions()...)...,
)

var searchChunksTool = mcp.NewTool("search_chunks",
	append([]mcp.ToolOption{
		mcp.WithDescription("Search text fragments of indexed construction documents for fine-grained answers. Supports exact-match metadata filters."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural language search query"),
		),
	}, filterOptions()...)...,
)

var searchAllChunksTool = mcp.NewTool("search_all_chunks",
	mcp.WithDescription("Broad search across text fragments of every indexed document, ignoring metadata filters. Casts a wide net across all projects."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
)

var searchImagesTool = mcp.NewTool("search_images",
	append([]mcp.ToolOption{
		mcp.WithDescription("Search extracted drawing images by their textual descriptions."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural language search query"),
		),
	}, filterOptions()...)...,
)

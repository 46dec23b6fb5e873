package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/buildvault/plansearch/internal/config"
	"github.com/buildvault/plansearch/internal/vectordb"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server exposing the document retrieval tools.
type Server struct {
	store vectordb.Store
	cfg   *config.Config
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(store vectordb.Store, cfg *config.Config) *Server {
	s := &Server{
		store: store,
		cfg:   cfg,
	}

	s.mcp = server.NewMCPServer(
		"plansearch",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchCatalogTool, s.handleSearchCatalog)
	s.mcp.AddTool(searchChunksTool, s.handleSearchChunks)
	s.mcp.AddTool(searchAllChunksTool, s.handleSearchAllChunks)
	s.mcp.AddTool(searchImagesTool, s.handleSearchImages)
}

// Serve starts the MCP server on stdio. Stdout carries protocol messages;
// all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

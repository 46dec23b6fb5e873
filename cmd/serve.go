package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/buildvault/plansearch/internal/mcp"
	"github.com/buildvault/plansearch/internal/vectordb"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the document search tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, loaded, err := openStore(context.Background(), cfg)
		switch {
		case errors.Is(err, vectordb.ErrEmbedderMismatch):
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			fmt.Fprintf(os.Stderr, "Search results will be empty until the index is rebuilt with `plansearch index`.\n")
		case err != nil:
			return err
		case !loaded:
			fmt.Fprintf(os.Stderr, "Warning: no index found in %s\n", cfg.DataDir)
			fmt.Fprintf(os.Stderr, "Search results will be empty. Run `plansearch index` first.\n")
		}

		mcpserver.Version = Version

		// Stdout carries MCP protocol traffic, so startup chatter stays on
		// stderr.
		fmt.Fprintf(os.Stderr, "plansearch MCP server started on stdio (documents=%d, chunks=%d)\n",
			store.Count(vectordb.CollectionCatalog), store.Count(vectordb.CollectionChunks))

		srv := mcpserver.NewServer(store, cfg)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

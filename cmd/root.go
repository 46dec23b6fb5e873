package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "plansearch",
	Short: "Metadata-aware semantic search over construction documents",
	Long: `Plansearch indexes a tree of construction drawings, specifications and
reports into a semantic vector database, enriching every document with
metadata decoded from its path, its title block and an AI pass. The
index is served to AI agents over MCP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// API keys commonly live in a local .env next to the config.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".plansearch.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

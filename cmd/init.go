package cmd

import (
	"github.com/spf13/cobra"

	"github.com/buildvault/plansearch/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize plansearch configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure plansearch for your document tree and generates a .plansearch.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

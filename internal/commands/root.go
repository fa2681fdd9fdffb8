package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankrec-dev/bankrec/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bankrec",
		Short:   "Reconcile bookkeeping ledger exports against bank statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newReconcileCommand())
	rootCmd.AddCommand(newSchemaCommand())
	rootCmd.AddCommand(newAccountsCommand())

	return rootCmd
}

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List configured bank account mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(cmd.OutOrStdout(), configFile)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", defaultConfigFile, "path to bankrec.yaml")

	return cmd
}

func runAccounts(out io.Writer, configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	if len(cfg.Accounts) == 0 {
		fmt.Fprintln(out, "No bank accounts configured.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLAST FOUR\tENTITY\tSUB-ENTITY")
	for _, a := range cfg.Accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Name, a.LastFour, a.Entity, a.SubEntity)
	}
	return tw.Flush()
}

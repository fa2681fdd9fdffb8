package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bankrec-dev/bankrec/internal/bank"
	"github.com/bankrec-dev/bankrec/internal/grid"
)

func newSchemaCommand() *cobra.Command {
	var bankFile string
	var configFile string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show which column schema a bank statement resolves to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd.OutOrStdout(), bankFile, configFile)
		},
	}

	cmd.Flags().StringVar(&bankFile, "bank", "", "bank statement file (required)")
	_ = cmd.MarkFlagRequired("bank")
	cmd.Flags().StringVar(&configFile, "config", defaultConfigFile, "path to bankrec.yaml")

	return cmd
}

func runSchema(out io.Writer, bankFile, configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	g, err := grid.ReadFile(bankFile)
	if err != nil {
		return err
	}

	txns, res := bank.Extract(g, cfg.Synonyms())

	fmt.Fprintf(out, "Tier:    %s\n", res.Tier)
	fmt.Fprintf(out, "Date:    %s\n", colName(res.DateCol))
	fmt.Fprintf(out, "Payee:   %s\n", colName(res.PayeeCol))
	fmt.Fprintf(out, "Amount:  %s\n", colName(res.AmountCol))
	fmt.Fprintf(out, "Debit:   %s\n", colName(res.DebitCol))
	fmt.Fprintf(out, "Credit:  %s\n", colName(res.CreditCol))
	fmt.Fprintf(out, "Rows:    %d transactions extracted\n", len(txns))
	return nil
}

// colName renders a 0-based column index as its spreadsheet letter, or
// "-" when unresolved.
func colName(col int) string {
	if col < 0 {
		return "-"
	}
	name := ""
	for n := col; ; n = n/26 - 1 {
		name = string(rune('A'+n%26)) + name
		if n < 26 {
			break
		}
	}
	return name + " (" + strconv.Itoa(col) + ")"
}

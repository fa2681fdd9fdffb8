package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bankrec-dev/bankrec/internal/auditlog"
	"github.com/bankrec-dev/bankrec/internal/config"
	"github.com/bankrec-dev/bankrec/internal/recon"
	"github.com/bankrec-dev/bankrec/internal/report"
)

// defaultConfigFile is looked up in the working directory when --config
// is not given.
const defaultConfigFile = "bankrec.yaml"

func newReconcileCommand() *cobra.Command {
	var ledgerFile string
	var bankFile string
	var configFile string
	var auditDir string
	var page int

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match a ledger export against a bank statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd.OutOrStdout(), ledgerFile, bankFile, configFile, auditDir, page)
		},
	}

	cmd.Flags().StringVar(&ledgerFile, "ledger", "", "ledger export file (.xlsx, .xls, or .csv; required)")
	_ = cmd.MarkFlagRequired("ledger")
	cmd.Flags().StringVar(&bankFile, "bank", "", "bank statement file (.xlsx, .xls, or .csv)")
	cmd.Flags().StringVar(&configFile, "config", defaultConfigFile, "path to bankrec.yaml")
	cmd.Flags().StringVar(&auditDir, "audit", "", "directory to append the reconciliation log under")
	cmd.Flags().IntVar(&page, "page", 1, "result page to display")

	return cmd
}

func runReconcile(out io.Writer, ledgerFile, bankFile, configFile, auditDir string, page int) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	sess := recon.NewSession(cfg.Synonyms())

	if err := sess.LoadLedger(ledgerFile); err != nil {
		return fmt.Errorf("%w; expected an .xlsx, .xls, or .csv ledger export with columns F (date), H (description), J (reference), K/L (debit/credit)", err)
	}

	if bankFile != "" {
		if err := sess.LoadBank(bankFile); err != nil {
			return fmt.Errorf("%w; expected an .xlsx, .xls, or .csv statement with date and amount or debit/credit columns", err)
		}
	}

	if cfg.Business.Name != "" {
		fmt.Fprintf(out, "%s\n\n", cfg.Business.Name)
	}
	if bankFile != "" {
		fmt.Fprintf(out, "Bank schema: %s (%d transactions)\n\n", sess.Schema().Tier, len(sess.Bank()))
	}

	entries := sess.Entries()
	if err := report.Render(out, entries, page, cfg.Display.PageSize); err != nil {
		return err
	}

	summary := report.Summarize(entries)
	fmt.Fprintf(out, "Matched: %d  Mismatched: %d  Not found: %d\n",
		summary.Matched, summary.Mismatched, summary.NotFound)

	if auditDir != "" {
		if err := appendAudit(auditDir, ledgerFile, bankFile, sess, summary); err != nil {
			return fmt.Errorf("writing audit log: %w", err)
		}
	}
	return nil
}

func appendAudit(auditDir, ledgerFile, bankFile string, sess *recon.Session, summary report.Summary) error {
	now := time.Now()
	runID, err := auditlog.NextRunID(auditDir, now.Year(), int(now.Month()))
	if err != nil {
		return err
	}

	return auditlog.Append(auditDir, []auditlog.Entry{{
		Timestamp:  now,
		RunID:      runID,
		BatchID:    sess.BatchID(),
		LedgerFile: ledgerFile,
		BankFile:   bankFile,
		SchemaTier: string(sess.Schema().Tier),
		Matched:    summary.Matched,
		Mismatched: summary.Mismatched,
		NotFound:   summary.NotFound,
	}})
}

// loadConfig reads the config file, falling back to defaults when the
// default path does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == defaultConfigFile {
		return config.Default(), nil
	}
	return config.Load(path)
}

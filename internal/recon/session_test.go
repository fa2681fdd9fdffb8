package recon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankrec-dev/bankrec/internal/bank"
	"github.com/bankrec-dev/bankrec/internal/model"
)

// ledgerCSV builds a 12-column ledger export: a header row followed by
// rows with date=F, description=H, reference=J, debit=K, credit=L.
func ledgerCSV(rows ...[5]string) string {
	var b strings.Builder
	b.WriteString(",,,,,Date,,Description,,Reference,Debit,Credit\n")
	for _, r := range rows {
		cols := make([]string, 12)
		cols[5] = r[0]
		cols[7] = r[1]
		cols[9] = r[2]
		cols[10] = r[3]
		cols[11] = r[4]
		b.WriteString(strings.Join(cols, ",") + "\n")
	}
	return b.String()
}

// bankCSV builds a 7-column fixed-layout statement: date=B, payee=D,
// amount=G.
func bankCSV(rows ...[3]string) string {
	var b strings.Builder
	b.WriteString(",Date,,Payee,,,Amount\n")
	for _, r := range rows {
		cols := make([]string, 7)
		cols[1] = r[0]
		cols[3] = r[1]
		cols[6] = r[2]
		b.WriteString(strings.Join(cols, ",") + "\n")
	}
	return b.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSession_LedgerThenBank(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := writeFile(t, dir, "ledger.csv", ledgerCSV(
		[5]string{"2025-02-20", "Jonah Systems LLC (v0000012)", "v0000012", "", "185.00"},
		[5]string{"2025-02-20", "The Vernon Company", "v0000027", "", "401.20"},
	))
	bankPath := writeFile(t, dir, "bank.csv", bankCSV(
		[3]string{"2025-02-20", "Jonah Systems LLC", "185.00"},
		[3]string{"2025-02-20", "Realpage Inc", "211.95"},
	))

	sess := NewSession(bank.DefaultSynonyms())

	require.NoError(t, sess.LoadLedger(ledgerPath))
	entries := sess.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, model.StatusNotFound, entries[0].Status)
	assert.Empty(t, sess.BatchID())

	require.NoError(t, sess.LoadBank(bankPath))
	entries = sess.Entries()
	assert.Equal(t, model.StatusMatch, entries[0].Status)

	// Same date, no amount or payee hit: the collision rule fires.
	assert.Equal(t, model.StatusMismatch, entries[1].Status)

	assert.Equal(t, bank.TierFixedPosition, sess.Schema().Tier)
	assert.NotEmpty(t, sess.BatchID())
}

func TestSession_NewBankUploadRecomputesAll(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := writeFile(t, dir, "ledger.csv", ledgerCSV(
		[5]string{"2025-02-20", "Jonah Systems LLC", "v12", "", "185.00"},
	))
	matching := writeFile(t, dir, "bank1.csv", bankCSV(
		[3]string{"2025-02-20", "Jonah Systems LLC", "185.00"},
	))
	unrelated := writeFile(t, dir, "bank2.csv", bankCSV(
		[3]string{"2025-03-05", "Somebody Else", "7.00"},
	))

	sess := NewSession(bank.DefaultSynonyms())
	require.NoError(t, sess.LoadLedger(ledgerPath))

	require.NoError(t, sess.LoadBank(matching))
	assert.Equal(t, model.StatusMatch, sess.Entries()[0].Status)
	firstBatch := sess.BatchID()

	// The second upload replaces the batch and resets every status.
	require.NoError(t, sess.LoadBank(unrelated))
	assert.Equal(t, model.StatusNotFound, sess.Entries()[0].Status)
	assert.NotEqual(t, firstBatch, sess.BatchID())
}

func TestSession_FailedUploadLeavesStateUntouched(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := writeFile(t, dir, "ledger.csv", ledgerCSV(
		[5]string{"2025-02-20", "Vendor", "v1", "", "50.00"},
	))
	bankPath := writeFile(t, dir, "bank.csv", bankCSV(
		[3]string{"2025-02-20", "Vendor", "50.00"},
	))
	badPath := writeFile(t, dir, "bad.csv", "\"unterminated\n")

	sess := NewSession(bank.DefaultSynonyms())
	require.NoError(t, sess.LoadLedger(ledgerPath))
	require.NoError(t, sess.LoadBank(bankPath))
	require.Equal(t, model.StatusMatch, sess.Entries()[0].Status)

	require.Error(t, sess.LoadBank(badPath))
	assert.Equal(t, model.StatusMatch, sess.Entries()[0].Status)
	require.Len(t, sess.Bank(), 1)

	require.Error(t, sess.LoadLedger(badPath))
	assert.Len(t, sess.Entries(), 1)
}

func TestSession_NewLedgerReplacesBatchWholesale(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "ledger1.csv", ledgerCSV(
		[5]string{"2025-02-20", "Vendor", "v1", "", "50.00"},
	))
	second := writeFile(t, dir, "ledger2.csv", ledgerCSV(
		[5]string{"2025-02-21", "Other", "v2", "", "60.00"},
		[5]string{"2025-02-22", "Another", "v3", "", "70.00"},
	))
	bankPath := writeFile(t, dir, "bank.csv", bankCSV(
		[3]string{"2025-02-20", "Vendor", "50.00"},
	))

	sess := NewSession(bank.DefaultSynonyms())
	require.NoError(t, sess.LoadLedger(first))
	require.NoError(t, sess.LoadBank(bankPath))
	require.Equal(t, model.StatusMatch, sess.Entries()[0].Status)

	// Statuses come back not-found until the next bank upload.
	require.NoError(t, sess.LoadLedger(second))
	entries := sess.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, model.StatusNotFound, entries[0].Status)
	assert.Equal(t, model.StatusNotFound, entries[1].Status)
}

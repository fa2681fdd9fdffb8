// Package recon orchestrates one reconciliation session: a ledger upload
// slot, a bank statement upload slot, and the match pass that joins them.
package recon

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bankrec-dev/bankrec/internal/bank"
	"github.com/bankrec-dev/bankrec/internal/grid"
	"github.com/bankrec-dev/bankrec/internal/ledger"
	"github.com/bankrec-dev/bankrec/internal/match"
	"github.com/bankrec-dev/bankrec/internal/model"
)

// Session holds the current ledger entries and bank batch. All state is
// rebuilt from uploaded files; nothing persists across sessions.
type Session struct {
	syn     bank.Synonyms
	entries []model.LedgerEntry
	txns    []model.BankTransaction
	schema  bank.SchemaResolution
	batchID string
}

// NewSession creates an empty session using the given bank header
// synonyms.
func NewSession(syn bank.Synonyms) *Session {
	return &Session{syn: syn}
}

// LoadLedger parses a ledger file and replaces the entry batch wholesale.
// Every status resets to not-found; statuses are only assigned again by
// the next bank upload. On error the previous batch is left untouched.
func (s *Session) LoadLedger(path string) error {
	g, err := grid.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}
	s.entries = ledger.Extract(g)
	return nil
}

// LoadBank parses a bank statement file, replaces the bank batch, and
// recomputes every ledger entry's status against the new batch. On error
// the previous batch and statuses are left untouched.
func (s *Session) LoadBank(path string) error {
	g, err := grid.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading bank statement: %w", err)
	}
	txns, res := bank.Extract(g, s.syn)

	s.txns = txns
	s.schema = res
	s.batchID = uuid.New().String()
	s.entries = match.Run(s.entries, txns)
	return nil
}

// Entries returns the current ledger entries with their statuses.
func (s *Session) Entries() []model.LedgerEntry { return s.entries }

// Bank returns the current bank transaction batch.
func (s *Session) Bank() []model.BankTransaction { return s.txns }

// Schema returns the resolution chosen for the current bank batch.
func (s *Session) Schema() bank.SchemaResolution { return s.schema }

// BatchID returns the identifier of the current bank batch, or "" before
// any bank upload.
func (s *Session) BatchID() string { return s.batchID }

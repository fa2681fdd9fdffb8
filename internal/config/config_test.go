package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankrec.yaml")

	cfg := &Config{
		Business: BusinessConfig{Name: "Madison Communities LLC"},
		Display:  DisplayConfig{PageSize: 50},
		Bank: BankConfig{
			DateHeaders: []string{"Booked On"},
		},
		Accounts: []BankAccount{
			{Name: "Chase Checking", LastFour: "1234", Entity: "Alpha Holdings", SubEntity: "Property A"},
		},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankrec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_DefaultsPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankrec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("business:\n  name: Test Co\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.Display.PageSize)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultPageSize, cfg.Display.PageSize)
	assert.Empty(t, cfg.Accounts)
}

func TestSynonyms_ExtendsBuiltins(t *testing.T) {
	cfg := Default()
	cfg.Bank.DateHeaders = []string{" Booked On "}
	cfg.Bank.AmountHeaders = []string{"VALUE"}

	syn := cfg.Synonyms()
	assert.Contains(t, syn.Date, "date")
	assert.Contains(t, syn.Date, "booked on")
	assert.Contains(t, syn.Amount, "amount")
	assert.Contains(t, syn.Amount, "value")
}

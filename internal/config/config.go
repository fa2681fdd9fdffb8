package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bankrec-dev/bankrec/internal/bank"
)

// Config represents the top-level bankrec.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Display  DisplayConfig  `yaml:"display"`
	Bank     BankConfig     `yaml:"bank,omitempty"`
	Accounts []BankAccount  `yaml:"accounts,omitempty"`
}

// BusinessConfig identifies the business entity on reports.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// DisplayConfig controls report pagination.
type DisplayConfig struct {
	PageSize int `yaml:"page_size"`
}

// BankConfig adds extra header labels to the built-in synonym sets used
// by the bank statement extractor. Built-ins are never removed.
type BankConfig struct {
	DateHeaders   []string `yaml:"date_headers,omitempty"`
	PayeeHeaders  []string `yaml:"payee_headers,omitempty"`
	AmountHeaders []string `yaml:"amount_headers,omitempty"`
	DebitHeaders  []string `yaml:"debit_headers,omitempty"`
	CreditHeaders []string `yaml:"credit_headers,omitempty"`
}

// BankAccount maps a bank feed to an entity for reporting.
type BankAccount struct {
	Name      string `yaml:"name"`
	LastFour  string `yaml:"last_four"`
	Entity    string `yaml:"entity,omitempty"`
	SubEntity string `yaml:"sub_entity,omitempty"`
}

// Load reads a bankrec.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Display.PageSize <= 0 {
		cfg.Display.PageSize = DefaultPageSize
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DefaultPageSize is the report page size when none is configured.
const DefaultPageSize = 100

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{PageSize: DefaultPageSize},
	}
}

// Synonyms returns the bank header synonym sets: the built-ins extended
// with any configured extras.
func (c *Config) Synonyms() bank.Synonyms {
	return bank.DefaultSynonyms().Extend(bank.Synonyms{
		Date:   lower(c.Bank.DateHeaders),
		Payee:  lower(c.Bank.PayeeHeaders),
		Amount: lower(c.Bank.AmountHeaders),
		Debit:  lower(c.Bank.DebitHeaders),
		Credit: lower(c.Bank.CreditHeaders),
	})
}

func lower(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return out
}

package config_test

import (
	"testing"

	"github.com/iho/ledgerbook/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LedgerFile != "transactions.csv" {
		t.Fatalf("expected default ledger file, got %q", cfg.LedgerFile)
	}

	if cfg.ReportCurrency != "ILS" {
		t.Fatalf("expected default report currency ILS, got %q", cfg.ReportCurrency)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LEDGER_FILE", "books/2024.json")
	t.Setenv("REPORT_CURRENCY", "EUR")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LedgerFile != "books/2024.json" {
		t.Fatalf("expected ledger file override, got %q", cfg.LedgerFile)
	}

	if cfg.ReportCurrency != "EUR" {
		t.Fatalf("expected report currency override, got %q", cfg.ReportCurrency)
	}

	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("expected logging overrides, got level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}
}

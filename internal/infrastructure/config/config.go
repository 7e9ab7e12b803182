package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Ledger file
	LedgerFile string `env:"LEDGER_FILE" envDefault:"transactions.csv"`

	// Reporting
	ReportCurrency string `env:"REPORT_CURRENCY" envDefault:"ILS"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads configuration from environment variables, honouring a local
// .env file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

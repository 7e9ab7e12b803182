package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iho/ledgerbook/internal/domain"
)

func (s *Store) loadJSON() ([]domain.Transaction, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var records []domain.Transaction
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return records, nil
}

func (s *Store) saveJSON(records []domain.Transaction) error {
	if records == nil {
		records = []domain.Transaction{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

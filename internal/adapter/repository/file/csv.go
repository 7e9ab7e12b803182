package file

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/iho/ledgerbook/internal/domain"
)

// csvHeader names the columns in schema order.
var csvHeader = []string{"date", "amount", "details", "category", "method", "direction", "currency"}

func (s *Store) loadCSV() ([]domain.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	var records []domain.Transaction
	for i, row := range rows {
		if i == 0 {
			// header line
			continue
		}
		tx, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode %s line %d: %w", s.path, i+1, err)
		}
		records = append(records, tx)
	}
	return records, nil
}

func decodeRow(row []string) (domain.Transaction, error) {
	if len(row) != len(csvHeader) {
		return domain.Transaction{}, fmt.Errorf("expected %d fields, got %d", len(csvHeader), len(row))
	}
	date, err := domain.ParseDate(row[0])
	if err != nil {
		return domain.Transaction{}, err
	}
	// a zero amount is written as the empty string
	amount := 0.0
	if row[1] != "" {
		amount, err = strconv.ParseFloat(row[1], 64)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("invalid amount %q", row[1])
		}
	}
	return domain.Transaction{
		Date:      date,
		Amount:    amount,
		Details:   row[2],
		Category:  row[3],
		Method:    row[4],
		Direction: row[5],
		Currency:  row[6],
	}, nil
}

func (s *Store) saveCSV(records []domain.Transaction) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	for _, tx := range records {
		row := make([]string, 0, len(csvHeader))
		for _, field := range domain.Fields() {
			row = append(row, tx.FieldText(field))
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", s.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return f.Close()
}

// Package file persists a ledger's full transaction list to one flat file.
// The encoding is chosen by the file extension: a pretty-printed JSON array
// or a comma-delimited table with a header row.
package file

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/iho/ledgerbook/internal/domain"
)

// ErrUnknownFormat is returned when the file extension maps to no encoding.
var ErrUnknownFormat = errors.New("unknown ledger file format")

// Format is the on-disk encoding of a ledger file.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatCSV
)

// DetectFormat maps a file path to its encoding by extension.
func DetectFormat(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// Store reads and writes one ledger file. Construction never fails; an
// unrecognized extension surfaces as ErrUnknownFormat on Load and Save.
type Store struct {
	path   string
	format Format
}

// New returns a store for the given path.
func New(path string) *Store {
	return &Store{path: path, format: DetectFormat(path)}
}

// Path returns the file path the store is bound to.
func (s *Store) Path() string { return s.path }

// Load reads the full record list. Row order on disk is not meaningful; the
// ledger re-sorts after every load.
func (s *Store) Load(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch s.format {
	case FormatJSON:
		return s.loadJSON()
	case FormatCSV:
		return s.loadCSV()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, s.path)
	}
}

// Save writes the full record list, replacing the file.
func (s *Store) Save(ctx context.Context, records []domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch s.format {
	case FormatJSON:
		return s.saveJSON(records)
	case FormatCSV:
		return s.saveCSV(records)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, s.path)
	}
}

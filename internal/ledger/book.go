// Package ledger owns the ordered in-memory transaction collection: field
// level editing, autocomplete recommendations and the persistence round
// trip.
package ledger

import (
	"context"
	"errors"
	"slices"

	"github.com/iho/ledgerbook/internal/domain"
)

var (
	// ErrEmptyBook is returned when a new row is requested on a ledger
	// with no records to take a date from.
	ErrEmptyBook = errors.New("cannot insert a row into an empty ledger")
)

// Store loads and saves the full record list of one ledger file.
type Store interface {
	Load(ctx context.Context) ([]domain.Transaction, error)
	Save(ctx context.Context, records []domain.Transaction) error
}

// Book is the ordered transaction collection. Records stay sorted ascending
// by date across every load, save, insert and commit.
type Book struct {
	store   Store
	records []domain.Transaction

	recommended    string
	hasRecommended bool
}

// New returns an empty Book bound to a store.
func New(store Store) *Book {
	return &Book{store: store}
}

// Load replaces the in-memory records with the store contents and restores
// date order regardless of the on-disk row order.
func (b *Book) Load(ctx context.Context) error {
	records, err := b.store.Load(ctx)
	if err != nil {
		return err
	}
	b.records = records
	b.sort()
	return nil
}

// Save writes all records through the bound store, sorted by date.
func (b *Book) Save(ctx context.Context) error {
	b.sort()
	return b.store.Save(ctx, b.records)
}

// WriteTo saves the current records through an alternate store. The book
// stays bound to its own store.
func (b *Book) WriteTo(ctx context.Context, store Store) error {
	b.sort()
	return store.Save(ctx, b.records)
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// Records exposes the records in their current order for read-only
// iteration. Callers must not modify the returned slice.
func (b *Book) Records() []domain.Transaction { return b.records }

// Snapshot returns an independent copy of the records, for handing to the
// report aggregator.
func (b *Book) Snapshot() []domain.Transaction {
	return slices.Clone(b.records)
}

// InsertRow appends a record dated like the current last record, so the new
// row lands next to the most recent entries until its date is edited.
func (b *Book) InsertRow() error {
	if len(b.records) == 0 {
		return ErrEmptyBook
	}
	last := b.records[len(b.records)-1]
	b.records = append(b.records, domain.NewTransaction(last.Date))
	return nil
}

// Append adds one record and restores date order.
func (b *Book) Append(tx domain.Transaction) {
	b.records = append(b.records, tx)
	b.sort()
}

// DeleteRow removes the record at index. Out-of-range indexes are ignored.
func (b *Book) DeleteRow(index int) {
	if index < 0 || index >= len(b.records) {
		return
	}
	b.records = append(b.records[:index], b.records[index+1:]...)
}

// CellText renders one cell. ok is false when row or column is out of
// range.
func (b *Book) CellText(row, column int) (string, bool) {
	if row < 0 || row >= len(b.records) {
		return "", false
	}
	return b.records[row].ColumnText(column)
}

// CommitCell writes edited text into one cell. A pending recommendation
// replaces the typed text for this commit. On a parse failure the record is
// left unchanged and the error is returned; after a successful commit date
// order is restored.
func (b *Book) CommitCell(row, column int, typed string) error {
	if row < 0 || row >= len(b.records) {
		return nil
	}
	input := resolveCommitText(typed, b.recommended, b.hasRecommended)
	if err := b.records[row].SetField(column, input); err != nil {
		return err
	}
	b.sort()
	return nil
}

func (b *Book) sort() {
	slices.SortStableFunc(b.records, domain.Transaction.Compare)
}

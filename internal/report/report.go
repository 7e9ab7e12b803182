// Package report derives a read-only month-by-category summary from a
// ledger snapshot. A report is never updated in place; build a fresh one
// after any ledger change.
package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iho/ledgerbook/internal/domain"
)

// Month identifies one calendar month of one year.
type Month struct {
	Year  int
	Month int
}

// MonthOf extracts the month a date falls in.
func MonthOf(d domain.Date) Month {
	return Month{Year: d.Year(), Month: d.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d.%02d", m.Year, m.Month)
}

// CategoryKey addresses one report column: a single category under a
// direction, or the direction-wide rollup when Rollup is set.
type CategoryKey struct {
	Direction string
	Category  string
	Rollup    bool
}

func (k CategoryKey) String() string {
	if k.Rollup {
		return k.Direction + " - *"
	}
	return k.Direction + " - " + k.Category
}

// compareKeys orders category keys by direction, rollup before the
// direction's individual categories, then category.
func compareKeys(a, b CategoryKey) int {
	if c := strings.Compare(a.Direction, b.Direction); c != 0 {
		return c
	}
	if a.Rollup != b.Rollup {
		if a.Rollup {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Category, b.Category)
}

// MonthAmount is one point of a category's month series.
type MonthAmount struct {
	Month  Month
	Amount float64
}

type cell struct {
	key   CategoryKey
	month Month
}

// Report is an immutable month-by-category sum view over one snapshot.
// Only records held in the reporting currency contribute; every other
// currency is excluded from all aggregates.
type Report struct {
	months     []Month       // descending, most recent first
	categories []CategoryKey // ascending by compareKeys
	summary    map[cell]float64
}

// New aggregates a snapshot in one pass.
func New(records []domain.Transaction, currency string) *Report {
	r := &Report{summary: make(map[cell]float64)}
	monthSet := make(map[Month]struct{})
	keySet := make(map[CategoryKey]struct{})

	for _, tx := range records {
		if tx.Currency != currency {
			continue
		}
		month := MonthOf(tx.Date)
		key := CategoryKey{Direction: tx.Direction, Category: tx.Category}
		rollup := CategoryKey{Direction: tx.Direction, Rollup: true}

		monthSet[month] = struct{}{}
		keySet[key] = struct{}{}
		keySet[rollup] = struct{}{}
		r.summary[cell{key, month}] += tx.Amount
		r.summary[cell{rollup, month}] += tx.Amount
	}

	for m := range monthSet {
		r.months = append(r.months, m)
	}
	slices.SortFunc(r.months, func(a, b Month) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return b.Month - a.Month
	})

	for k := range keySet {
		r.categories = append(r.categories, k)
	}
	slices.SortFunc(r.categories, compareKeys)

	return r
}

// Months lists the distinct months of the snapshot, most recent first.
func (r *Report) Months() []Month {
	return slices.Clone(r.months)
}

// MonthAt returns the month at an index of Months. ok is false out of
// range.
func (r *Report) MonthAt(index int) (Month, bool) {
	if index < 0 || index >= len(r.months) {
		return Month{}, false
	}
	return r.months[index], true
}

// CategoriesForMonth lists the category keys with a non-zero sum for the
// month at the given index, in the report's category order.
func (r *Report) CategoriesForMonth(monthIndex int) []CategoryKey {
	month, ok := r.MonthAt(monthIndex)
	if !ok {
		return nil
	}
	var keys []CategoryKey
	for _, key := range r.categories {
		if r.summary[cell{key, month}] != 0 {
			keys = append(keys, key)
		}
	}
	return keys
}

// CategoryAt indexes into CategoriesForMonth. ok is false out of range.
func (r *Report) CategoryAt(monthIndex, categoryIndex int) (CategoryKey, bool) {
	keys := r.CategoriesForMonth(monthIndex)
	if categoryIndex < 0 || categoryIndex >= len(keys) {
		return CategoryKey{}, false
	}
	return keys[categoryIndex], true
}

// SumFor returns the summed amount of a category key for a month, zero when
// absent.
func (r *Report) SumFor(key CategoryKey, month Month) float64 {
	return r.summary[cell{key, month}]
}

// MonthSeries returns one amount per month of Months, most recent first,
// zero-filled where the category has no activity.
func (r *Report) MonthSeries(key CategoryKey) []MonthAmount {
	series := make([]MonthAmount, 0, len(r.months))
	for _, month := range r.months {
		series = append(series, MonthAmount{Month: month, Amount: r.summary[cell{key, month}]})
	}
	return series
}

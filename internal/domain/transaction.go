package domain

import (
	"fmt"
	"math"
	"strconv"
)

// amountEpsilon absorbs float round-trip noise when comparing amounts.
const amountEpsilon = 1e-6

// Transaction is one ledger entry. JSON keys match the persisted file
// format.
type Transaction struct {
	Date      Date    `json:"date"`
	Amount    float64 `json:"amount"`
	Details   string  `json:"details"`
	Category  string  `json:"category"`
	Method    string  `json:"method"`
	Direction string  `json:"direction"`
	Currency  string  `json:"currency"`
}

// NewTransaction returns an entry for the given date with every other field
// empty.
func NewTransaction(date Date) Transaction {
	return Transaction{Date: date}
}

// FieldText renders one field the way the editor displays it. A zero amount
// renders as the empty string, any other amount with two decimals.
func (t Transaction) FieldText(f Field) string {
	switch f {
	case FieldDate:
		return t.Date.String()
	case FieldAmount:
		if t.Amount == 0 {
			return ""
		}
		return strconv.FormatFloat(t.Amount, 'f', 2, 64)
	case FieldDetails:
		return t.Details
	case FieldCategory:
		return t.Category
	case FieldMethod:
		return t.Method
	case FieldDirection:
		return t.Direction
	case FieldCurrency:
		return t.Currency
	}
	return ""
}

// ColumnText renders the field at a column index. ok is false past the last
// column.
func (t Transaction) ColumnText(index int) (string, bool) {
	f, ok := FieldAt(index)
	if !ok {
		return "", false
	}
	return t.FieldText(f), true
}

// SetField parses input for the field at the given column index and stores
// it. Date and Amount leave the transaction untouched when the input does
// not parse. Text fields overwrite unconditionally with the raw input. An
// index past the last column is ignored.
func (t *Transaction) SetField(index int, input string) error {
	f, ok := FieldAt(index)
	if !ok {
		return nil
	}
	switch f {
	case FieldDate:
		date, err := ParseDate(input)
		if err != nil {
			return fmt.Errorf("failed to parse %q as date: %w", input, err)
		}
		t.Date = date
	case FieldAmount:
		amount, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %q as number: %w", input, err)
		}
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			return fmt.Errorf("failed to parse %q as number: %w", input, ErrAmountNotFinite)
		}
		t.Amount = amount
	case FieldDetails:
		t.Details = input
	case FieldCategory:
		t.Category = input
	case FieldMethod:
		t.Method = input
	case FieldDirection:
		t.Direction = input
	case FieldCurrency:
		t.Currency = input
	}
	return nil
}

// Equal compares all fields, tolerating amountEpsilon on the amount.
func (t Transaction) Equal(other Transaction) bool {
	return t.Date.Equal(other.Date) &&
		math.Abs(t.Amount-other.Amount) < amountEpsilon &&
		t.Details == other.Details &&
		t.Category == other.Category &&
		t.Method == other.Method &&
		t.Direction == other.Direction &&
		t.Currency == other.Currency
}

// Compare orders transactions by date alone. Entries sharing a date have no
// further ordering.
func (t Transaction) Compare(other Transaction) int {
	return t.Date.Compare(other.Date)
}

package ledger

import (
	"strings"
	"unicode/utf8"

	"github.com/iho/ledgerbook/internal/domain"
)

// resolveCommitText decides what a cell commit actually writes: a pending
// recommendation wins over the literally typed text.
func resolveCommitText(typed, recommended string, hasRecommended bool) string {
	if hasRecommended {
		return recommended
	}
	return typed
}

// UpdateRecommendation recomputes the pending autocomplete suggestion for
// the cell at (row, column) given the text typed so far.
//
// With typed input, the nearest row above whose same-column text starts
// with the input supplies the suggestion. With no input yet, the nearest
// row above whose Details text matches the current row's Details supplies
// its value for the target column, so a recurring entry pre-fills like its
// last occurrence. No match clears the suggestion.
func (b *Book) UpdateRecommendation(row, column int, input string) {
	field, ok := domain.FieldAt(column)
	if !ok {
		return
	}

	if input != "" {
		match, found := b.findPreceding(row, field, input)
		if !found {
			b.ClearRecommendation()
			return
		}
		b.setRecommendation(match.FieldText(field))
		return
	}

	details := ""
	if row >= 0 && row < len(b.records) {
		details = b.records[row].FieldText(domain.FieldDetails)
	}
	match, found := b.findPreceding(row, domain.FieldDetails, details)
	if !found {
		b.ClearRecommendation()
		return
	}
	b.setRecommendation(match.FieldText(field))
}

// findPreceding scans the rows strictly before row, nearest first, for the
// first record whose field text starts with prefix. The match is case
// sensitive on the raw stored text.
func (b *Book) findPreceding(row int, field domain.Field, prefix string) (domain.Transaction, bool) {
	if row > len(b.records) {
		row = len(b.records)
	}
	for i := row - 1; i >= 0; i-- {
		if strings.HasPrefix(b.records[i].FieldText(field), prefix) {
			return b.records[i], true
		}
	}
	return domain.Transaction{}, false
}

// VisibleSuggestion returns the part of the pending suggestion beyond what
// has already been typed, the ghost text shown after the cursor. It is
// empty when there is no suggestion or the typed text is already longer.
func (b *Book) VisibleSuggestion(typed string) string {
	if !b.hasRecommended {
		return ""
	}
	recommended := []rune(b.recommended)
	n := utf8.RuneCountInString(typed)
	if n > len(recommended) {
		return ""
	}
	return string(recommended[n:])
}

// ClearRecommendation drops the pending suggestion.
func (b *Book) ClearRecommendation() {
	b.recommended, b.hasRecommended = "", false
}

func (b *Book) setRecommendation(s string) {
	b.recommended, b.hasRecommended = s, true
}

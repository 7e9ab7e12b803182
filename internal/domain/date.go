package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a validated calendar date. The zero value is meaningless;
// construct dates through ParseDate or NewDate so that invalid calendar
// dates never exist as values.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate builds a Date from its components, rejecting anything that is not
// a real calendar date.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: invalid month %d", ErrInvalidDate, month)
	}
	if !validCalendarDay(year, month, day) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidDate, year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate parses "YYYY-MM-DD" or "YYYY.MM.DD". The dash separator wins
// when the text contains one. A two-digit year is expanded to 2000+YY.
func ParseDate(s string) (Date, error) {
	sep := "."
	if strings.Contains(s, "-") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q must have year, month and day", ErrInvalidDate, s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid year %q", ErrInvalidDate, parts[0])
	}
	if year < 100 {
		year += 2000
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid month %q", ErrInvalidDate, parts[1])
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid day %q", ErrInvalidDate, parts[2])
	}

	d, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q", ErrInvalidDate, s)
	}
	return d, nil
}

func validCalendarDay(year, month, day int) bool {
	if day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// String returns the canonical zero-padded form YYYY.MM.DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d.%02d.%02d", d.year, d.month, d.day)
}

// Compare orders dates chronologically.
func (d Date) Compare(other Date) int {
	if d.year != other.year {
		return cmpInt(d.year, other.year)
	}
	if d.month != other.month {
		return cmpInt(d.month, other.month)
	}
	return cmpInt(d.day, other.day)
}

func (d Date) Equal(other Date) bool  { return d == other }
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MarshalJSON encodes the date as its canonical text form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts any text form ParseDate accepts.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

package domain

// Field identifies one typed column of a transaction.
type Field int

const (
	FieldDate Field = iota
	FieldAmount
	FieldDetails
	FieldCategory
	FieldMethod
	FieldDirection
	FieldCurrency

	fieldCount
)

// schema is the fixed column table: display name and display width per
// field, in column order.
var schema = [fieldCount]struct {
	name  string
	width int
}{
	FieldDate:      {"Date", 11},
	FieldAmount:    {"Amount", 10},
	FieldDetails:   {"Details", 100},
	FieldCategory:  {"Category", 15},
	FieldMethod:    {"Method", 9},
	FieldDirection: {"Direction", 9},
	FieldCurrency:  {"Currency", 9},
}

// Fields returns every field in column order.
func Fields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// FieldAt resolves a column index to its field. ok is false past the last
// column.
func FieldAt(index int) (Field, bool) {
	if index < 0 || index >= int(fieldCount) {
		return 0, false
	}
	return Field(index), true
}

// Name returns the display name of the field.
func (f Field) Name() string { return schema[f].name }

// Width returns the display width of the field's column.
func (f Field) Width() int { return schema[f].width }

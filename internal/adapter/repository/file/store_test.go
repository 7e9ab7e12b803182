package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/ledgerbook/internal/adapter/repository/file"
	"github.com/iho/ledgerbook/internal/domain"
)

func sample(t *testing.T) []domain.Transaction {
	t.Helper()
	d1, err := domain.ParseDate("2024-01-05")
	require.NoError(t, err)
	d2, err := domain.ParseDate("2024-02-10")
	require.NoError(t, err)

	return []domain.Transaction{
		{Date: d1, Amount: 12.5, Details: "coffee, milk", Category: "food", Method: "card", Direction: "out", Currency: "ILS"},
		{Date: d2, Amount: 0, Details: "placeholder", Category: "", Method: "", Direction: "out", Currency: "ILS"},
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want file.Format
	}{
		{"transactions.json", file.FormatJSON},
		{"transactions.csv", file.FormatCSV},
		{"transactions.txt", file.FormatUnknown},
		{"transactions", file.FormatUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, file.DetectFormat(tt.path), tt.path)
	}
}

func TestUnknownFormatFailsLoadAndSave(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "ledger.txt"))

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, file.ErrUnknownFormat)

	err = store.Save(context.Background(), sample(t))
	require.ErrorIs(t, err, file.ErrUnknownFormat)
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	store := file.New(path)
	records := sample(t)

	require.NoError(t, store.Save(context.Background(), records))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, len(records))
	for i := range records {
		assert.True(t, loaded[i].Equal(records[i]), "record %d changed across round trip", i)
	}
}

func TestJSONFileShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, file.New(path).Save(context.Background(), sample(t)[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `"date": "2024.01.05"`)
	assert.Contains(t, text, `"amount": 12.5`)
	assert.Contains(t, text, `"details": "coffee, milk"`)
	assert.Contains(t, text, `"direction": "out"`)
	assert.True(t, strings.HasPrefix(text, "[\n"), "expected a pretty-printed array")
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	store := file.New(path)
	records := sample(t)

	require.NoError(t, store.Save(context.Background(), records))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, len(records))
	for i := range records {
		assert.True(t, loaded[i].Equal(records[i]), "record %d changed across round trip", i)
	}
}

func TestCSVFileShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, file.New(path).Save(context.Background(), sample(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "date,amount,details,category,method,direction,currency", lines[0])
	assert.Equal(t, `2024.01.05,12.50,"coffee, milk",food,card,out,ILS`, lines[1])
	// a zero amount is stored as the empty string
	assert.Equal(t, "2024.02.10,,placeholder,,,out,ILS", lines[2])
}

func TestCSVHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,amount,details,category,method,direction,currency\n"), 0o644))

	loaded, err := file.New(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCSVRejectsBadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	content := "date,amount,details,category,method,direction,currency\n" +
		"2024-02-30,5.00,x,y,z,out,ILS\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := file.New(path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestLoadMissingFile(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "absent.json"))
	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveEmptyJSONWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, file.New(path).Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

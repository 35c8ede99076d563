package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`[
		{"name": "Max Mustermann", "IBAN": "DE89 3704 0044 0532 0130 00", "amount": "1200"},
		{"name": "Erika Musterfrau", "IBAN": "de02120300000000202051", "amount": "45,50"},
		{"name": "Stadtwerke", "IBAN": "DE02500105170137075030", "amount": 89.99}
	]`)

	entries, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{Name: "Max Mustermann", IBAN: "DE89370400440532013000", AmountCents: 120000}, entries[0])
	assert.Equal(t, Entry{Name: "Erika Musterfrau", IBAN: "DE02120300000000202051", AmountCents: 4550}, entries[1])
	assert.Equal(t, Entry{Name: "Stadtwerke", IBAN: "DE02500105170137075030", AmountCents: 8999}, entries[2])
}

func TestParseSkipsUnparseableAmounts(t *testing.T) {
	data := []byte(`[
		{"name": "A", "IBAN": "DE89370400440532013000", "amount": "n/a"},
		{"name": "B", "IBAN": "DE02120300000000202051", "amount": "10,00"}
	]`)

	entries, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "B", entries[0].Name)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"not": "a list"}`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Max","IBAN":"DE89370400440532013000","amount":"12,34"}]`), 0644))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1234), entries[0].AmountCents)
}

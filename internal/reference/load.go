package reference

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/larahenke/giro/internal/constants"
	"github.com/larahenke/giro/internal/utils"
	"github.com/larahenke/giro/internal/validation"
)

// rawEntry matches the external dataset shape. The amount arrives either as
// a JSON number or as a locale-formatted string with a comma decimal
// separator ("1.200,50").
type rawEntry struct {
	Name   string          `json:"name"`
	IBAN   string          `json:"iban"`
	Amount json.RawMessage `json:"amount"`
}

// Load reads the reference dataset from a JSON file and normalizes every
// entry. Callers treat a failed load as "no reference data": the dataset is
// best-effort and its absence must never block a transaction.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes and normalizes a reference dataset. Entries whose amount
// cannot be parsed are skipped rather than failing the whole dataset.
func Parse(data []byte) ([]Entry, error) {
	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode reference dataset: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		cents, err := parseAmount(r.Amount)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:        r.Name,
			IBAN:        validation.NormalizeIBAN(r.IBAN),
			AmountCents: cents,
		})
	}
	return entries, nil
}

func parseAmount(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing amount")
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return utils.ParseToCents(asString)
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		// Round half away from zero to whole cents.
		return int64(asNumber*constants.CentsPerUnit + copysignHalf(asNumber)), nil
	}

	return 0, fmt.Errorf("unsupported amount value: %s", strconv.Quote(string(raw)))
}

func copysignHalf(v float64) float64 {
	if v < 0 {
		return -0.5
	}
	return 0.5
}

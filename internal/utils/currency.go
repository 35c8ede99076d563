package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/larahenke/giro/internal/constants"
)

// ParseToCents converts an amount string into integer cents. Both dot and
// comma decimal separators are accepted ("1234.56", "1234,56", "1.234,56"),
// since reference data arrives in German locale formatting.
func ParseToCents(amountStr string) (int64, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	s = normalizeSeparators(s)

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	var units int64
	if parts[0] != "" {
		var err error
		units, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
	} else if len(parts) == 1 {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	var cents int64
	if len(parts) == 2 {
		centStr := parts[1]
		if centStr == "" {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
		// Pad or truncate to 2 digits: "150.5" -> 50 cents
		if len(centStr) == 1 {
			centStr += "0"
		} else if len(centStr) > 2 {
			centStr = centStr[:2]
		}
		var err error
		cents, err = strconv.ParseInt(centStr, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
	}

	total := units*int64(constants.CentsPerUnit) + cents
	if negative {
		total = -total
	}
	return total, nil
}

// normalizeSeparators rewrites a German-formatted number ("1.234,56") into
// the plain form ParseToCents works on ("1234.56"). A comma always marks the
// decimal point; dots are only treated as grouping when a comma is present.
func normalizeSeparators(s string) string {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

// FormatCents renders cents as a German-locale currency string, e.g.
// 1234567 -> "12.345,67 €".
func FormatCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	units := cents / int64(constants.CentsPerUnit)
	rem := cents % int64(constants.CentsPerUnit)

	unitStr := strconv.FormatInt(units, 10)
	var grouped strings.Builder
	for i, digit := range unitStr {
		if i > 0 && (len(unitStr)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s,%02d €", sign, grouped.String(), rem)
}

package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/larahenke/giro/internal/constants"
	"github.com/larahenke/giro/internal/model"
	"github.com/larahenke/giro/internal/utils"
)

// Code identifies a validation failure independently of its display text.
type Code string

const (
	CodeEmptyField           Code = "empty_field"
	CodeFormatError          Code = "format_error"
	CodeNotANumber           Code = "not_a_number"
	CodeNonPositive          Code = "non_positive"
	CodeLimitExceeded        Code = "limit_exceeded"
	CodeInsufficientFunds    Code = "insufficient_funds"
	CodeMissingDate          Code = "missing_date"
	CodePastDate             Code = "past_date"
	CodeEndDateNotAfterStart Code = "end_date_not_after_start"
	CodeReferenceMismatch    Code = "reference_mismatch"
)

// Result is the outcome of a single field check. A failed Result carries a
// machine-checkable Code plus the German message shown next to the field.
type Result struct {
	Valid   bool
	Code    Code
	Message string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(code Code, message string) Result {
	return Result{Valid: false, Code: code, Message: message}
}

// Structure check only, no MOD-97 checksum: country code DE followed by
// exactly 20 digits.
var ibanPattern = regexp.MustCompile(`^DE\d{20}$`)

// NormalizeIBAN strips all whitespace and uppercases. Idempotent.
func NormalizeIBAN(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// CleanIBANInput reproduces the form's input mask: everything that is not a
// letter or digit is dropped, the rest is uppercased.
func CleanIBANInput(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// ValidateRecipient requires a non-empty name after trimming.
func ValidateRecipient(name string) Result {
	if strings.TrimSpace(name) == "" {
		return fail(CodeEmptyField, "Empfänger darf nicht leer sein.")
	}
	return ok()
}

// ValidateIBAN checks the normalized value against the German IBAN shape.
func ValidateIBAN(raw string) Result {
	if !ibanPattern.MatchString(NormalizeIBAN(raw)) {
		return fail(CodeFormatError, "Bitte geben Sie eine gültige deutsche IBAN ein (z.B. DE12 3456...).")
	}
	return ok()
}

// AmountContext supplies the account figures an amount is checked against.
// Standing orders are scheduled rather than settled, so their amounts skip
// the limit and balance checks entirely.
type AmountContext struct {
	Kind         model.FormKind
	LimitCents   int64
	BalanceCents int64
}

// ValidateAmount parses the raw amount and checks it against the context.
// The parsed cents are returned alongside so callers do not parse twice.
// When both the limit and the balance are exceeded, the limit failure wins.
func ValidateAmount(raw string, ctx AmountContext) (int64, Result) {
	cents, err := utils.ParseToCents(raw)
	if err != nil {
		return 0, fail(CodeNotANumber, "Geben Sie einen Betrag ein.")
	}
	if cents <= 0 {
		return cents, fail(CodeNonPositive, "Der Betrag muss positiv sein.")
	}
	if ctx.Kind == model.KindTransfer {
		if cents > ctx.LimitCents {
			msg := fmt.Sprintf("Der Betrag darf maximal %s betragen.", utils.FormatCents(ctx.LimitCents))
			return cents, fail(CodeLimitExceeded, msg)
		}
		if cents > ctx.BalanceCents {
			return cents, fail(CodeInsufficientFunds, "Nicht genügend Guthaben auf dem Konto.")
		}
	}
	return cents, ok()
}

// ValidateExecutionDate requires a date of today or later, unless the
// realtime flag makes the date irrelevant. Dates compare at day granularity.
func ValidateExecutionDate(value string, realtime bool, now time.Time) Result {
	if realtime {
		return ok()
	}
	if strings.TrimSpace(value) == "" {
		return fail(CodeMissingDate, "Bitte wählen Sie ein Ausführungsdatum.")
	}
	selected, err := time.ParseInLocation(constants.DateFormat, strings.TrimSpace(value), now.Location())
	if err != nil {
		return fail(CodeMissingDate, "Bitte wählen Sie ein gültiges Ausführungsdatum.")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if selected.Before(today) {
		return fail(CodePastDate, "Das Datum muss in der Zukunft oder heute liegen.")
	}
	return ok()
}

// ValidateEndDate applies to standing orders. An unlimited order or an empty
// end date means "no constraint". Otherwise the end date must lie strictly
// after the execution date; ending on the start day is invalid.
func ValidateEndDate(value, executionDate string, unlimited bool) Result {
	if unlimited || strings.TrimSpace(value) == "" {
		return ok()
	}
	end, err := time.Parse(constants.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return fail(CodeEndDateNotAfterStart, "Bitte wählen Sie ein gültiges Enddatum.")
	}
	start, err := time.Parse(constants.DateFormat, strings.TrimSpace(executionDate))
	if err != nil {
		// The execution-date validator reports its own failure; nothing to
		// compare against here.
		return ok()
	}
	if !end.After(start) {
		return fail(CodeEndDateNotAfterStart, "Das Enddatum muss nach dem Ausführungsdatum liegen.")
	}
	return ok()
}

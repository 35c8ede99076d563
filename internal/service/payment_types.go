package service

import (
	"github.com/larahenke/giro/internal/reference"
	"github.com/larahenke/giro/internal/validation"
)

// Status is the overall outcome of one submission.
type Status string

const (
	// StatusApproved: every check passed; a transfer has been settled
	// against the session account.
	StatusApproved Status = "approved"

	// StatusRejected: one or more fields failed validation.
	StatusRejected Status = "rejected"

	// StatusBlocked: the fields were individually valid, but the payee is
	// known in the reference dataset with different details.
	StatusBlocked Status = "blocked"
)

// Field keys for per-field error reporting.
const (
	FieldRecipient = "recipient"
	FieldIBAN      = "iban"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldEndDate   = "end_date"
)

// Decision is what one submission resolves to. FieldErrors is populated only
// for StatusRejected and holds every failing field, not just the first one,
// so the form can show all problems at once.
type Decision struct {
	Status      Status
	FieldErrors map[string]validation.Result

	// ReferenceOutcome is set for transfers after field validation passed.
	ReferenceOutcome reference.Outcome

	// Reason explains a StatusBlocked decision.
	Reason validation.Result

	// Account figures after the decision. Unchanged unless an approved
	// transfer settled.
	NewBalanceCents int64
	NewLimitCents   int64
}

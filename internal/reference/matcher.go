package reference

import "github.com/larahenke/giro/internal/constants"

// Outcome classifies a submission against the reference dataset.
type Outcome string

const (
	// OutcomeUnverified means no reference record mentions this payee.
	// A new, unrecorded payee is allowed.
	OutcomeUnverified Outcome = "unverified"

	// OutcomeVerified means a record was found and name, IBAN and amount
	// all agree.
	OutcomeVerified Outcome = "verified"

	// OutcomeRejected means a record was found but at least one field
	// differs: a known payee whose details were altered.
	OutcomeRejected Outcome = "rejected"
)

// Match looks the submission up in the reference dataset. The first entry
// whose name or IBAN equals the submitted one decides; further entries are
// not consulted. Matching is exact string equality on normalized values,
// except the amount, which tolerates a one-cent difference.
func Match(name, iban string, amountCents int64, entries []Entry) Outcome {
	for _, e := range entries {
		if e.Name != name && e.IBAN != iban {
			continue
		}
		if e.Name == name && e.IBAN == iban && amountMatches(e.AmountCents, amountCents) {
			return OutcomeVerified
		}
		return OutcomeRejected
	}
	return OutcomeUnverified
}

func amountMatches(a, b int64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= constants.AmountToleranceCents
}

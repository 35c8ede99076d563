package model

// FormKind selects which of the two transfer forms a submission came from.
type FormKind string

const (
	KindTransfer      FormKind = "transfer"
	KindStandingOrder FormKind = "standing_order"
)

// Submission carries the raw field values of one form submit attempt,
// exactly as the user entered them. Parsing and validation happen later;
// a Submission is discarded after the decision.
type Submission struct {
	Kind      FormKind
	Recipient string
	IBAN      string
	Amount    string

	// ExecutionDate is an ISO date string (YYYY-MM-DD) or empty.
	ExecutionDate string

	// Realtime marks an immediate transfer; the execution date is ignored.
	// Transfer form only.
	Realtime bool

	// EndDate and Unlimited belong to the standing-order form.
	EndDate   string
	Unlimited bool
}

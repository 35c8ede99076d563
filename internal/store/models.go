package store

// JournalEntry records one decided submission of the session.
type JournalEntry struct {
	ID          int64
	Timestamp   int64
	Kind        string
	Recipient   string
	IBAN        string
	AmountCents int64
	Outcome     string
	Detail      string
}

// ReferenceRow mirrors one normalized reference entry for listing.
type ReferenceRow struct {
	ID          int64
	Name        string
	IBAN        string
	AmountCents int64
}

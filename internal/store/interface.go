package store

// Repository is the storage surface the service layer works against.
type Repository interface {
	// Journal operations
	RecordDecision(entry JournalEntry) (int64, error)
	ListJournal(limit int) ([]*JournalEntry, error)

	// Reference dataset operations
	SeedReferenceEntries(rows []ReferenceRow) error
	ListReferenceEntries() ([]*ReferenceRow, error)

	Close() error
}

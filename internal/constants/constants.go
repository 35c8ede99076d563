package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"
)

const (
	CentsPerUnit = 100

	// Reference amounts are considered equal within one cent.
	AmountToleranceCents = 1
)

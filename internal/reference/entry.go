package reference

// Entry is one expected-payee record from the reference dataset, normalized
// for matching: IBAN compacted and uppercased, amount in cents.
type Entry struct {
	Name        string
	IBAN        string
	AmountCents int64
}

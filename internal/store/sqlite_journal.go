package store

import "fmt"

// RecordDecision appends one decided submission to the session journal.
func (s *Store) RecordDecision(entry JournalEntry) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO journal (timestamp, kind, recipient, iban, amount, outcome, detail)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare journal SQL: %w", err)
	}
	defer stmt.Close()

	var id int64
	err = stmt.QueryRow(
		entry.Timestamp,
		entry.Kind,
		entry.Recipient,
		entry.IBAN,
		entry.AmountCents,
		entry.Outcome,
		entry.Detail,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return id, nil
}

// ListJournal returns the most recent journal entries, newest first.
// limit <= 0 returns everything.
func (s *Store) ListJournal(limit int) ([]*JournalEntry, error) {
	query := `
        SELECT id, timestamp, kind, recipient, iban, amount, outcome, detail
        FROM journal
        ORDER BY timestamp DESC, id DESC
    `
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []*JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Kind, &e.Recipient, &e.IBAN, &e.AmountCents, &e.Outcome, &e.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

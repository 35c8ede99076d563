package store

import "fmt"

// SeedReferenceEntries replaces the stored reference dataset. Called once at
// startup after the dataset file is loaded.
func (s *Store) SeedReferenceEntries(rows []ReferenceRow) error {
	if _, err := s.db.Exec(`DELETE FROM reference_entries;`); err != nil {
		return fmt.Errorf("failed to clear reference entries: %w", err)
	}

	stmt, err := s.db.Prepare(`
        INSERT INTO reference_entries (name, iban, amount)
        VALUES (?, ?, ?);
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare reference SQL: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row.Name, row.IBAN, row.AmountCents); err != nil {
			return fmt.Errorf("failed to insert reference entry (%s): %w", row.Name, err)
		}
	}
	return nil
}

// ListReferenceEntries returns the seeded dataset in insertion order.
func (s *Store) ListReferenceEntries() ([]*ReferenceRow, error) {
	rows, err := s.db.Query(`
        SELECT id, name, iban, amount
        FROM reference_entries
        ORDER BY id;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query reference entries: %w", err)
	}
	defer rows.Close()

	var entries []*ReferenceRow
	for rows.Next() {
		var r ReferenceRow
		if err := rows.Scan(&r.ID, &r.Name, &r.IBAN, &r.AmountCents); err != nil {
			return nil, fmt.Errorf("failed to scan reference entry: %w", err)
		}
		entries = append(entries, &r)
	}
	return entries, rows.Err()
}

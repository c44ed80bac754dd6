// Package docnum formats sequential document codes like INV-2026-001.
// The sequence is advisory: the database's unique constraint on the
// number column is the only real guard, so two concurrent creators can
// still collide and the loser sees a constraint violation.
package docnum

import "fmt"

// Format renders a document code as PREFIX-YEAR-NNN.
func Format(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// Next synthesizes the next code from a count of existing documents in
// the scope (calendar year for invoices, all-time for purchase orders
// and bills).
func Next(prefix string, year int, count int64) string {
	return Format(prefix, year, count+1)
}

package invoice

import "github.com/google/uuid"

// Record is one past invoice entry. Records are never mutated or
// removed once appended.
type Record struct {
	ID       uuid.UUID
	Customer string
	FileName string
}

// Log is the append-only in-memory list of past invoices for the
// current session. Nothing survives a process restart.
type Log struct {
	records []Record
}

// Record appends an entry for a successfully saved invoice.
func (l *Log) Record(customer, fileName string) Record {
	rec := Record{ID: uuid.New(), Customer: customer, FileName: fileName}
	l.records = append(l.records, rec)
	return rec
}

// List returns the recorded invoices in append order.
func (l *Log) List() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

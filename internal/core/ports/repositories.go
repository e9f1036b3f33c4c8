package ports

import (
	"context"
	"iter"

	"country-limits/internal/core/domain"
)

// CountryRepository persists country records for restarts.
// History rows are insert-only; implementations must never update or delete them.
type CountryRepository interface {
	// LoadAll returns every record in insertion order, history newest first.
	LoadAll(ctx context.Context) ([]domain.CountryRecord, error)
	// SaveRecord writes rec and inserts the history entries appended by the
	// current mutation (newest first) in a single transaction.
	SaveRecord(ctx context.Context, rec *domain.CountryRecord, appended []domain.HistoryRecord) error
}

// RecordStore is the owned, keyed registry of live country records.
// Mutations of one record are serialized; different records are independent.
type RecordStore interface {
	// Insert adds a new record. Fails with LIM_001 when the code exists.
	Insert(ctx context.Context, rec domain.CountryRecord) error
	// Get returns a deep copy of the record. Fails with LIM_002 when absent.
	Get(ctx context.Context, code string) (domain.CountryRecord, error)
	// Update runs fn against a private copy of the record under the record's
	// lock and commits the copy only when fn and persistence both succeed.
	Update(ctx context.Context, code string, fn func(rec *domain.CountryRecord) error) (domain.CountryRecord, error)
	// All yields deep copies of every record in insertion order. The sequence
	// is lazy and can be ranged over more than once.
	All(ctx context.Context) iter.Seq[domain.CountryRecord]
	// Len returns the number of records.
	Len() int
}

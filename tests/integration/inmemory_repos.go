package integration

import (
	"context"
	"fmt"
	"sync"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Country Repo ---

// inMemoryCountryRepo mimics the PostgreSQL tables: one row per country,
// at most one pending row, and insert-only history.
type inMemoryCountryRepo struct {
	mu        sync.Mutex
	order     []string
	countries map[string]domain.CountryRecord
	history   map[string][]domain.HistoryRecord // oldest first, like seq order
	seen      map[uuid.UUID]bool
	saves     int
}

var _ ports.CountryRepository = (*inMemoryCountryRepo)(nil)

func newInMemoryCountryRepo() *inMemoryCountryRepo {
	return &inMemoryCountryRepo{
		countries: make(map[string]domain.CountryRecord),
		history:   make(map[string][]domain.HistoryRecord),
		seen:      make(map[uuid.UUID]bool),
	}
}

func (r *inMemoryCountryRepo) LoadAll(ctx context.Context) ([]domain.CountryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.CountryRecord, 0, len(r.order))
	for _, code := range r.order {
		rec := r.countries[code].Clone()
		rows := r.history[code]
		rec.History = make([]domain.HistoryRecord, 0, len(rows))
		for i := len(rows) - 1; i >= 0; i-- {
			rec.History = append(rec.History, rows[i])
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *inMemoryCountryRepo) SaveRecord(ctx context.Context, rec *domain.CountryRecord, appended []domain.HistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range appended {
		if r.seen[h.ID] {
			return fmt.Errorf("duplicate history id %s", h.ID)
		}
	}

	if _, ok := r.countries[rec.Code]; !ok {
		r.order = append(r.order, rec.Code)
	}
	row := rec.Clone()
	row.History = nil
	r.countries[rec.Code] = row

	for i := len(appended) - 1; i >= 0; i-- {
		r.history[rec.Code] = append(r.history[rec.Code], appended[i])
		r.seen[appended[i].ID] = true
	}
	r.saves++
	return nil
}

func (r *inMemoryCountryRepo) historyRows(code string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history[code])
}

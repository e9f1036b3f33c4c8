package memory

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/pkg/apperror"

	"github.com/rs/zerolog"
)

type entry struct {
	mu  sync.Mutex
	rec domain.CountryRecord
}

// RegistryStore is the in-process owner of every country record.
// The index lock only guards membership; each record has its own lock,
// so mutations on different countries never wait on each other.
type RegistryStore struct {
	mu     sync.RWMutex
	index  map[string]*entry
	order  []*entry
	repo   ports.CountryRepository // nil = memory only
	closed atomic.Bool
	log    zerolog.Logger
}

var _ ports.RecordStore = (*RegistryStore)(nil)

// NewRegistryStore creates an empty store. repo may be nil.
func NewRegistryStore(repo ports.CountryRepository, log zerolog.Logger) *RegistryStore {
	return &RegistryStore{
		index: make(map[string]*entry),
		repo:  repo,
		log:   log,
	}
}

// Load fills an empty store from the repository.
func (s *RegistryStore) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load countries: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		if err := rec.CheckInvariants(); err != nil {
			return fmt.Errorf("load countries: %w", err)
		}
		if _, ok := s.index[rec.Code]; ok {
			return fmt.Errorf("load countries: duplicate code %s", rec.Code)
		}
		s.add(rec)
	}
	s.log.Info().Int("count", len(records)).Msg("country records loaded")
	return nil
}

func (s *RegistryStore) add(rec domain.CountryRecord) {
	if rec.History == nil {
		rec.History = []domain.HistoryRecord{}
	}
	e := &entry{rec: rec}
	s.index[rec.Code] = e
	s.order = append(s.order, e)
}

// Insert adds a new record, persisting it first when a repository is set.
// The index stays write-locked until the write completes so a failed
// insert is never visible.
func (s *RegistryStore) Insert(ctx context.Context, rec domain.CountryRecord) error {
	if s.closed.Load() {
		return apperror.ErrStoreClosed()
	}
	if err := rec.CheckInvariants(); err != nil {
		return apperror.InternalError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[rec.Code]; ok {
		return apperror.ErrDuplicateCountry(rec.Code)
	}
	rec = rec.Clone()
	rec.Version = 1
	if s.repo != nil {
		if err := s.repo.SaveRecord(ctx, &rec, rec.History); err != nil {
			return apperror.ErrPersistence(err)
		}
	}
	s.add(rec)
	return nil
}

func (s *RegistryStore) lookup(code string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.index[code]
	return e, ok
}

// Get returns a deep copy of the record for code.
func (s *RegistryStore) Get(_ context.Context, code string) (domain.CountryRecord, error) {
	e, ok := s.lookup(code)
	if !ok {
		return domain.CountryRecord{}, apperror.ErrCountryNotFound(code)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec.Clone(), nil
}

// Update applies fn to a draft of the record and swaps the draft in only
// after fn, the invariant checks and the repository write all succeed.
// A committed draft carries the next version.
func (s *RegistryStore) Update(ctx context.Context, code string, fn func(rec *domain.CountryRecord) error) (domain.CountryRecord, error) {
	if s.closed.Load() {
		return domain.CountryRecord{}, apperror.ErrStoreClosed()
	}
	e, ok := s.lookup(code)
	if !ok {
		return domain.CountryRecord{}, apperror.ErrCountryNotFound(code)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Close may have drained this entry while we waited.
	if s.closed.Load() {
		return domain.CountryRecord{}, apperror.ErrStoreClosed()
	}

	draft := e.rec.Clone()
	if err := fn(&draft); err != nil {
		return domain.CountryRecord{}, err
	}
	if draft.Code != e.rec.Code {
		return domain.CountryRecord{}, apperror.InternalError(fmt.Errorf("country %s: code is immutable", e.rec.Code))
	}
	draft.Version = e.rec.Version + 1
	if err := draft.CheckInvariants(); err != nil {
		return domain.CountryRecord{}, apperror.InternalError(err)
	}
	appended, err := appendedHistory(e.rec.History, draft.History)
	if err != nil {
		return domain.CountryRecord{}, apperror.InternalError(fmt.Errorf("country %s: %w", code, err))
	}

	if s.repo != nil {
		if err := s.repo.SaveRecord(ctx, &draft, appended); err != nil {
			s.log.Error().Err(err).Str("code", code).Msg("persist country record failed")
			return domain.CountryRecord{}, apperror.ErrPersistence(err)
		}
	}

	e.rec = draft
	return draft.Clone(), nil
}

// appendedHistory returns the entries prepended to before. The old entries
// must survive unchanged as the tail of after.
func appendedHistory(before, after []domain.HistoryRecord) ([]domain.HistoryRecord, error) {
	added := len(after) - len(before)
	if added < 0 {
		return nil, fmt.Errorf("history shrank from %d to %d entries", len(before), len(after))
	}
	for i, h := range before {
		if after[added+i].ID != h.ID {
			return nil, fmt.Errorf("history entry %s was rewritten", h.ID)
		}
	}
	return after[:added], nil
}

// All yields a deep copy of every record in insertion order.
// Each record is copied under its own lock; the sequence is not a
// cross-record snapshot.
func (s *RegistryStore) All(_ context.Context) iter.Seq[domain.CountryRecord] {
	return func(yield func(domain.CountryRecord) bool) {
		s.mu.RLock()
		entries := make([]*entry, len(s.order))
		copy(entries, s.order)
		s.mu.RUnlock()

		for _, e := range entries {
			e.mu.Lock()
			rec := e.rec.Clone()
			e.mu.Unlock()
			if !yield(rec) {
				return
			}
		}
	}
}

// Len returns the number of records.
func (s *RegistryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Close rejects further mutations and waits for in-flight ones to finish.
func (s *RegistryStore) Close(ctx context.Context) error {
	if s.closed.Swap(true) {
		return nil
	}

	s.mu.RLock()
	entries := make([]*entry, len(s.order))
	copy(entries, s.order)
	s.mu.RUnlock()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.mu.Lock()
		e.mu.Unlock() //nolint:staticcheck
	}
	s.log.Info().Int("count", len(entries)).Msg("registry store closed")
	return nil
}

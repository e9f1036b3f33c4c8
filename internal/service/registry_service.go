package service

import (
	"cmp"
	"context"
	"iter"
	"slices"
	"time"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService on top of a RecordStore.
type RegistryServiceImpl struct {
	store    ports.RecordStore
	notifier ports.ChangeNotifier
	clock    func() time.Time
	log      zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl. notifier may be nil.
func NewRegistryService(store ports.RecordStore, notifier ports.ChangeNotifier, log zerolog.Logger) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		store:    store,
		notifier: notifier,
		clock:    time.Now,
		log:      log,
	}
}

// Add validates the input and inserts a new Active record.
func (s *RegistryServiceImpl) Add(ctx context.Context, req domain.NewCountry) (*domain.CountryRecord, error) {
	now := s.clock().UTC()
	rec, err := req.Build(now)
	if err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info().Str("code", rec.Code).Str("actor", rec.LastUpdatedBy).Msg("country added")
	notify(ctx, s.notifier, s.log, domain.RegistryEvent{
		ID:      uuid.New(),
		Code:    rec.Code,
		Version: rec.Version,
		Kind:    domain.EventCreated,
		Actor:   rec.LastUpdatedBy,
		At:      now,
	})
	return &rec, nil
}

// Get returns a copy of the record for code.
func (s *RegistryServiceImpl) Get(ctx context.Context, code string) (*domain.CountryRecord, error) {
	rec, err := s.store.Get(ctx, domain.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List yields records matching filter. Without a sort field the order is
// insertion order and the sequence stays lazy.
func (s *RegistryServiceImpl) List(ctx context.Context, filter ports.ListFilter) iter.Seq[domain.CountryRecord] {
	matches := func(yield func(domain.CountryRecord) bool) {
		for rec := range s.store.All(ctx) {
			if filter.Status != nil && rec.Status != *filter.Status {
				continue
			}
			if !rec.MatchesQuery(filter.Query) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}

	var cmpFn func(a, b domain.CountryRecord) int
	switch filter.Sort {
	case ports.SortByCode:
		cmpFn = func(a, b domain.CountryRecord) int { return cmp.Compare(a.Code, b.Code) }
	case ports.SortByName:
		cmpFn = func(a, b domain.CountryRecord) int {
			return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Code, b.Code))
		}
	default:
		return matches
	}

	return func(yield func(domain.CountryRecord) bool) {
		for _, rec := range slices.SortedStableFunc(matches, cmpFn) {
			if !yield(rec) {
				return
			}
		}
	}
}

// UpdateMetrics applies externally fed indicators. The limit workflow
// fields are not touched and the call is allowed while a request is pending.
func (s *RegistryServiceImpl) UpdateMetrics(ctx context.Context, code string, metrics domain.FeedMetrics) (*domain.CountryRecord, error) {
	code = domain.NormalizeCode(code)
	if metrics == (domain.FeedMetrics{}) {
		return nil, apperror.Validation("At least one indicator is required")
	}

	rec, err := s.store.Update(ctx, code, func(rec *domain.CountryRecord) error {
		metrics.ApplyTo(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	notify(ctx, s.notifier, s.log, domain.RegistryEvent{
		ID:      uuid.New(),
		Code:    code,
		Version: rec.Version,
		Kind:    domain.EventFeedUpdated,
		At:      s.clock().UTC(),
	})
	return &rec, nil
}

// notify fires ev after a committed change. Delivery failures are logged only.
func notify(ctx context.Context, n ports.ChangeNotifier, log zerolog.Logger, ev domain.RegistryEvent) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, ev); err != nil {
		log.Warn().Err(err).
			Str("code", ev.Code).
			Str("kind", string(ev.Kind)).
			Msg("change notification failed")
	}
}

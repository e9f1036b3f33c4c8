package service

import (
	"cmp"
	"context"
	"slices"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	store ports.RecordStore
}

// NewAuditService creates the read side of the limit audit trail.
func NewAuditService(store ports.RecordStore) ports.AuditService {
	return &auditService{store: store}
}

// History returns the resolved requests of one country, newest first.
func (s *auditService) History(ctx context.Context, code string) ([]domain.HistoryRecord, error) {
	rec, err := s.store.Get(ctx, domain.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	return rec.History, nil
}

// GlobalHistory merges every country's history, newest first.
func (s *auditService) GlobalHistory(ctx context.Context, filter ports.HistoryFilter) []domain.AuditEntry {
	code := domain.NormalizeCode(filter.Code)
	entries := make([]domain.AuditEntry, 0)

	for rec := range s.store.All(ctx) {
		if code != "" && rec.Code != code {
			continue
		}
		for _, h := range rec.History {
			if filter.Status != nil && h.Status != *filter.Status {
				continue
			}
			if filter.Since != nil && h.ChangedAt.Before(*filter.Since) {
				continue
			}
			entries = append(entries, domain.AuditEntry{
				CountryCode:   rec.Code,
				CountryName:   rec.Name,
				HistoryRecord: h,
			})
		}
	}

	slices.SortStableFunc(entries, func(a, b domain.AuditEntry) int {
		return cmp.Or(
			b.ChangedAt.Compare(a.ChangedAt),
			cmp.Compare(a.CountryCode, b.CountryCode),
		)
	})
	if filter.Limit > 0 && len(entries) > filter.Limit {
		entries = entries[:filter.Limit]
	}
	return entries
}

// logHistory writes a committed history entry as a structured audit line.
func logHistory(log zerolog.Logger, code string, h domain.HistoryRecord) {
	ev := log.Info().
		Str("audit", "limit_history").
		Str("code", code).
		Str("history_id", h.ID.String()).
		Str("status", string(h.Status)).
		Str("changed_by", h.ChangedBy).
		Str("old_limit", h.OldLimit).
		Str("new_limit", h.NewLimit).
		Str("old_valid_until", h.OldValidUntil).
		Str("new_valid_until", h.NewValidUntil)
	if h.ApprovedBy != nil {
		ev = ev.Str("approved_by", *h.ApprovedBy)
	}
	ev.Msg("audit")
}

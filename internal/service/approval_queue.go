package service

import (
	"cmp"
	"context"
	"slices"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
)

// ApprovalQueueImpl is a read-only projection of the records awaiting a checker.
// It holds no state of its own, so it can never drift from the registry.
type ApprovalQueueImpl struct {
	store ports.RecordStore
}

// NewApprovalQueue creates a queue view over store.
func NewApprovalQueue(store ports.RecordStore) *ApprovalQueueImpl {
	return &ApprovalQueueImpl{store: store}
}

// Snapshot returns the pending records, oldest request first.
func (q *ApprovalQueueImpl) Snapshot(ctx context.Context) ports.QueueSnapshot {
	items := make([]domain.CountryRecord, 0)
	for rec := range q.store.All(ctx) {
		if rec.Status == domain.RecordStatusPendingMaker {
			items = append(items, rec)
		}
	}
	slices.SortStableFunc(items, func(a, b domain.CountryRecord) int {
		return cmp.Or(
			a.Pending.RequestedAt.Compare(b.Pending.RequestedAt),
			cmp.Compare(a.Code, b.Code),
		)
	})
	return ports.QueueSnapshot{Items: items, Count: len(items)}
}

// Count returns the number of pending records.
func (q *ApprovalQueueImpl) Count(ctx context.Context) int {
	n := 0
	for rec := range q.store.All(ctx) {
		if rec.Status == domain.RecordStatusPendingMaker {
			n++
		}
	}
	return n
}

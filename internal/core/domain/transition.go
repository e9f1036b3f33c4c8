package domain

import (
	"time"

	"country-limits/pkg/apperror"

	"github.com/google/uuid"
)

// The methods below are the only code allowed to touch the live values,
// status, pending request and history of a record. Each one checks its
// precondition before mutating anything, so a failed call leaves r as it was.

// OpenRequest attaches a new pending request, snapshotting the current values as old*.
func (r *CountryRecord) OpenRequest(id uuid.UUID, p Proposal, requestedBy string, now time.Time) error {
	if r.Pending != nil {
		return apperror.ErrAlreadyPending(r.Code)
	}
	r.Pending = &PendingRequest{
		ID:            id,
		OldLimit:      r.CurrentLimit,
		NewLimit:      p.Limit,
		OldValidUntil: r.CurrentValidUntil,
		NewValidUntil: p.ValidUntil,
		OldProtocol:   r.CurrentProtocol,
		NewProtocol:   p.Protocol,
		RequestedBy:   requestedBy,
		RequestedAt:   now,
	}
	r.Status = RecordStatusPendingMaker
	return nil
}

// EditRequest replaces the proposed values of the open request in place.
// The old* snapshot and the request id are kept.
func (r *CountryRecord) EditRequest(p Proposal, requestedBy string, now time.Time) error {
	if r.Pending == nil {
		return apperror.ErrNoPendingRequest(r.Code)
	}
	r.Pending.NewLimit = p.Limit
	r.Pending.NewValidUntil = p.ValidUntil
	r.Pending.NewProtocol = p.Protocol
	r.Pending.RequestedBy = requestedBy
	r.Pending.RequestedAt = now
	return nil
}

// Withdraw discards the open request on behalf of its maker.
func (r *CountryRecord) Withdraw(id uuid.UUID, by string, now time.Time) (HistoryRecord, error) {
	if r.Pending == nil {
		return HistoryRecord{}, apperror.ErrNoPendingRequest(r.Code)
	}
	return r.resolve(id, HistoryStatusDeletedByMaker, by, nil, now), nil
}

// Approve applies the proposed values to the live record.
func (r *CountryRecord) Approve(id uuid.UUID, approver string, now time.Time) (HistoryRecord, error) {
	if r.Pending == nil {
		return HistoryRecord{}, apperror.ErrNoPendingRequest(r.Code)
	}
	p := r.Pending
	r.CurrentLimit = p.NewLimit
	r.CurrentValidUntil = p.NewValidUntil
	r.CurrentProtocol = p.NewProtocol
	r.LastUpdated = now
	r.LastUpdatedBy = approver
	return r.resolve(id, HistoryStatusApproved, p.RequestedBy, &approver, now), nil
}

// Reject discards the proposed values; the live record is unchanged.
func (r *CountryRecord) Reject(id uuid.UUID, approver string, now time.Time) (HistoryRecord, error) {
	if r.Pending == nil {
		return HistoryRecord{}, apperror.ErrNoPendingRequest(r.Code)
	}
	return r.resolve(id, HistoryStatusRejected, r.Pending.RequestedBy, &approver, now), nil
}

// resolve clears the pending request and prepends exactly one history entry.
func (r *CountryRecord) resolve(id uuid.UUID, status HistoryStatus, changedBy string, approvedBy *string, now time.Time) HistoryRecord {
	p := r.Pending
	h := HistoryRecord{
		ID:            id,
		ChangedAt:     now,
		ChangedBy:     changedBy,
		OldLimit:      p.OldLimit,
		NewLimit:      p.NewLimit,
		OldValidUntil: p.OldValidUntil,
		NewValidUntil: p.NewValidUntil,
		OldProtocol:   p.OldProtocol,
		NewProtocol:   p.NewProtocol,
		Status:        status,
	}
	if approvedBy != nil {
		v := *approvedBy
		h.ApprovedBy = &v
	}

	history := make([]HistoryRecord, 0, len(r.History)+1)
	history = append(history, h)
	r.History = append(history, r.History...)
	r.Pending = nil
	r.Status = RecordStatusActive
	return h
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the workflow state of a country record.
type RecordStatus string

const (
	RecordStatusActive       RecordStatus = "Active"
	RecordStatusPendingMaker RecordStatus = "PendingMaker"
)

// HistoryStatus tags how a request was resolved.
type HistoryStatus string

const (
	HistoryStatusApproved       HistoryStatus = "Approved"
	HistoryStatusRejected       HistoryStatus = "Rejected"
	HistoryStatusDeletedByMaker HistoryStatus = "DeletedByMaker"
)

// CountryRecord is the live limit record for one country.
// Code is the identity; the record is never deleted.
type CountryRecord struct {
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Balance           string          `json:"balance"`
	Landing           string          `json:"landing"`
	CurrentLimit      string          `json:"current_limit"`
	CurrentValidUntil string          `json:"current_valid_until"`
	CurrentProtocol   string          `json:"current_protocol"`
	Overlimit         string          `json:"overlimit"`
	LimitExceeded     string          `json:"limit_exceeded"`
	LastUpdated       time.Time       `json:"last_updated"`
	LastUpdatedBy     string          `json:"last_updated_by"`
	Status            RecordStatus    `json:"status"`
	Pending           *PendingRequest `json:"pending,omitempty"`
	History           []HistoryRecord `json:"history"` // newest first
	// Version counts committed changes; the store bumps it on every update.
	Version int64 `json:"version"`
}

// PendingRequest is the single in-flight change proposed by a maker.
// Old* values are captured when the request is first opened.
type PendingRequest struct {
	ID            uuid.UUID `json:"id"`
	OldLimit      string    `json:"old_limit"`
	NewLimit      string    `json:"new_limit"`
	OldValidUntil string    `json:"old_valid_until"`
	NewValidUntil string    `json:"new_valid_until"`
	OldProtocol   string    `json:"old_protocol"`
	NewProtocol   string    `json:"new_protocol"`
	RequestedBy   string    `json:"requested_by"`
	RequestedAt   time.Time `json:"requested_at"`
}

// HistoryRecord is an immutable audit entry written by a terminal transition.
type HistoryRecord struct {
	ID            uuid.UUID     `json:"id"`
	ChangedAt     time.Time     `json:"changed_at"`
	ChangedBy     string        `json:"changed_by"`
	ApprovedBy    *string       `json:"approved_by"` // nil for withdrawals
	OldLimit      string        `json:"old_limit"`
	NewLimit      string        `json:"new_limit"`
	OldValidUntil string        `json:"old_valid_until"`
	NewValidUntil string        `json:"new_valid_until"`
	OldProtocol   string        `json:"old_protocol"`
	NewProtocol   string        `json:"new_protocol"`
	Status        HistoryStatus `json:"status"`
}

// IsPending reports whether the record carries an unresolved request.
func (r *CountryRecord) IsPending() bool {
	return r.Pending != nil
}

// Clone returns a deep copy so callers can never alias store-owned state.
func (r CountryRecord) Clone() CountryRecord {
	out := r
	if r.Pending != nil {
		p := *r.Pending
		out.Pending = &p
	}
	if r.History != nil {
		out.History = make([]HistoryRecord, len(r.History))
		for i, h := range r.History {
			out.History[i] = h.clone()
		}
	}
	return out
}

func (h HistoryRecord) clone() HistoryRecord {
	if h.ApprovedBy != nil {
		v := *h.ApprovedBy
		h.ApprovedBy = &v
	}
	return h
}

// CheckInvariants verifies status/pending consistency.
func (r *CountryRecord) CheckInvariants() error {
	switch r.Status {
	case RecordStatusActive:
		if r.Pending != nil {
			return fmt.Errorf("country %s: status Active with a pending request", r.Code)
		}
	case RecordStatusPendingMaker:
		if r.Pending == nil {
			return fmt.Errorf("country %s: status PendingMaker without a pending request", r.Code)
		}
	default:
		return fmt.Errorf("country %s: unknown status %q", r.Code, r.Status)
	}
	return nil
}

// MatchesQuery reports whether code or name contains q, case-insensitively.
func (r *CountryRecord) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Code), q) ||
		strings.Contains(strings.ToLower(r.Name), q)
}

// NormalizeCode upper-cases and trims a country code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FeedMetrics carries externally fed indicators. Empty fields are left untouched.
type FeedMetrics struct {
	Balance       string `json:"balance,omitempty"`
	Landing       string `json:"landing,omitempty"`
	Overlimit     string `json:"overlimit,omitempty"`
	LimitExceeded string `json:"limit_exceeded,omitempty"`
}

// ApplyTo copies the non-empty feed fields onto r.
func (m FeedMetrics) ApplyTo(r *CountryRecord) {
	if m.Balance != "" {
		r.Balance = m.Balance
	}
	if m.Landing != "" {
		r.Landing = m.Landing
	}
	if m.Overlimit != "" {
		r.Overlimit = m.Overlimit
	}
	if m.LimitExceeded != "" {
		r.LimitExceeded = m.LimitExceeded
	}
}

// AuditEntry is a history record annotated with its owning country,
// used by the global audit view.
type AuditEntry struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	HistoryRecord
}

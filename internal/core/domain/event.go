package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names the registry change that fired an event.
type EventKind string

const (
	EventCreated     EventKind = "created"
	EventSubmitted   EventKind = "submitted"
	EventEdited      EventKind = "edited"
	EventWithdrawn   EventKind = "withdrawn"
	EventApproved    EventKind = "approved"
	EventRejected    EventKind = "rejected"
	EventFeedUpdated EventKind = "feed_updated"
)

// IsTerminal reports whether the event resolved a pending request.
func (k EventKind) IsTerminal() bool {
	return k == EventWithdrawn || k == EventApproved || k == EventRejected
}

// RegistryEvent is fired after every successful registry change.
// History is set for terminal transitions only. Events are delivered after
// the record lock is released, so two changes to one country may arrive out
// of order; Version is the record version the change committed and orders them.
type RegistryEvent struct {
	ID      uuid.UUID      `json:"id"`
	Code    string         `json:"code"`
	Version int64          `json:"version"`
	Kind    EventKind      `json:"kind"`
	Actor   string         `json:"actor"`
	At      time.Time      `json:"at"`
	History *HistoryRecord `json:"history,omitempty"`
}

// Action is a workflow operation subject to authorization.
type Action string

const (
	ActionSubmit   Action = "submit"
	ActionWithdraw Action = "withdraw"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
)

// Resolution describes who wants to do what to which request.
// Pending is the request as seen under the record lock (nil when none is open).
type Resolution struct {
	Action  Action
	Actor   string
	Code    string
	Pending *PendingRequest
}

// Role is the caller's role as asserted by the identity provider.
type Role string

const (
	RoleMaker   Role = "maker"
	RoleChecker Role = "checker"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleMaker, RoleChecker, RoleAdmin:
		return true
	}
	return false
}

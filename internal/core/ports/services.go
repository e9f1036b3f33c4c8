package ports

import (
	"context"
	"iter"
	"time"

	"country-limits/internal/core/domain"
)

// --- Collaborator Ports ---

// ChangeNotifier receives a RegistryEvent after every successful change.
type ChangeNotifier interface {
	Notify(ctx context.Context, event domain.RegistryEvent) error
}

// Authorizer decides whether an actor may perform a workflow action.
// It runs under the record lock, so Resolution.Pending is the committed state.
type Authorizer interface {
	CanResolve(ctx context.Context, r domain.Resolution) error
}

// WorkflowMetrics records workflow outcomes.
type WorkflowMetrics interface {
	ObserveTransition(kind domain.EventKind)
	ObserveFailure(action domain.Action, code string)
}

// TokenService handles JWT token operations for the identity provider boundary.
type TokenService interface {
	Generate(actor string, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Actor string
	Role  domain.Role
}

// --- Service Ports (Business Logic) ---

// SortField selects a caller-requested listing order.
type SortField string

const (
	SortInsertion SortField = ""
	SortByCode    SortField = "code"
	SortByName    SortField = "name"
)

// ListFilter narrows a registry listing.
type ListFilter struct {
	Query  string               // case-insensitive code/name substring
	Status *domain.RecordStatus // nil = any
	Sort   SortField
}

// RegistryService is the LimitRegistry: create, look up and list records.
type RegistryService interface {
	Add(ctx context.Context, req domain.NewCountry) (*domain.CountryRecord, error)
	Get(ctx context.Context, code string) (*domain.CountryRecord, error)
	List(ctx context.Context, filter ListFilter) iter.Seq[domain.CountryRecord]
	UpdateMetrics(ctx context.Context, code string, metrics domain.FeedMetrics) (*domain.CountryRecord, error)
}

// WorkflowService is the maker-checker state machine.
type WorkflowService interface {
	SubmitRequest(ctx context.Context, code string, proposal domain.Proposal, requestedBy string, now time.Time) (*domain.CountryRecord, error)
	WithdrawRequest(ctx context.Context, code string, by string, now time.Time) (*domain.CountryRecord, error)
	Approve(ctx context.Context, code string, approver string, now time.Time) (*domain.CountryRecord, error)
	Reject(ctx context.Context, code string, approver string, now time.Time) (*domain.CountryRecord, error)
}

// QueueSnapshot is the pending-work view handed to checkers.
type QueueSnapshot struct {
	Items []domain.CountryRecord
	Count int
}

// ApprovalQueue is a read-only projection of pending records.
type ApprovalQueue interface {
	Snapshot(ctx context.Context) QueueSnapshot
	Count(ctx context.Context) int
}

// HistoryFilter narrows the global audit view.
type HistoryFilter struct {
	Code   string                // empty = all countries
	Status *domain.HistoryStatus // nil = any
	Since  *time.Time
	Limit  int // 0 = no limit
}

// AuditService reads the append-only history of resolved requests.
type AuditService interface {
	History(ctx context.Context, code string) ([]domain.HistoryRecord, error)
	GlobalHistory(ctx context.Context, filter HistoryFilter) []domain.AuditEntry
}

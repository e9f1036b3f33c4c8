package service

import (
	"context"
	"time"

	"country-limits/config"
	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WorkflowServiceImpl implements ports.WorkflowService.
// Every transition runs inside RecordStore.Update, so the authorization
// check and the state change see the same committed record.
type WorkflowServiceImpl struct {
	store      ports.RecordStore
	authorizer ports.Authorizer
	notifier   ports.ChangeNotifier
	metrics    ports.WorkflowMetrics
	editPolicy string
	newID      func() uuid.UUID
	log        zerolog.Logger
}

// NewWorkflowService creates a new WorkflowServiceImpl.
// authorizer defaults to AllowAll; notifier and metrics may be nil.
func NewWorkflowService(
	store ports.RecordStore,
	authorizer ports.Authorizer,
	notifier ports.ChangeNotifier,
	metrics ports.WorkflowMetrics,
	editPolicy string,
	log zerolog.Logger,
) *WorkflowServiceImpl {
	if authorizer == nil {
		authorizer = AllowAll{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if editPolicy == "" {
		editPolicy = config.EditPolicyInPlace
	}
	return &WorkflowServiceImpl{
		store:      store,
		authorizer: authorizer,
		notifier:   notifier,
		metrics:    metrics,
		editPolicy: editPolicy,
		newID:      uuid.New,
		log:        log,
	}
}

// SubmitRequest opens a pending request, or edits the open one according
// to the configured edit policy.
func (s *WorkflowServiceImpl) SubmitRequest(ctx context.Context, code string, proposal domain.Proposal, requestedBy string, now time.Time) (*domain.CountryRecord, error) {
	code = domain.NormalizeCode(code)

	p, err := proposal.Normalize()
	if err != nil {
		// Unknown codes win over bad input.
		if _, getErr := s.store.Get(ctx, code); getErr != nil {
			err = getErr
		}
		return nil, s.fail(domain.ActionSubmit, code, err)
	}

	kind := domain.EventSubmitted
	rec, err := s.store.Update(ctx, code, func(rec *domain.CountryRecord) error {
		if err := s.authorizer.CanResolve(ctx, domain.Resolution{
			Action:  domain.ActionSubmit,
			Actor:   requestedBy,
			Code:    code,
			Pending: rec.Pending,
		}); err != nil {
			return err
		}
		if !rec.IsPending() {
			return rec.OpenRequest(s.newID(), p, requestedBy, now)
		}
		if s.editPolicy == config.EditPolicyStrict {
			return apperror.ErrAlreadyPending(code)
		}
		kind = domain.EventEdited
		return rec.EditRequest(p, requestedBy, now)
	})
	if err != nil {
		return nil, s.fail(domain.ActionSubmit, code, err)
	}

	s.log.Info().
		Str("code", code).
		Str("actor", requestedBy).
		Str("event", string(kind)).
		Str("new_limit", p.Limit).
		Str("new_valid_until", p.ValidUntil).
		Msg("limit request submitted")
	s.succeed(ctx, domain.RegistryEvent{Code: code, Version: rec.Version, Kind: kind, Actor: requestedBy, At: now})
	return &rec, nil
}

// WithdrawRequest discards the open request on behalf of its maker.
func (s *WorkflowServiceImpl) WithdrawRequest(ctx context.Context, code string, by string, now time.Time) (*domain.CountryRecord, error) {
	return s.resolve(ctx, domain.ActionWithdraw, code, by, now, func(rec *domain.CountryRecord) (domain.HistoryRecord, error) {
		return rec.Withdraw(s.newID(), by, now)
	})
}

// Approve applies the proposed values and records who approved them.
func (s *WorkflowServiceImpl) Approve(ctx context.Context, code string, approver string, now time.Time) (*domain.CountryRecord, error) {
	return s.resolve(ctx, domain.ActionApprove, code, approver, now, func(rec *domain.CountryRecord) (domain.HistoryRecord, error) {
		return rec.Approve(s.newID(), approver, now)
	})
}

// Reject discards the proposed values and records who rejected them.
func (s *WorkflowServiceImpl) Reject(ctx context.Context, code string, approver string, now time.Time) (*domain.CountryRecord, error) {
	return s.resolve(ctx, domain.ActionReject, code, approver, now, func(rec *domain.CountryRecord) (domain.HistoryRecord, error) {
		return rec.Reject(s.newID(), approver, now)
	})
}

var terminalEvents = map[domain.Action]domain.EventKind{
	domain.ActionWithdraw: domain.EventWithdrawn,
	domain.ActionApprove:  domain.EventApproved,
	domain.ActionReject:   domain.EventRejected,
}

func (s *WorkflowServiceImpl) resolve(
	ctx context.Context,
	action domain.Action,
	code string,
	actor string,
	now time.Time,
	transition func(rec *domain.CountryRecord) (domain.HistoryRecord, error),
) (*domain.CountryRecord, error) {
	code = domain.NormalizeCode(code)

	var entry domain.HistoryRecord
	rec, err := s.store.Update(ctx, code, func(rec *domain.CountryRecord) error {
		if !rec.IsPending() {
			return apperror.ErrNoPendingRequest(code)
		}
		if err := s.authorizer.CanResolve(ctx, domain.Resolution{
			Action:  action,
			Actor:   actor,
			Code:    code,
			Pending: rec.Pending,
		}); err != nil {
			return err
		}
		h, err := transition(rec)
		if err != nil {
			return err
		}
		entry = h
		return nil
	})
	if err != nil {
		return nil, s.fail(action, code, err)
	}

	logHistory(s.log, code, entry)
	s.succeed(ctx, domain.RegistryEvent{
		Code:    code,
		Version: rec.Version,
		Kind:    terminalEvents[action],
		Actor:   actor,
		At:      now,
		History: &entry,
	})
	return &rec, nil
}

func (s *WorkflowServiceImpl) succeed(ctx context.Context, ev domain.RegistryEvent) {
	ev.ID = s.newID()
	s.metrics.ObserveTransition(ev.Kind)
	notify(ctx, s.notifier, s.log, ev)
}

func (s *WorkflowServiceImpl) fail(action domain.Action, code string, err error) error {
	errCode := apperror.CodeOf(err)
	if errCode == "" {
		errCode = apperror.CodeInternal
	}
	s.metrics.ObserveFailure(action, errCode)
	s.log.Debug().Err(err).
		Str("code", code).
		Str("action", string(action)).
		Msg("workflow transition refused")
	return err
}

type nopMetrics struct{}

func (nopMetrics) ObserveTransition(domain.EventKind) {}
func (nopMetrics) ObserveFailure(domain.Action, string) {}

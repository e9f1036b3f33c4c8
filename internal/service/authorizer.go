package service

import (
	"context"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/pkg/apperror"
)

// AllowAll authorizes every action.
type AllowAll struct{}

var _ ports.Authorizer = AllowAll{}

func (AllowAll) CanResolve(context.Context, domain.Resolution) error { return nil }

// MakerChecker enforces separation of duties: the maker of a request may not
// approve or reject it, and only the maker may withdraw it.
type MakerChecker struct{}

var _ ports.Authorizer = MakerChecker{}

// CanResolve checks r against the pending request. A missing request is left
// to the workflow, which reports it as LIM_004.
func (MakerChecker) CanResolve(_ context.Context, r domain.Resolution) error {
	if r.Pending == nil {
		return nil
	}
	switch r.Action {
	case domain.ActionApprove, domain.ActionReject:
		if r.Actor == r.Pending.RequestedBy {
			return apperror.ErrForbidden("The maker of a request cannot " + string(r.Action) + " it")
		}
	case domain.ActionWithdraw:
		if r.Actor != r.Pending.RequestedBy {
			return apperror.ErrForbidden("Only the maker can withdraw a request")
		}
	}
	return nil
}

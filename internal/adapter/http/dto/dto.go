package dto

import (
	"time"

	"country-limits/internal/core/domain"
)

// CreateCountryRequest is the request body for adding a country to the registry.
type CreateCountryRequest struct {
	Code          string `json:"code" binding:"required,country_code"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Balance       string `json:"balance,omitempty" binding:"omitempty,limit_amount"`
	Landing       string `json:"landing,omitempty" binding:"omitempty,limit_amount"`
	Limit         string `json:"limit,omitempty" binding:"omitempty,limit_amount"`
	ValidUntil    string `json:"valid_until,omitempty" binding:"omitempty,valid_until"`
	Protocol      string `json:"protocol,omitempty" binding:"max=64"`
	Overlimit     string `json:"overlimit,omitempty" binding:"omitempty,limit_amount"`
	LimitExceeded string `json:"limit_exceeded,omitempty" binding:"omitempty,oneof=Yes No"`
}

// ToDomain maps the body onto the registry input.
func (r CreateCountryRequest) ToDomain(createdBy string) domain.NewCountry {
	return domain.NewCountry{
		Code:          r.Code,
		Name:          r.Name,
		Balance:       r.Balance,
		Landing:       r.Landing,
		Limit:         r.Limit,
		ValidUntil:    r.ValidUntil,
		Protocol:      r.Protocol,
		Overlimit:     r.Overlimit,
		LimitExceeded: r.LimitExceeded,
		CreatedBy:     createdBy,
	}
}

// ProposalRequest is the request body for submitting or editing a limit change.
type ProposalRequest struct {
	Limit      string `json:"limit" binding:"required,limit_amount"`
	ValidUntil string `json:"valid_until" binding:"required,valid_until"`
	Protocol   string `json:"protocol" binding:"max=64"`
}

// ToDomain maps the body onto a workflow proposal.
func (r ProposalRequest) ToDomain() domain.Proposal {
	return domain.Proposal{Limit: r.Limit, ValidUntil: r.ValidUntil, Protocol: r.Protocol}
}

// FeedMetricsRequest is the request body for updating fed indicators.
type FeedMetricsRequest struct {
	Balance       string `json:"balance,omitempty" binding:"omitempty,limit_amount"`
	Landing       string `json:"landing,omitempty" binding:"omitempty,limit_amount"`
	Overlimit     string `json:"overlimit,omitempty" binding:"omitempty,limit_amount"`
	LimitExceeded string `json:"limit_exceeded,omitempty" binding:"omitempty,oneof=Yes No"`
}

// ToDomain maps the body onto feed metrics.
func (r FeedMetricsRequest) ToDomain() domain.FeedMetrics {
	return domain.FeedMetrics{
		Balance:       r.Balance,
		Landing:       r.Landing,
		Overlimit:     r.Overlimit,
		LimitExceeded: r.LimitExceeded,
	}
}

// ListCountriesQuery binds the registry listing query string.
type ListCountriesQuery struct {
	Query  string `form:"q" binding:"max=100"`
	Status string `form:"status" binding:"omitempty,oneof=Active PendingMaker"`
	Sort   string `form:"sort" binding:"omitempty,oneof=code name"`
}

// HistoryQuery binds the global audit query string.
type HistoryQuery struct {
	Code   string `form:"code" binding:"omitempty,country_code"`
	Status string `form:"status" binding:"omitempty,oneof=Approved Rejected DeletedByMaker"`
	Since  string `form:"since" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// SinceTime parses Since. The binding tag has already checked the format.
func (q HistoryQuery) SinceTime() *time.Time {
	if q.Since == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, q.Since)
	if err != nil {
		return nil
	}
	return &t
}

// QueueResponse is the response for the approval queue.
type QueueResponse struct {
	Items []domain.CountryRecord `json:"items"`
	Count int                    `json:"count"`
}

package service

import (
	"context"
	"fmt"
	"time"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/pkg/apperror"
)

const (
	demoMaker   = "maker_user"
	demoChecker = "approval_user"
)

var demoCountries = []struct{ code, name string }{
	{"GB", "United Kingdom"},
	{"US", "United States"},
	{"DE", "Germany"},
	{"FR", "France"},
	{"TR", "Turkey"},
}

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

// SeedDemo loads the demo countries and replays a short request history for
// each of them through the workflow, so every history entry is a real
// resolution. Every other country is left with an open request.
// Countries that already exist are skipped.
func SeedDemo(ctx context.Context, registry ports.RegistryService, workflow ports.WorkflowService) (int, error) {
	seeded := 0
	for i, c := range demoCountries {
		_, err := registry.Add(ctx, domain.NewCountry{
			Code:       c.code,
			Name:       c.name,
			Balance:    fmt.Sprintf("%d000", 150+i*70),
			Landing:    fmt.Sprintf("%d000", 10+i*9),
			Limit:      fmt.Sprintf("%d", 200000+i*10000),
			ValidUntil: "2023-12-31",
			Protocol:   fmt.Sprintf("BD-%d/2023", 100+i),
			CreatedBy:  "risk_admin",
		})
		if apperror.HasCode(err, apperror.CodeDuplicateCountry) {
			continue
		}
		if err != nil {
			return seeded, fmt.Errorf("seed %s: %w", c.code, err)
		}

		if err := replayDemoHistory(ctx, workflow, c.code, i); err != nil {
			return seeded, fmt.Errorf("seed %s: %w", c.code, err)
		}
		seeded++
	}
	return seeded, nil
}

func replayDemoHistory(ctx context.Context, wf ports.WorkflowService, code string, i int) error {
	steps := []struct {
		at       time.Time
		proposal domain.Proposal
		resolve  func(context.Context, string, string, time.Time) (*domain.CountryRecord, error)
		by       string
	}{
		{
			at:       day("2024-10-01"),
			proposal: domain.Proposal{Limit: fmt.Sprintf("%d", 140000+i*3000), ValidUntil: "2024-06-01", Protocol: fmt.Sprintf("BD-%d/2024", 100+i)},
			resolve:  wf.WithdrawRequest,
			by:       demoMaker,
		},
		{
			at:       day("2024-11-10"),
			proposal: domain.Proposal{Limit: fmt.Sprintf("%d", 200000+i*8000), ValidUntil: "2024-12-31", Protocol: fmt.Sprintf("BD-%d/2024", 100+i)},
			resolve:  wf.Reject,
			by:       demoChecker,
		},
		{
			at:       day("2025-01-15"),
			proposal: domain.Proposal{Limit: fmt.Sprintf("%d", 250000+i*10000), ValidUntil: "2025-12-31", Protocol: fmt.Sprintf("BD-%d/2024", 100+i)},
			resolve:  wf.Approve,
			by:       demoChecker,
		},
	}

	for _, st := range steps {
		if _, err := wf.SubmitRequest(ctx, code, st.proposal, demoMaker, st.at); err != nil {
			return err
		}
		if _, err := st.resolve(ctx, code, st.by, st.at.Add(4*time.Hour)); err != nil {
			return err
		}
	}

	if i%2 == 0 {
		_, err := wf.SubmitRequest(ctx, code, domain.Proposal{
			Limit:      fmt.Sprintf("%d", 300000+i*12000),
			ValidUntil: "2026-01-01",
			Protocol:   fmt.Sprintf("BD-%d/2025", 200+i),
		}, demoMaker, time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))
		return err
	}
	return nil
}

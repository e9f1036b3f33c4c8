package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/pkg/apperror"
	"country-limits/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	f.add(t, "GB", "United Kingdom", "1", "", "")
	f.add(t, "TR", "Turkey", "1", "", "")

	_, err := f.workflow.SubmitRequest(ctx, "GB", prop("2", "Unlimited", ""), "m", t1)
	require.NoError(t, err)
	_, err = f.workflow.Approve(ctx, "GB", "c", t1)
	require.NoError(t, err)

	_, err = f.workflow.SubmitRequest(ctx, "TR", prop("5", "Unlimited", ""), "m", t2)
	require.NoError(t, err)
	_, err = f.workflow.Reject(ctx, "TR", "c", t2)
	require.NoError(t, err)

	_, err = f.workflow.SubmitRequest(ctx, "GB", prop("3", "Unlimited", ""), "m", t3)
	require.NoError(t, err)
	_, err = f.workflow.WithdrawRequest(ctx, "GB", "m", t3)
	require.NoError(t, err)

	_, err = f.workflow.SubmitRequest(ctx, "TR", prop("6", "Unlimited", ""), "m", t3)
	require.NoError(t, err)
	_, err = f.workflow.Approve(ctx, "TR", "c", t3)
	require.NoError(t, err)
}

func TestAuditService_History(t *testing.T) {
	f := newFixture(t, "")
	seedHistory(t, f)
	svc := NewAuditService(f.store)

	h, err := svc.History(context.Background(), "gb")
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, domain.HistoryStatusDeletedByMaker, h[0].Status)
	assert.Equal(t, domain.HistoryStatusApproved, h[1].Status)

	_, err = svc.History(context.Background(), "XX")
	assert.True(t, apperror.HasCode(err, apperror.CodeCountryNotFound))
}

func TestAuditService_GlobalHistory(t *testing.T) {
	f := newFixture(t, "")
	seedHistory(t, f)
	svc := NewAuditService(f.store)
	ctx := context.Background()

	all := svc.GlobalHistory(ctx, ports.HistoryFilter{})
	require.Len(t, all, 4)
	// Newest first; equal timestamps ordered by code.
	assert.Equal(t, "GB", all[0].CountryCode)
	assert.Equal(t, "TR", all[1].CountryCode)
	assert.Equal(t, t3, all[0].ChangedAt)
	assert.Equal(t, t3, all[1].ChangedAt)
	assert.Equal(t, "Turkey", all[2].CountryName)
	assert.Equal(t, t2, all[2].ChangedAt)
	assert.Equal(t, t1, all[3].ChangedAt)

	approved := domain.HistoryStatusApproved
	got := svc.GlobalHistory(ctx, ports.HistoryFilter{Status: &approved})
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, domain.HistoryStatusApproved, e.Status)
	}

	got = svc.GlobalHistory(ctx, ports.HistoryFilter{Code: "tr"})
	assert.Len(t, got, 2)

	since := t2
	got = svc.GlobalHistory(ctx, ports.HistoryFilter{Since: &since})
	assert.Len(t, got, 3)

	got = svc.GlobalHistory(ctx, ports.HistoryFilter{Limit: 1})
	require.Len(t, got, 1)
	assert.Equal(t, "GB", got[0].CountryCode)

	empty := NewAuditService(newFixture(t, "").store).GlobalHistory(ctx, ports.HistoryFilter{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLogHistory(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("info", &buf)
	approver := "c"

	logHistory(log, "TR", domain.HistoryRecord{
		ChangedBy:  "m",
		ApprovedBy: &approver,
		OldLimit:   "1",
		NewLimit:   "2",
		Status:     domain.HistoryStatusApproved,
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "limit_history", line["audit"])
	assert.Equal(t, "TR", line["code"])
	assert.Equal(t, "Approved", line["status"])
	assert.Equal(t, "c", line["approved_by"])
	assert.Equal(t, "2", line["new_limit"])
}

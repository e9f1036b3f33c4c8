package service

import (
	"context"
	"slices"
	"testing"
	"time"

	"country-limits/internal/adapter/storage/memory"
	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/internal/core/ports/mocks"
	"country-limits/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func codesOf(seq func(func(domain.CountryRecord) bool)) []string {
	var out []string
	for rec := range seq {
		out = append(out, rec.Code)
	}
	return out
}

func TestRegistry_AddDefaults(t *testing.T) {
	f := newFixture(t, "")
	rec, err := f.registry.Add(context.Background(), domain.NewCountry{Code: " us ", Name: "United States", CreatedBy: "admin"})
	require.NoError(t, err)

	assert.Equal(t, "US", rec.Code)
	assert.Equal(t, "0", rec.CurrentLimit)
	assert.Equal(t, domain.ValidityUnlimited, rec.CurrentValidUntil)
	assert.Equal(t, "No", rec.LimitExceeded)
	assert.Equal(t, domain.RecordStatusActive, rec.Status)
	assert.Nil(t, rec.Pending)
	assert.NotNil(t, rec.History)
	assert.Empty(t, rec.History)
}

func TestRegistry_DuplicateUS(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	f.add(t, "US", "United States", "500", "2026-01-01", "P-1")

	_, err := f.registry.Add(ctx, domain.NewCountry{Code: "US", Name: "Another", Limit: "1"})
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicateCountry))

	rec, err := f.registry.Get(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, "United States", rec.Name)
	assert.Equal(t, "500", rec.CurrentLimit)
	assert.Equal(t, 1, f.store.Len())
}

func TestRegistry_AddValidation(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.NewCountry
	}{
		{"missing code", domain.NewCountry{Name: "X"}},
		{"missing name", domain.NewCountry{Code: "XX"}},
		{"bad limit", domain.NewCountry{Code: "XX", Name: "X", Limit: "abc"}},
		{"bad validity", domain.NewCountry{Code: "XX", Name: "X", ValidUntil: "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.registry.Add(ctx, tt.req)
			assert.True(t, apperror.HasCode(err, apperror.CodeInvalidField))
		})
	}
	assert.Equal(t, 0, f.store.Len())
}

func TestRegistry_GetNotFound(t *testing.T) {
	f := newFixture(t, "")
	_, err := f.registry.Get(context.Background(), "ZZ")
	assert.True(t, apperror.HasCode(err, apperror.CodeCountryNotFound))
}

func TestRegistry_List(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	f.add(t, "TR", "Turkey", "1", "", "")
	f.add(t, "GB", "United Kingdom", "1", "", "")
	f.add(t, "US", "United States", "1", "", "")
	f.add(t, "DE", "Germany", "1", "", "")
	_, err := f.workflow.SubmitRequest(ctx, "US", prop("2", "Unlimited", ""), "m", t1)
	require.NoError(t, err)

	pending := domain.RecordStatusPendingMaker

	tests := []struct {
		name   string
		filter ports.ListFilter
		want   []string
	}{
		{"insertion order", ports.ListFilter{}, []string{"TR", "GB", "US", "DE"}},
		{"sort by code", ports.ListFilter{Sort: ports.SortByCode}, []string{"DE", "GB", "TR", "US"}},
		{"sort by name", ports.ListFilter{Sort: ports.SortByName}, []string{"DE", "TR", "GB", "US"}},
		{"query on name", ports.ListFilter{Query: "united"}, []string{"GB", "US"}},
		{"query on code", ports.ListFilter{Query: "de"}, []string{"DE"}},
		{"status", ports.ListFilter{Status: &pending}, []string{"US"}},
		{"no match", ports.ListFilter{Query: "zz"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codesOf(f.registry.List(ctx, tt.filter)))
		})
	}
}

func TestRegistry_ListIsRestartable(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	f.add(t, "GB", "United Kingdom", "1", "", "")

	seq := f.registry.List(ctx, ports.ListFilter{})
	assert.Equal(t, []string{"GB"}, codesOf(seq))

	f.add(t, "FR", "France", "1", "", "")
	assert.Equal(t, []string{"GB", "FR"}, codesOf(seq), "sequence is evaluated lazily")

	sorted := slices.Collect(f.registry.List(ctx, ports.ListFilter{Sort: ports.SortByCode}))
	require.Len(t, sorted, 2)
	assert.Equal(t, "FR", sorted[0].Code)
}

func TestRegistry_UpdateMetrics(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	f.add(t, "FR", "France", "1", "", "")
	_, err := f.workflow.SubmitRequest(ctx, "FR", prop("2", "Unlimited", ""), "m", t1)
	require.NoError(t, err)

	rec, err := f.registry.UpdateMetrics(ctx, "fr", domain.FeedMetrics{Balance: "420000", LimitExceeded: "Yes"})
	require.NoError(t, err)
	assert.Equal(t, "420000", rec.Balance)
	assert.Equal(t, "Yes", rec.LimitExceeded)
	assert.Equal(t, "0", rec.Landing)
	assert.True(t, rec.IsPending(), "feed updates do not disturb the open request")
	assert.Equal(t, "1", rec.CurrentLimit)

	_, err = f.registry.UpdateMetrics(ctx, "FR", domain.FeedMetrics{})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidField))
	_, err = f.registry.UpdateMetrics(ctx, "XX", domain.FeedMetrics{Balance: "1"})
	assert.True(t, apperror.HasCode(err, apperror.CodeCountryNotFound))
}

func TestRegistry_NotifiesOnCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockChangeNotifier(ctrl)
	store := memory.NewRegistryStore(nil, zerolog.Nop())
	reg := NewRegistryService(store, notifier, zerolog.Nop())
	reg.clock = func() time.Time { return t1 }

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.RegistryEvent) error {
			assert.Equal(t, domain.EventCreated, ev.Kind)
			assert.Equal(t, "GB", ev.Code)
			assert.Equal(t, "admin", ev.Actor)
			assert.Equal(t, t1, ev.At)
			return nil
		})

	rec, err := reg.Add(context.Background(), domain.NewCountry{Code: "gb", Name: "United Kingdom", CreatedBy: "admin"})
	require.NoError(t, err)
	assert.Equal(t, t1, rec.LastUpdated)

	// Failed inserts fire nothing.
	_, err = reg.Add(context.Background(), domain.NewCountry{Code: "GB", Name: "Again"})
	assert.Error(t, err)
}

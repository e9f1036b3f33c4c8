package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidators(v)
	return v
}

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CreateCountryRequest{
		Code:     "  tr  ",
		Name:     " Turkey ",
		Protocol: "\tBD-104/2024 ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "tr", req.Code)
	assert.Equal(t, "Turkey", req.Name)
	assert.Equal(t, "BD-104/2024", req.Protocol)
}

func TestSanitizeStruct_StripsControlCharacters(t *testing.T) {
	req := CreateCountryRequest{Name: "Côte d'Ivoire\x00\x1b"}
	SanitizeStruct(&req)
	assert.Equal(t, "Côte d'Ivoire", req.Name)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	s := "  value  "
	v := struct{ P *string }{P: &s}
	SanitizeStruct(&v)
	assert.Equal(t, "value", *v.P)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	v := struct{ P *string }{}
	SanitizeStruct(&v)
	assert.Nil(t, v.P)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom validator tests ---

func TestCountryCode(t *testing.T) {
	v := newValidator(t)
	for _, tc := range []string{"TR", "us", "GBR", " de "} {
		assert.NoError(t, v.Var(tc, "country_code"), "expected valid: %q", tc)
	}
	for _, tc := range []string{"", "T", "TURK", "T1", "U-S"} {
		assert.Error(t, v.Var(tc, "country_code"), "expected invalid: %q", tc)
	}
}

func TestLimitAmount(t *testing.T) {
	v := newValidator(t)
	for _, tc := range []string{"0", "300000", "1250.50", " 42 "} {
		assert.NoError(t, v.Var(tc, "limit_amount"), "expected valid: %q", tc)
	}
	for _, tc := range []string{"", "-1", "abc", "1,000"} {
		assert.Error(t, v.Var(tc, "limit_amount"), "expected invalid: %q", tc)
	}
}

func TestValidUntil(t *testing.T) {
	v := newValidator(t)
	for _, tc := range []string{"2026-01-01", "Unlimited", "unlimited", "UNLIMITED"} {
		assert.NoError(t, v.Var(tc, "valid_until"), "expected valid: %q", tc)
	}
	for _, tc := range []string{"", "2026-13-01", "01/01/2026", "forever"} {
		assert.Error(t, v.Var(tc, "valid_until"), "expected invalid: %q", tc)
	}
}

func TestProposalRequest_Struct(t *testing.T) {
	v := newValidator(t)

	require.NoError(t, v.Struct(ProposalRequest{Limit: "300000", ValidUntil: "2026-01-01", Protocol: "BD-204/2025"}))
	assert.Error(t, v.Struct(ProposalRequest{Limit: "-5", ValidUntil: "2026-01-01"}))
	assert.Error(t, v.Struct(ProposalRequest{Limit: "5"}))

	p := ProposalRequest{Limit: "300000", ValidUntil: "unlimited"}.ToDomain()
	assert.Equal(t, "unlimited", p.ValidUntil)
}

func TestCreateCountryRequest_Struct(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(CreateCountryRequest{Code: "US", Name: "United States"}))
	assert.NoError(t, v.Struct(CreateCountryRequest{Code: "US", Name: "United States", LimitExceeded: "Yes", Limit: "10"}))
	assert.Error(t, v.Struct(CreateCountryRequest{Code: "US"}))
	assert.Error(t, v.Struct(CreateCountryRequest{Code: "US", Name: "United States", LimitExceeded: "maybe"}))

	nc := CreateCountryRequest{Code: "us", Name: "United States"}.ToDomain("admin")
	assert.Equal(t, "admin", nc.CreatedBy)
	assert.Equal(t, "us", nc.Code)
}

func TestHistoryQuery_SinceTime(t *testing.T) {
	assert.Nil(t, HistoryQuery{}.SinceTime())
	got := HistoryQuery{Since: "2025-02-01T10:00:00Z"}.SinceTime()
	require.NotNil(t, got)
	assert.Equal(t, 2025, got.Year())
}

package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"country-limits/pkg/apperror"

	"github.com/shopspring/decimal"
)

const (
	// ValidityUnlimited is the sentinel for a limit without an end date.
	ValidityUnlimited = "Unlimited"
	// DateLayout is the calendar date format used for validity dates.
	DateLayout = "2006-01-02"

	MaxProtocolLength = 64
	MaxNameLength     = 100

	// Amount bounds, checked before a parsed value is formatted.
	MaxLimitIntegerDigits = 20
	MaxLimitScale         = 6
	maxLimitInputLength   = 40
)

// Proposal is the set of values a maker wants to apply.
type Proposal struct {
	Limit      string `json:"limit"`
	ValidUntil string `json:"valid_until"`
	Protocol   string `json:"protocol"`
}

// Normalize validates every field and returns the canonical form.
func (p Proposal) Normalize() (Proposal, error) {
	limit, err := ParseLimit(p.Limit)
	if err != nil {
		return Proposal{}, err
	}
	validUntil, err := ParseValidUntil(p.ValidUntil)
	if err != nil {
		return Proposal{}, err
	}
	protocol, err := ParseProtocol(p.Protocol)
	if err != nil {
		return Proposal{}, err
	}
	return Proposal{Limit: limit, ValidUntil: validUntil, Protocol: protocol}, nil
}

// ParseLimit accepts a non-negative decimal number and returns its canonical string.
func ParseLimit(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperror.ErrInvalidField("limit", "is required")
	}
	if len(s) > maxLimitInputLength {
		return "", apperror.ErrInvalidField("limit", "is too long")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", apperror.ErrInvalidField("limit", "must be a number")
	}
	if d.IsNegative() {
		return "", apperror.ErrInvalidField("limit", "must not be negative")
	}
	if d.Exponent() < -MaxLimitScale {
		return "", apperror.ErrInvalidField("limit", "must have at most 6 decimal places")
	}
	if d.Exponent() > MaxLimitIntegerDigits || d.NumDigits()+int(d.Exponent()) > MaxLimitIntegerDigits {
		return "", apperror.ErrInvalidField("limit", "must have at most 20 integer digits")
	}
	return d.String(), nil
}

// ParseValidUntil accepts a YYYY-MM-DD calendar date or "unlimited" in any case.
func ParseValidUntil(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperror.ErrInvalidField("valid_until", "is required")
	}
	if strings.EqualFold(s, ValidityUnlimited) {
		return ValidityUnlimited, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", apperror.ErrInvalidField("valid_until", "must be a YYYY-MM-DD date or Unlimited")
	}
	return t.Format(DateLayout), nil
}

// ParseProtocol trims the protocol reference and bounds its length.
func ParseProtocol(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxProtocolLength {
		return "", apperror.ErrInvalidField("protocol", "is too long")
	}
	return s, nil
}

// NewCountry is the input for creating a registry record.
type NewCountry struct {
	Code          string
	Name          string
	Balance       string
	Landing       string
	Limit         string
	ValidUntil    string
	Protocol      string
	Overlimit     string
	LimitExceeded string
	CreatedBy     string
}

// Build validates the input and returns an Active record with empty history.
// Missing limit, validity and indicators take the registry defaults.
func (n NewCountry) Build(now time.Time) (CountryRecord, error) {
	code := NormalizeCode(n.Code)
	if code == "" {
		return CountryRecord{}, apperror.ErrInvalidField("code", "is required")
	}
	name := strings.TrimSpace(n.Name)
	if name == "" {
		return CountryRecord{}, apperror.ErrInvalidField("name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return CountryRecord{}, apperror.ErrInvalidField("name", "is too long")
	}

	p, err := Proposal{
		Limit:      orDefault(n.Limit, "0"),
		ValidUntil: orDefault(n.ValidUntil, ValidityUnlimited),
		Protocol:   n.Protocol,
	}.Normalize()
	if err != nil {
		return CountryRecord{}, err
	}

	return CountryRecord{
		Code:              code,
		Name:              name,
		Balance:           orDefault(n.Balance, "0"),
		Landing:           orDefault(n.Landing, "0"),
		CurrentLimit:      p.Limit,
		CurrentValidUntil: p.ValidUntil,
		CurrentProtocol:   p.Protocol,
		Overlimit:         orDefault(n.Overlimit, "0"),
		LimitExceeded:     orDefault(n.LimitExceeded, "No"),
		LastUpdated:       now,
		LastUpdatedBy:     strings.TrimSpace(n.CreatedBy),
		Status:            RecordStatusActive,
		History:           []HistoryRecord{},
		Version:           1,
	}, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}

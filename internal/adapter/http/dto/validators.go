package dto

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"country-limits/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var countryCodeRe = regexp.MustCompile(`^[A-Za-z]{2,3}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators adds the registry's custom tags to v.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("country_code", validateCountryCode)
	_ = v.RegisterValidation("limit_amount", validateLimitAmount)
	_ = v.RegisterValidation("valid_until", validateValidUntil)
}

// validateCountryCode accepts ISO alpha-2 or alpha-3 codes in any case.
func validateCountryCode(fl validator.FieldLevel) bool {
	return countryCodeRe.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateLimitAmount accepts a non-negative decimal.
func validateLimitAmount(fl validator.FieldLevel) bool {
	_, err := domain.ParseLimit(fl.Field().String())
	return err == nil
}

// validateValidUntil accepts YYYY-MM-DD or "Unlimited" in any case.
func validateValidUntil(fl validator.FieldLevel) bool {
	_, err := domain.ParseValidUntil(fl.Field().String())
	return err == nil
}

// SanitizeStruct trims whitespace and strips control characters from every
// exported string field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

// Package schema validates and normalizes raw mutation input before it
// reaches the repositories. Numeric fields accept both JSON numbers and
// numeric strings; a value that cannot be coerced is a field error, never a
// panic.
package schema

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors maps a field name to a human-readable message. It enumerates
// every field in error, not just the first one.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

func collect(fe FieldErrors, err error) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			fe[e.Field()] = tagMessage(e)
		}
		return
	}
	if err != nil {
		fe["_"] = err.Error()
	}
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

// empty reports whether a raw JSON value is absent for coercion purposes.
func empty(raw any) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// positiveAmount coerces raw into a positive decimal. required controls
// whether an absent value is an error.
func positiveAmount(fe FieldErrors, field string, raw any, required bool) (float64, bool) {
	if empty(raw) {
		if required {
			fe[field] = "is required"
		}
		return 0, false
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		fe[field] = "must be a number"
		return 0, false
	}
	if v <= 0 {
		fe[field] = "must be positive"
		return 0, false
	}
	return v, true
}

// recordID coerces raw into a positive integer identifier.
func recordID(fe FieldErrors, field string, raw any, required bool) (int64, bool) {
	if empty(raw) {
		if required {
			fe[field] = "is required"
		}
		return 0, false
	}
	v, err := cast.ToInt64E(raw)
	if err != nil || v <= 0 {
		fe[field] = "must be a valid id"
		return 0, false
	}
	return v, true
}

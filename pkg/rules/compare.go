package rules

import (
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/artisanexperiences/vetter/pkg/validation"
)

// NotIn fails when value is a string equal to one of params.
func NotIn(value any, params []string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, p := range params {
		if s == p {
			return true
		}
	}
	return false
}

// Confirmation fails unless value equals the parameter injected by
// PrepareConfirmation.
func Confirmation(value any, params []string) bool {
	s, err := cast.ToStringE(value)
	if err != nil {
		return true
	}
	return s != strings.Join(params, ",")
}

// PrepareConfirmation injects the value of "<field>_confirmation" as the
// rule's parameter, or "" when that field is absent.
func PrepareConfirmation(values map[string]any, field string, raw validation.RawInvocation) validation.RawInvocation {
	confirmation, ok := values[field+"_confirmation"]
	if !ok {
		return validation.RawInvocation{raw.Name(), ""}
	}
	return validation.RawInvocation{raw.Name(), stringify(confirmation)}
}

// Date fails unless value can be read as a date.
func Date(value any, _ []string) bool {
	_, ok := toTime(value)
	return !ok
}

// After fails unless value is a date strictly after params[0].
func After(value any, params []string) bool {
	day, limit, ok := datePair(value, params)
	if !ok {
		return true
	}
	return !day.After(limit)
}

// Before fails unless value is a date strictly before params[0].
func Before(value any, params []string) bool {
	day, limit, ok := datePair(value, params)
	if !ok {
		return true
	}
	return !day.Before(limit)
}

// PrepareFieldReference lets date comparisons name another field, as in
// "after:starts_at". When the parameter is the name of a value under
// validation, that value replaces it.
func PrepareFieldReference(values map[string]any, _ string, raw validation.RawInvocation) validation.RawInvocation {
	if len(raw) < 2 {
		return raw
	}
	other, ok := values[raw[1]]
	if !ok {
		return raw
	}
	return validation.RawInvocation{raw.Name(), stringify(other)}
}

func datePair(value any, params []string) (time.Time, time.Time, bool) {
	if len(params) == 0 {
		return time.Time{}, time.Time{}, false
	}
	day, ok := toTime(value)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	limit, ok := toTime(strings.Join(params, ","))
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return day, limit, true
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil, bool:
		return time.Time{}, false
	case string:
		if strings.TrimSpace(v) == "" {
			return time.Time{}, false
		}
	}
	t, err := cast.ToTimeE(value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func stringify(value any) string {
	if t, ok := value.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return cast.ToString(value)
}

package rules

import (
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Length returns the size min, max and between compare against: the rune
// count of a string, the length of a slice, array or map, and the value of a
// number. Numeric strings count as strings. ok is false for anything else.
func Length(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case string:
		return float64(utf8.RuneCountInString(v)), true
	case bool:
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return float64(rv.Len()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// number parses a numeric rule parameter. NaN and infinities are not
// usable numbers.
func number(param string) (float64, bool) {
	trimmed := strings.TrimSpace(param)
	if trimmed == "" {
		return 0, false
	}
	n, err := cast.ToFloat64E(trimmed)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

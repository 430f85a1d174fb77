package rules

import (
	"reflect"
	"strings"
)

// Required fails for nil and the empty string.
func Required(value any, _ []string) bool {
	return value == nil || value == ""
}

var acceptedWords = []string{"yes", "1", "true", "on"}

// Accepted fails unless value is true, 1, or one of "yes", "1", "true",
// "on" in any case. Useful for terms-of-service checkboxes.
func Accepted(value any, _ []string) bool {
	switch v := value.(type) {
	case bool:
		return !v
	case string:
		lower := strings.ToLower(v)
		for _, word := range acceptedWords {
			if lower == word {
				return false
			}
		}
		return true
	case nil:
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 1
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 1
	}
	return true
}

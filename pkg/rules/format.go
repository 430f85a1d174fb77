package rules

import (
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

var validate = validator.New()

// Email fails unless value is a string holding a valid email address.
func Email(value any, _ []string) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return true
	}
	return validate.Var(s, "email") != nil
}

var patterns sync.Map

func compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patterns.Store(pattern, re)
	return re, nil
}

// Regex fails unless value contains a non-empty match for the pattern in
// params[0]. Commas split parameters, so a pattern containing one is
// rejoined before compiling. An invalid pattern fails the rule.
func Regex(value any, params []string) bool {
	if len(params) == 0 {
		return true
	}
	re, err := compile(strings.Join(params, ","))
	if err != nil {
		return true
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return true
	}
	return re.FindString(s) == ""
}

// Numeric fails unless value is a finite number or a string that parses as
// one.
func Numeric(value any, _ []string) bool {
	switch v := value.(type) {
	case string:
		_, ok := number(v)
		return !ok
	case bool, nil:
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return false
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return math.IsNaN(f) || math.IsInf(f, 0)
	}
	return true
}

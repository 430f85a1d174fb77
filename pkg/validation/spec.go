package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Spec maps a field name to its rule chain, written either as a single
// pipe-joined string ("required|email") or as a list of rule formats.
type Spec map[string]any

// Chain is a normalized, ordered list of rule formats for one field.
type Chain []string

// NormalizeChain converts any accepted chain encoding into a Chain.
func NormalizeChain(src any) (Chain, error) {
	switch v := src.(type) {
	case Chain:
		return append(Chain(nil), v...), nil
	case string:
		return Chain(strings.Split(v, "|")), nil
	case []string:
		return append(Chain(nil), v...), nil
	case []any:
		chain := make(Chain, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: rule %d is %T, not a string", ErrInvalidSpec, i, item)
			}
			chain = append(chain, s)
		}
		return chain, nil
	default:
		return nil, fmt.Errorf("%w: chain is %T", ErrInvalidSpec, src)
	}
}

// Normalize converts every chain in the spec.
func (s Spec) Normalize() (map[string]Chain, error) {
	out := make(map[string]Chain, len(s))
	for field, src := range s {
		chain, err := NormalizeChain(src)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		out[field] = chain
	}
	return out, nil
}

// Fields returns the spec's field names, sorted.
func (s Spec) Fields() []string {
	fields := make([]string, 0, len(s))
	for field := range s {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

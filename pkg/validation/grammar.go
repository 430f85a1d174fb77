package validation

import "strings"

// RawInvocation is a rule format split into its name and, when present, the
// unsplit parameter string: ["between", "1,10"] or ["required"].
//
// Prepare decorators receive and return this shape, so they can inject or
// overwrite element 1 before parameters are derived.
type RawInvocation []string

// Invocation is a parsed rule format.
type Invocation struct {
	Name string
	// Params is nil when the format has no ':' section.
	Params []string
}

// Split separates a rule format on its first ':'.
func Split(format string) RawInvocation {
	name, params, found := strings.Cut(format, ":")
	if !found {
		return RawInvocation{name}
	}
	return RawInvocation{name, params}
}

// Name returns the rule name, or "" for an empty invocation.
func (r RawInvocation) Name() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// Invocation derives the parameter list from the raw shape. A present but
// empty parameter string yields a single empty parameter.
func (r RawInvocation) Invocation() Invocation {
	inv := Invocation{Name: r.Name()}
	if len(r) > 1 {
		inv.Params = strings.Split(r[1], ",")
	}
	return inv
}

// Parse turns a single rule format such as "between:1,10" into an Invocation.
func Parse(format string) Invocation {
	return Split(format).Invocation()
}

// Param returns the i-th parameter and whether it exists.
func (i Invocation) Param(n int) (string, bool) {
	if n < 0 || n >= len(i.Params) {
		return "", false
	}
	return i.Params[n], true
}

// String renders the invocation back into rule format.
func (i Invocation) String() string {
	if i.Params == nil {
		return i.Name
	}
	return i.Name + ":" + strings.Join(i.Params, ",")
}

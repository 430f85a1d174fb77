package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected Invocation
	}{
		{
			name:     "bare name has nil params",
			format:   "required",
			expected: Invocation{Name: "required", Params: nil},
		},
		{
			name:     "single param",
			format:   "min:8",
			expected: Invocation{Name: "min", Params: []string{"8"}},
		},
		{
			name:     "comma separated params",
			format:   "between:1,10",
			expected: Invocation{Name: "between", Params: []string{"1", "10"}},
		},
		{
			name:     "trailing colon yields one empty param",
			format:   "confirmation:",
			expected: Invocation{Name: "confirmation", Params: []string{""}},
		},
		{
			name:     "only the first colon separates the name",
			format:   "regex:^a:b$",
			expected: Invocation{Name: "regex", Params: []string{"^a:b$"}},
		},
		{
			name:     "empty params keep their slots",
			format:   "not_in:a,,b",
			expected: Invocation{Name: "not_in", Params: []string{"a", "", "b"}},
		},
		{
			name:     "empty format",
			format:   "",
			expected: Invocation{Name: "", Params: nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.format))
		})
	}
}

func TestSplit(t *testing.T) {
	assert.Equal(t, RawInvocation{"required"}, Split("required"))
	assert.Equal(t, RawInvocation{"between", "1,10"}, Split("between:1,10"))
	assert.Equal(t, RawInvocation{"confirmation", ""}, Split("confirmation:"))
	assert.Equal(t, "", RawInvocation{}.Name())
	assert.Equal(t, Invocation{}, RawInvocation{}.Invocation())
}

func TestInvocation_String(t *testing.T) {
	for _, format := range []string{"required", "min:8", "between:1,10", "confirmation:"} {
		t.Run(format, func(t *testing.T) {
			assert.Equal(t, format, Parse(format).String())
		})
	}
}

func TestInvocation_Param(t *testing.T) {
	inv := Parse("between:1,10")

	p, ok := inv.Param(1)
	assert.True(t, ok)
	assert.Equal(t, "10", p)

	_, ok = inv.Param(2)
	assert.False(t, ok)

	_, ok = Parse("required").Param(0)
	assert.False(t, ok)
}

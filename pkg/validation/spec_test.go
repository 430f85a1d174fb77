package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeChain(t *testing.T) {
	tests := []struct {
		name     string
		src      any
		expected Chain
		wantErr  bool
	}{
		{name: "pipe string", src: "required|email", expected: Chain{"required", "email"}},
		{name: "single rule", src: "required", expected: Chain{"required"}},
		{name: "string slice", src: []string{"required", "email"}, expected: Chain{"required", "email"}},
		{name: "yaml list", src: []any{"required", "min:8"}, expected: Chain{"required", "min:8"}},
		{name: "chain", src: Chain{"required"}, expected: Chain{"required"}},
		{name: "list keeps pipes intact", src: []string{"regex:^(a|b)$"}, expected: Chain{"regex:^(a|b)$"}},
		{name: "non-string item", src: []any{"required", 5}, wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
		{name: "nil", src: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := NormalizeChain(tt.src)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, chain)
		})
	}
}

func TestSpec_Normalize(t *testing.T) {
	t.Run("string and list forms are equivalent", func(t *testing.T) {
		a, err := Spec{"email": "required|email"}.Normalize()
		require.NoError(t, err)
		b, err := Spec{"email": []string{"required", "email"}}.Normalize()
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("error names the field", func(t *testing.T) {
		_, err := Spec{"age": 18}.Normalize()

		assert.ErrorIs(t, err, ErrInvalidSpec)
		assert.Contains(t, err.Error(), `"age"`)
	})
}

func TestSpec_Fields(t *testing.T) {
	spec := Spec{"b": "required", "a": "required", "c": "required"}

	assert.Equal(t, []string{"a", "b", "c"}, spec.Fields())
}

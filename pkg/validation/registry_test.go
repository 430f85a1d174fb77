package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEmpty(value any, _ []string) bool {
	return value == nil || value == ""
}

func TestNewRegistry(t *testing.T) {
	t.Run("bare predicate is stored", func(t *testing.T) {
		r := NewRegistry(map[string]Definition{
			"required": Rule(isEmpty),
		}, map[string]Message{
			"required": Text("required!"),
		})

		_, ok := r.Predicate("required")
		assert.True(t, ok)
		_, ok = r.Prepare("required")
		assert.False(t, ok)

		msg, ok := r.Message("name", "required", nil)
		require.True(t, ok)
		assert.Equal(t, "required!", msg.Render("", nil))
	})

	t.Run("missing message is synthesized", func(t *testing.T) {
		r := NewRegistry(map[string]Definition{"required": Rule(isEmpty)}, nil)

		msg, ok := r.Message("name", "required", nil)
		require.True(t, ok)
		assert.Equal(t, "required was undefined", msg.Render(nil, nil))
	})

	t.Run("pair stores prepare decorator", func(t *testing.T) {
		prepare := func(values map[string]any, field string, raw RawInvocation) RawInvocation {
			return raw
		}
		r := NewRegistry(map[string]Definition{
			"confirmation": RuleWithPrepare(isEmpty, prepare),
		}, nil)

		_, ok := r.Predicate("confirmation")
		assert.True(t, ok)
		_, ok = r.Prepare("confirmation")
		assert.True(t, ok)
	})

	t.Run("definition without predicate keeps only the prepare", func(t *testing.T) {
		r := NewRegistry(map[string]Definition{
			"broken": {Prepare: func(_ map[string]any, _ string, raw RawInvocation) RawInvocation { return raw }},
		}, nil)

		_, ok := r.Predicate("broken")
		assert.False(t, ok)
		assert.False(t, r.Has("broken"))
		_, ok = r.Prepare("broken")
		assert.True(t, ok)
	})

	t.Run("messages for unknown rules are ignored", func(t *testing.T) {
		r := NewRegistry(nil, map[string]Message{"ghost": Text("boo")})

		_, ok := r.Message("f", "ghost", nil)
		assert.False(t, ok)
		assert.Empty(t, r.Names())
	})
}

func TestRegistry_MessageOverrides(t *testing.T) {
	r := NewRegistry(map[string]Definition{"required": Rule(isEmpty)}, map[string]Message{
		"required": Text("default"),
	})
	overrides := Overrides{
		"email": {"required": Text("email please")},
	}

	msg, _ := r.Message("email", "required", overrides)
	assert.Equal(t, "email please", msg.Render(nil, nil))

	msg, _ = r.Message("name", "required", overrides)
	assert.Equal(t, "default", msg.Render(nil, nil))

	msg, _ = r.Message("email", "required", Overrides{"email": {"required": nil}})
	assert.Equal(t, "default", msg.Render(nil, nil))
}

func TestMessageFunc(t *testing.T) {
	msg := MessageFunc(func(value any, params []string) string {
		return fmt.Sprintf("%v must be at least %s", value, params[0])
	})

	assert.Equal(t, "abc must be at least 5", msg.Render("abc", []string{"5"}))
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry(map[string]Definition{
		"min":      Rule(isEmpty),
		"email":    Rule(isEmpty),
		"required": Rule(isEmpty),
	}, nil)

	assert.Equal(t, []string{"email", "min", "required"}, r.Names())
}

func TestRegistry_With(t *testing.T) {
	base := NewRegistry(map[string]Definition{"required": Rule(isEmpty)}, map[string]Message{
		"required": Text("base"),
	})

	extended := base.With(map[string]Definition{
		"uppercase": Rule(func(value any, _ []string) bool { return false }),
	}, nil)

	assert.True(t, extended.Has("required"))
	assert.True(t, extended.Has("uppercase"))
	assert.False(t, base.Has("uppercase"), "base registry must not change")

	msg, _ := extended.Message("f", "uppercase", nil)
	assert.Equal(t, "uppercase was undefined", msg.Render(nil, nil))
}

func TestRegistry_WithMessages(t *testing.T) {
	base := NewRegistry(map[string]Definition{"required": Rule(isEmpty)}, map[string]Message{
		"required": Text("base"),
	})

	custom := base.WithMessages(map[string]Message{
		"required": Text("custom"),
		"unknown":  Text("ignored"),
	})

	msg, _ := custom.Message("f", "required", nil)
	assert.Equal(t, "custom", msg.Render(nil, nil))
	msg, _ = base.Message("f", "required", nil)
	assert.Equal(t, "base", msg.Render(nil, nil))
	assert.Equal(t, []string{"required"}, custom.Names())
}

func TestRegistry_Resolve(t *testing.T) {
	prepare := func(values map[string]any, field string, raw RawInvocation) RawInvocation {
		other, _ := values[field+"_confirmation"].(string)
		return RawInvocation{"renamed", other}
	}
	r := NewRegistry(map[string]Definition{
		"confirmation": RuleWithPrepare(isEmpty, prepare),
		"min":          Rule(isEmpty),
	}, nil)

	t.Run("prepare rewrites params", func(t *testing.T) {
		inv := r.Resolve("confirmation", "password", map[string]any{
			"password_confirmation": "secret",
		})

		assert.Equal(t, "confirmation", inv.Name, "name is taken before the decorator runs")
		assert.Equal(t, []string{"secret"}, inv.Params)
	})

	t.Run("rules without prepare parse plainly", func(t *testing.T) {
		inv := r.Resolve("min:3", "name", nil)

		assert.Equal(t, Invocation{Name: "min", Params: []string{"3"}}, inv)
	})

	t.Run("unknown rules are not an error", func(t *testing.T) {
		inv := r.Resolve("nope:1", "name", nil)

		assert.Equal(t, Invocation{Name: "nope", Params: []string{"1"}}, inv)
	})
}

func TestTextOverrides(t *testing.T) {
	assert.Nil(t, TextOverrides(nil))

	o := TextOverrides(map[string]map[string]string{
		"password": {"min": "too short"},
	})

	msg, ok := o.lookup("password", "min")
	require.True(t, ok)
	assert.Equal(t, "too short", msg.Render(nil, nil))
}

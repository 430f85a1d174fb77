package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisanexperiences/vetter/pkg/errorbag"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

func TestRenderBagTable(t *testing.T) {
	captureOutput(t, false)
	bag := errorbag.New()
	require.NoError(t, bag.Add("email", "Please enter a valid email address."))
	require.NoError(t, bag.Add("age", "Please enter at least 18."))

	out := RenderBagTable(bag)

	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "MESSAGE")
	assert.Contains(t, out, "Please enter a valid email address.")
	assert.Less(t, strings.Index(out, "email"), strings.Index(out, "age"), "rows follow insertion order")
}

func TestRenderFailuresTable(t *testing.T) {
	captureOutput(t, false)
	failures := []validation.Failure{
		{Field: "age", Rule: "min", Value: 12, Invocation: validation.Parse("min:18")},
		{Field: "nick", Rule: "shiny", Value: "x", Invocation: validation.Parse("shiny"), NoRule: true},
	}

	out := RenderFailuresTable(failures, []string{"Please enter at least 18."})

	assert.Contains(t, out, "min:18")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "shiny (unknown)")
	assert.Contains(t, out, "Please enter at least 18.")
}

func TestRenderRulesTable(t *testing.T) {
	captureOutput(t, false)
	reg := validation.NewRegistry(map[string]validation.Definition{
		"required": validation.Rule(func(any, []string) bool { return false }),
		"min":      validation.Rule(func(any, []string) bool { return false }),
	}, map[string]validation.Message{
		"required": validation.Text("This field is required."),
	})

	out := RenderRulesTable(reg)

	assert.Contains(t, out, "This field is required.")
	assert.Contains(t, out, "min was undefined")
	assert.Less(t, strings.Index(out, "min"), strings.Index(out, "required"))
}

func TestRenderParseTable(t *testing.T) {
	captureOutput(t, false)
	invs := []validation.Invocation{
		validation.Parse("between:1,10"),
		validation.Parse("required"),
	}

	out := RenderParseTable(invs, func(name string) bool { return name == "required" })

	assert.Contains(t, out, `["1" "10"]`)
	assert.Contains(t, out, "between")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "no")
}

func TestTables_Styled(t *testing.T) {
	Configure(false, false)
	t.Cleanup(func() { Configure(false, false) })

	bag := errorbag.New()
	require.NoError(t, bag.Add("email", "Please enter a valid email address."))
	failures := []validation.Failure{
		{Field: "age", Rule: "min", Value: 12, Invocation: validation.Parse("min:18")},
	}

	bagOut := RenderBagTable(bag)
	assert.Contains(t, bagOut, "FIELD")
	assert.Contains(t, bagOut, "email")
	assert.Contains(t, bagOut, "Please enter a valid email address.")

	failOut := RenderFailuresTable(failures, []string{"Please enter at least 18."})
	assert.Contains(t, failOut, "RULE")
	assert.Contains(t, failOut, "min:18")
	assert.Contains(t, failOut, "12")
	assert.Contains(t, failOut, "Please enter at least 18.")
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/artisanexperiences/vetter/pkg/errorbag"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

// newTable builds a bordered table. columns styles body cells by column
// index; columns beyond it stay plain.
func newTable(columns []lipgloss.Style, headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	if noColor {
		return t
	}

	return t.
		BorderStyle(lipgloss.NewStyle().Foreground(Primary)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			if col < len(columns) {
				return columns[col].Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// RenderBagTable lists every message in the bag, one row per message, in
// the order fields first failed.
func RenderBagTable(bag *errorbag.Bag) string {
	t := newTable([]lipgloss.Style{FieldStyle, MessageStyle}, "FIELD", "MESSAGE")
	for _, field := range bag.Fields() {
		messages, _ := bag.Get(field)
		for _, msg := range messages {
			t.Row(field, msg)
		}
	}
	return fmt.Sprintf("\n%s\n", t.String())
}

// RenderFailuresTable shows which rule each field failed and its resolved
// parameters.
func RenderFailuresTable(failures []validation.Failure, messages []string) string {
	t := newTable([]lipgloss.Style{FieldStyle, RuleStyle, ValueStyle, MessageStyle}, "FIELD", "RULE", "VALUE", "MESSAGE")
	for i, f := range failures {
		rule := f.Invocation.String()
		if f.NoRule {
			rule += " (unknown)"
		}
		msg := ""
		if i < len(messages) {
			msg = messages[i]
		}
		t.Row(f.Field, rule, fmt.Sprintf("%v", f.Value), msg)
	}
	return fmt.Sprintf("\n%s\n", t.String())
}

// RenderRulesTable lists registered rules with their default message, using
// placeholders for the value and parameters.
func RenderRulesTable(registry *validation.Registry) string {
	t := newTable([]lipgloss.Style{RuleStyle, MutedStyle}, "RULE", "PREPARE", "DEFAULT MESSAGE")
	for _, name := range registry.Names() {
		prepare := ""
		if _, ok := registry.Prepare(name); ok {
			prepare = "yes"
		}
		msg := ""
		if m, ok := registry.Message("", name, nil); ok {
			msg = m.Render(":value", []string{":0", ":1"})
		}
		t.Row(name, prepare, msg)
	}
	return t.String()
}

// RenderParseTable shows how rule formats split into name and parameters.
func RenderParseTable(invocations []validation.Invocation, known func(string) bool) string {
	t := newTable([]lipgloss.Style{RuleStyle, ValueStyle, MutedStyle}, "NAME", "PARAMS", "REGISTERED")
	for _, inv := range invocations {
		params := "-"
		if inv.Params != nil {
			params = fmt.Sprintf("[%s]", strings.Join(quoteAll(inv.Params), " "))
		}
		registered := "no"
		if known(inv.Name) {
			registered = "yes"
		}
		t.Row(inv.Name, params, registered)
	}
	return t.String()
}

func quoteAll(params []string) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = fmt.Sprintf("%q", p)
	}
	return out
}

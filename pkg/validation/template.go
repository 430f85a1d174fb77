package validation

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// TemplateData is what a Template message is rendered with.
type TemplateData struct {
	Value  any
	Params []string
}

// Template is a Message written as a text/template:
//
//	Must be at least {{ index .Params 0 }} characters, got {{ len .Value }}.
//
// A template that fails to execute for a given value renders as its source
// text.
type Template struct {
	text string
	tmpl *template.Template
}

// ParseTemplate compiles text into a Template.
func ParseTemplate(text string) (*Template, error) {
	tmpl, err := template.New("").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid message template: %w", err)
	}
	return &Template{text: text, tmpl: tmpl}, nil
}

func (t *Template) Render(value any, params []string) string {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, TemplateData{Value: value, Params: params}); err != nil {
		return t.text
	}
	return buf.String()
}

func (t *Template) String() string {
	return t.text
}

// ParseMessage returns a Template when text contains template actions and a
// plain Text otherwise.
func ParseMessage(text string) (Message, error) {
	if !strings.Contains(text, "{{") {
		return Text(text), nil
	}
	return ParseTemplate(text)
}

// MessageFromText is ParseMessage for text that was already checked; text
// that does not parse is kept as a plain Text.
func MessageFromText(text string) Message {
	msg, err := ParseMessage(text)
	if err != nil {
		return Text(text)
	}
	return msg
}

package validation

import (
	"fmt"
	"sort"
)

// Predicate reports whether value FAILS the rule for the given parameters.
type Predicate func(value any, params []string) bool

// PrepareFunc may rewrite a rule's raw invocation using every value under
// validation and the name of the field being checked. It enables cross-field
// rules such as confirmation.
type PrepareFunc func(values map[string]any, field string, raw RawInvocation) RawInvocation

// Message renders the text recorded when a rule fails.
type Message interface {
	Render(value any, params []string) string
}

// Text is a literal message.
type Text string

func (t Text) Render(any, []string) string { return string(t) }

// MessageFunc builds a message from the failing value and parameters.
type MessageFunc func(value any, params []string) string

func (f MessageFunc) Render(value any, params []string) string { return f(value, params) }

// Definition pairs a predicate with an optional prepare decorator.
type Definition struct {
	Check   Predicate
	Prepare PrepareFunc
}

// Rule defines a rule with no prepare decorator.
func Rule(check Predicate) Definition {
	return Definition{Check: check}
}

// RuleWithPrepare defines a rule whose parameters are rewritten before
// evaluation.
func RuleWithPrepare(check Predicate, prepare PrepareFunc) Definition {
	return Definition{Check: check, Prepare: prepare}
}

type entry struct {
	check   Predicate
	prepare PrepareFunc
	message Message
}

// Registry maps rule names to predicates, prepare decorators and default
// messages. It is written only by its constructor and is safe to share
// between goroutines.
type Registry struct {
	entries map[string]entry
}

// UndefinedMessage is the message synthesized for a rule registered without one.
func UndefinedMessage(name string) Text {
	return Text(fmt.Sprintf("%s was undefined", name))
}

// NewRegistry builds a registry from rule definitions and their default
// messages. Rules without a message get UndefinedMessage; messages for
// unknown rules are ignored.
func NewRegistry(defs map[string]Definition, messages map[string]Message) *Registry {
	r := &Registry{entries: make(map[string]entry, len(defs))}
	r.register(defs, messages)
	return r
}

// With returns a new registry holding r's rules plus defs, which replace any
// rule of the same name. r is left untouched.
func (r *Registry) With(defs map[string]Definition, messages map[string]Message) *Registry {
	next := &Registry{entries: make(map[string]entry, len(r.entries)+len(defs))}
	for name, e := range r.entries {
		next.entries[name] = e
	}
	next.register(defs, messages)
	return next
}

// WithMessages returns a new registry whose default messages are replaced
// for every rule named in messages. Names that are not registered are ignored.
func (r *Registry) WithMessages(messages map[string]Message) *Registry {
	next := &Registry{entries: make(map[string]entry, len(r.entries))}
	for name, e := range r.entries {
		if msg, ok := messages[name]; ok && msg != nil {
			e.message = msg
		}
		next.entries[name] = e
	}
	return next
}

func (r *Registry) register(defs map[string]Definition, messages map[string]Message) {
	for name, def := range defs {
		msg := messages[name]
		if msg == nil {
			msg = UndefinedMessage(name)
		}
		r.entries[name] = entry{
			check:   def.Check,
			prepare: def.Prepare,
			message: msg,
		}
	}
}

// Predicate returns the predicate registered under name.
func (r *Registry) Predicate(name string) (Predicate, bool) {
	e, ok := r.entries[name]
	if !ok || e.check == nil {
		return nil, false
	}
	return e.check, true
}

// Prepare returns the prepare decorator registered under name.
func (r *Registry) Prepare(name string) (PrepareFunc, bool) {
	e, ok := r.entries[name]
	if !ok || e.prepare == nil {
		return nil, false
	}
	return e.prepare, true
}

// Message resolves the message for rule name on field. A per-call override
// for (field, name) wins over the registry default.
func (r *Registry) Message(field, name string, overrides Overrides) (Message, bool) {
	if msg, ok := overrides.lookup(field, name); ok {
		return msg, true
	}
	e, ok := r.entries[name]
	if !ok || e.message == nil {
		return nil, false
	}
	return e.message, true
}

// Has reports whether a predicate is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Predicate(name)
	return ok
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve parses format for field, applying the rule's prepare decorator
// when one is registered.
func (r *Registry) Resolve(format, field string, values map[string]any) Invocation {
	raw := Split(format)
	name := raw.Name()
	if prepare, ok := r.Prepare(name); ok {
		raw = prepare(values, field, raw)
	}
	// Lookup stays on the name the caller wrote, whatever the decorator did
	// to element 0.
	inv := raw.Invocation()
	inv.Name = name
	return inv
}

// Overrides holds per-call messages keyed by field, then rule name.
type Overrides map[string]map[string]Message

func (o Overrides) lookup(field, name string) (Message, bool) {
	if o == nil {
		return nil, false
	}
	msg, ok := o[field][name]
	if !ok || msg == nil {
		return nil, false
	}
	return msg, true
}

// TextOverrides converts string overrides, as read from a ruleset file, into
// Overrides. Strings holding template actions become Templates.
func TextOverrides(in map[string]map[string]string) Overrides {
	if len(in) == 0 {
		return nil
	}
	out := make(Overrides, len(in))
	for field, rules := range in {
		out[field] = make(map[string]Message, len(rules))
		for name, text := range rules {
			out[field][name] = MessageFromText(text)
		}
	}
	return out
}

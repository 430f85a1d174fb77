// Package validation evaluates Laravel-style rule chains against a flat set of
// named values.
//
// A Registry maps rule names to predicates, optional prepare decorators and
// default messages. A Validator resolves each field's chain ("required|email"
// or []string{"required", "email"}) against the registry and stops at the
// first failing rule for that field. Failures are rendered into an
// errorbag.Bag keyed by field name.
//
//	v := validation.New(rules.Registry())
//	bag, err := v.Execute(values, validation.Spec{
//	    "email":    "required|email",
//	    "password": []string{"required", "min:8", "confirmation"},
//	}, nil)
//	if err != nil {
//	    // the spec named a field missing from values, or a chain was malformed
//	}
//	if bag.Any() {
//	    // render bag.All()
//	}
//
// Execution is synchronous and CPU-only. A Registry is immutable and may be
// shared; every call gets its own Bag.
package validation

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/artisanexperiences/vetter/pkg/errorbag"
)

// NoRuleMessage is recorded for a rule name the registry does not know,
// unless the call overrides it for that field.
func NoRuleMessage(name string) Text {
	return Text(fmt.Sprintf("%s is not a registered rule", name))
}

// Failure describes the first rule a field failed.
type Failure struct {
	Field      string
	Rule       string
	Value      any
	Invocation Invocation
	// NoRule marks a rule name that could not be resolved.
	NoRule bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger for diagnostics and the bags the validator
// creates.
func WithLogger(logger *log.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Validator runs rule chains against values using a Registry.
type Validator struct {
	registry *Registry
	logger   *log.Logger
}

// New creates a Validator backed by registry.
func New(registry *Registry, opts ...Option) *Validator {
	if registry == nil {
		registry = NewRegistry(nil, nil)
	}
	v := &Validator{
		registry: registry,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns the registry the validator resolves rules against.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Execute validates values against spec and returns the per-field messages.
// The returned Bag is never nil on success and is empty when every field
// passes. A spec field absent from values aborts the call with a
// *MissingTargetError and no Bag.
func (v *Validator) Execute(values map[string]any, spec Spec, overrides Overrides) (*errorbag.Bag, error) {
	failures, err := v.Failures(values, spec)
	if err != nil {
		return nil, err
	}
	return v.Collect(failures, overrides)
}

// Collect renders failures into a fresh Bag, in order.
func (v *Validator) Collect(failures []Failure, overrides Overrides) (*errorbag.Bag, error) {
	bag := errorbag.New(errorbag.WithLogger(v.logger))
	for _, f := range failures {
		if err := bag.Add(f.Field, v.render(f, overrides)); err != nil {
			return nil, fmt.Errorf("recording failure for rule %q: %w", f.Rule, err)
		}
	}
	return bag, nil
}

// Validate is Execute without per-call message overrides.
func (v *Validator) Validate(values map[string]any, spec Spec) (*errorbag.Bag, error) {
	return v.Execute(values, spec, nil)
}

// Failures evaluates spec and returns the first failure of every failing
// field, ordered by field name.
func (v *Validator) Failures(values map[string]any, spec Spec) ([]Failure, error) {
	chains, err := spec.Normalize()
	if err != nil {
		v.logger.Error("invalid validation spec", "err", err)
		return nil, err
	}

	var failures []Failure
	for _, field := range spec.Fields() {
		value, ok := values[field]
		if !ok {
			err := &MissingTargetError{Field: field}
			v.logger.Error("missing validation target", "field", field)
			return nil, err
		}

		if f, failed := v.check(field, value, v.resolve(field, chains[field], values)); failed {
			failures = append(failures, f)
		}
	}
	return failures, nil
}

// Check evaluates a single value against chain with no other values in scope.
// It reports the first failure, if any.
func (v *Validator) Check(field string, value any, chain any) (Failure, bool, error) {
	normalized, err := NormalizeChain(chain)
	if err != nil {
		return Failure{}, false, err
	}
	values := map[string]any{field: value}
	f, failed := v.check(field, value, v.resolve(field, normalized, values))
	return f, failed, nil
}

// Message renders the message for a failure.
func (v *Validator) Message(f Failure, overrides Overrides) string {
	return v.render(f, overrides)
}

func (v *Validator) resolve(field string, chain Chain, values map[string]any) []Invocation {
	invocations := make([]Invocation, 0, len(chain))
	for _, format := range chain {
		invocations = append(invocations, v.registry.Resolve(format, field, values))
	}
	return invocations
}

func (v *Validator) check(field string, value any, chain []Invocation) (Failure, bool) {
	for _, inv := range chain {
		predicate, ok := v.registry.Predicate(inv.Name)
		if !ok {
			v.logger.Warn("no such rule", "field", field, "rule", inv.Name)
			return Failure{Field: field, Rule: inv.Name, Value: value, Invocation: inv, NoRule: true}, true
		}
		if predicate(value, inv.Params) {
			v.logger.Debug("rule failed", "field", field, "rule", inv.String())
			return Failure{Field: field, Rule: inv.Name, Value: value, Invocation: inv}, true
		}
	}
	return Failure{}, false
}

func (v *Validator) render(f Failure, overrides Overrides) string {
	if f.NoRule {
		if msg, ok := overrides.lookup(f.Field, f.Rule); ok {
			return msg.Render(f.Value, f.Invocation.Params)
		}
		return NoRuleMessage(f.Rule).Render(f.Value, f.Invocation.Params)
	}

	msg, ok := v.registry.Message(f.Field, f.Rule, overrides)
	if !ok {
		return string(UndefinedMessage(f.Rule))
	}
	return msg.Render(f.Value, f.Invocation.Params)
}

// IsMissingTarget reports whether err is a missing validation target fault.
func IsMissingTarget(err error) bool {
	return errors.Is(err, ErrMissingTarget)
}

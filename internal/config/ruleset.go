package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/artisanexperiences/vetter/internal/fs"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

// Ruleset is a validation spec stored in a *.rules.yaml file.
//
//	rules:
//	  email: required|email
//	  password: [required, "min:8", confirmation]
//	messages:
//	  password:
//	    confirmation: Passwords must match.
type Ruleset struct {
	Name        string                       `mapstructure:"name" yaml:"name,omitempty"`
	Description string                       `mapstructure:"description" yaml:"description,omitempty"`
	Rules       map[string]validation.Chain  `mapstructure:"rules" yaml:"rules"`
	Messages    map[string]map[string]string `mapstructure:"messages" yaml:"messages,omitempty"`
}

var chainType = reflect.TypeOf(validation.Chain{})

// ChainHook decodes a pipe-joined string or a list of rule formats into a
// validation.Chain.
func ChainHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != chainType {
			return data, nil
		}
		return validation.NormalizeChain(data)
	}
}

// DecodeRuleset converts raw YAML data into a Ruleset. Field names keep their
// case, unlike keys read through viper.
func DecodeRuleset(raw map[string]interface{}) (*Ruleset, error) {
	var rs Ruleset
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  ChainHook(),
		Result:      &rs,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding ruleset: %w", err)
	}
	return &rs, nil
}

// LoadRuleset reads and decodes a ruleset file.
func LoadRuleset(fsys fs.FS, path string) (*Ruleset, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ruleset: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parsing ruleset %s: %w", path, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("ruleset %s is empty", path)
	}

	rs, err := DecodeRuleset(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// SaveRuleset writes rs to path as YAML.
func SaveRuleset(fsys fs.FS, path string, rs *Ruleset) error {
	content, err := yaml.Marshal(rs)
	if err != nil {
		return fmt.Errorf("marshaling ruleset: %w", err)
	}
	if err := fsys.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing ruleset: %w", err)
	}
	return nil
}

// Validate checks the ruleset's rule chains and message templates.
func (r *Ruleset) Validate() error {
	if len(r.Rules) == 0 {
		return fmt.Errorf("ruleset: 'rules' must not be empty")
	}
	var errs []error
	for _, field := range r.Fields() {
		if field == "" {
			errs = append(errs, fmt.Errorf("ruleset: field names must not be empty"))
			continue
		}
		chain := r.Rules[field]
		if len(chain) == 0 {
			errs = append(errs, fmt.Errorf("ruleset: field %q has no rules", field))
		}
		for _, format := range chain {
			if validation.Parse(format).Name == "" {
				errs = append(errs, fmt.Errorf("ruleset: field %q has a rule with no name", field))
			}
		}
	}
	for field, rules := range r.Messages {
		for name, text := range rules {
			if _, err := validation.ParseMessage(text); err != nil {
				errs = append(errs, fmt.Errorf("ruleset: message for %s.%s: %w", field, name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Lint reports rule names the registry cannot resolve.
func (r *Ruleset) Lint(registry *validation.Registry) error {
	var errs []error
	for _, field := range r.Fields() {
		for _, format := range r.Rules[field] {
			name := validation.Parse(format).Name
			if !registry.Has(name) {
				errs = append(errs, fmt.Errorf("field %q uses unknown rule %q", field, name))
			}
		}
	}
	return errors.Join(errs...)
}

// Fields returns the ruleset's field names, sorted.
func (r *Ruleset) Fields() []string {
	fields := make([]string, 0, len(r.Rules))
	for field := range r.Rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Spec converts the ruleset into a validation spec.
func (r *Ruleset) Spec() validation.Spec {
	spec := make(validation.Spec, len(r.Rules))
	for field, chain := range r.Rules {
		spec[field] = chain
	}
	return spec
}

// Overrides converts the ruleset's messages into per-call overrides.
func (r *Ruleset) Overrides() validation.Overrides {
	return validation.TextOverrides(r.Messages)
}

// Package errorbag holds the per-field error messages produced by a
// validation run.
//
// A Bag maps field names to an ordered, non-empty list of messages. Bags are
// created fresh for every validation call and owned by the caller afterwards;
// they are not safe for concurrent mutation.
package errorbag

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// Option configures a Bag.
type Option func(*Bag)

// WithLogger sets the logger used for shape violations and Log.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bag) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Bag is an append-only-per-field multi-map of error messages.
type Bag struct {
	errors map[string][]string
	order  []string
	logger *log.Logger
}

// New returns an empty Bag.
func New(opts ...Option) *Bag {
	b := &Bag{
		errors: make(map[string][]string),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// From builds a Bag from pre-existing data. Data that fails Shape is logged
// and the returned Bag is empty; the violation never reaches the caller.
func From(data any, opts ...Option) *Bag {
	b := New(opts...)

	entries, err := normalize(data)
	if err != nil {
		b.logger.Error("discarding malformed error data", "err", err)
		return b
	}

	fields := make([]string, 0, len(entries))
	for field := range entries {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		msgs := entries[field]
		if field == "" || len(msgs) == 0 {
			continue
		}
		b.errors[field] = msgs
		b.order = append(b.order, field)
	}

	return b
}

// Shape reports whether data can seed a Bag: a map whose values are all
// message lists.
func Shape(data any) error {
	_, err := normalize(data)
	return err
}

func normalize(data any) (map[string][]string, error) {
	switch d := data.(type) {
	case nil:
		return nil, nil
	case map[string][]string:
		out := make(map[string][]string, len(d))
		for field, msgs := range d {
			out[field] = append([]string(nil), msgs...)
		}
		return out, nil
	case map[string]any:
		out := make(map[string][]string, len(d))
		for field, value := range d {
			msgs, err := toMessages(value)
			if err != nil {
				return nil, fmt.Errorf("%w: value for %q: %v", ErrShapeViolation, field, err)
			}
			out[field] = msgs
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected a map of message lists, got %T", ErrShapeViolation, data)
	}
}

func toMessages(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		msgs := make([]string, 0, len(v))
		for _, item := range v {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, err
			}
			msgs = append(msgs, s)
		}
		return msgs, nil
	default:
		return nil, fmt.Errorf("%T is not a list", value)
	}
}

// Add appends message to the list for field.
func (b *Bag) Add(field, message string) error {
	if field == "" {
		b.loggerOrDefault().Error("adding error without a field", "message", message)
		return ErrEmptyID
	}
	if b.errors == nil {
		b.errors = make(map[string][]string)
	}
	if _, ok := b.errors[field]; !ok {
		b.order = append(b.order, field)
	}
	b.errors[field] = append(b.errors[field], message)
	return nil
}

// Has reports whether field has at least one message. An empty field asks
// whether the bag holds any message at all.
func (b *Bag) Has(field string) bool {
	if field == "" {
		return b.Any()
	}
	return len(b.errors[field]) > 0
}

// Any reports whether any field has a message.
func (b *Bag) Any() bool {
	return len(b.errors) > 0
}

// Remove deletes every message for field and reports whether there were any.
func (b *Bag) Remove(field string) bool {
	if field == "" || !b.Has(field) {
		return false
	}
	delete(b.errors, field)
	for i, f := range b.order {
		if f == field {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the messages recorded for field.
func (b *Bag) Get(field string) ([]string, bool) {
	if field == "" || !b.Has(field) {
		return nil, false
	}
	return append([]string(nil), b.errors[field]...), true
}

// First returns the first message for field, or "".
func (b *Bag) First(field string) string {
	if msgs := b.errors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// All returns a copy of the full field to messages mapping.
func (b *Bag) All() map[string][]string {
	out := make(map[string][]string, len(b.errors))
	for field, msgs := range b.errors {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// Fields returns the fields with messages in the order they were first added.
func (b *Bag) Fields() []string {
	return append([]string(nil), b.order...)
}

// Len returns the number of fields with messages.
func (b *Bag) Len() int {
	return len(b.errors)
}

// Err returns nil for an empty bag, otherwise an *Error wrapping it.
func (b *Bag) Err() error {
	if !b.Any() {
		return nil
	}
	return &Error{Bag: b}
}

// Log writes every recorded message to logger, or to the bag's own logger
// when logger is nil.
func (b *Bag) Log(logger *log.Logger) {
	if logger == nil {
		logger = b.loggerOrDefault()
	}
	if !b.Any() {
		return
	}
	logger.Error("has following errors", "count", b.Len())
	for _, field := range b.order {
		for _, msg := range b.errors[field] {
			logger.Error(msg, "field", field)
		}
	}
}

func (b *Bag) MarshalJSON() ([]byte, error) {
	if b.errors == nil {
		return []byte("{}"), nil
	}
	return jsonCodec.Marshal(b.errors)
}

func (b *Bag) UnmarshalJSON(data []byte) error {
	var raw map[string][]string
	if err := jsonCodec.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding error bag: %w", err)
	}
	fresh := From(raw, WithLogger(b.loggerOrDefault()))
	b.errors = fresh.errors
	b.order = fresh.order
	b.logger = fresh.logger
	return nil
}

func (b *Bag) loggerOrDefault() *log.Logger {
	if b.logger == nil {
		return log.Default()
	}
	return b.logger
}

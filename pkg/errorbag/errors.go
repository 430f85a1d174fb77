package errorbag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID is returned by Add when no field name is given.
	ErrEmptyID = errors.New("id is not given")

	// ErrShapeViolation is returned by Shape when pre-existing data is not a
	// map of field names to message lists.
	ErrShapeViolation = errors.New("error data has an invalid shape")

	// ErrInvalid matches any *Error produced by Bag.Err.
	ErrInvalid = errors.New("validation failed")
)

// Error is the error form of a non-empty Bag.
type Error struct {
	Bag *Bag
}

func (e *Error) Error() string {
	var parts []string
	for _, field := range e.Bag.Fields() {
		msgs, _ := e.Bag.Get(field)
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// FromError extracts the Bag carried by err, if any.
func FromError(err error) (*Bag, bool) {
	var bagErr *Error
	if errors.As(err, &bagErr) {
		return bagErr.Bag, true
	}
	return nil, false
}

package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTarget is returned when a spec names a field the values do
	// not contain. It indicates a caller bug, not invalid input.
	ErrMissingTarget = errors.New("missing validation target")

	// ErrInvalidSpec is returned when a rule chain is neither a string nor a
	// list of strings.
	ErrInvalidSpec = errors.New("invalid validation spec")
)

// MissingTargetError names the field that aborted an Execute call.
type MissingTargetError struct {
	Field string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingTarget, e.Field)
}

func (e *MissingTargetError) Unwrap() error {
	return ErrMissingTarget
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/internal/config"
	"github.com/artisanexperiences/vetter/pkg/errorbag"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrConfiguration    = errors.New("configuration error")
)

func configurationError(err error) error {
	return fmt.Errorf("%w: %w", ErrConfiguration, err)
}

// exactArgs wraps cobra.ExactArgs so argument errors map to
// ExitInvalidArguments.
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func minimumArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.MinimumNArgs(n))
}

func maximumArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.MaximumNArgs(n))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}
		return nil
	}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return config.ExitSuccess
	case errors.Is(err, validation.ErrMissingTarget):
		return config.ExitMissingTarget
	case errors.Is(err, errorbag.ErrInvalid):
		return config.ExitValidationFailed
	case errors.Is(err, ErrConfiguration), errors.Is(err, validation.ErrInvalidSpec):
		return config.ExitConfigurationError
	case errors.Is(err, ErrInvalidArguments):
		return config.ExitInvalidArguments
	default:
		return config.ExitGeneralError
	}
}

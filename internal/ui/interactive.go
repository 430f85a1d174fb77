package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/pkg/rules"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// ShouldPrompt reports whether cmd may prompt the user. Prompts are skipped
// with --no-interactive or when not attached to a terminal.
func ShouldPrompt(cmd *cobra.Command) bool {
	if noInteractive, err := cmd.Flags().GetBool("no-interactive"); err == nil && noInteractive {
		return false
	}
	return IsInteractive()
}

// IsAbort reports whether err came from the user cancelling a prompt.
func IsAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

func Confirm(title string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

// ConfirmOverwrite asks before replacing an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return Confirm(fmt.Sprintf("%s already exists. Overwrite?", path))
}

const rulesetNameRules = "required|regex:^[a-z0-9][a-z0-9_-]*$"

var rulesetNameMessages = validation.TextOverrides(map[string]map[string]string{
	"name": {
		"required": "ruleset name cannot be empty",
		"regex":    "ruleset name may only contain lowercase letters, digits, '-' and '_'",
	},
})

// PromptRulesetName asks for the name of the sample ruleset to create.
func PromptRulesetName(defaultName string) (string, error) {
	name := defaultName

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ruleset name").
				Description("Written to <name>.rules.yaml").
				Placeholder(defaultName).
				Value(&name).
				Validate(ValidateRulesetName),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", err
	}

	return name, nil
}

// ValidateRulesetName checks name is usable as a file name prefix.
func ValidateRulesetName(name string) error {
	v := validation.New(rules.Registry())
	failure, failed, err := v.Check("name", name, rulesetNameRules)
	if err != nil {
		return err
	}
	if failed {
		return errors.New(v.Message(failure, rulesetNameMessages))
	}
	return nil
}

// Package rules provides the built-in rule predicates and their default
// English messages.
//
// Every predicate is a pure validation.Predicate: it reports true when the
// value FAILS. Malformed parameters (a missing or non-numeric limit, an
// invalid pattern) fail the rule rather than panic.
package rules

import (
	"fmt"

	"github.com/artisanexperiences/vetter/pkg/validation"
)

// Rule names.
const (
	NameRequired     = "required"
	NameEmail        = "email"
	NameMin          = "min"
	NameMax          = "max"
	NameBetween      = "between"
	NameRegex        = "regex"
	NameNumeric      = "numeric"
	NameNotIn        = "not_in"
	NameAccepted     = "accepted"
	NameConfirmation = "confirmation"
	NameDate         = "date"
	NameAfter        = "after"
	NameBefore       = "before"
)

// Definitions returns the built-in rules.
func Definitions() map[string]validation.Definition {
	return map[string]validation.Definition{
		NameRequired:     validation.Rule(Required),
		NameEmail:        validation.Rule(Email),
		NameMin:          validation.Rule(Min),
		NameMax:          validation.Rule(Max),
		NameBetween:      validation.Rule(Between),
		NameRegex:        validation.Rule(Regex),
		NameNumeric:      validation.Rule(Numeric),
		NameNotIn:        validation.Rule(NotIn),
		NameAccepted:     validation.Rule(Accepted),
		NameConfirmation: validation.RuleWithPrepare(Confirmation, PrepareConfirmation),
		NameDate:         validation.Rule(Date),
		NameAfter:        validation.RuleWithPrepare(After, PrepareFieldReference),
		NameBefore:       validation.RuleWithPrepare(Before, PrepareFieldReference),
	}
}

// Messages returns the default message for every built-in rule.
func Messages() map[string]validation.Message {
	return map[string]validation.Message{
		NameRequired:     validation.Text("This field is required."),
		NameEmail:        validation.Text("Please enter a valid email address."),
		NameMin:          validation.MessageFunc(minMessage),
		NameMax:          validation.MessageFunc(maxMessage),
		NameBetween:      validation.MessageFunc(betweenMessage),
		NameRegex:        validation.Text("The format is invalid."),
		NameNumeric:      validation.Text("Please enter a number."),
		NameNotIn:        validation.MessageFunc(notInMessage),
		NameAccepted:     validation.Text("This field must be accepted."),
		NameConfirmation: validation.Text("The confirmation does not match."),
		NameDate:         validation.Text("Please enter a valid date."),
		NameAfter:        validation.MessageFunc(afterMessage),
		NameBefore:       validation.MessageFunc(beforeMessage),
	}
}

// Registry returns a registry holding the built-in rules and messages.
func Registry() *validation.Registry {
	return validation.NewRegistry(Definitions(), Messages())
}

func param(params []string, i int) string {
	if i < len(params) {
		return params[i]
	}
	return "?"
}

func minMessage(_ any, params []string) string {
	return fmt.Sprintf("Please enter at least %s.", param(params, 0))
}

func maxMessage(_ any, params []string) string {
	return fmt.Sprintf("Please enter %s or less.", param(params, 0))
}

func betweenMessage(_ any, params []string) string {
	return fmt.Sprintf("Please enter between %s and %s.", param(params, 0), param(params, 1))
}

func notInMessage(value any, _ []string) string {
	return fmt.Sprintf("%v is not an allowed value.", value)
}

func afterMessage(_ any, params []string) string {
	return fmt.Sprintf("Please enter a date after %s.", param(params, 0))
}

func beforeMessage(_ any, params []string) string {
	return fmt.Sprintf("Please enter a date before %s.", param(params, 0))
}

package cli

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/internal/config"
	"github.com/artisanexperiences/vetter/internal/ui"
	"github.com/artisanexperiences/vetter/pkg/errorbag"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type validateResult struct {
	Valid  bool          `json:"valid"`
	Errors *errorbag.Bag `json:"errors"`
}

var validateCmd = &cobra.Command{
	Use:   "validate RULESET VALUES",
	Short: "Validate a values file against a ruleset",
	Long: `Validates the values in a YAML or JSON file against the rule chains in a
ruleset file. Every field named by the ruleset must be present in the values
file; a missing field aborts validation.

Exit codes:
  0  all fields passed
  3  the ruleset or values file cannot be read
  4  one or more fields failed
  5  a field named by the ruleset is missing from the values`,
	Args: exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := OpenRunContext(cmd)
		if err != nil {
			return err
		}

		format, err := outputFormat(cmd, rc.Config)
		if err != nil {
			return err
		}

		rs, err := config.LoadRuleset(rc.FS, args[0])
		if err != nil {
			return configurationError(err)
		}

		v := rc.Validator()
		if err := rs.Lint(v.Registry()); err != nil {
			if mustGetBool(cmd, "strict") {
				return configurationError(err)
			}
			for _, line := range strings.Split(err.Error(), "\n") {
				ui.PrintWarning(line)
			}
		}

		values, err := config.LoadValues(rc.FS, args[1])
		if err != nil {
			return configurationError(err)
		}

		rc.Logger.Debug("validating", "ruleset", args[0], "values", args[1], "fields", len(rs.Rules))

		if format == config.FormatText {
			ui.PrintStep(fmt.Sprintf("Validating %s against %s", args[1], args[0]))
		}

		spec := rs.Spec()
		overrides := rs.Overrides()
		failures, err := v.Failures(values, spec)
		if err != nil {
			return fmt.Errorf("validating %s: %w", args[1], err)
		}
		bag, err := v.Collect(failures, overrides)
		if err != nil {
			return fmt.Errorf("validating %s: %w", args[1], err)
		}

		if format == config.FormatJSON {
			out, err := json.MarshalIndent(validateResult{Valid: !bag.Any(), Errors: bag}, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			ui.Println(string(out))
			return bag.Err()
		}

		if !bag.Any() {
			ui.PrintDone(fmt.Sprintf("All %d fields passed", len(rs.Rules)))
			return nil
		}

		if mustGetBool(cmd, "explain") {
			messages := make([]string, len(failures))
			for i, f := range failures {
				messages[i] = v.Message(f, overrides)
			}
			ui.Println(ui.RenderFailuresTable(failures, messages))
		} else {
			ui.Println(ui.RenderBagTable(bag))
		}

		ui.PrintError(fmt.Sprintf("%d of %d fields failed validation", bag.Len(), len(rs.Rules)))
		return bag.Err()
	},
}

// outputFormat resolves --format, falling back to the configured format.
func outputFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	format := mustGetString(cmd, "format")
	if format == "" {
		format = cfg.Format
	}
	switch format {
	case config.FormatText, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: --format must be %q or %q, got %q", ErrInvalidArguments, config.FormatText, config.FormatJSON, format)
	}
}

func init() {
	validateCmd.Flags().String("format", "", "Output format: text or json (defaults to the configured format)")
	validateCmd.Flags().Bool("explain", false, "Show the failing rule and value for each field")
	validateCmd.Flags().Bool("strict", false, "Treat unknown rule names in the ruleset as an error")
	rootCmd.AddCommand(validateCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/internal/config"
	"github.com/artisanexperiences/vetter/internal/ui"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

type parsedRule struct {
	Format     string   `json:"format"`
	Name       string   `json:"name"`
	Params     []string `json:"params"`
	Registered bool     `json:"registered"`
}

var parseCmd = &cobra.Command{
	Use:   "parse RULE...",
	Short: "Show how rule formats are parsed",
	Long: `Splits each rule format into its name and parameters, the same way
validate does. A pipe-joined chain such as "required|between:1,10" is split
into its rules first.

Prepare decorators are not applied, since they need the other field values.`,
	Args: minimumArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := OpenRunContext(cmd)
		if err != nil {
			return err
		}

		format, err := outputFormat(cmd, rc.Config)
		if err != nil {
			return err
		}

		registry := rc.Validator().Registry()

		var parsed []parsedRule
		var invocations []validation.Invocation
		for _, arg := range args {
			chain, err := validation.NormalizeChain(arg)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
			}
			for _, ruleFormat := range chain {
				inv := validation.Parse(ruleFormat)
				invocations = append(invocations, inv)
				parsed = append(parsed, parsedRule{
					Format:     ruleFormat,
					Name:       inv.Name,
					Params:     inv.Params,
					Registered: registry.Has(inv.Name),
				})
			}
		}

		if format == config.FormatJSON {
			out, err := json.MarshalIndent(parsed, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding parsed rules: %w", err)
			}
			ui.Println(string(out))
			return nil
		}

		ui.Println(ui.RenderParseTable(invocations, registry.Has))
		return nil
	},
}

func init() {
	parseCmd.Flags().String("format", "", "Output format: text or json (defaults to the configured format)")
	rootCmd.AddCommand(parseCmd)
}

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/internal/ui"
	"github.com/artisanexperiences/vetter/pkg/errorbag"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

var rootCmd = &cobra.Command{
	Use:   "vetter",
	Short: "Validate data against Laravel-style rule chains",
	Long: `Vetter checks a flat set of named values against declarative per-field
rule chains such as "required|email" and reports a human-readable message
for every field that fails.

Rulesets live in *.rules.yaml files; values are read from YAML or JSON.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.Configure(mustGetBool(cmd, "quiet"), noColor)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor || !ui.IsInteractive() {
			return cmd.Help()
		}
		printBanner()
		return nil
	},
}

var noColor bool

func printBanner() {
	// One shade per letter of "vetter"
	colors := []lipgloss.Color{
		lipgloss.Color("#C4B5FD"),
		lipgloss.Color("#A78BFA"),
		lipgloss.Color("#8B5CF6"),
		lipgloss.Color("#7C3AED"),
		lipgloss.Color("#6D28D9"),
		lipgloss.Color("#5B21B6"),
	}

	var title strings.Builder
	for i, r := range "VETTER" {
		title.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Bold(true).Render(string(r) + " "))
	}

	versionStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginTop(1)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginBottom(1)

	commandsStyle := lipgloss.NewStyle().
		Foreground(ui.Text)

	commands := `
Commands:
  validate  Validate a values file against a ruleset
  rules     List the registered rules
  parse     Show how rule formats are parsed
  init      Create vetter.yaml and a sample ruleset
  version   Show vetter version

Run 'vetter <command> --help' for more information.`

	ui.Println(title.String())
	ui.Println(versionStyle.Render(fmt.Sprintf("Version %s (commit: %s, built: %s)", Version, Commit, BuildDate)))
	ui.Println(subtitleStyle.Render("Rule-chain validation for flat data"))
	ui.Println(commandsStyle.Render(commands))
}

// Execute runs the root command. Validation failures have already been
// rendered by the time they reach here, so only other errors are printed.
func Execute() error {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		if ui.IsAbort(err) {
			return nil
		}
		switch {
		case errors.Is(err, errorbag.ErrInvalid):
		case validation.IsMissingTarget(err):
			ui.PrintErrorWithHint(err.Error(), "Every field named by the ruleset must be present in the values file. Use null for an empty value.")
		default:
			ui.PrintError(err.Error())
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors and results")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("no-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("config", "", "Path to a vetter.yaml config file")
}

func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/internal/config"
	"github.com/artisanexperiences/vetter/internal/fs"
	"github.com/artisanexperiences/vetter/internal/ui"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

const defaultRulesetName = "example"

var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Create vetter.yaml and a sample ruleset",
	Long: `Creates a project config, a sample ruleset and a matching values file.

Arguments:
  DIR  Target directory (defaults to the current directory)

The sample validates as-is:
  vetter validate example.rules.yaml example.values.yaml`,
	Args: maximumArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("getting absolute path: %w", err)
		}

		name := mustGetString(cmd, "name")
		if name == "" {
			name = defaultRulesetName
			if ui.ShouldPrompt(cmd) {
				input, err := ui.PromptRulesetName(defaultRulesetName)
				if err != nil {
					return fmt.Errorf("prompting for ruleset name: %w", err)
				}
				name = input
			}
		}
		if err := ui.ValidateRulesetName(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}

		if err := appFS.MkdirAll(absDir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}

		force := mustGetBool(cmd, "force")
		ui.PrintStep(fmt.Sprintf("Writing project files to %s", absDir))

		configPath := filepath.Join(absDir, config.ConfigName+".yaml")
		if write, err := shouldWrite(cmd, configPath, force); err != nil {
			return err
		} else if write {
			if err := config.Save(appFS, absDir, config.Default()); err != nil {
				return err
			}
			ui.PrintSuccess(fmt.Sprintf("Created %s", configPath))
		}

		rulesetPath := filepath.Join(absDir, name+".rules.yaml")
		if write, err := shouldWrite(cmd, rulesetPath, force); err != nil {
			return err
		} else if write {
			if err := config.SaveRuleset(appFS, rulesetPath, sampleRuleset(name)); err != nil {
				return err
			}
			ui.PrintSuccess(fmt.Sprintf("Created %s", rulesetPath))
		}

		valuesPath := filepath.Join(absDir, name+".values.yaml")
		if write, err := shouldWrite(cmd, valuesPath, force); err != nil {
			return err
		} else if write {
			if err := config.SaveValues(appFS, valuesPath, sampleValues()); err != nil {
				return err
			}
			ui.PrintSuccess(fmt.Sprintf("Created %s", valuesPath))
		}

		ui.PrintDone("Project ready!")
		ui.PrintInfo(fmt.Sprintf("Try: vetter validate %s %s", rulesetPath, valuesPath))
		return nil
	},
}

// shouldWrite decides whether path may be written. Existing files are only
// replaced with --force or after confirmation.
func shouldWrite(cmd *cobra.Command, path string, force bool) (bool, error) {
	if force || !fs.Exists(appFS, path) {
		return true, nil
	}

	if !ui.ShouldPrompt(cmd) {
		return false, fmt.Errorf("%w: %s already exists (use --force to overwrite)", ErrInvalidArguments, path)
	}

	confirmed, err := ui.ConfirmOverwrite(path)
	if err != nil {
		return false, err
	}
	if !confirmed {
		ui.PrintInfo(fmt.Sprintf("Kept existing %s", path))
	}
	return confirmed, nil
}

func sampleRuleset(name string) *config.Ruleset {
	return &config.Ruleset{
		Name:        name,
		Description: "Sample sign-up form rules",
		Rules: map[string]validation.Chain{
			"email":    {"required", "email"},
			"password": {"required", "min:8", "confirmation"},
			"age":      {"numeric", "between:18,120"},
			"role":     {"required", "not_in:root,admin"},
			"terms":    {"accepted"},
		},
		Messages: map[string]map[string]string{
			"password": {"confirmation": "The passwords do not match."},
		},
	}
}

func sampleValues() map[string]interface{} {
	return map[string]interface{}{
		"email":                 "ada@example.com",
		"password":              "correct-horse",
		"password_confirmation": "correct-horse",
		"age":                   36,
		"role":                  "editor",
		"terms":                 true,
	}
}

func init() {
	initCmd.Flags().String("name", "", "Name of the sample ruleset")
	initCmd.Flags().Bool("force", false, "Overwrite existing files without asking")
	rootCmd.AddCommand(initCmd)
}

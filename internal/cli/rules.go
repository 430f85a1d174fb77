package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/internal/config"
	"github.com/artisanexperiences/vetter/internal/ui"
)

type ruleInfo struct {
	Name    string `json:"name"`
	Prepare bool   `json:"prepare"`
	Message string `json:"message"`
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered rules",
	Long: `Lists every built-in rule with its default message. Messages configured
under 'messages' in vetter.yaml replace the built-in ones.`,
	Args: exactArgs(0),
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

		if format == config.FormatJSON {
			infos := make([]ruleInfo, 0, len(registry.Names()))
			for _, name := range registry.Names() {
				_, prepare := registry.Prepare(name)
				info := ruleInfo{Name: name, Prepare: prepare}
				if msg, ok := registry.Message("", name, nil); ok {
					info.Message = msg.Render(":value", []string{":0", ":1"})
				}
				infos = append(infos, info)
			}
			out, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding rules: %w", err)
			}
			ui.Println(string(out))
			return nil
		}

		ui.Println(ui.RenderRulesTable(registry))
		return nil
	},
}

func init() {
	rulesCmd.Flags().String("format", "", "Output format: text or json (defaults to the configured format)")
	rootCmd.AddCommand(rulesCmd)
}

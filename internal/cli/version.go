package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/internal/ui"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the current version of Vetter.`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Println(fmt.Sprintf("vetter version %s (commit: %s, built: %s)", Version, Commit, BuildDate))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

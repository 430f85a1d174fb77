package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Stdout receives command results and progress output.
	Stdout io.Writer = os.Stdout
	// Stderr receives errors and warnings.
	Stderr io.Writer = os.Stderr

	quiet   bool
	noColor bool
)

// Configure applies the global --quiet and --no-color flags. Quiet output
// keeps errors and command results but drops progress lines.
func Configure(quietOutput, disableColor bool) {
	quiet = quietOutput
	noColor = disableColor
}

// Render applies style unless color output is disabled.
func Render(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}

func badge(style lipgloss.Style, label string) string {
	if noColor {
		return "[" + label + "]"
	}
	return style.Render(label)
}

func PrintSuccess(msg string) {
	if quiet {
		return
	}
	fmt.Fprintf(Stdout, "%s %s\n", badge(SuccessBadge, "OK"), msg)
}

func PrintInfo(msg string) {
	if quiet {
		return
	}
	fmt.Fprintf(Stdout, "%s %s\n", badge(InfoBadge, "INFO"), msg)
}

func PrintStep(msg string) {
	if quiet {
		return
	}
	fmt.Fprintf(Stdout, "%s %s\n", Render(MutedStyle, "→"), msg)
}

func PrintDone(msg string) {
	if quiet {
		return
	}
	fmt.Fprintf(Stdout, "%s %s\n", Render(lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true), "✓"), msg)
}

func PrintWarning(msg string) {
	fmt.Fprintf(Stderr, "%s %s\n", badge(WarningBadge, "WARN"), msg)
}

func PrintError(msg string) {
	fmt.Fprintf(Stderr, "%s %s\n", badge(ErrorBadge, "ERROR"), msg)
}

// PrintErrorWithHint prints msg followed by an indented, muted hint.
func PrintErrorWithHint(msg, hint string) {
	PrintError(msg)
	if hint != "" {
		fmt.Fprintf(Stderr, "  %s\n", Render(MutedStyle, hint))
	}
}

// Println writes a result line. Results are printed even when quiet.
func Println(s string) {
	fmt.Fprintln(Stdout, s)
}

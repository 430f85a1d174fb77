package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#10B981")

	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorInfo    = lipgloss.Color("#06B6D4")
	ColorMuted   = lipgloss.Color("#6B7280")

	Text    = lipgloss.Color("#F9FAFB")
	TextDim = lipgloss.Color("#9CA3AF")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SuccessBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000")).
			Background(ColorSuccess).
			Padding(0, 1).
			Bold(true)

	WarningBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000")).
			Background(ColorWarning).
			Padding(0, 1).
			Bold(true)

	ErrorBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(ColorError).
			Padding(0, 1).
			Bold(true)

	InfoBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000")).
			Background(ColorInfo).
			Padding(0, 1).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// FieldStyle highlights field names in validation output.
	FieldStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// RuleStyle renders rule formats such as "between:1,10".
	RuleStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	// ValueStyle renders the value a field was checked with.
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

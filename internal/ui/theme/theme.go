package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, keyed to the certification tiers.
var (
	Foundational = lipgloss.Color("#34A853") // Green
	Associate    = lipgloss.Color("#FBBC05") // Yellow
	Professional = lipgloss.Color("#4285F4") // Blue
	Primary      = lipgloss.Color("#8AB4F8")
	Success      = lipgloss.Color("#22C55E")
	Error        = lipgloss.Color("#F43F5E")
	Text         = lipgloss.Color("#F8FAFC")
	TextDim      = lipgloss.Color("#94A3B8")
	Border       = lipgloss.Color("#334155")
)

// TierStyle returns the accent style for a tier name.
func TierStyle(tier string) lipgloss.Style {
	switch tier {
	case "foundational":
		return lipgloss.NewStyle().Foreground(Foundational)
	case "associate":
		return lipgloss.NewStyle().Foreground(Associate)
	default:
		return lipgloss.NewStyle().Foreground(Professional)
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Professional)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/certdrill/internal/ui/theme"
)

// ProgressBar renders a one-line text progress bar.
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

// Percent returns Done/Total clamped to [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	v := float64(p.Done) / float64(p.Total)
	return min(max(v, 0), 1)
}

// View renders the bar followed by "done/total".
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}

	counter := fmt.Sprintf(" %d/%d", p.Done, p.Total)
	barWidth := p.Width - lipgloss.Width(b.String()) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)))
	b.WriteString(theme.Hint.Render(counter))
	return b.String()
}

package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certdrill/internal/ui/theme"
)

// MultiChoice is a lettered option selector. Options can be picked with the
// arrow keys and enter, or directly by letter or number.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a selector over options. correctIndex is only used
// to color the options once an answer is submitted.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Letter returns the designator shown for option i.
func Letter(i int) string {
	return string(rune('A' + i))
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	if i := m.directIndex(key); i >= 0 {
		m.Selected = i
		m.submit()
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.submit()
	}
	return m, nil
}

// directIndex maps a letter or digit key to an option index, or -1.
func (m MultiChoice) directIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	c := strings.ToUpper(key)[0]
	i := -1
	switch {
	case c >= 'A' && c <= 'Z':
		i = int(c - 'A')
	case c >= '1' && c <= '9':
		i = int(c - '1')
	}
	if i >= len(m.Options) {
		return -1
	}
	return i
}

func (m *MultiChoice) submit() {
	if len(m.Options) == 0 {
		return
	}
	m.Submitted = true
	m.ChosenIndex = m.Selected
}

// Chosen returns the letter of the submitted option, or "" before submission.
func (m MultiChoice) Chosen() string {
	if !m.Submitted {
		return ""
	}
	return Letter(m.ChosenIndex)
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, Letter(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case m.Submitted && i == m.ChosenIndex:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

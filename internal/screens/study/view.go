package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/certdrill/internal/question"
	"github.com/abhisek/certdrill/internal/session"
	"github.com/abhisek/certdrill/internal/ui/components"
	"github.com/abhisek/certdrill/internal/ui/theme"
)

const width = 64

func (m *Model) View() tea.View {
	return tea.NewView(m.Render())
}

// Render returns the screen as text.
func (m *Model) Render() string {
	q, ok := m.sess.Current()
	if !ok || m.quit || m.err != nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n",
		theme.TierStyle(string(m.bank.Tier)).Render(m.bank.ShortName),
		theme.Title.Render(m.bank.Name),
		theme.Hint.Render(string(m.sess.Mode)+" mode"),
	)
	bar := components.ProgressBar{Label: "Question", Done: m.sess.Index() + 1, Total: m.sess.Len(), Width: width}
	b.WriteString(bar.View() + "\n")
	b.WriteString(theme.Card.Width(width).Render(theme.Body.Render(q.Prompt)) + "\n")

	switch m.sess.Mode {
	case session.ModeQuiz, session.ModeReview:
		b.WriteString(m.choice.View())
	case session.ModeMemorise:
		b.WriteString(optionList(q))
		b.WriteString(answerBlock(q))
	case session.ModeFillInBlank:
		b.WriteString(m.input.View() + "\n")
	case session.ModeFlashcard:
		if m.phase != phaseAsk {
			b.WriteString(answerBlock(q))
		}
	}

	if m.phase == phaseFeedback {
		b.WriteString(m.feedback(q))
	}

	b.WriteString("\n" + theme.Hint.Render(m.keyHints()) + "\n")
	return b.String()
}

func optionList(q question.Question) string {
	var b strings.Builder
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %s)  %s\n", components.Letter(i), opt)
	}
	return b.String()
}

func answerBlock(q question.Question) string {
	s := theme.Title.Render("Answer:") + " " + q.CorrectOption() + "\n"
	if q.Explanation != "" {
		s += theme.Hint.Render(q.Explanation) + "\n"
	}
	return s
}

func (m *Model) feedback(q question.Question) string {
	if m.result == nil {
		return theme.Hint.Render("Already answered.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	if m.result.Correct {
		b.WriteString(theme.Correct.Render("Correct!") + "\n")
	} else {
		b.WriteString(theme.Incorrect.Render("Incorrect.") + "\n")
		if m.result.ReinsertedAt >= 0 {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("This question will come back at position %d.", m.result.ReinsertedAt+1)) + "\n")
		}
	}
	if m.sess.Mode != session.ModeFlashcard {
		b.WriteString(answerBlock(q))
	}
	return b.String()
}

func (m *Model) keyHints() string {
	switch {
	case m.typing():
		return "enter check · esc quit"
	case m.phase == phaseReveal:
		return "2/y got it · 1/n missed it"
	case m.phase == phaseFeedback, m.sess.Mode == session.ModeMemorise:
		return "enter next · ← previous · q quit"
	case m.sess.Mode == session.ModeFlashcard:
		return "enter reveal · ←→ navigate · q quit"
	default:
		return "A-D or ↑↓ enter select · ←→ navigate · q quit"
	}
}

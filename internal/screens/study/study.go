// Package study is the interactive screen that drives a study session.
package study

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/certdrill/internal/question"
	"github.com/abhisek/certdrill/internal/session"
	"github.com/abhisek/certdrill/internal/ui/components"
)

type phase int

const (
	phaseAsk      phase = iota // waiting for an answer
	phaseReveal                // flashcard answer shown, waiting for a self-grade
	phaseFeedback              // answer graded or already answered
)

// Model is the bubbletea model of one study session. It renders inline
// rather than taking over the terminal.
type Model struct {
	ctx  context.Context
	sess *session.Session
	bank question.Bank

	phase  phase
	choice components.MultiChoice
	input  components.TextInput
	result *session.Result

	err  error
	quit bool
}

var _ tea.Model = (*Model)(nil)

// New creates the screen for sess. ctx is passed to every answer so saves
// stop when the program is cancelled.
func New(ctx context.Context, sess *session.Session, bank question.Bank) *Model {
	m := &Model{ctx: ctx, sess: sess, bank: bank}
	m.load()
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.sess.Mode == session.ModeFillInBlank {
		return m.input.Init()
	}
	return nil
}

// Err returns the error that stopped the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Quit reports whether the learner left before the end of the queue.
func (m *Model) Quit() bool {
	return m.quit
}

// load resets the per-question state for the current position.
func (m *Model) load() {
	m.result = nil
	q, ok := m.sess.Current()
	if !ok {
		return
	}
	m.phase = phaseAsk
	if m.sess.Answered() {
		m.phase = phaseFeedback
	}
	m.choice = components.NewMultiChoice(q.Options, q.CorrectIndex())
	m.input = components.NewTextInput("Type the answer...", 0)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		if m.typing() {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd
	}
	return m.handleKey(kmsg)
}

// typing reports whether keys go to the text input.
func (m *Model) typing() bool {
	return m.sess.Mode == session.ModeFillInBlank && m.phase == phaseAsk
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "esc":
		m.quit = true
		return m, tea.Quit
	}

	if m.typing() {
		if key == "enter" {
			return m.submitText()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		m.quit = true
		return m, tea.Quit
	case "left", "p":
		if m.phase != phaseReveal && m.sess.Previous() {
			m.load()
		}
		return m, nil
	case "right", "n":
		if m.phase != phaseReveal {
			return m.next()
		}
	}

	switch {
	case m.sess.Mode == session.ModeMemorise:
		if key == "enter" || key == "space" {
			return m.next()
		}

	case m.phase == phaseFeedback:
		if key == "enter" || key == "space" {
			return m.next()
		}

	case m.sess.Mode == session.ModeFlashcard && m.phase == phaseAsk:
		if key == "enter" || key == "space" {
			m.phase = phaseReveal
		}

	case m.phase == phaseReveal:
		switch strings.ToLower(key) {
		case "2", "y":
			return m.grade(true)
		case "1", "n":
			return m.grade(false)
		}

	default:
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			return m.answer(m.choice.Chosen())
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) answer(choice string) (tea.Model, tea.Cmd) {
	res, err := m.sess.Answer(m.ctx, choice)
	return m.settle(res, err)
}

func (m *Model) grade(correct bool) (tea.Model, tea.Cmd) {
	res, err := m.sess.Grade(m.ctx, correct)
	return m.settle(res, err)
}

func (m *Model) submitText() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	q, _ := m.sess.Current()
	correct := q.CheckText(text)
	m.input.Submit(correct)
	return m.grade(correct)
}

func (m *Model) settle(res session.Result, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.result = &res
	m.phase = phaseFeedback
	return m, nil
}

func (m *Model) next() (tea.Model, tea.Cmd) {
	if !m.sess.Next() {
		return m, tea.Quit
	}
	m.load()
	if m.typing() {
		return m, m.input.Init()
	}
	return m, nil
}

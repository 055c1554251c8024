package cmd

import (
	"errors"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/certdrill/internal/performance"
	"github.com/abhisek/certdrill/internal/screens/study"
	"github.com/abhisek/certdrill/internal/session"
	"github.com/abhisek/certdrill/internal/ui/theme"
)

const defaultMode = session.ModeQuiz

func newStudyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Start a study session",
		Long: "Start a study session on the current bank.\n\n" +
			"Modes: flashcard (self-graded), quiz (multiple choice), review\n" +
			"(questions not yet answered correctly), memorise (read only) and\n" +
			"fill-in-blank (type the answer, quiz ordering).",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("mode")
			mode, err := session.ParseMode(raw)
			if err != nil {
				return err
			}
			return runStudy(cmd, mode)
		},
	}
	cmd.Flags().String("mode", string(defaultMode), "Study mode: flashcard, quiz, review, memorise or fill-in-blank")
	return cmd
}

func runStudy(cmd *cobra.Command, mode session.Mode) error {
	ctx := cmd.Context()
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ws, err := a.loadWorkspace(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sess, err := session.Start(mode, ws.questions, session.Options{
		Bank:    ws.bank.Key,
		Store:   ws.perf,
		Updater: performance.NewUpdater(a.src),
		Rand:    a.src,
		Saver:   a.repo,
		Logger:  a.log,
	})
	if errors.Is(err, session.ErrNothingToReview) {
		fmt.Fprintln(out, theme.Correct.Render("No questions need review! All questions have been answered correctly."))
		return nil
	}
	if err != nil {
		return err
	}

	screen := study.New(ctx, sess, ws.bank)
	p := tea.NewProgram(screen,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run study screen: %w", err)
	}
	if err := screen.Err(); err != nil {
		return err
	}

	printSummary(out, sess.Summary())
	return nil
}

func printSummary(w io.Writer, s session.Summary) {
	fmt.Fprintln(w, theme.Title.Render("Session summary"))
	if s.Mode.ReadOnly() {
		fmt.Fprintf(w, "  Questions: %d\n", s.QueueLength)
		return
	}
	fmt.Fprintf(w, "  Answered:  %d\n", s.Answered)
	fmt.Fprintf(w, "  Correct:   %d\n", s.Correct)
	fmt.Fprintf(w, "  Missed:    %d\n", s.Missed)
	fmt.Fprintf(w, "  Accuracy:  %.0f%%\n", s.Accuracy())
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/certdrill/internal/selection"
	"github.com/abhisek/certdrill/internal/ui/theme"
)

func newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "List questions that still need review",
		Long: "List questions in the current bank that were never answered or were\n" +
			"last answered incorrectly. Use `certdrill study --mode review` to drill them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ws, err := a.loadWorkspace(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pending := selection.ForReview(ws.questions, ws.perf)
			if len(pending) == 0 {
				fmt.Fprintln(out, theme.Correct.Render("No questions need review! All questions have been answered correctly."))
				return nil
			}

			fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%d of %d questions need review", len(pending), len(ws.questions))))
			for _, q := range pending {
				fmt.Fprintf(out, "  %s  %s  %s\n", q.ID, theme.Hint.Render(ws.perf.Outcome(q.ID).String()), q.Prompt)
			}
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/certdrill/internal/performance"
	"github.com/abhisek/certdrill/internal/ui/components"
	"github.com/abhisek/certdrill/internal/ui/theme"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress on the current bank",
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

			st := performance.ComputeStats(ws.perf, ws.questions)
			out := cmd.OutOrStdout()
			bar := components.ProgressBar{Label: "Seen", Done: st.Answered, Total: st.TotalQuestions, Width: 48}

			fmt.Fprintln(out, theme.Title.Render(ws.bank.Name))
			fmt.Fprintln(out, bar.View())
			fmt.Fprintf(out, "  Questions:      %d\n", st.TotalQuestions)
			fmt.Fprintf(out, "  Answered:       %d\n", st.Answered)
			fmt.Fprintf(out, "  Correct:        %d\n", st.TotalCorrect)
			fmt.Fprintf(out, "  Incorrect:      %d\n", st.TotalIncorrect)
			fmt.Fprintf(out, "  Pending review: %d\n", st.PendingReview)
			fmt.Fprintf(out, "  Accuracy:       %.1f%%\n", st.Accuracy)
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/certdrill/internal/question"
	"github.com/abhisek/certdrill/internal/ui/theme"
)

func newBanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List question banks",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			current, err := a.currentBank(cmd.Context())
			if err != nil {
				// An unknown --bank should not hide the list.
				current = question.Bank{}
			}
			saved, err := a.repo.SavedBanks(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var tier question.Tier
			for _, b := range question.Catalog {
				if b.Tier != tier {
					tier = b.Tier
					fmt.Fprintln(out, theme.TierStyle(string(tier)).Render(string(tier)))
				}
				marker := " "
				if b.Key == current.Key {
					marker = "*"
				}
				line := fmt.Sprintf(" %s %-6s %s", marker, b.Key, b.Name)
				switch {
				case !b.Available():
					line += theme.Hint.Render("  (coming soon)")
				case slices.Contains(saved, b.Key):
					line += theme.Hint.Render("  (in progress)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

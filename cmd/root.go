package cmd

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "certdrill",
		Short: "Practice for cloud certification exams",
		Long: "certdrill: terminal practice for certification question banks.\n" +
			"Tracks how you do on every question, re-asks the ones you miss later in\n" +
			"the same session and front-loads unresolved questions in new sessions.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudy(cmd, defaultMode)
		},
	}

	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CERTDRILL_DB env var)")
	root.PersistentFlags().String("bank", "", "Question bank key (default: last used bank)")
	root.PersistentFlags().String("data-dir", "", "Directory holding bank datasets (default: ./data)")
	root.PersistentFlags().Uint64("seed", 0, "Random seed for session ordering (0 = random)")

	root.AddCommand(
		newStudyCmd(),
		newReviewCmd(),
		newBanksCmd(),
		newStatsCmd(),
		newResetCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

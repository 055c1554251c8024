package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete saved performance for every bank",
		Long: "Delete saved performance for every bank, including entries written by\n" +
			"older versions before performance was scoped per bank. This cannot be undone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.repo.ResetAll(cmd.Context()); err != nil {
				return err
			}
			a.log.Info("performance reset")
			fmt.Fprintln(cmd.OutOrStdout(), "All performance data deleted.")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm deletion")
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/rkoval/brightpath/internal/ui/theme"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear a learner's schedule and streak",
	Long: `Remove the learner's review schedule and streak. Attempt history
and item difficulty scores are kept; they belong to the items, not the
learner.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println(theme.Hint.Render("This clears your schedule and streak. Re-run with --yes to confirm."))
			return nil
		}

		st, a, cfg, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := resolveLearner(cmd, cfg)
		removed, err := a.ResetLearner(cmd.Context(), learner)
		if err != nil {
			return err
		}

		fmt.Println(theme.Good.Render(fmt.Sprintf("Cleared %d scheduled items and the streak for %s.", removed, learner)))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

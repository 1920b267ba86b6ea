package cmd

import (
	"fmt"

	"github.com/rkoval/brightpath/internal/ui/theme"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current daily streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, a, cfg, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := resolveLearner(cmd, cfg)
		state, err := a.Streak.Get(cmd.Context(), learner)
		if err != nil {
			return err
		}
		if state == nil {
			fmt.Println(theme.Hint.Render("No activity yet. Review something to start a streak."))
			return nil
		}

		fmt.Println(theme.Good.Render(fmt.Sprintf("%d day streak", state.CurrentStreak)),
			theme.Hint.Render(fmt.Sprintf("(longest %d, since %s)", state.LongestStreak, state.StreakStartedAt.Format("2006-01-02"))))
		return nil
	},
}

var streakTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the longest active streaks across learners",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		top, err := a.Streak.Top(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(top) == 0 {
			fmt.Println(theme.Hint.Render("No streaks recorded yet."))
			return nil
		}

		for i, s := range top {
			fmt.Printf("%s %s %s\n",
				theme.Label.Render(fmt.Sprintf("%2d.", i+1)),
				theme.Value.Render(s.LearnerID),
				theme.Good.Render(fmt.Sprintf("%d days", s.CurrentStreak)))
		}
		return nil
	},
}

func init() {
	streakTopCmd.Flags().Int("limit", 10, "Maximum number of learners to show")
	streakCmd.AddCommand(streakTopCmd)
}

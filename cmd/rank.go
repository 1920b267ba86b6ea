package cmd

import (
	"fmt"

	"github.com/rkoval/brightpath/internal/ui/theme"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank <level-id>",
	Short: "Rank a level's items by difficulty, hardest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ascending, _ := cmd.Flags().GetBool("asc")

		st, a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ranked, err := a.Difficulty.RankByLevel(cmd.Context(), args[0], ascending)
		if err != nil {
			return err
		}
		if len(ranked) == 0 {
			fmt.Println(theme.Hint.Render("No items in level " + args[0] + "."))
			return nil
		}

		for _, r := range ranked {
			score := fmt.Sprintf("%.2f", r.Difficulty)
			if r.Estimated {
				score += " (est.)"
			}
			fmt.Println(theme.Value.Render(score), theme.Label.Render(r.ItemID), r.Prompt)
		}
		return nil
	},
}

func init() {
	rankCmd.Flags().Bool("asc", false, "Sort easiest first instead")
}

package cmd

import (
	"fmt"

	"github.com/rkoval/brightpath/internal/ui/theme"
	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, a, cfg, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := resolveLearner(cmd, cfg)
		due, err := a.DueForReview(cmd.Context(), learner)
		if err != nil {
			return err
		}

		if len(due) == 0 {
			fmt.Println(theme.Hint.Render("Nothing due. Come back later."))
			return nil
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("%d due for review", len(due))))
		for _, d := range due {
			fmt.Println(theme.Due.Render("●"), theme.Value.Render(d.Prompt),
				theme.Hint.Render(fmt.Sprintf("(%s, last seen %s)", d.ItemID, d.LastReviewedAt.Format("2006-01-02"))))
		}
		return nil
	},
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/rkoval/brightpath/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, a, cfg, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner := resolveLearner(cmd, cfg)
		stats, err := a.Review.Stats(cmd.Context(), learner)
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(theme.Title.Render("Stats for "+learner) + "\n\n")
		b.WriteString(statLine("Total reviews", fmt.Sprintf("%d", stats.TotalReviews)))
		b.WriteString(statLine("Items scheduled", fmt.Sprintf("%d", stats.ItemsScheduled)))
		b.WriteString(statLine("Average ease", fmt.Sprintf("%.2f", stats.AvgEaseFactor)))
		b.WriteString(statLine("Due for review", fmt.Sprintf("%d", stats.DueForReview)))

		fmt.Println(theme.Card.Render(strings.TrimRight(b.String(), "\n")))
		return nil
	},
}

func statLine(label, value string) string {
	return fmt.Sprintf("%s %s\n", theme.Label.Render(fmt.Sprintf("%-16s", label)), theme.Value.Render(value))
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/rkoval/brightpath/internal/srs"
	"github.com/rkoval/brightpath/internal/ui/theme"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <item-id> <quality>",
	Short: "Record a review outcome and reschedule the item",
	Long: `Record the outcome of reviewing one item. Quality is the SM-2
recall score from 0 to 5: 0-2 is a failed recall, 3-5 a successful one.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID := args[0]
		quality, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quality must be an integer between %d and %d, got %q", srs.MinQuality, srs.MaxQuality, args[1])
		}

		st, a, cfg, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		learner := resolveLearner(cmd, cfg)
		if err := a.RecordReview(ctx, learner, itemID, quality); err != nil {
			return err
		}

		state, err := st.ReviewRepo().Get(ctx, learner, itemID)
		if err != nil {
			return fmt.Errorf("load review state: %w", err)
		}

		if quality >= srs.PassingQuality {
			fmt.Println(theme.Good.Render("Recalled"), theme.Label.Render("quality"), theme.Value.Render(strconv.Itoa(quality)))
		} else {
			fmt.Println(theme.Bad.Render("Missed"), theme.Label.Render("quality"), theme.Value.Render(strconv.Itoa(quality)))
		}
		fmt.Println(theme.Label.Render("Next review:"), theme.Value.Render(state.NextReviewAt.Format("2006-01-02")))
		fmt.Println(theme.Label.Render("Interval:"), theme.Value.Render(fmt.Sprintf("%dd", state.IntervalDays)),
			theme.Label.Render("Ease:"), theme.Value.Render(fmt.Sprintf("%.2f", state.EaseFactor)))
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/rkoval/brightpath/internal/ui/theme"
	"github.com/spf13/cobra"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage the item catalog",
}

var itemImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import items from a JSON catalog",
	Long: `Validate a JSON catalog against the item schema and load its
entries. Items whose IDs already exist are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := a.Items.ImportFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(theme.Good.Render(fmt.Sprintf("Imported %d", res.Imported)),
			theme.Hint.Render(fmt.Sprintf("(%d skipped)", res.Skipped)))
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list <level-id>",
	Short: "List the items in a level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		items, err := a.Items.ListByLevel(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println(theme.Hint.Render("No items in level " + args[0] + "."))
			return nil
		}

		for _, it := range items {
			fmt.Println(theme.Label.Render(it.ItemID), it.Prompt)
		}
		return nil
	},
}

func init() {
	itemCmd.AddCommand(itemImportCmd)
	itemCmd.AddCommand(itemListCmd)
}

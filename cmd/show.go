package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/carte/internal/display"
)

var showCmd = &cobra.Command{
	Use:   "show [table]",
	Short: "Display the cards of a table",
	Long: `Show prints every card of a table with its attributes, in file order.

The table is looked up in your table library (XDG_DATA_HOME/carte/tables)
or as a path. Without an argument the default table from your config is used.

Examples:
  carte show
  carte show belote
  carte show ./my-table.toml --card c2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTable(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		cardID, _ := cmd.Flags().GetString("card")
		if cardID != "" {
			c, err := t.GetCard(cardID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", colorize.CyanString("Card:"), colorize.HiWhiteString("%s (%s)", c.ID, display.Name(c)))
			return display.Card(out, c)
		}

		fmt.Fprintf(out, "%s %s\n", colorize.CyanString("Table:"), colorize.HiWhiteString("%s (%s)", t.Name, t.ID))
		if t.Description != "" {
			fmt.Fprintln(out, t.Description)
		}
		fmt.Fprintln(out)
		return display.Registry(out, t.Registry)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("card", "c", "", "Show a single card by ID")
}

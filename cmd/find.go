package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arcanaland/carte/internal/card"
	"github.com/arcanaland/carte/internal/display"
	"github.com/arcanaland/carte/internal/registry"
)

var (
	findRank      string
	findSuit      string
	findAttackers string
	findPoints    int
)

var findCmd = &cobra.Command{
	Use:   "find [table]",
	Short: "Query the cards of a table",
	Long: `Find runs one or more queries against a table and prints the matching cards.
Each query narrows the result of the previous one, in the order rank, suit,
points, attackers.

Examples:
  carte find --suit clubs
  carte find --rank 3
  carte find --attackers c3
  carte find belote --suit hearts --attackers c1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("rank") && !flags.Changed("suit") &&
			!flags.Changed("attackers") && !flags.Changed("points") {
			return errors.New("at least one of --rank, --suit, --points or --attackers is required")
		}

		t, err := openTable(args)
		if err != nil {
			return err
		}

		res := t.Registry
		if flags.Changed("rank") {
			rank, err := card.ParseRank(findRank)
			if err != nil {
				return err
			}
			if res, err = res.FindByRank(rank); err != nil {
				return err
			}
			logResult("rank", rank.String(), res)
		}
		if flags.Changed("suit") {
			suit, err := card.ParseSuit(findSuit)
			if err != nil {
				return err
			}
			if res, err = res.FindBySuit(suit); err != nil {
				return err
			}
			logResult("suit", suit.String(), res)
		}
		if flags.Changed("points") {
			if res, err = res.FindByPoints(findPoints); err != nil {
				return err
			}
			logResult("points", fmt.Sprint(findPoints), res)
		}
		if flags.Changed("attackers") {
			target, err := t.GetCard(findAttackers)
			if err != nil {
				return err
			}
			if res, err = res.FindAttackers(target); err != nil {
				return err
			}
			logResult("attackers", findAttackers, res)
		}

		return display.Registry(cmd.OutOrStdout(), res)
	},
}

func logResult(query, value string, res *registry.Registry) {
	n, _ := res.Size()
	slog.Debug("query", "by", query, "value", value, "matches", n)
}

func init() {
	RootCmd.AddCommand(findCmd)

	findCmd.Flags().StringVarP(&findRank, "rank", "r", "", "Keep cards of this rank (ace, 2..10, jack, queen, king)")
	findCmd.Flags().StringVarP(&findSuit, "suit", "s", "", "Keep cards of this suit (spades, diamonds, hearts, clubs)")
	findCmd.Flags().IntVarP(&findPoints, "points", "p", 0, "Keep cards with this score")
	findCmd.Flags().StringVarP(&findAttackers, "attackers", "a", "", "Keep cards that defeat the card with this ID")
}

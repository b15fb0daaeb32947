package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/carte/internal/card"
	"github.com/arcanaland/carte/internal/display"
	"github.com/arcanaland/carte/internal/registry"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build three cards in memory and run every query on them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func init() {
	RootCmd.AddCommand(demoCmd)
}

func runDemo(out io.Writer) error {
	c1, c2, c3 := card.New(), card.New(), card.New()
	c1.ID, c2.ID, c3.ID = "c1", "c2", "c3"

	steps := []error{
		c1.SetRank(card.Ace),
		c2.SetRank(card.Three),
		c3.SetRank(card.King),

		c1.AddDefeats(c3),
		c2.AddDefeats(c1),
		c2.AddDefeats(c3),

		c1.SetSuit(card.Clubs),
		c2.SetSuit(card.Clubs),
		c3.SetSuit(card.Hearts),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	defer func() {
		c1.Release()
		c2.Release()
		c3.Release()
	}()

	reg := registry.New()
	defer reg.Clear()
	for _, c := range []*card.Card{c1, c2, c3} {
		if err := reg.Insert(c); err != nil {
			return err
		}
	}

	section(out, "Cartes")
	if err := display.Registry(out, reg); err != nil {
		return err
	}

	queries := []struct {
		title string
		run   func() (*registry.Registry, error)
	}{
		{"Enseigne = " + display.SuitLabel(card.Clubs), func() (*registry.Registry, error) { return reg.FindBySuit(card.Clubs) }},
		{"Valeur = " + display.RankLabel(card.Three), func() (*registry.Registry, error) { return reg.FindByRank(card.Three) }},
		{"Bat " + display.Name(c3), func() (*registry.Registry, error) { return reg.FindAttackers(c3) }},
	}
	for _, q := range queries {
		res, err := q.run()
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		section(out, q.title)
		if err := display.Registry(out, res); err != nil {
			return err
		}
		res.Clear()
	}
	return nil
}

func section(out io.Writer, title string) {
	fmt.Fprintln(out, colorize.New(colorize.Bold).Sprint(title))
	fmt.Fprintln(out, colorize.HiBlackString("%s", strings.Repeat("=", utf8.RuneCountInString(title))))
}

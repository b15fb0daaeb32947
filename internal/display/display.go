// Package display renders cards and registries for humans, using the
// French labels of the classic 52-card deck.
package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/arcanaland/carte/internal/card"
	"github.com/arcanaland/carte/internal/registry"
)

const (
	noProperties = "Aucune propriété"
	noCards      = "Aucune carte"
	undefined    = "Indéfini"
)

var rankLabels = map[card.Rank]string{
	card.Ace:   "As",
	card.Two:   "2",
	card.Three: "3",
	card.Four:  "4",
	card.Five:  "5",
	card.Six:   "6",
	card.Seven: "7",
	card.Eight: "8",
	card.Nine:  "9",
	card.Ten:   "10",
	card.Jack:  "Valet",
	card.Queen: "Dame",
	card.King:  "Roi",
}

var suitLabels = map[card.Suit]string{
	card.Spades:   "Pique",
	card.Diamonds: "Carreau",
	card.Hearts:   "Coeur",
	card.Clubs:    "Trèfle",
}

var kindLabels = map[card.Kind]string{
	card.KindSuit:    "Enseigne",
	card.KindRank:    "Valeur",
	card.KindDefeats: "Bat",
	card.KindPoints:  "Points",
}

var (
	indexColor  = color.New(color.FgHiBlack)
	kindColor   = color.New(color.FgCyan)
	valueColor  = color.New(color.FgHiWhite)
	headerColor = color.New(color.FgYellow, color.Bold)
)

// RankLabel returns the French label of r.
func RankLabel(r card.Rank) string {
	if l, ok := rankLabels[r]; ok {
		return l
	}
	return undefined
}

// SuitLabel returns the French label of s.
func SuitLabel(s card.Suit) string {
	if l, ok := suitLabels[s]; ok {
		return l
	}
	return undefined
}

// KindLabel returns the French label of k.
func KindLabel(k card.Kind) string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return undefined
}

// Name returns "<rank> de <suit>", e.g. "Roi de Coeur".
func Name(c *card.Card) string {
	return fmt.Sprintf("%s de %s", RankLabel(c.Rank()), SuitLabel(c.Suit()))
}

// ValueLabel renders the payload of a single attribute.
func ValueLabel(a *card.Attribute) string {
	switch a.Kind() {
	case card.KindSuit:
		return SuitLabel(a.Suit())
	case card.KindRank:
		return RankLabel(a.Rank())
	case card.KindPoints:
		p, _ := a.Points()
		return fmt.Sprintf("%d", p)
	case card.KindDefeats:
		return Name(a.Target())
	default:
		return undefined
	}
}

// Card writes one "[index] Kind = Value" line per attribute of c, in chain
// order. A card without attributes prints a single placeholder line.
func Card(w io.Writer, c *card.Card) error {
	if c.Len() == 0 {
		_, err := fmt.Fprintln(w, noProperties)
		return err
	}
	for i, a := range c.All() {
		_, err := fmt.Fprintf(w, "%s %s = %s\n",
			indexColor.Sprintf("[%d]", i),
			kindColor.Sprint(KindLabel(a.Kind())),
			valueColor.Sprint(ValueLabel(a)),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Registry writes every card of r under a header naming it by ID, or by
// position when the card has no ID.
func Registry(w io.Writer, r *registry.Registry) error {
	n, err := r.Size()
	if err != nil {
		return err
	}
	if n == 0 {
		_, err := fmt.Fprintln(w, noCards)
		return err
	}

	i := 0
	for c := range r.All() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		label := c.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if _, err := fmt.Fprintf(w, "%s :\n", headerColor.Sprint(label)); err != nil {
			return err
		}
		if err := Card(w, c); err != nil {
			return err
		}
		i++
	}
	return nil
}

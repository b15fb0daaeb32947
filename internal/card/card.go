// Package card models a playing card as a sparse chain of typed attributes.
//
// A Card holds at most one suit, one rank and one points attribute, which
// the setters overwrite in place, and any number of "defeats" relations to
// other cards, which accumulate. Cards are not safe for concurrent use.
package card

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateKind   = errors.New("attribute kind already present")
	ErrReleased        = errors.New("card has been released")
)

// Card represents a playing card
type Card struct {
	ID string // Optional caller-chosen label (e.g. the ID in a table file)

	head     *Attribute
	released bool
}

// New returns a card with an empty attribute chain.
func New() *Card {
	return &Card{}
}

// Released reports whether Release has been called on the card.
func (c *Card) Released() bool {
	return c != nil && c.released
}

// Release drops every attribute node the card owns. Cards referenced by
// defeats nodes are left untouched. A released card rejects further writes
// and is refused by registries.
func (c *Card) Release() {
	if c == nil {
		return
	}
	a := c.head
	for a != nil {
		next := a.next
		a.next = nil
		a.target = nil
		a = next
	}
	c.head = nil
	c.released = true
}

// Find returns the first attribute of kind k in insertion order, or nil.
func (c *Card) Find(k Kind) *Attribute {
	if c == nil {
		return nil
	}
	return findFrom(c.head, k)
}

// Append adds a to the end of the chain. It rejects a node that is already
// linked into a chain, a second suit, rank or points node, and a defeats
// node whose target is nil or the card itself.
func (c *Card) Append(a *Attribute) error {
	if err := c.writable(); err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("append nil attribute: %w", ErrInvalidArgument)
	}
	if a.linked {
		return fmt.Errorf("append %s attribute: already linked: %w", a.kind, ErrInvalidArgument)
	}
	if a.kind.singleValued() && c.Find(a.kind) != nil {
		return fmt.Errorf("append %s attribute: %w", a.kind, ErrDuplicateKind)
	}
	switch a.kind {
	case KindSuit:
		if !a.suit.Valid() {
			return fmt.Errorf("append suit %d: %w", int(a.suit), ErrInvalidArgument)
		}
	case KindRank:
		if !a.rank.Valid() {
			return fmt.Errorf("append rank %d: %w", int(a.rank), ErrInvalidArgument)
		}
	case KindDefeats:
		if err := c.checkTarget(a.target); err != nil {
			return err
		}
	}
	c.append(a)
	return nil
}

// append links a at the tail without any checks.
func (c *Card) append(a *Attribute) {
	a.linked = true
	if c.head == nil {
		c.head = a
		return
	}
	tail := c.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = a
}

// Len returns the number of attributes in the chain.
func (c *Card) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for a := c.head; a != nil; a = a.next {
		n++
	}
	return n
}

// All yields every attribute with its position, oldest first.
func (c *Card) All() iter.Seq2[int, *Attribute] {
	return func(yield func(int, *Attribute) bool) {
		if c == nil {
			return
		}
		i := 0
		for a := c.head; a != nil; a = a.next {
			if !yield(i, a) {
				return
			}
			i++
		}
	}
}

// Rank returns the card's rank, or RankUndefined if none is set.
func (c *Card) Rank() Rank {
	if a := c.Find(KindRank); a != nil {
		return a.rank
	}
	return RankUndefined
}

// SetRank sets the card's rank, replacing any previous value.
func (c *Card) SetRank(r Rank) error {
	if err := c.writable(); err != nil {
		return err
	}
	if !r.Valid() {
		return fmt.Errorf("set rank %d: %w", int(r), ErrInvalidArgument)
	}
	if a := c.Find(KindRank); a != nil {
		a.rank = r
		return nil
	}
	c.append(NewRankAttribute(r))
	return nil
}

// Suit returns the card's suit, or SuitUndefined if none is set.
func (c *Card) Suit() Suit {
	if a := c.Find(KindSuit); a != nil {
		return a.suit
	}
	return SuitUndefined
}

// SetSuit sets the card's suit, replacing any previous value.
func (c *Card) SetSuit(s Suit) error {
	if err := c.writable(); err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("set suit %d: %w", int(s), ErrInvalidArgument)
	}
	if a := c.Find(KindSuit); a != nil {
		a.suit = s
		return nil
	}
	c.append(NewSuitAttribute(s))
	return nil
}

// Points returns the card's score and whether one is set.
func (c *Card) Points() (int, bool) {
	if a := c.Find(KindPoints); a != nil {
		return a.points, true
	}
	return 0, false
}

// SetPoints sets the card's score, replacing any previous value.
func (c *Card) SetPoints(points int) error {
	if err := c.writable(); err != nil {
		return err
	}
	if a := c.Find(KindPoints); a != nil {
		a.points = points
		return nil
	}
	c.append(NewPointsAttribute(points))
	return nil
}

// AddDefeats records that c defeats target. Relations accumulate: adding
// the same target twice stores two nodes.
func (c *Card) AddDefeats(target *Card) error {
	if err := c.writable(); err != nil {
		return err
	}
	if err := c.checkTarget(target); err != nil {
		return err
	}
	c.append(NewDefeatsAttribute(target))
	return nil
}

// CanDefeat reports whether any defeats attribute of c points at target.
func (c *Card) CanDefeat(target *Card) bool {
	if target == nil {
		return false
	}
	for a := c.Find(KindDefeats); a != nil; a = a.NextOf(KindDefeats) {
		if a.target == target {
			return true
		}
	}
	return false
}

// Defeated returns the targets of c's defeats attributes in insertion order.
func (c *Card) Defeated() []*Card {
	var targets []*Card
	for a := c.Find(KindDefeats); a != nil; a = a.NextOf(KindDefeats) {
		targets = append(targets, a.target)
	}
	return targets
}

func (c *Card) writable() error {
	if c == nil {
		return fmt.Errorf("nil card: %w", ErrInvalidArgument)
	}
	if c.released {
		return ErrReleased
	}
	return nil
}

func (c *Card) checkTarget(target *Card) error {
	if target == nil {
		return fmt.Errorf("defeats target is nil: %w", ErrInvalidArgument)
	}
	if target == c {
		return fmt.Errorf("card cannot defeat itself: %w", ErrInvalidArgument)
	}
	return nil
}

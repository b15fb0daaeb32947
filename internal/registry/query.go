package registry

import (
	"fmt"

	"github.com/arcanaland/carte/internal/card"
)

// FindByRank returns a new registry referencing every card whose rank is
// rank, in source order. The source registry and its cards are not modified.
func (r *Registry) FindByRank(rank card.Rank) (*Registry, error) {
	if r == nil {
		return nil, fmt.Errorf("find by rank: nil registry: %w", ErrInvalidArgument)
	}
	return r.filter(func(c *card.Card) bool {
		return c.Rank() == rank
	})
}

// FindBySuit returns a new registry referencing every card whose suit is
// suit, in source order.
func (r *Registry) FindBySuit(suit card.Suit) (*Registry, error) {
	if r == nil {
		return nil, fmt.Errorf("find by suit: nil registry: %w", ErrInvalidArgument)
	}
	return r.filter(func(c *card.Card) bool {
		return c.Suit() == suit
	})
}

// FindByPoints returns a new registry referencing every card that carries
// a points attribute equal to points.
func (r *Registry) FindByPoints(points int) (*Registry, error) {
	if r == nil {
		return nil, fmt.Errorf("find by points: nil registry: %w", ErrInvalidArgument)
	}
	return r.filter(func(c *card.Card) bool {
		p, ok := c.Points()
		return ok && p == points
	})
}

// FindAttackers returns a new registry referencing every card that can
// defeat target.
func (r *Registry) FindAttackers(target *card.Card) (*Registry, error) {
	if r == nil {
		return nil, fmt.Errorf("find attackers: nil registry: %w", ErrInvalidArgument)
	}
	if target == nil {
		return nil, fmt.Errorf("find attackers: nil target: %w", ErrInvalidArgument)
	}
	return r.filter(func(c *card.Card) bool {
		return c.CanDefeat(target)
	})
}

// filter scans every cell in order and inserts matching cards into a fresh
// registry. A released card in the source aborts the scan.
func (r *Registry) filter(match func(*card.Card) bool) (*Registry, error) {
	res := New()
	i := 0
	for cl := r.head; cl != nil; cl = cl.next {
		if cl.card.Released() {
			return nil, fmt.Errorf("cell %d: %w", i, card.ErrReleased)
		}
		if match(cl.card) {
			if err := res.Insert(cl.card); err != nil {
				return nil, err
			}
		}
		i++
	}
	return res, nil
}

// Package registry keeps an ordered, in-memory collection of borrowed card
// references and answers linear-scan queries over it.
//
// A Registry never owns the cards it references: clearing a registry or
// dropping a query result leaves every card intact. The same card may be
// inserted more than once. Registries are not safe for concurrent use;
// callers sharing one across goroutines must lock around it.
package registry

import (
	"errors"
	"fmt"
	"iter"

	"github.com/arcanaland/carte/internal/card"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("card not in registry")
	ErrCapacity        = errors.New("registry capacity reached")
)

// cell links one borrowed card into the registry.
type cell struct {
	card *card.Card
	next *cell
}

// Registry is a singly linked list of cells with a tail pointer for
// constant-time appends.
type Registry struct {
	head  *cell
	tail  *cell
	limit int
}

// Option configures a Registry.
type Option func(*Registry)

// WithLimit caps the number of cells. Insert fails with ErrCapacity once
// the cap is reached. Zero or negative means unlimited.
func WithLimit(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.limit = n
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Insert appends a reference to c.
func (r *Registry) Insert(c *card.Card) error {
	if r == nil {
		return fmt.Errorf("insert into nil registry: %w", ErrInvalidArgument)
	}
	if c == nil {
		return fmt.Errorf("insert nil card: %w", ErrInvalidArgument)
	}
	if c.Released() {
		return fmt.Errorf("insert: %w", card.ErrReleased)
	}
	if r.limit > 0 && r.count() >= r.limit {
		return fmt.Errorf("insert: limit %d: %w", r.limit, ErrCapacity)
	}

	cl := &cell{card: c}
	if r.head == nil {
		r.head = cl
	} else {
		r.tail.next = cl
	}
	r.tail = cl
	return nil
}

// Remove unlinks the first cell referencing c (by identity). The card
// itself is untouched.
func (r *Registry) Remove(c *card.Card) error {
	if r == nil {
		return fmt.Errorf("remove from nil registry: %w", ErrInvalidArgument)
	}

	var prev *cell
	cl := r.head
	for cl != nil && cl.card != c {
		prev = cl
		cl = cl.next
	}
	if cl == nil {
		return ErrNotFound
	}

	if prev == nil {
		r.head = cl.next
	} else {
		prev.next = cl.next
	}
	if r.tail == cl {
		r.tail = prev
	}
	cl.next = nil
	cl.card = nil
	return nil
}

// Size counts the registry's cells.
func (r *Registry) Size() (int, error) {
	if r == nil {
		return 0, fmt.Errorf("size of nil registry: %w", ErrInvalidArgument)
	}
	return r.count(), nil
}

func (r *Registry) count() int {
	n := 0
	for cl := r.head; cl != nil; cl = cl.next {
		n++
	}
	return n
}

// Clear drops every cell. Referenced cards are not released.
func (r *Registry) Clear() {
	if r == nil {
		return
	}
	cl := r.head
	for cl != nil {
		next := cl.next
		cl.next = nil
		cl.card = nil
		cl = next
	}
	r.head = nil
	r.tail = nil
}

// Head returns the first card, or nil when empty.
func (r *Registry) Head() *card.Card {
	if r == nil || r.head == nil {
		return nil
	}
	return r.head.card
}

// Tail returns the last card, or nil when empty.
func (r *Registry) Tail() *card.Card {
	if r == nil || r.tail == nil {
		return nil
	}
	return r.tail.card
}

// All yields the referenced cards in insertion order.
func (r *Registry) All() iter.Seq[*card.Card] {
	return func(yield func(*card.Card) bool) {
		if r == nil {
			return
		}
		for cl := r.head; cl != nil; cl = cl.next {
			if !yield(cl.card) {
				return
			}
		}
	}
}

// Cards returns the referenced cards as a slice, in insertion order.
func (r *Registry) Cards() []*card.Card {
	cards := []*card.Card{}
	for c := range r.All() {
		cards = append(cards, c)
	}
	return cards
}

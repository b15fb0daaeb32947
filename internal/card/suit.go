package card

import (
	"fmt"
	"strings"
)

// Suit is the suit of a playing card.
type Suit int

// SuitUndefined is only ever returned by reads on a card without a suit.
const (
	SuitUndefined Suit = iota
	Spades
	Diamonds
	Hearts
	Clubs
)

var suitNames = map[Suit]string{
	Spades:   "spades",
	Diamonds: "diamonds",
	Hearts:   "hearts",
	Clubs:    "clubs",
}

// Suits lists every defined suit in declaration order.
func Suits() []Suit {
	return []Suit{Spades, Diamonds, Hearts, Clubs}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "undefined"
}

// ParseSuit converts a canonical suit name (case-insensitive) into a Suit.
func ParseSuit(name string) (Suit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range suitNames {
		if n == name {
			return s, nil
		}
	}
	return SuitUndefined, fmt.Errorf("unknown suit %q: %w", name, ErrInvalidArgument)
}

// MarshalText implements encoding.TextMarshaler.
func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("suit %d: %w", int(s), ErrInvalidArgument)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

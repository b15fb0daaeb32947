package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank is the rank of a playing card.
type Rank int

// RankUndefined is only ever returned by reads on a card without a rank.
const (
	RankUndefined Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = map[Rank]string{
	Ace:   "ace",
	Two:   "two",
	Three: "three",
	Four:  "four",
	Five:  "five",
	Six:   "six",
	Seven: "seven",
	Eight: "eight",
	Nine:  "nine",
	Ten:   "ten",
	Jack:  "jack",
	Queen: "queen",
	King:  "king",
}

// Ranks lists every defined rank from Ace to King.
func Ranks() []Rank {
	ranks := make([]Rank, 0, len(rankNames))
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "undefined"
}

// ParseRank converts a rank name ("ace", "queen") or a pip number
// ("2" to "10") into a Rank. Matching is case-insensitive.
func ParseRank(name string) (Rank, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if n, err := strconv.Atoi(name); err == nil {
		if n >= 2 && n <= 10 {
			return Rank(n), nil
		}
		return RankUndefined, fmt.Errorf("rank %d out of range: %w", n, ErrInvalidArgument)
	}
	for r, n := range rankNames {
		if n == name {
			return r, nil
		}
	}
	return RankUndefined, fmt.Errorf("unknown rank %q: %w", name, ErrInvalidArgument)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("rank %d: %w", int(r), ErrInvalidArgument)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

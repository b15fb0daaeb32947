package card

// Kind identifies which payload an Attribute carries.
type Kind int

const (
	KindSuit Kind = iota
	KindRank
	KindDefeats
	KindPoints // arbitrary integer score, free for game-specific rules
)

func (k Kind) String() string {
	switch k {
	case KindSuit:
		return "suit"
	case KindRank:
		return "rank"
	case KindDefeats:
		return "defeats"
	case KindPoints:
		return "points"
	default:
		return "unknown"
	}
}

// singleValued reports whether a card may hold at most one node of kind k.
func (k Kind) singleValued() bool {
	return k != KindDefeats
}

// Attribute is one node of a card's attribute chain. Exactly one payload
// field is meaningful, selected by kind. Nodes are owned by the card whose
// chain they belong to; the defeats target is borrowed.
type Attribute struct {
	kind   Kind
	suit   Suit
	rank   Rank
	points int
	target *Card

	next   *Attribute
	linked bool
}

// NewSuitAttribute returns an unlinked suit node.
func NewSuitAttribute(s Suit) *Attribute {
	return &Attribute{kind: KindSuit, suit: s}
}

// NewRankAttribute returns an unlinked rank node.
func NewRankAttribute(r Rank) *Attribute {
	return &Attribute{kind: KindRank, rank: r}
}

// NewPointsAttribute returns an unlinked points node.
func NewPointsAttribute(points int) *Attribute {
	return &Attribute{kind: KindPoints, points: points}
}

// NewDefeatsAttribute returns an unlinked node recording that the owning
// card defeats target.
func NewDefeatsAttribute(target *Card) *Attribute {
	return &Attribute{kind: KindDefeats, target: target}
}

// Kind returns the node's discriminant.
func (a *Attribute) Kind() Kind { return a.kind }

// Suit returns the stored suit, or SuitUndefined for other kinds.
func (a *Attribute) Suit() Suit {
	if a.kind != KindSuit {
		return SuitUndefined
	}
	return a.suit
}

// Rank returns the stored rank, or RankUndefined for other kinds.
func (a *Attribute) Rank() Rank {
	if a.kind != KindRank {
		return RankUndefined
	}
	return a.rank
}

// Points returns the stored score and whether the node is a points node.
func (a *Attribute) Points() (int, bool) {
	if a.kind != KindPoints {
		return 0, false
	}
	return a.points, true
}

// Target returns the defeated card, or nil for other kinds.
func (a *Attribute) Target() *Card {
	if a.kind != KindDefeats {
		return nil
	}
	return a.target
}

// Next returns the following node in the chain, or nil at the tail.
func (a *Attribute) Next() *Attribute { return a.next }

// NextOf returns the first node of kind k strictly after a, or nil.
func (a *Attribute) NextOf(k Kind) *Attribute {
	if a == nil {
		return nil
	}
	return findFrom(a.next, k)
}

// findFrom scans from start (inclusive) for the first node of kind k.
func findFrom(start *Attribute, k Kind) *Attribute {
	for a := start; a != nil; a = a.next {
		if a.kind == k {
			return a
		}
	}
	return nil
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/carte/internal/card"
)

// scenario builds three cards: C1 ace of clubs, C2 three of clubs and
// C3 king of hearts, with C1 beating C3 and C2 beating C1 and C3.
type scenario struct {
	c1, c2, c3 *card.Card
	reg        *Registry
}

func newScenario(t *testing.T) scenario {
	t.Helper()
	s := scenario{c1: card.New(), c2: card.New(), c3: card.New(), reg: New()}

	require.NoError(t, s.c1.SetRank(card.Ace))
	require.NoError(t, s.c1.SetSuit(card.Clubs))
	require.NoError(t, s.c2.SetRank(card.Three))
	require.NoError(t, s.c2.SetSuit(card.Clubs))
	require.NoError(t, s.c3.SetRank(card.King))
	require.NoError(t, s.c3.SetSuit(card.Hearts))

	require.NoError(t, s.c1.AddDefeats(s.c3))
	require.NoError(t, s.c2.AddDefeats(s.c1))
	require.NoError(t, s.c2.AddDefeats(s.c3))

	for _, c := range []*card.Card{s.c1, s.c2, s.c3} {
		require.NoError(t, s.reg.Insert(c))
	}
	return s
}

func TestScenarioQueries(t *testing.T) {
	s := newScenario(t)

	clubs, err := s.reg.FindBySuit(card.Clubs)
	require.NoError(t, err)
	assert.Equal(t, []*card.Card{s.c1, s.c2}, clubs.Cards())

	threes, err := s.reg.FindByRank(card.Three)
	require.NoError(t, err)
	assert.Equal(t, []*card.Card{s.c2}, threes.Cards())

	attackers, err := s.reg.FindAttackers(s.c3)
	require.NoError(t, err)
	assert.Equal(t, []*card.Card{s.c1, s.c2}, attackers.Cards())

	attackers, err = s.reg.FindAttackers(s.c1)
	require.NoError(t, err)
	assert.Equal(t, []*card.Card{s.c2}, attackers.Cards())
}

func TestQueriesReturnEmptyRegistry(t *testing.T) {
	s := newScenario(t)

	tests := []struct {
		name  string
		query func() (*Registry, error)
	}{
		{name: "rank", query: func() (*Registry, error) { return s.reg.FindByRank(card.Seven) }},
		{name: "suit", query: func() (*Registry, error) { return s.reg.FindBySuit(card.Spades) }},
		{name: "undefined suit", query: func() (*Registry, error) { return s.reg.FindBySuit(card.SuitUndefined) }},
		{name: "points", query: func() (*Registry, error) { return s.reg.FindByPoints(0) }},
		{name: "attackers", query: func() (*Registry, error) { return s.reg.FindAttackers(s.c2) }},
		{name: "stranger", query: func() (*Registry, error) { return s.reg.FindAttackers(card.New()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.query()
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, 0, mustSize(t, res))
		})
	}
}

func TestFindByRankMatchesUndefined(t *testing.T) {
	s := newScenario(t)
	blank := card.New()
	require.NoError(t, s.reg.Insert(blank))

	res, err := s.reg.FindByRank(card.RankUndefined)
	require.NoError(t, err)
	assert.Equal(t, []*card.Card{blank}, res.Cards())
}

func TestFindByPoints(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.c1.SetPoints(11))
	require.NoError(t, s.c3.SetPoints(4))

	res, err := s.reg.FindByPoints(11)
	require.NoError(t, err)
	assert.Equal(t, []*card.Card{s.c1}, res.Cards())
}

func TestFindAttackersNilTarget(t *testing.T) {
	s := newScenario(t)

	res, err := s.reg.FindAttackers(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, res)
}

func TestQueriesDoNotMutate(t *testing.T) {
	s := newScenario(t)
	lens := []int{s.c1.Len(), s.c2.Len(), s.c3.Len()}

	clubs, err := s.reg.FindBySuit(card.Clubs)
	require.NoError(t, err)
	_, err = s.reg.FindByRank(card.Ace)
	require.NoError(t, err)
	_, err = s.reg.FindAttackers(s.c3)
	require.NoError(t, err)

	assert.Equal(t, []*card.Card{s.c1, s.c2, s.c3}, s.reg.Cards())
	assert.Equal(t, lens, []int{s.c1.Len(), s.c2.Len(), s.c3.Len()})

	// Dropping a result leaves the source and the cards intact.
	clubs.Clear()
	require.NoError(t, s.reg.Remove(s.c2))
	assert.Equal(t, 2, mustSize(t, s.reg))
	assert.False(t, s.c1.Released())
	assert.Equal(t, card.Ace, s.c1.Rank())
}

func TestQueriesComposeOnResults(t *testing.T) {
	s := newScenario(t)

	clubs, err := s.reg.FindBySuit(card.Clubs)
	require.NoError(t, err)
	res, err := clubs.FindAttackers(s.c1)
	require.NoError(t, err)

	assert.Equal(t, []*card.Card{s.c2}, res.Cards())
}

func TestQueriesDetectReleasedCard(t *testing.T) {
	s := newScenario(t)
	s.c2.Release()

	_, err := s.reg.FindBySuit(card.Clubs)
	assert.ErrorIs(t, err, card.ErrReleased)
	_, err = s.reg.FindAttackers(s.c3)
	assert.ErrorIs(t, err, card.ErrReleased)

	require.NoError(t, s.reg.Remove(s.c2))
	res, err := s.reg.FindBySuit(card.Clubs)
	require.NoError(t, err)
	assert.Equal(t, []*card.Card{s.c1}, res.Cards())
}

package display

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/carte/internal/card"
	"github.com/arcanaland/carte/internal/registry"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestCardWithoutAttributes(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Card(&buf, card.New()))

	assert.Equal(t, "Aucune propriété\n", buf.String())
}

func TestCardRendersChainInOrder(t *testing.T) {
	king := card.New()
	require.NoError(t, king.SetRank(card.King))
	require.NoError(t, king.SetSuit(card.Hearts))

	c := card.New()
	require.NoError(t, c.SetRank(card.Ace))
	require.NoError(t, c.AddDefeats(king))
	require.NoError(t, c.SetSuit(card.Clubs))
	require.NoError(t, c.SetPoints(11))

	var buf bytes.Buffer
	require.NoError(t, Card(&buf, c))

	want := "[0] Valeur = As\n" +
		"[1] Bat = Roi de Coeur\n" +
		"[2] Enseigne = Trèfle\n" +
		"[3] Points = 11\n"
	assert.Equal(t, want, buf.String())
}

func TestLabels(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{RankLabel(card.Ace), "As"},
		{RankLabel(card.Seven), "7"},
		{RankLabel(card.Jack), "Valet"},
		{RankLabel(card.Queen), "Dame"},
		{RankLabel(card.RankUndefined), "Indéfini"},
		{SuitLabel(card.Spades), "Pique"},
		{SuitLabel(card.Diamonds), "Carreau"},
		{SuitLabel(card.SuitUndefined), "Indéfini"},
		{KindLabel(card.KindDefeats), "Bat"},
		{KindLabel(card.Kind(9)), "Indéfini"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}

	for _, r := range card.Ranks() {
		assert.NotEqual(t, "Indéfini", RankLabel(r), r.String())
	}
}

func TestNameOfPartialCard(t *testing.T) {
	c := card.New()
	require.NoError(t, c.SetRank(card.Three))

	assert.Equal(t, "3 de Indéfini", Name(c))
}

func TestRegistry(t *testing.T) {
	c1, c2 := card.New(), card.New()
	c1.ID = "c1"
	require.NoError(t, c1.SetRank(card.Ten))

	r := registry.New()
	require.NoError(t, r.Insert(c1))
	require.NoError(t, r.Insert(c2))

	var buf bytes.Buffer
	require.NoError(t, Registry(&buf, r))

	want := "c1 :\n" +
		"[0] Valeur = 10\n" +
		"\n" +
		"#2 :\n" +
		"Aucune propriété\n"
	assert.Equal(t, want, buf.String())
}

func TestEmptyAndNilRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Registry(&buf, registry.New()))
	assert.Equal(t, "Aucune carte\n", buf.String())

	err := Registry(&buf, nil)
	assert.ErrorIs(t, err, registry.ErrInvalidArgument)
}

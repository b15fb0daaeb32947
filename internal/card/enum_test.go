package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRank(t *testing.T) {
	tests := []struct {
		in      string
		want    Rank
		wantErr bool
	}{
		{in: "ace", want: Ace},
		{in: "Queen", want: Queen},
		{in: " king ", want: King},
		{in: "3", want: Three},
		{in: "10", want: Ten},
		{in: "ten", want: Ten},
		{in: "1", wantErr: true},
		{in: "11", wantErr: true},
		{in: "joker", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRank(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Equal(t, RankUndefined, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSuit(t *testing.T) {
	for _, s := range Suits() {
		got, err := ParseSuit(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseSuit("CLUBS")
	require.NoError(t, err)
	assert.Equal(t, Clubs, got)

	_, err = ParseSuit("stars")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRankAndSuitText(t *testing.T) {
	for _, r := range Ranks() {
		text, err := r.MarshalText()
		require.NoError(t, err)

		var back Rank
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, r, back)
	}

	_, err := RankUndefined.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = SuitUndefined.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, "undefined", RankUndefined.String())
	assert.Equal(t, "undefined", SuitUndefined.String())
	assert.Len(t, Ranks(), 13)
	assert.Len(t, Suits(), 4)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "suit", KindSuit.String())
	assert.Equal(t, "rank", KindRank.String())
	assert.Equal(t, "defeats", KindDefeats.String())
	assert.Equal(t, "points", KindPoints.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

package baccarat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankPoint(t *testing.T) {
	want := map[Rank]int{
		Ace: 1, Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9,
		Ten: 0, Jack: 0, Queen: 0, King: 0,
	}
	for _, r := range Ranks {
		p := r.Point()
		assert.Equal(t, want[r], p, "rank %s", r)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 9)
	}
}

func TestParseRank(t *testing.T) {
	r, err := ParseRank("Q")
	require.NoError(t, err)
	assert.Equal(t, Queen, r)

	_, err = ParseRank("1")
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestHandTotal(t *testing.T) {
	assert.Equal(t, 0, HandTotal([]Rank{Ace, Nine}))
	assert.Equal(t, 2, HandTotal([]Rank{Five, Seven}))
	assert.Equal(t, 9, HandTotal([]Rank{King, Nine}))
	assert.Equal(t, 7, HandTotal([]Rank{Nine, Nine, Nine}))

	// every two and three card combination stays within 0..9
	for _, a := range Ranks {
		for _, b := range Ranks {
			for _, c := range Ranks {
				total := HandTotal([]Rank{a, b, c})
				assert.True(t, total >= 0 && total <= 9)
			}
		}
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"10", "A"}, Labels([]Rank{Ten, Ace}))
	assert.Empty(t, Labels(nil))
}

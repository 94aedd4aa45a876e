package baccarat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baccarat_sim/internal/model"
)

// stackedSource deals cards in the given order.
type stackedSource struct {
	cards []Rank
}

func (s *stackedSource) Draw() (Rank, error) {
	if len(s.cards) == 0 {
		return "", ErrShoeExhausted
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	return c, nil
}

func stack(cards ...Rank) *stackedSource {
	return &stackedSource{cards: cards}
}

func TestDeal(t *testing.T) {
	tests := []struct {
		name        string
		cards       []Rank // player 1, player 2, banker 1, banker 2, then thirds
		player      []Rank
		banker      []Rank
		playerTotal int
		bankerTotal int
		outcome     model.Outcome
	}{
		{
			name:        "player natural stops drawing",
			cards:       []Rank{Four, Five, King, Seven, Ace, Ace},
			player:      []Rank{Four, Five},
			banker:      []Rank{King, Seven},
			playerTotal: 9,
			bankerTotal: 7,
			outcome:     model.OutcomePlayer,
		},
		{
			name:        "banker natural stops player drawing on zero",
			cards:       []Rank{King, Queen, Three, Five, Nine},
			player:      []Rank{King, Queen},
			banker:      []Rank{Three, Five},
			playerTotal: 0,
			bankerTotal: 8,
			outcome:     model.OutcomeBanker,
		},
		{
			name:        "banker on three stands against player third eight",
			cards:       []Rank{Two, Three, Ace, Two, Eight, Nine},
			player:      []Rank{Two, Three, Eight},
			banker:      []Rank{Ace, Two},
			playerTotal: 3,
			bankerTotal: 3,
			outcome:     model.OutcomeTie,
		},
		{
			name:        "player stands on six, banker draws on five",
			cards:       []Rank{Six, King, Two, Three, Four},
			player:      []Rank{Six, King},
			banker:      []Rank{Two, Three, Four},
			playerTotal: 6,
			bankerTotal: 9,
			outcome:     model.OutcomeBanker,
		},
		{
			name:        "player stands on seven, banker stands on six",
			cards:       []Rank{Seven, Ten, Six, Queen, Nine},
			player:      []Rank{Seven, Ten},
			banker:      []Rank{Six, Queen},
			playerTotal: 7,
			bankerTotal: 6,
			outcome:     model.OutcomePlayer,
		},
		{
			name:        "both draw, banker six against player third six",
			cards:       []Rank{Ace, Ace, Three, Three, Six, Two},
			player:      []Rank{Ace, Ace, Six},
			banker:      []Rank{Three, Three, Two},
			playerTotal: 8,
			bankerTotal: 8,
			outcome:     model.OutcomeTie,
		},
		{
			name:        "banker four stands against player third ace",
			cards:       []Rank{Two, Two, Four, King, Ace, Five},
			player:      []Rank{Two, Two, Ace},
			banker:      []Rank{Four, King},
			playerTotal: 5,
			bankerTotal: 4,
			outcome:     model.OutcomePlayer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Deal(stack(tt.cards...))
			require.NoError(t, err)

			assert.Equal(t, tt.player, res.PlayerCards)
			assert.Equal(t, tt.banker, res.BankerCards)
			assert.Equal(t, tt.playerTotal, res.PlayerTotal)
			assert.Equal(t, tt.bankerTotal, res.BankerTotal)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, len(tt.player)+len(tt.banker), res.CardsDealt)
		})
	}
}

func TestDeal_Exhausted(t *testing.T) {
	_, err := Deal(stack(Two, Three, Ace))
	assert.ErrorIs(t, err, ErrShoeExhausted)
}

func TestDeal_FromShoeInvariants(t *testing.T) {
	s := NewShoe(8, newTestRand(11))
	for i := 0; i < 60; i++ {
		before := s.CardsLeft()
		res, err := Deal(s)
		require.NoError(t, err)

		assert.Equal(t, before-res.CardsDealt, s.CardsLeft())
		assert.GreaterOrEqual(t, res.CardsDealt, 4)
		assert.LessOrEqual(t, res.CardsDealt, 6)
		assert.Equal(t, HandTotal(res.PlayerCards), res.PlayerTotal)
		assert.Equal(t, HandTotal(res.BankerCards), res.BankerTotal)
	}
}

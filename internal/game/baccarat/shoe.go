package baccarat

import (
	"errors"
	"math/rand"
)

// ErrShoeExhausted is returned by Draw on an empty shoe. The driver reshuffles
// before that can happen, so seeing it means the reshuffle policy is broken.
var ErrShoeExhausted = errors.New("shoe is empty; cannot draw")

// Shoe is a shuffled multi-deck stack. It is owned by a single run.
type Shoe struct {
	decks    int
	rng      *rand.Rand
	cards    []Rank
	shuffles int
}

// NewShoe builds and shuffles a shoe of decks full decks.
// rng is shared with the rest of the run so a seed fixes the whole sequence.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		decks: decks,
		rng:   rng,
		cards: make([]Rank, 0, decks*len(Ranks)*copiesPerDeck),
	}
	s.Reset()
	return s
}

// Reset rebuilds the full multiset, shuffles it and bumps the shuffle counter.
func (s *Shoe) Reset() {
	s.cards = s.cards[:0]
	for d := 0; d < s.decks; d++ {
		for _, r := range Ranks {
			for c := 0; c < copiesPerDeck; c++ {
				s.cards = append(s.cards, r)
			}
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.shuffles++
}

// Draw removes and returns the card at the drawing end.
func (s *Shoe) Draw() (Rank, error) {
	n := len(s.cards)
	if n == 0 {
		return "", ErrShoeExhausted
	}
	c := s.cards[n-1]
	s.cards = s.cards[:n-1]
	return c, nil
}

// CardsLeft is the number of undealt cards.
func (s *Shoe) CardsLeft() int {
	return len(s.cards)
}

// Shuffles counts every shuffle including the initial one.
func (s *Shoe) Shuffles() int {
	return s.shuffles
}

// Size is the card count of a full shoe.
func (s *Shoe) Size() int {
	return s.decks * len(Ranks) * copiesPerDeck
}

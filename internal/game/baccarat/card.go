// Package baccarat implements Punto Banco cards, the multi-deck shoe and
// the fixed third-card tableau used to resolve a single hand.
package baccarat

import (
	"errors"
	"fmt"
)

// ErrInvalidRank is returned when a rank label is outside the 13-symbol alphabet.
var ErrInvalidRank = errors.New("invalid rank")

// Rank is a card label. Suits never affect value so they are not modelled.
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks is the rank alphabet in deck order.
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// copiesPerDeck is the number of suits each rank appears in.
const copiesPerDeck = 4

// ParseRank validates a rank label.
func ParseRank(s string) (Rank, error) {
	for _, r := range Ranks {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// Point returns the baccarat value of the rank: ace is 1, ten and face
// cards are 0, the rest count their face value.
func (r Rank) Point() int {
	switch r {
	case Ace:
		return 1
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	}
	return 0
}

func (r Rank) String() string {
	return string(r)
}

// HandTotal is the sum of points modulo 10.
func HandTotal(cards []Rank) int {
	total := 0
	for _, c := range cards {
		total += c.Point()
	}
	return total % 10
}

// Labels converts cards to their rank strings.
func Labels(cards []Rank) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = string(c)
	}
	return out
}

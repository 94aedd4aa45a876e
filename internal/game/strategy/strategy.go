// Package strategy holds the five betting strategies. The set is closed:
// New is the only constructor and it switches over every Kind.
package strategy

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"baccarat_sim/internal/model"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Kind names a strategy variant.
type Kind string

const (
	FlipOppositeWait Kind = "flip-opposite-wait"
	AlwaysBanker     Kind = "always-banker"
	AlwaysPlayer     Kind = "always-player"
	Alternate        Kind = "alternate"
	Random           Kind = "random"
)

// Kinds lists every supported variant.
var Kinds = []Kind{FlipOppositeWait, AlwaysBanker, AlwaysPlayer, Alternate, Random}

// Strategy decides a side before each hand and observes every outcome.
type Strategy interface {
	// Decide is called once before the hand is dealt. model.SideNone means abstain.
	Decide() model.Side
	// Observe is called once after every hand, bet or not.
	Observe(outcome model.Outcome)
}

// ParseKind normalises a strategy name.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
}

// New builds a strategy by name. rng is only used by Random and must be the
// run's shared source so shoe shuffles and random picks interleave deterministically.
func New(name string, rng *rand.Rand) (Strategy, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	switch kind {
	case FlipOppositeWait:
		return &flipOppositeWait{}, nil
	case AlwaysBanker:
		return constant(model.SideBanker), nil
	case AlwaysPlayer:
		return constant(model.SidePlayer), nil
	case Alternate:
		return &alternate{next: model.SidePlayer}, nil
	case Random:
		if rng == nil {
			return nil, errors.New("random strategy requires a random source")
		}
		return &random{rng: rng}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
}

// constant always bets the same side.
type constant model.Side

func (c constant) Decide() model.Side      { return model.Side(c) }
func (c constant) Observe(_ model.Outcome) {}

// alternate flips between player and banker on every call, starting with player.
type alternate struct {
	next model.Side
}

func (a *alternate) Decide() model.Side {
	side := a.next
	a.next = a.next.Opposite()
	return side
}

func (a *alternate) Observe(_ model.Outcome) {}

type random struct {
	rng *rand.Rand
}

func (r *random) Decide() model.Side {
	if r.rng.Intn(2) == 0 {
		return model.SidePlayer
	}
	return model.SideBanker
}

func (r *random) Observe(_ model.Outcome) {}

// Package progression sizes wagers from the streak of previous bet results.
//
// Only wins and losses of placed bets move the state. Ties and hands that
// were only observed leave it untouched.
package progression

import (
	"errors"
	"fmt"

	"baccarat_sim/internal/model"
	"baccarat_sim/pkg/money"
)

var ErrInvalidMode = errors.New("invalid progression mode")

// BetResult is the settlement of a placed bet.
type BetResult int

const (
	Push BetResult = iota
	Win
	Loss
)

func (r BetResult) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "push"
}

// State is a snapshot of the controller.
type State struct {
	LossStreak int
	WinStreak  int
	// LastBet is Push until the first decided bet, then the last win or loss.
	LastBet           BetResult
	LossPersistFactor float64
	WinPersistFactor  float64
}

// Controller is the per-run staking state machine.
type Controller struct {
	cfg   model.Progression
	state State
}

// New validates the settings and returns a fresh controller.
func New(cfg model.Progression) (*Controller, error) {
	var err error
	if cfg.LossWinMode, err = normaliseMode(cfg.LossWinMode); err != nil {
		return nil, fmt.Errorf("loss_progression_win_mode: %w", err)
	}
	if cfg.WinLossMode, err = normaliseMode(cfg.WinLossMode); err != nil {
		return nil, fmt.Errorf("win_progression_loss_mode: %w", err)
	}
	cfg.LossStart = max(1, cfg.LossStart)
	cfg.WinStart = max(1, cfg.WinStart)
	cfg.LossPct = max(0, cfg.LossPct)
	cfg.LossDecPct = max(0, cfg.LossDecPct)
	cfg.WinIncPct = max(0, cfg.WinIncPct)
	cfg.WinDecPct = max(0, cfg.WinDecPct)

	return &Controller{
		cfg: cfg,
		state: State{
			LastBet:           Push,
			LossPersistFactor: 1,
			WinPersistFactor:  1,
		},
	}, nil
}

func normaliseMode(m model.ProgressionMode) (model.ProgressionMode, error) {
	switch m {
	case "":
		return model.ModeReset, nil
	case model.ModeReset, model.ModePersist, model.ModeIgnore:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, m)
}

// Config returns the normalised settings the controller runs with.
func (c *Controller) Config() model.Progression {
	return c.cfg
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Multiplier is the factor applied to the base bet for the next placed bet.
func (c *Controller) Multiplier() float64 {
	switch c.state.LastBet {
	case Loss:
		eff := c.lossFactor()
		if c.cfg.LossWinMode.Persists() {
			return ratchet(c.state.LossPersistFactor, eff)
		}
		return eff
	case Win:
		eff := c.winFactor()
		if c.cfg.WinLossMode.Persists() {
			return ratchet(c.state.WinPersistFactor, eff)
		}
		return eff
	}
	return 1
}

// Wager is the sized bet for base, rounded to cents and never negative.
func (c *Controller) Wager(base float64) float64 {
	return money.Round2(max(0, base*c.Multiplier()))
}

// Settle feeds back the result of a placed bet.
func (c *Controller) Settle(r BetResult) {
	switch r {
	case Win:
		c.state.LossStreak = 0
		c.state.WinStreak++
		c.state.LastBet = Win
		if c.cfg.LossWinMode == model.ModeReset {
			c.state.LossPersistFactor = 1
		}
		if c.cfg.WinLossMode.Persists() {
			c.state.WinPersistFactor = ratchet(c.state.WinPersistFactor, c.winFactor())
		}
	case Loss:
		c.state.WinStreak = 0
		c.state.LossStreak++
		c.state.LastBet = Loss
		if c.cfg.WinLossMode == model.ModeReset {
			c.state.WinPersistFactor = 1
		}
		if c.cfg.LossWinMode.Persists() {
			c.state.LossPersistFactor = ratchet(c.state.LossPersistFactor, c.lossFactor())
		}
	}
}

func (c *Controller) lossFactor() float64 {
	return factor(c.state.LossStreak >= c.cfg.LossStart, c.cfg.LossPct, c.cfg.LossDecPct)
}

func (c *Controller) winFactor() float64 {
	return factor(c.state.WinStreak >= c.cfg.WinStart, c.cfg.WinIncPct, c.cfg.WinDecPct)
}

// factor gives increases priority over decreases.
func factor(active bool, incPct, decPct float64) float64 {
	switch {
	case active && incPct > 0:
		return 1 + incPct/100
	case active && decPct > 0:
		return max(0, 1-decPct/100)
	}
	return 1
}

// ratchet keeps a persisted factor moving in one direction: factors at or
// above 1 only grow, factors below 1 only shrink.
func ratchet(stored, eff float64) float64 {
	if eff >= 1 {
		return max(stored, eff)
	}
	return min(stored, eff)
}

package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baccarat_sim/internal/model"
)

func newController(t *testing.T, cfg model.Progression) *Controller {
	t.Helper()
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestController_FirstBetIsBase(t *testing.T) {
	c := newController(t, model.Progression{LossPct: 50, WinIncPct: 50})
	assert.Equal(t, 100.0, c.Wager(100))
	assert.Equal(t, 1.0, c.Multiplier())
}

func TestController_LossThenWinReset(t *testing.T) {
	c := newController(t, model.Progression{LossPct: 50, LossStart: 1, LossWinMode: model.ModeReset})

	c.Settle(Loss)
	assert.Equal(t, 150.0, c.Wager(100))

	c.Settle(Win)
	assert.Equal(t, 100.0, c.Wager(100))
	assert.Equal(t, 1.0, c.State().LossPersistFactor)
}

func TestController_LossStartThreshold(t *testing.T) {
	c := newController(t, model.Progression{LossPct: 100, LossStart: 3})

	c.Settle(Loss)
	assert.Equal(t, 10.0, c.Wager(10))
	c.Settle(Loss)
	assert.Equal(t, 10.0, c.Wager(10))
	c.Settle(Loss)
	assert.Equal(t, 20.0, c.Wager(10))
	// fixed increase relative to the base, not compounding
	c.Settle(Loss)
	assert.Equal(t, 20.0, c.Wager(10))
}

func TestController_PersistRatchetsUp(t *testing.T) {
	c := newController(t, model.Progression{LossPct: 20, LossStart: 2, LossWinMode: model.ModePersist})

	c.Settle(Loss)
	c.Settle(Loss)
	first := c.Wager(100)
	assert.Equal(t, 120.0, first)

	c.Settle(Win)
	assert.Equal(t, 100.0, c.Wager(100), "win side has no progression")
	assert.Equal(t, 1.2, c.State().LossPersistFactor)

	// a new streak of one is below the start threshold but the persisted factor holds
	c.Settle(Loss)
	second := c.Wager(100)
	assert.GreaterOrEqual(t, second, first)
	assert.Equal(t, 120.0, second)
}

func TestController_IgnoreEqualsPersist(t *testing.T) {
	persist := newController(t, model.Progression{LossPct: 20, LossStart: 2, LossWinMode: model.ModePersist})
	ignore := newController(t, model.Progression{LossPct: 20, LossStart: 2, LossWinMode: model.ModeIgnore})

	for _, r := range []BetResult{Loss, Loss, Win, Push, Loss, Win, Loss} {
		persist.Settle(r)
		ignore.Settle(r)
		assert.Equal(t, persist.Wager(50), ignore.Wager(50))
	}
	assert.Equal(t, persist.State(), ignore.State())
}

func TestController_ResetModeForgetsAfterWin(t *testing.T) {
	c := newController(t, model.Progression{LossPct: 20, LossStart: 2, LossWinMode: model.ModeReset})

	c.Settle(Loss)
	c.Settle(Loss)
	assert.Equal(t, 120.0, c.Wager(100))
	c.Settle(Win)
	c.Settle(Loss)
	assert.Equal(t, 100.0, c.Wager(100))
}

func TestController_LossDecrease(t *testing.T) {
	c := newController(t, model.Progression{LossDecPct: 50, LossWinMode: model.ModePersist})

	c.Settle(Loss)
	assert.Equal(t, 50.0, c.Wager(100))
	assert.Equal(t, 0.5, c.State().LossPersistFactor)

	c.Settle(Win)
	c.Settle(Loss)
	assert.Equal(t, 50.0, c.Wager(100))
}

func TestController_FullDecreaseFloorsAtZero(t *testing.T) {
	c := newController(t, model.Progression{LossDecPct: 150})
	c.Settle(Loss)
	assert.Equal(t, 0.0, c.Multiplier())
	assert.Equal(t, 0.0, c.Wager(100))
}

func TestController_WinIncreaseHasPriority(t *testing.T) {
	c := newController(t, model.Progression{WinIncPct: 10, WinDecPct: 20})
	c.Settle(Win)
	assert.Equal(t, 110.0, c.Wager(100))
}

func TestController_WinDecrease(t *testing.T) {
	c := newController(t, model.Progression{WinDecPct: 25, WinStart: 2})
	c.Settle(Win)
	assert.Equal(t, 100.0, c.Wager(100))
	c.Settle(Win)
	assert.Equal(t, 75.0, c.Wager(100))
}

func TestController_WinPersistResetOnLoss(t *testing.T) {
	c := newController(t, model.Progression{WinIncPct: 50, WinLossMode: model.ModeReset})

	c.Settle(Win)
	assert.Equal(t, 150.0, c.Wager(100))
	c.Settle(Loss)
	assert.Equal(t, 100.0, c.Wager(100))
	assert.Equal(t, 1.0, c.State().WinPersistFactor)
}

func TestController_WinPersistSurvivesLoss(t *testing.T) {
	c := newController(t, model.Progression{WinIncPct: 50, WinLossMode: model.ModePersist})

	c.Settle(Win)
	c.Settle(Loss)
	assert.Equal(t, 1.5, c.State().WinPersistFactor)
	c.Settle(Win)
	assert.Equal(t, 150.0, c.Wager(100))
}

func TestController_PushChangesNothing(t *testing.T) {
	c := newController(t, model.Progression{LossPct: 50})
	c.Settle(Loss)
	before := c.State()

	c.Settle(Push)
	assert.Equal(t, before, c.State())
	assert.Equal(t, 150.0, c.Wager(100))
}

func TestController_StreaksAreExclusive(t *testing.T) {
	c := newController(t, model.Progression{})
	for _, r := range []BetResult{Win, Win, Loss, Push, Loss, Win} {
		c.Settle(r)
		s := c.State()
		assert.False(t, s.WinStreak > 0 && s.LossStreak > 0)
	}
	assert.Equal(t, 1, c.State().WinStreak)
	assert.Equal(t, Win, c.State().LastBet)
}

func TestController_Rounding(t *testing.T) {
	c := newController(t, model.Progression{LossPct: 33})
	c.Settle(Loss)
	assert.Equal(t, 13.3, c.Wager(10))
}

func TestNew_InvalidMode(t *testing.T) {
	_, err := New(model.Progression{LossWinMode: "double"})
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = New(model.Progression{WinLossMode: "keep"})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestBetResult_String(t *testing.T) {
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "loss", Loss.String())
	assert.Equal(t, "push", Push.String())
}

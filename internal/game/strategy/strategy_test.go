package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baccarat_sim/internal/model"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Always-Banker ")
	require.NoError(t, err)
	assert.Equal(t, AlwaysBanker, k)

	_, err = ParseKind("martingale")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNew_EveryKind(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, k := range Kinds {
		s, err := New(string(k), rng)
		require.NoError(t, err, "kind %s", k)
		require.NotNil(t, s)
	}

	_, err := New("random", nil)
	assert.Error(t, err)
}

func TestConstantStrategies(t *testing.T) {
	banker, err := New("always-banker", nil)
	require.NoError(t, err)
	player, err := New("always-player", nil)
	require.NoError(t, err)

	for _, o := range []model.Outcome{model.OutcomePlayer, model.OutcomeTie, model.OutcomeBanker} {
		assert.Equal(t, model.SideBanker, banker.Decide())
		assert.Equal(t, model.SidePlayer, player.Decide())
		banker.Observe(o)
		player.Observe(o)
	}
}

func TestAlternate(t *testing.T) {
	s, err := New("alternate", nil)
	require.NoError(t, err)

	want := []model.Side{model.SidePlayer, model.SideBanker, model.SidePlayer, model.SideBanker}
	for _, w := range want {
		assert.Equal(t, w, s.Decide())
		s.Observe(model.OutcomeBanker)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := New("random", rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := New("random", rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	seen := make(map[model.Side]int)
	for i := 0; i < 200; i++ {
		sa, sb := a.Decide(), b.Decide()
		assert.Equal(t, sa, sb)
		seen[sa]++
	}
	assert.Len(t, seen, 2)
	assert.Positive(t, seen[model.SidePlayer])
	assert.Positive(t, seen[model.SideBanker])
}

func TestFlipOppositeWait(t *testing.T) {
	s, err := New("flip-opposite-wait", nil)
	require.NoError(t, err)

	steps := []struct {
		observe model.Outcome
		want    model.Side
	}{
		{"", model.SideNone},                    // nothing seen yet
		{model.OutcomeTie, model.SideNone},      // ties are ignored
		{model.OutcomeBanker, model.SidePlayer}, // first winner, bet against it
		{model.OutcomePlayer, model.SideBanker}, // streak of one on player
		{model.OutcomePlayer, model.SideNone},   // streak of two, wait
		{model.OutcomePlayer, model.SideNone},   // still waiting
		{model.OutcomeTie, model.SideNone},      // tie keeps waiting
		{model.OutcomeBanker, model.SidePlayer}, // streak broke, one switch bet
	}

	for i, st := range steps {
		if st.observe != "" {
			s.Observe(st.observe)
		}
		assert.Equal(t, st.want, s.Decide(), "step %d", i)
	}

	// after the switch bet the normal rule applies again: streak of one
	assert.Equal(t, model.SidePlayer, s.Decide())
}

func TestFlipOppositeWait_StreakBreakWithoutWait(t *testing.T) {
	f := &flipOppositeWait{}
	f.Observe(model.OutcomePlayer)
	f.Observe(model.OutcomeBanker)

	assert.False(t, f.justSwitched)
	assert.Equal(t, 1, f.streak)
	assert.Equal(t, model.SidePlayer, f.Decide())
}

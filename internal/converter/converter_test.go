package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "baccarat_sim/internal/api/dto/simulation"
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"
)

func TestToRunParams_OverlaysOnlyGivenFields(t *testing.T) {
	seed := int64(7)
	base := config.Preset{Name: "flat-banker", RebatePct: 1}
	base.Params = model.DefaultRunParams()
	base.Params.Bankroll = 1000
	base.Params.Bet = 10
	base.Params.Hands = 500
	base.Params.Strategy = "always-banker"
	base.Params.Seed = &seed

	hands := 100
	mode := "persist"
	rebate := 0.5
	p, r := ToRunParams(dto.RunRequest{
		Hands:                  &hands,
		LossProgressionWinMode: &mode,
		RebatePct:              &rebate,
	}, base)

	assert.Equal(t, 100, p.Hands)
	assert.Equal(t, 1000.0, p.Bankroll)
	assert.Equal(t, "always-banker", p.Strategy)
	assert.Equal(t, model.ModePersist, p.LossWinMode)
	assert.Equal(t, model.ModeReset, p.WinLossMode)
	assert.Equal(t, 0.5, r)
	require.NotNil(t, p.Seed)
	assert.Equal(t, int64(7), *p.Seed)

	// seed пресета не должен меняться через результат
	*p.Seed = 99
	assert.Equal(t, int64(7), *base.Params.Seed)
}

func TestToRunParams_RebateFromPreset(t *testing.T) {
	base := config.Preset{RebatePct: 1.2, Params: model.DefaultRunParams()}
	_, r := ToRunParams(dto.RunRequest{}, base)
	assert.Equal(t, 1.2, r)
}

func TestToPlaybackResponse_HandsLeft(t *testing.T) {
	p := model.Playback{ID: "x", HandsDone: 3}
	p.Params.Hands = 10
	got := ToPlaybackResponse(p)
	assert.Equal(t, 7, got.HandsLeft)

	got = ToStepResponse(nil, p)
	assert.NotNil(t, got.Events)
	assert.Empty(t, got.Events)
}

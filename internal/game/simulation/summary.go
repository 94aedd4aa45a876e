package simulation

import (
	"baccarat_sim/internal/model"
	"baccarat_sim/pkg/money"
)

// Summary returns the aggregate of a finished run. It is computed once.
func (d *Driver) Summary() (model.RunSummary, error) {
	if d.err != nil {
		return model.RunSummary{}, d.err
	}
	if !d.Done() {
		return model.RunSummary{}, ErrRunNotFinished
	}
	if d.summary == nil {
		s := d.buildSummary()
		d.summary = &s
	}
	return *d.summary, nil
}

func (d *Driver) buildSummary() model.RunSummary {
	t := d.totals
	hands := float64(d.params.Hands)
	initial := d.params.Bankroll
	profit := d.bankroll - initial

	var roi float64
	if t.wagered > 0 {
		roi = profit / t.wagered
	}

	var hitRate *float64
	if attempts := t.betHands - t.pushHands; attempts > 0 {
		r := float64(t.wins) / float64(attempts)
		hitRate = &r
	}

	dist := make(map[model.Outcome]model.OutcomeShare, len(model.Outcomes))
	for _, o := range model.Outcomes {
		dist[o] = model.OutcomeShare{
			Count: t.outcomes[o],
			Pct:   float64(t.outcomes[o]) / hands,
		}
	}

	return model.RunSummary{
		Params:              d.params,
		InitialBankroll:     initial,
		FinalBankroll:       money.Round2(d.bankroll),
		TotalProfit:         money.Round2(profit),
		TotalWagered:        money.Round2(t.wagered),
		ROI:                 roi,
		BetHands:            t.betHands,
		ObserveHands:        t.observeHands,
		PushHands:           t.pushHands,
		Wins:                t.wins,
		Losses:              t.losses,
		CommissionTotal:     money.Round2(t.commission),
		PlayerWins:          t.outcomes[model.OutcomePlayer],
		BankerWins:          t.outcomes[model.OutcomeBanker],
		Ties:                t.outcomes[model.OutcomeTie],
		AvgCardsPerHand:     float64(t.cardsDealt) / hands,
		CardsDealtTotal:     t.cardsDealt,
		ShoeReshuffles:      d.shoe.Shuffles(),
		StrategyHitRate:     hitRate,
		OutcomeDistribution: dist,
	}
}

package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"baccarat_sim/internal/model"
	"baccarat_sim/pkg/money"
)

// Analyze computes analytics for a finished run. rebatePct is a percentage
// of turnover paid back to the player.
func Analyze(summary model.RunSummary, events []model.HandEvent, rebatePct float64) model.Analytics {
	a := model.Analytics{RebatePct: rebatePct}

	a.Rebate = money.Percent(summary.TotalWagered, rebatePct)
	a.ProfitWithRebate = money.Round2(summary.TotalProfit + a.Rebate)
	if summary.TotalWagered > 0 {
		a.ROIWithRebate = a.ProfitWithRebate / summary.TotalWagered
	}

	curve := make([]float64, 0, len(events)+1)
	curve = append(curve, summary.InitialBankroll)
	results := make([]float64, 0, summary.BetHands)
	var winRun, lossRun int
	for _, ev := range events {
		curve = append(curve, ev.BankrollAfter)
		if !ev.HasBet() {
			continue
		}
		results = append(results, ev.WinAmount)

		switch {
		case ev.Outcome == model.OutcomeTie:
		case ev.WinAmount > 0:
			winRun++
			lossRun = 0
		default:
			lossRun++
			winRun = 0
		}
		a.LongestWinStreak = max(a.LongestWinStreak, winRun)
		a.LongestLossStreak = max(a.LongestLossStreak, lossRun)
	}

	a.PeakBankroll = floats.Max(curve)
	a.TroughBankroll = floats.Min(curve)
	a.MaxDrawdown, a.MaxDrawdownPct = drawdown(curve)

	switch len(results) {
	case 0:
	case 1:
		a.MeanBetResult = results[0]
	default:
		a.MeanBetResult, a.StdDevBetResult = stat.MeanStdDev(results, nil)
	}
	return a
}

// drawdown returns the largest fall from a running peak, absolute and as a
// fraction of that peak.
func drawdown(curve []float64) (abs, pct float64) {
	peak := curve[0]
	for _, v := range curve {
		peak = max(peak, v)
		if dd := peak - v; dd > abs {
			abs = dd
			if peak > 0 {
				pct = dd / peak
			}
		}
	}
	return money.Round2(abs), pct
}

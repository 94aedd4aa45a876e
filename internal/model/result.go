package model

// Analytics - показатели, вычисляемые по итогу и журналу раздач
type Analytics struct {
	RebatePct        float64 `json:"rebate_pct"`
	Rebate           float64 `json:"rebate"`
	ProfitWithRebate float64 `json:"profit_with_rebate"`
	ROIWithRebate    float64 `json:"roi_with_rebate"`

	PeakBankroll   float64 `json:"peak_bankroll"`
	TroughBankroll float64 `json:"trough_bankroll"`
	MaxDrawdown    float64 `json:"max_drawdown"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`

	// по раздачам со ставкой, пуши входят как 0
	MeanBetResult   float64 `json:"mean_bet_result"`
	StdDevBetResult float64 `json:"stddev_bet_result"`

	LongestWinStreak  int `json:"longest_win_streak"`
	LongestLossStreak int `json:"longest_loss_streak"`
}

// RunResult - ответ сервиса на завершенный прогон
type RunResult struct {
	Record    RunRecord
	Analytics Analytics
}

package simulation

import (
	"time"

	"baccarat_sim/internal/model"
)

// RunRequest - параметры прогона. Незаданные поля берутся из пресета,
// а без пресета из блока defaults
type RunRequest struct {
	Preset string `json:"preset"`

	Bankroll    *float64 `json:"bankroll"`
	BetSize     *float64 `json:"bet_size"`
	Hands       *int     `json:"hands"`
	Decks       *int     `json:"decks"`
	Penetration *int     `json:"penetration"`
	Strategy    *string  `json:"strategy"`
	Seed        *int64   `json:"seed"`

	LossProgressionPct     *float64 `json:"loss_progression_pct"`
	LossProgressionDecPct  *float64 `json:"loss_progression_dec_pct"`
	LossProgressionStart   *int     `json:"loss_progression_start"`
	LossProgressionWinMode *string  `json:"loss_progression_win_mode"`
	WinProgressionIncPct   *float64 `json:"win_progression_inc_pct"`
	WinProgressionDecPct   *float64 `json:"win_progression_dec_pct"`
	WinProgressionStart    *int     `json:"win_progression_start"`
	WinProgressionLossMode *string  `json:"win_progression_loss_mode"`

	RebatePct *float64 `json:"rebate_pct"` // Процент возврата с оборота
}

type RunResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Summary   model.RunSummary `json:"summary"`
	Analytics model.Analytics  `json:"analytics"`
}

type RunListItem struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Strategy    string    `json:"strategy"`
	Hands       int       `json:"hands"`
	TotalProfit float64   `json:"total_profit"`
	ROI         float64   `json:"roi"`
}

type PresetResponse struct {
	Name      string          `json:"name"`
	Params    model.RunParams `json:"params"`
	RebatePct float64         `json:"rebate_pct"`
}

type StatsResponse struct {
	TotalRuns       int     `json:"total_runs"`
	TotalHands      int     `json:"total_hands"`
	BetHands        int     `json:"bet_hands"`
	TotalWagered    float64 `json:"total_wagered"`
	TotalProfit     float64 `json:"total_profit"`
	TotalCommission float64 `json:"total_commission"`
	ReturnPct       float64 `json:"return_pct"`
	WindowSize      int     `json:"window_size"`
	WindowRuns      int     `json:"window_runs"`
	WindowReturnPct float64 `json:"window_return_pct"`
}

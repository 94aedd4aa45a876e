package model

import "time"

// ProgressionMode определяет, что происходит с накопленным множителем,
// когда серия прерывается
type ProgressionMode string

const (
	ModeReset   ProgressionMode = "reset"
	ModePersist ProgressionMode = "persist"
	ModeIgnore  ProgressionMode = "ignore"
)

// Persists reports whether the multiplier survives a broken streak.
// persist and ignore behave the same way.
func (m ProgressionMode) Persists() bool {
	return m == ModePersist || m == ModeIgnore
}

// Progression - настройки изменения ставки по сериям
type Progression struct {
	LossPct     float64         `json:"loss_progression_pct" yaml:"loss_progression_pct"`
	LossDecPct  float64         `json:"loss_progression_dec_pct" yaml:"loss_progression_dec_pct"`
	LossStart   int             `json:"loss_progression_start" yaml:"loss_progression_start"`
	LossWinMode ProgressionMode `json:"loss_progression_win_mode" yaml:"loss_progression_win_mode"`
	WinIncPct   float64         `json:"win_progression_inc_pct" yaml:"win_progression_inc_pct"`
	WinDecPct   float64         `json:"win_progression_dec_pct" yaml:"win_progression_dec_pct"`
	WinStart    int             `json:"win_progression_start" yaml:"win_progression_start"`
	WinLossMode ProgressionMode `json:"win_progression_loss_mode" yaml:"win_progression_loss_mode"`
}

// RunParams - параметры одного прогона
type RunParams struct {
	Bankroll    float64 `json:"bankroll" yaml:"bankroll"`
	Bet         float64 `json:"bet_size" yaml:"bet"`
	Hands       int     `json:"hands" yaml:"hands"`
	Decks       int     `json:"decks" yaml:"decks"`
	Penetration int     `json:"penetration" yaml:"penetration"`
	Strategy    string  `json:"strategy" yaml:"strategy"`
	// Seed nil означает посев от текущего времени
	Seed *int64 `json:"seed" yaml:"seed"`

	Progression `yaml:",inline"`
}

// DefaultRunParams returns the defaults used when a field is not supplied.
func DefaultRunParams() RunParams {
	return RunParams{
		Decks:       8,
		Penetration: 52,
		Strategy:    "flip-opposite-wait",
		Progression: Progression{
			LossStart:   1,
			LossWinMode: ModeReset,
			WinStart:    1,
			WinLossMode: ModeReset,
		},
	}
}

// HandEvent - запись об одной раздаче. После создания не меняется
type HandEvent struct {
	Timestamp      time.Time `json:"timestamp"`
	HandNo         int       `json:"hand_no"`
	BetSide        Side      `json:"bet_side"`
	BetAmount      float64   `json:"bet_amount"`
	PlayerCards    []string  `json:"player_cards"`
	BankerCards    []string  `json:"banker_cards"`
	PlayerTotal    int       `json:"player_total"`
	BankerTotal    int       `json:"banker_total"`
	Outcome        Outcome   `json:"outcome"`
	WinAmount      float64   `json:"win_amount"`
	BankrollAfter  float64   `json:"bankroll_after"`
	ShoeCardsLeft  int       `json:"shoe_cards_left"`
	CommissionPaid float64   `json:"commission_paid"`
	CumulativeWin  float64   `json:"cumulative_win"`
}

// HasBet reports whether a wager was placed on the hand.
func (e HandEvent) HasBet() bool {
	return e.BetSide != SideNone
}

// OutcomeShare - количество и доля исхода среди всех раздач
type OutcomeShare struct {
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

// RunSummary - итог прогона, считается один раз по окончании
type RunSummary struct {
	Params              RunParams                `json:"params"`
	InitialBankroll     float64                  `json:"initial_bankroll"`
	FinalBankroll       float64                  `json:"final_bankroll"`
	TotalProfit         float64                  `json:"total_profit"`
	TotalWagered        float64                  `json:"total_wagered"`
	ROI                 float64                  `json:"roi"`
	BetHands            int                      `json:"bet_hands"`
	ObserveHands        int                      `json:"observe_hands"`
	PushHands           int                      `json:"push_hands"`
	Wins                int                      `json:"wins"`
	Losses              int                      `json:"losses"`
	CommissionTotal     float64                  `json:"commission_total"`
	PlayerWins          int                      `json:"player_wins"`
	BankerWins          int                      `json:"banker_wins"`
	Ties                int                      `json:"ties"`
	AvgCardsPerHand     float64                  `json:"avg_cards_per_hand"`
	CardsDealtTotal     int                      `json:"cards_dealt_total"`
	ShoeReshuffles      int                      `json:"shoe_reshuffles"`
	StrategyHitRate     *float64                 `json:"strategy_hit_rate"`
	OutcomeDistribution map[Outcome]OutcomeShare `json:"outcome_distribution"`
}

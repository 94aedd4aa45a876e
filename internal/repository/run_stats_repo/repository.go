package run_stats_repo

import (
	"sync"

	"baccarat_sim/internal/model"
	repoModel "baccarat_sim/internal/repository/run_stats_repo/model"
)

// StatsRepo - статистика прогонов в памяти, со скользящим окном последних прогонов
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.Stats
}

// NewRunStatsRepository Конструктор репозитория с окном из windowSize прогонов
func NewRunStatsRepository(windowSize int) *StatsRepo {
	return &StatsRepo{
		state: repoModel.Stats{
			RunWindow:  make([]repoModel.RunResult, 0, windowSize),
			WindowSize: max(1, windowSize),
		},
	}
}

// Stats возвращает копию текущей статистики
func (r *StatsRepo) Stats() repoModel.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := r.state
	out.RunWindow = append([]repoModel.RunResult(nil), r.state.RunWindow...)
	return out
}

// UpdateStats учитывает завершенный прогон
func (r *StatsRepo) UpdateStats(s model.RunSummary) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRuns++
	r.state.TotalHands += s.BetHands + s.ObserveHands
	r.state.BetHands += s.BetHands
	r.state.TotalWagered += s.TotalWagered
	r.state.TotalProfit += s.TotalProfit
	r.state.TotalCommission += s.CommissionTotal
	r.state.ReturnPct = returnPct(r.state.TotalWagered, r.state.TotalProfit)

	// Добавляем прогон в окно
	r.state.RunWindow = append(r.state.RunWindow, repoModel.RunResult{
		Strategy:  s.Params.Strategy,
		Hands:     s.BetHands + s.ObserveHands,
		Wagered:   s.TotalWagered,
		Profit:    s.TotalProfit,
		ReturnPct: returnPct(s.TotalWagered, s.TotalProfit),
	})

	// Поддерживаем размер окна
	if len(r.state.RunWindow) > r.state.WindowSize {
		r.state.RunWindow = r.state.RunWindow[1:]
	}

	var windowWagered, windowProfit float64
	for _, run := range r.state.RunWindow {
		windowWagered += run.Wagered
		windowProfit += run.Profit
	}
	r.state.WindowReturnPct = returnPct(windowWagered, windowProfit)
}

func returnPct(wagered, profit float64) float64 {
	if wagered <= 0 {
		return 0
	}
	return (wagered + profit) / wagered * 100
}

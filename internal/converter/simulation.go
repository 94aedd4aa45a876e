package converter

import (
	dto "baccarat_sim/internal/api/dto/simulation"
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"
	statsModel "baccarat_sim/internal/repository/run_stats_repo/model"
)

// ToRunParams накладывает заданные в запросе поля на параметры пресета.
// Возвращает параметры и процент rebate
func ToRunParams(req dto.RunRequest, base config.Preset) (model.RunParams, float64) {
	p := base.Params
	if base.Params.Seed != nil {
		seed := *base.Params.Seed
		p.Seed = &seed
	}

	setIf(&p.Bankroll, req.Bankroll)
	setIf(&p.Bet, req.BetSize)
	setIf(&p.Hands, req.Hands)
	setIf(&p.Decks, req.Decks)
	setIf(&p.Penetration, req.Penetration)
	setIf(&p.Strategy, req.Strategy)
	if req.Seed != nil {
		seed := *req.Seed
		p.Seed = &seed
	}

	setIf(&p.LossPct, req.LossProgressionPct)
	setIf(&p.LossDecPct, req.LossProgressionDecPct)
	setIf(&p.LossStart, req.LossProgressionStart)
	if req.LossProgressionWinMode != nil {
		p.LossWinMode = model.ProgressionMode(*req.LossProgressionWinMode)
	}
	setIf(&p.WinIncPct, req.WinProgressionIncPct)
	setIf(&p.WinDecPct, req.WinProgressionDecPct)
	setIf(&p.WinStart, req.WinProgressionStart)
	if req.WinProgressionLossMode != nil {
		p.WinLossMode = model.ProgressionMode(*req.WinProgressionLossMode)
	}

	rebate := base.RebatePct
	setIf(&rebate, req.RebatePct)
	return p, rebate
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func ToRunResponse(res *model.RunResult) dto.RunResponse {
	return dto.RunResponse{
		ID:        res.Record.ID,
		CreatedAt: res.Record.CreatedAt,
		Summary:   res.Record.Summary,
		Analytics: res.Analytics,
	}
}

func ToRunList(records []model.RunRecord) []dto.RunListItem {
	result := make([]dto.RunListItem, len(records))
	for i, r := range records {
		result[i] = dto.RunListItem{
			ID:          r.ID,
			CreatedAt:   r.CreatedAt,
			Strategy:    r.Summary.Params.Strategy,
			Hands:       r.Summary.Params.Hands,
			TotalProfit: r.Summary.TotalProfit,
			ROI:         r.Summary.ROI,
		}
	}
	return result
}

func ToPresetResponses(presets []config.Preset) []dto.PresetResponse {
	result := make([]dto.PresetResponse, len(presets))
	for i, p := range presets {
		result[i] = dto.PresetResponse{
			Name:      p.Name,
			Params:    p.Params,
			RebatePct: p.RebatePct,
		}
	}
	return result
}

func ToStatsResponse(s statsModel.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalRuns:       s.TotalRuns,
		TotalHands:      s.TotalHands,
		BetHands:        s.BetHands,
		TotalWagered:    s.TotalWagered,
		TotalProfit:     s.TotalProfit,
		TotalCommission: s.TotalCommission,
		ReturnPct:       s.ReturnPct,
		WindowSize:      s.WindowSize,
		WindowRuns:      len(s.RunWindow),
		WindowReturnPct: s.WindowReturnPct,
	}
}

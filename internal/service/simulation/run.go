package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"baccarat_sim/internal/config"
	engine "baccarat_sim/internal/game/simulation"
	"baccarat_sim/internal/metrics"
	"baccarat_sim/internal/model"
	"baccarat_sim/internal/report"
	"baccarat_sim/internal/repository"
	statsModel "baccarat_sim/internal/repository/run_stats_repo/model"
	"baccarat_sim/internal/service"
)

func (s *serv) Presets() []config.Preset {
	return s.presets.Presets()
}

func (s *serv) Preset(name string) (config.Preset, error) {
	if name == "" {
		return s.presets.Defaults(), nil
	}
	p, ok := s.presets.Preset(name)
	if !ok {
		return config.Preset{}, fmt.Errorf("%w: %s", service.ErrPresetNotFound, name)
	}
	return p, nil
}

// Run выполняет прогон целиком, сохраняет итог и раздачи одной транзакцией
func (s *serv) Run(ctx context.Context, params model.RunParams, rebatePct float64) (*model.RunResult, error) {
	if err := s.checkPolicy(params, rebatePct); err != nil {
		return nil, err
	}

	started := time.Now()
	events, summary, err := engine.Run(params, engine.WithLogger(s.log))
	if err != nil {
		return nil, err
	}
	s.metrics.RunDuration.Observe(time.Since(started).Seconds())

	rec := model.RunRecord{
		ID:        uuid.NewString(),
		CreatedAt: started,
		Summary:   summary,
		Events:    events,
	}
	if err = s.save(ctx, &rec, metrics.ModeBatch); err != nil {
		return nil, err
	}

	return &model.RunResult{
		Record:    rec,
		Analytics: report.Analyze(summary, events, rebatePct),
	}, nil
}

// save - общий путь завершения прогона для пакетного и пошагового режима
func (s *serv) save(ctx context.Context, rec *model.RunRecord, mode string) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.runRepo.SaveRun(txCtx, rec); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		if !s.limits.PersistEvents() {
			return nil
		}
		if err := s.runRepo.SaveEvents(txCtx, rec.ID, rec.Events); err != nil {
			return fmt.Errorf("save events: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("run_id", rec.ID).Msg("failed to persist run")
		return err
	}

	sum := rec.Summary
	s.statsRepo.UpdateStats(sum)
	s.metrics.RunsTotal.WithLabelValues(sum.Params.Strategy, mode).Inc()
	s.metrics.HandsTotal.WithLabelValues(string(model.OutcomePlayer)).Add(float64(sum.PlayerWins))
	s.metrics.HandsTotal.WithLabelValues(string(model.OutcomeBanker)).Add(float64(sum.BankerWins))
	s.metrics.HandsTotal.WithLabelValues(string(model.OutcomeTie)).Add(float64(sum.Ties))

	s.log.Info().
		Str("run_id", rec.ID).
		Str("mode", mode).
		Str("strategy", sum.Params.Strategy).
		Int("hands", sum.Params.Hands).
		Float64("profit", sum.TotalProfit).
		Float64("wagered", sum.TotalWagered).
		Msg("run finished")
	return nil
}

func (s *serv) GetRun(ctx context.Context, id string) (*model.RunRecord, error) {
	rec, err := s.runRepo.GetRun(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", service.ErrRunNotFound, id)
		}
		s.log.Error().Err(err).Str("run_id", id).Msg("failed to load run")
		return nil, err
	}
	return rec, nil
}

func (s *serv) RunWithEvents(ctx context.Context, id string) (*model.RunRecord, error) {
	rec, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Events, err = s.runRepo.GetEvents(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("run_id", id).Msg("failed to load hands")
		return nil, err
	}
	return rec, nil
}

func (s *serv) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	runs, err := s.runRepo.ListRuns(ctx, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list runs")
		return nil, err
	}
	return runs, nil
}

func (s *serv) Stats() statsModel.Stats {
	return s.statsRepo.Stats()
}

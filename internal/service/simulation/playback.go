package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	engine "baccarat_sim/internal/game/simulation"
	"baccarat_sim/internal/metrics"
	"baccarat_sim/internal/model"
	"baccarat_sim/internal/report"
	"baccarat_sim/internal/repository"
	"baccarat_sim/internal/service"
)

// maxStepCount ограничивает число раздач за один шаг
const maxStepCount = 1000

// StartPlayback создает пошаговую сессию. Раздачи не играются до первого шага
func (s *serv) StartPlayback(_ context.Context, params model.RunParams) (model.Playback, error) {
	if err := s.checkPolicy(params, 0); err != nil {
		return model.Playback{}, err
	}
	if s.playbackRepo.Count() >= s.limits.PlaybackMaxActive() {
		return model.Playback{}, service.ErrTooManyPlaybacks
	}

	id := uuid.NewString()
	d, err := engine.NewDriver(params, engine.WithLogger(s.log.With().Str("playback_id", id).Logger()))
	if err != nil {
		return model.Playback{}, err
	}

	sess := engine.NewSession(id, d, time.Now(), s.limits.PlaybackTTL())
	if err = s.playbackRepo.Add(sess); err != nil {
		return model.Playback{}, err
	}
	s.metrics.ActivePlaybacks.Set(float64(s.playbackRepo.Count()))

	s.log.Info().
		Str("playback_id", id).
		Str("strategy", d.Params().Strategy).
		Int("hands", params.Hands).
		Msg("playback started")
	return sess.Snapshot(), nil
}

// StepPlayback играет до count раздач. Шаг, закрывающий прогон, сохраняет его
// под id сессии
func (s *serv) StepPlayback(ctx context.Context, id string, count int) ([]model.HandEvent, model.Playback, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, model.Playback{}, err
	}

	count = min(max(count, 1), maxStepCount)
	events, err := sess.Step(count, time.Now())
	if err != nil {
		return nil, sess.Snapshot(), err
	}

	snap := sess.Snapshot()
	if snap.Finished && len(events) > 0 && events[len(events)-1].HandNo == snap.Params.Hands {
		if err = s.finishPlayback(ctx, sess, snap); err != nil {
			return events, snap, err
		}
	}
	return events, snap, nil
}

func (s *serv) finishPlayback(ctx context.Context, sess *engine.Session, snap model.Playback) error {
	summary, err := sess.Summary()
	if err != nil {
		return err
	}
	rec := model.RunRecord{
		ID:        sess.ID(),
		CreatedAt: snap.CreatedAt,
		Summary:   summary,
		Events:    sess.Events(),
	}
	return s.save(ctx, &rec, metrics.ModePlayback)
}

func (s *serv) GetPlayback(id string) (model.Playback, error) {
	sess, err := s.session(id)
	if err != nil {
		return model.Playback{}, err
	}
	return sess.Snapshot(), nil
}

// PlaybackSummary доступен только после последней раздачи
func (s *serv) PlaybackSummary(id string) (*model.RunResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	summary, err := sess.Summary()
	if err != nil {
		return nil, err
	}
	events := sess.Events()
	snap := sess.Snapshot()

	return &model.RunResult{
		Record: model.RunRecord{
			ID:        id,
			CreatedAt: snap.CreatedAt,
			Summary:   summary,
			Events:    events,
		},
		Analytics: report.Analyze(summary, events, 0),
	}, nil
}

// StopPlayback прекращает сессию: дальнейших шагов не будет
func (s *serv) StopPlayback(id string) error {
	if !s.playbackRepo.Delete(id) {
		return fmt.Errorf("%w: %s", service.ErrPlaybackNotFound, id)
	}
	s.metrics.ActivePlaybacks.Set(float64(s.playbackRepo.Count()))
	s.log.Info().Str("playback_id", id).Msg("playback stopped")
	return nil
}

// SweepPlaybacks удаляет простаивающие сессии
func (s *serv) SweepPlaybacks(now time.Time) int {
	removed := s.playbackRepo.DeleteExpired(now)
	if len(removed) > 0 {
		s.metrics.ExpiredPlaybacks.Add(float64(len(removed)))
		s.log.Info().Strs("playback_ids", removed).Msg("expired playbacks removed")
	}
	s.metrics.ActivePlaybacks.Set(float64(s.playbackRepo.Count()))
	return len(removed)
}

func (s *serv) session(id string) (*engine.Session, error) {
	sess, err := s.playbackRepo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", service.ErrPlaybackNotFound, id)
		}
		return nil, err
	}
	return sess, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"
	statsModel "baccarat_sim/internal/repository/run_stats_repo/model"
)

var (
	ErrPolicyViolation    = errors.New("parameters violate service policy")
	ErrRunNotFound        = errors.New("run not found")
	ErrPresetNotFound     = errors.New("preset not found")
	ErrPlaybackNotFound   = errors.New("playback not found")
	ErrTooManyPlaybacks   = errors.New("too many active playbacks")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type SimulationService interface {
	Presets() []config.Preset
	// Preset возвращает пресет по имени, пустое имя - блок defaults
	Preset(name string) (config.Preset, error)

	Run(ctx context.Context, params model.RunParams, rebatePct float64) (*model.RunResult, error)
	GetRun(ctx context.Context, id string) (*model.RunRecord, error)
	// RunWithEvents - итог прогона вместе с сохраненными раздачами
	RunWithEvents(ctx context.Context, id string) (*model.RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
	Stats() statsModel.Stats

	StartPlayback(ctx context.Context, params model.RunParams) (model.Playback, error)
	StepPlayback(ctx context.Context, id string, count int) ([]model.HandEvent, model.Playback, error)
	GetPlayback(id string) (model.Playback, error)
	PlaybackSummary(id string) (*model.RunResult, error)
	StopPlayback(id string) error
	SweepPlaybacks(now time.Time) int
}

type AuthService interface {
	Enabled() bool
	Login(ctx context.Context, password string) (*model.AuthData, error)
	Verify(accessToken string) (*model.OperatorClaims, error)
}

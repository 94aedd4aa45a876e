package repository

import (
	"context"
	"errors"
	"time"

	"baccarat_sim/internal/game/simulation"
	"baccarat_sim/internal/model"
	statsModel "baccarat_sim/internal/repository/run_stats_repo/model"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// RunRepository хранит итоги прогонов и их раздачи
type RunRepository interface {
	SaveRun(ctx context.Context, rec *model.RunRecord) error
	SaveEvents(ctx context.Context, runID string, events []model.HandEvent) error

	// GetRun возвращает итог без раздач
	GetRun(ctx context.Context, id string) (*model.RunRecord, error)
	GetEvents(ctx context.Context, runID string) ([]model.HandEvent, error)
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
}

// PlaybackRepository хранит активные пошаговые прогоны в памяти процесса
type PlaybackRepository interface {
	Add(s *simulation.Session) error
	Get(id string) (*simulation.Session, error)
	Delete(id string) bool
	DeleteExpired(now time.Time) []string
	Count() int
}

// RunStatsRepository - агрегаты по всем прогонам процесса
type RunStatsRepository interface {
	UpdateStats(summary model.RunSummary)
	Stats() statsModel.Stats
}

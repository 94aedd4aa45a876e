package memory_run_repo

import (
	"context"
	"fmt"
	"sync"

	"baccarat_sim/internal/model"
	"baccarat_sim/internal/repository"
)

// repo - хранилище прогонов в памяти, используется когда PG_DSN не задан
type repo struct {
	mtx    sync.RWMutex
	runs   map[string]model.RunRecord
	events map[string][]model.HandEvent
	order  []string
}

func NewRunRepository() repository.RunRepository {
	return &repo{
		runs:   make(map[string]model.RunRecord),
		events: make(map[string][]model.HandEvent),
	}
}

func (r *repo) SaveRun(_ context.Context, rec *model.RunRecord) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.runs[rec.ID]; ok {
		return fmt.Errorf("run %s: %w", rec.ID, repository.ErrAlreadyExists)
	}
	stored := *rec
	stored.Events = nil
	r.runs[rec.ID] = stored
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *repo) SaveEvents(_ context.Context, runID string, events []model.HandEvent) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.runs[runID]; !ok {
		return fmt.Errorf("run %s: %w", runID, repository.ErrNotFound)
	}
	r.events[runID] = append(r.events[runID], events...)
	return nil
}

func (r *repo) GetRun(_ context.Context, id string) (*model.RunRecord, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rec, ok := r.runs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (r *repo) GetEvents(_ context.Context, runID string) ([]model.HandEvent, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stored := r.events[runID]
	out := make([]model.HandEvent, len(stored))
	copy(out, stored)
	return out, nil
}

// ListRuns - последние прогоны, новые первыми
func (r *repo) ListRuns(_ context.Context, limit int) ([]model.RunRecord, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]model.RunRecord, 0, min(limit, len(r.order)))
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.runs[r.order[i]])
	}
	return out, nil
}

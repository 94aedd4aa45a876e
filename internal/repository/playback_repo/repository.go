package playback_repo

import (
	"fmt"
	"sync"
	"time"

	"baccarat_sim/internal/game/simulation"
	"baccarat_sim/internal/repository"
)

type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*simulation.Session
}

// NewPlaybackRepository - активные пошаговые прогоны в памяти процесса
func NewPlaybackRepository() repository.PlaybackRepository {
	return &repo{
		sessions: make(map[string]*simulation.Session),
	}
}

func (r *repo) Add(s *simulation.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[s.ID()]; ok {
		return fmt.Errorf("playback %s: %w", s.ID(), repository.ErrAlreadyExists)
	}
	r.sessions[s.ID()] = s
	return nil
}

func (r *repo) Get(id string) (*simulation.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (r *repo) Delete(id string) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// DeleteExpired удаляет сессии, простоявшие дольше TTL, и возвращает их id
func (r *repo) DeleteExpired(now time.Time) []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	var removed []string
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}

func (r *repo) Count() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.sessions)
}

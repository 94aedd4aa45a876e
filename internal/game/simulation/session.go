package simulation

import (
	"sync"
	"time"

	"baccarat_sim/internal/model"
)

// Session is a Driver shared between callers of a playback. All access to the
// driver goes through the session lock, so one caller steps it at a time.
type Session struct {
	mu sync.Mutex

	id        string
	driver    *Driver
	events    []model.HandEvent
	ttl       time.Duration
	createdAt time.Time
	expiresAt time.Time
}

// NewSession wraps d. The session expires ttl after its last use.
func NewSession(id string, d *Driver, now time.Time, ttl time.Duration) *Session {
	return &Session{
		id:        id,
		driver:    d,
		events:    make([]model.HandEvent, 0, min(d.Params().Hands, 1024)),
		ttl:       ttl,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Step plays up to n hands and returns them. Fewer are returned when the run
// ends; a finished session returns ErrRunFinished.
func (s *Session) Step(n int, now time.Time) ([]model.HandEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expiresAt = now.Add(s.ttl)
	if s.driver.Done() {
		return nil, ErrRunFinished
	}

	out := make([]model.HandEvent, 0, min(n, s.driver.Params().Hands-s.driver.HandsDone()))
	for i := 0; i < n && !s.driver.Done(); i++ {
		ev, err := s.driver.Step()
		if err != nil {
			return out, err
		}
		out = append(out, ev)
	}
	s.events = append(s.events, out...)
	return out, nil
}

// Snapshot describes the session's progress.
func (s *Session) Snapshot() model.Playback {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Playback{
		ID:        s.id,
		Params:    s.driver.Params(),
		HandsDone: s.driver.HandsDone(),
		Finished:  s.driver.Done(),
		Bankroll:  s.driver.Params().Bankroll,
		CreatedAt: s.createdAt,
		ExpiresAt: s.expiresAt,
	}
	if n := len(s.events); n > 0 {
		p.Bankroll = s.events[n-1].BankrollAfter
	}
	return p
}

// Summary is available once every hand has been played.
func (s *Session) Summary() (model.RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.driver.Summary()
}

// Events returns a copy of every hand played so far.
func (s *Session) Events() []model.HandEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.HandEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Expired reports whether the session was idle past its TTL.
func (s *Session) Expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

package model

import "time"

// Playback - состояние пошагового прогона (режим проигрывания)
type Playback struct {
	ID        string
	Params    RunParams
	HandsDone int
	Finished  bool
	// Bankroll - банк после последней сыгранной раздачи
	Bankroll  float64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// RunRecord - сохраненный прогон. Events может быть пустым,
// если раздачи не сохранялись
type RunRecord struct {
	ID        string
	CreatedAt time.Time
	Summary   RunSummary
	Events    []HandEvent
}

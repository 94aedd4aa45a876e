package simulation

import (
	"time"

	"baccarat_sim/internal/service"
)

// PlaybackSweepJob - задача планировщика, удаляющая просроченные сессии
type PlaybackSweepJob struct {
	serv service.SimulationService
	now  func() time.Time
}

func NewPlaybackSweepJob(serv service.SimulationService) *PlaybackSweepJob {
	return &PlaybackSweepJob{serv: serv, now: time.Now}
}

func (j *PlaybackSweepJob) Name() string {
	return "playback_sweep"
}

func (j *PlaybackSweepJob) Run() error {
	j.serv.SweepPlaybacks(j.now())
	return nil
}

package converter

import (
	dto "baccarat_sim/internal/api/dto/playback"
	"baccarat_sim/internal/model"
)

func ToPlaybackResponse(p model.Playback) dto.PlaybackResponse {
	return dto.PlaybackResponse{
		ID:        p.ID,
		Params:    p.Params,
		HandsDone: p.HandsDone,
		HandsLeft: max(p.Params.Hands-p.HandsDone, 0),
		Finished:  p.Finished,
		Bankroll:  p.Bankroll,
		CreatedAt: p.CreatedAt,
		ExpiresAt: p.ExpiresAt,
	}
}

func ToStepResponse(events []model.HandEvent, p model.Playback) dto.StepResponse {
	if events == nil {
		events = []model.HandEvent{}
	}
	return dto.StepResponse{
		Playback: ToPlaybackResponse(p),
		Events:   events,
	}
}

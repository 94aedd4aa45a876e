package playback

import (
	"time"

	"baccarat_sim/internal/model"
)

type PlaybackResponse struct {
	ID        string          `json:"id"`
	Params    model.RunParams `json:"params"`
	HandsDone int             `json:"hands_done"`
	HandsLeft int             `json:"hands_left"`
	Finished  bool            `json:"finished"`
	Bankroll  float64         `json:"bankroll"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

type StepResponse struct {
	Playback PlaybackResponse  `json:"playback"`
	Events   []model.HandEvent `json:"events"`
}

// Действия клиента websocket
const (
	ActionStep = "step"
	ActionStop = "stop"
)

// ClientMessage - сообщение клиента websocket: {"action":"step","count":n} или {"action":"stop"}
type ClientMessage struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// Типы сообщений сервера websocket
const (
	MessageEvents   = "events"
	MessageFinished = "finished"
	MessageStopped  = "stopped"
	MessageError    = "error"
)

type ServerMessage struct {
	Type     string            `json:"type"`
	Playback *PlaybackResponse `json:"playback,omitempty"`
	Events   []model.HandEvent `json:"events,omitempty"`
	Summary  *model.RunSummary `json:"summary,omitempty"`
	Error    string            `json:"error,omitempty"`
}

package playback

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"baccarat_sim/internal/api/apierr"
	dto "baccarat_sim/internal/api/dto/playback"
	"baccarat_sim/internal/converter"
	"baccarat_sim/internal/model"
)

// Stream - websocket для пошагового режима. Клиент шлет
// {"action":"step","count":n} или {"action":"stop"}, сервер отвечает
// сообщениями events, finished, stopped и error
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.serv.GetPlayback(id); err != nil {
		apierr.Write(w, h.log, "stream_playback", err)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.originPatterns})
	if err != nil {
		h.log.Warn().Err(err).Str("playback_id", id).Msg("websocket accept failed")
		return
	}
	defer c.Close(websocket.StatusInternalError, "unexpected close")

	log := h.log.With().Str("playback_id", id).Logger()
	log.Debug().Msg("websocket connected")

	ctx := r.Context()
	for {
		var msg dto.ClientMessage
		if err = wsjson.Read(ctx, c, &msg); err != nil {
			if status := websocket.CloseStatus(err); status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				log.Debug().Msg("websocket closed by client")
				return
			}
			if !errors.Is(err, context.Canceled) {
				log.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}

		switch msg.Action {
		case dto.ActionStep:
			if err = h.streamStep(ctx, c, id, msg.Count); err != nil {
				log.Warn().Err(err).Msg("websocket write failed")
				return
			}
		case dto.ActionStop:
			if err = h.serv.StopPlayback(id); err != nil {
				_ = writeError(ctx, c, err)
			} else {
				_ = wsjson.Write(ctx, c, dto.ServerMessage{Type: dto.MessageStopped})
			}
			c.Close(websocket.StatusNormalClosure, "")
			return
		default:
			if err = writeError(ctx, c, errors.New("unknown action: "+msg.Action)); err != nil {
				return
			}
		}
	}
}

func (h *Handler) streamStep(ctx context.Context, c *websocket.Conn, id string, count int) error {
	events, pb, err := h.serv.StepPlayback(ctx, id, max(count, 1))
	if err != nil {
		return writeError(ctx, c, err)
	}

	state := converter.ToPlaybackResponse(pb)
	if events == nil {
		events = []model.HandEvent{}
	}
	if err = wsjson.Write(ctx, c, dto.ServerMessage{Type: dto.MessageEvents, Playback: &state, Events: events}); err != nil {
		return err
	}
	if !pb.Finished {
		return nil
	}

	result, err := h.serv.PlaybackSummary(id)
	if err != nil {
		return writeError(ctx, c, err)
	}
	return wsjson.Write(ctx, c, dto.ServerMessage{Type: dto.MessageFinished, Playback: &state, Summary: &result.Record.Summary})
}

// writeError отправляет ошибку сообщением, соединение остается открытым
func writeError(ctx context.Context, c *websocket.Conn, err error) error {
	text := err.Error()
	if apierr.Status(err) == http.StatusInternalServerError {
		text = "internal error"
	}
	return wsjson.Write(ctx, c, dto.ServerMessage{Type: dto.MessageError, Error: text})
}

package apierr

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	engine "baccarat_sim/internal/game/simulation"
	"baccarat_sim/internal/service"
	"baccarat_sim/pkg/resp"
)

// Status сопоставляет ошибку сервиса с HTTP статусом
func Status(err error) int {
	switch {
	case errors.Is(err, service.ErrPolicyViolation),
		errors.Is(err, engine.ErrInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRunNotFound),
		errors.Is(err, service.ErrPlaybackNotFound),
		errors.Is(err, service.ErrPresetNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrTooManyPlaybacks):
		return http.StatusTooManyRequests
	case errors.Is(err, engine.ErrRunFinished),
		errors.Is(err, engine.ErrRunNotFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write отдает ошибку клиенту. Внутренние ошибки логируются, а наружу
// уходит только общий текст
func Write(w http.ResponseWriter, log zerolog.Logger, op string, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("op", op).Msg("request failed")
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

package auth

import (
	"net/http"

	"github.com/rs/zerolog"

	"baccarat_sim/internal/api/apierr"
	dto "baccarat_sim/internal/api/dto/auth"
	"baccarat_sim/internal/service"
	"baccarat_sim/pkg/req"
	"baccarat_sim/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
	Log  zerolog.Logger
}

type Handler struct {
	serv service.AuthService
	log  zerolog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		log:  deps.Log.With().Str("component", "auth_api").Logger(),
	}
}

// Login проверяет пароль оператора и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.serv.Enabled() {
		resp.WriteError(w, http.StatusNotFound, "authentication is disabled")
		return
	}

	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Password)
	if err != nil {
		apierr.Write(w, h.log, "login", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		AccessToken: data.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   data.ExpiresIn,
	})
}

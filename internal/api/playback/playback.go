package playback

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"baccarat_sim/internal/api/apierr"
	simDTO "baccarat_sim/internal/api/dto/simulation"
	"baccarat_sim/internal/converter"
	"baccarat_sim/internal/service"
	"baccarat_sim/pkg/req"
	"baccarat_sim/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SimulationService
	Log  zerolog.Logger
	// OriginPatterns - разрешенные Origin для websocket, пусто - только свой хост
	OriginPatterns []string
}

type Handler struct {
	serv           service.SimulationService
	log            zerolog.Logger
	originPatterns []string
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:           deps.Serv,
		log:            deps.Log.With().Str("component", "playback_api").Logger(),
		originPatterns: deps.OriginPatterns,
	}
}

// Start создает пошаговую сессию. Тело такое же, как у пакетного прогона
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[simDTO.RunRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	preset, err := h.serv.Preset(requestBody.Preset)
	if err != nil {
		apierr.Write(w, h.log, "start_playback", err)
		return
	}
	params, _ := converter.ToRunParams(requestBody, preset)

	pb, err := h.serv.StartPlayback(r.Context(), params)
	if err != nil {
		apierr.Write(w, h.log, "start_playback", err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToPlaybackResponse(pb))
}

// Step играет ?count=N раздач, по умолчанию одну
func (h *Handler) Step(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			resp.WriteError(w, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = n
	}

	events, pb, err := h.serv.StepPlayback(r.Context(), chi.URLParam(r, "id"), count)
	if err != nil {
		apierr.Write(w, h.log, "step_playback", err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStepResponse(events, pb))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	pb, err := h.serv.GetPlayback(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Write(w, h.log, "get_playback", err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlaybackResponse(pb))
}

// Summary доступен после последней раздачи, до этого 409
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.PlaybackSummary(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Write(w, h.log, "playback_summary", err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRunResponse(result))
}

func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.StopPlayback(chi.URLParam(r, "id")); err != nil {
		apierr.Write(w, h.log, "stop_playback", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package simulation

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"baccarat_sim/internal/api/apierr"
	dto "baccarat_sim/internal/api/dto/simulation"
	"baccarat_sim/internal/converter"
	"baccarat_sim/internal/report"
	"baccarat_sim/internal/service"
	"baccarat_sim/pkg/req"
	"baccarat_sim/pkg/resp"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

type HandlerDeps struct {
	Serv service.SimulationService
	Log  zerolog.Logger
}

type Handler struct {
	serv service.SimulationService
	log  zerolog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		log:  deps.Log.With().Str("component", "simulation_api").Logger(),
	}
}

// CreateRun выполняет прогон целиком и возвращает итог с аналитикой
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RunRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	preset, err := h.serv.Preset(requestBody.Preset)
	if err != nil {
		apierr.Write(w, h.log, "create_run", err)
		return
	}
	params, rebatePct := converter.ToRunParams(requestBody, preset)

	result, err := h.serv.Run(r.Context(), params, rebatePct)
	if err != nil {
		apierr.Write(w, h.log, "create_run", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToRunResponse(result))
}

// ListRuns - последние прогоны, новые первыми. ?limit=N
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxListLimit)
	}

	records, err := h.serv.ListRuns(r.Context(), limit)
	if err != nil {
		apierr.Write(w, h.log, "list_runs", err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRunList(records))
}

// GetRun отдает JSON документ итога. Аналитика считается по сохраненным
// раздачам, ?rebate_pct=X задает процент возврата
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	rebatePct, err := floatQuery(r, "rebate_pct")
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.serv.RunWithEvents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Write(w, h.log, "get_run", err)
		return
	}

	analytics := report.Analyze(rec.Summary, rec.Events, rebatePct)
	w.Header().Set("Content-Type", "application/json")
	if err = report.WriteSummary(w, report.Document{RunSummary: rec.Summary, Analytics: &analytics}); err != nil {
		h.log.Error().Err(err).Str("run_id", rec.ID).Msg("write summary")
	}
}

// EventsCSV отдает таблицу раздач. ?params=true добавляет колонки параметров
func (h *Handler) EventsCSV(w http.ResponseWriter, r *http.Request) {
	rec, err := h.serv.RunWithEvents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Write(w, h.log, "events_csv", err)
		return
	}

	withParams, _ := strconv.ParseBool(r.URL.Query().Get("params"))
	params := &rec.Summary.Params
	if !withParams {
		params = nil
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="run_%s_events.csv"`, rec.ID))
	if err = report.WriteEvents(w, rec.Events, params); err != nil {
		h.log.Error().Err(err).Str("run_id", rec.ID).Msg("write events csv")
	}
}

func (h *Handler) Presets(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPresetResponses(h.serv.Presets()))
}

// Stats - накопленная статистика процесса и окно последних прогонов
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func floatQuery(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return v, nil
}

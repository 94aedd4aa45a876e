package playback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	dto "baccarat_sim/internal/api/dto/playback"
	simDTO "baccarat_sim/internal/api/dto/simulation"
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/metrics"
	"baccarat_sim/internal/model"
	"baccarat_sim/internal/repository/memory_run_repo"
	"baccarat_sim/internal/repository/playback_repo"
	"baccarat_sim/internal/repository/run_stats_repo"
	"baccarat_sim/internal/service"
	simService "baccarat_sim/internal/service/simulation"
)

type stubPresets struct {
	defaults config.Preset
}

func (s stubPresets) Defaults() config.Preset             { return s.defaults }
func (s stubPresets) Preset(string) (config.Preset, bool) { return config.Preset{}, false }
func (s stubPresets) Presets() []config.Preset            { return nil }

type stubLimits struct{}

func (stubLimits) MinHands() int              { return 100 }
func (stubLimits) MaxHands() int              { return 5000 }
func (stubLimits) AllowedDecks() []int        { return []int{8} }
func (stubLimits) PlaybackMaxActive() int     { return 2 }
func (stubLimits) PlaybackTTL() time.Duration { return time.Minute }
func (stubLimits) PersistEvents() bool        { return true }
func (stubLimits) StatsWindow() int           { return 10 }

type env struct {
	serv   service.SimulationService
	router http.Handler
}

func newEnv(t *testing.T) env {
	t.Helper()
	seed := int64(3)
	defaults := model.DefaultRunParams()
	defaults.Bankroll = 1000
	defaults.Bet = 10
	defaults.Hands = 100
	defaults.Seed = &seed

	serv := simService.NewSimulationService(simService.Deps{
		Presets:      stubPresets{defaults: config.Preset{Params: defaults}},
		Limits:       stubLimits{},
		RunRepo:      memory_run_repo.NewRunRepository(),
		PlaybackRepo: playback_repo.NewPlaybackRepository(),
		StatsRepo:    run_stats_repo.NewRunStatsRepository(10),
		TxManager:    memory_run_repo.NewTxManager(),
		Metrics:      metrics.New(),
		Log:          zerolog.Nop(),
	})
	h := NewHandler(HandlerDeps{Serv: serv, Log: zerolog.Nop()})

	r := chi.NewRouter()
	r.Route("/playback", func(rr chi.Router) {
		rr.Post("/", h.Start)
		rr.Get("/{id}", h.Get)
		rr.Post("/{id}/step", h.Step)
		rr.Get("/{id}/summary", h.Summary)
		rr.Delete("/{id}", h.Stop)
		rr.Get("/{id}/ws", h.Stream)
	})
	return env{serv: serv, router: r}
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func start(t *testing.T, h http.Handler) dto.PlaybackResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/playback/", `{}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var pb dto.PlaybackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pb))
	return pb
}

func TestPlayback_StepToTheEnd(t *testing.T) {
	e := newEnv(t)
	pb := start(t, e.router)
	assert.Equal(t, 0, pb.HandsDone)
	assert.Equal(t, 100, pb.HandsLeft)
	assert.Equal(t, 1000.0, pb.Bankroll)

	rec := do(t, e.router, http.MethodGet, "/playback/"+pb.ID+"/summary", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e.router, http.MethodPost, "/playback/"+pb.ID+"/step?count=60", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var step dto.StepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &step))
	require.Len(t, step.Events, 60)
	assert.Equal(t, 1, step.Events[0].HandNo)
	assert.Equal(t, 60, step.Playback.HandsDone)
	assert.False(t, step.Playback.Finished)
	assert.Equal(t, step.Events[59].BankrollAfter, step.Playback.Bankroll)

	rec = do(t, e.router, http.MethodPost, "/playback/"+pb.ID+"/step?count=60", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &step))
	assert.Len(t, step.Events, 40)
	assert.Equal(t, 61, step.Events[0].HandNo)
	assert.True(t, step.Playback.Finished)

	rec = do(t, e.router, http.MethodPost, "/playback/"+pb.ID+"/step", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e.router, http.MethodGet, "/playback/"+pb.ID+"/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sum simDTO.RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, pb.ID, sum.ID)
	assert.Equal(t, 100, sum.Summary.BetHands+sum.Summary.ObserveHands)

	// завершенная сессия сохранена как прогон под тем же id
	rec2, err := e.serv.GetRun(context.Background(), pb.ID)
	require.NoError(t, err)
	assert.Equal(t, sum.Summary.TotalProfit, rec2.Summary.TotalProfit)
}

func TestPlayback_Errors(t *testing.T) {
	e := newEnv(t)
	pb := start(t, e.router)

	rec := do(t, e.router, http.MethodPost, "/playback/"+pb.ID+"/step?count=zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e.router, http.MethodPost, "/playback/", `{"hands":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e.router, http.MethodGet, "/playback/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	start(t, e.router)
	rec = do(t, e.router, http.MethodPost, "/playback/", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = do(t, e.router, http.MethodDelete, "/playback/"+pb.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, e.router, http.MethodGet, "/playback/"+pb.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, e.router, http.MethodDelete, "/playback/"+pb.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlayback_Stream(t *testing.T) {
	e := newEnv(t)
	srv := httptest.NewServer(e.router)
	defer srv.Close()
	pb := start(t, e.router)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/playback/"+pb.ID+"/ws", nil)
	require.NoError(t, err)
	defer c.Close(websocket.StatusNormalClosure, "")

	var msg dto.ServerMessage

	require.NoError(t, wsjson.Write(ctx, c, dto.ClientMessage{Action: "jump"}))
	require.NoError(t, wsjson.Read(ctx, c, &msg))
	assert.Equal(t, dto.MessageError, msg.Type)

	require.NoError(t, wsjson.Write(ctx, c, dto.ClientMessage{Action: dto.ActionStep, Count: 30}))
	require.NoError(t, wsjson.Read(ctx, c, &msg))
	assert.Equal(t, dto.MessageEvents, msg.Type)
	assert.Len(t, msg.Events, 30)
	require.NotNil(t, msg.Playback)
	assert.Equal(t, 30, msg.Playback.HandsDone)

	msg = dto.ServerMessage{}
	require.NoError(t, wsjson.Write(ctx, c, dto.ClientMessage{Action: dto.ActionStep, Count: 100}))
	require.NoError(t, wsjson.Read(ctx, c, &msg))
	assert.Equal(t, dto.MessageEvents, msg.Type)
	assert.Len(t, msg.Events, 70)

	msg = dto.ServerMessage{}
	require.NoError(t, wsjson.Read(ctx, c, &msg))
	assert.Equal(t, dto.MessageFinished, msg.Type)
	require.NotNil(t, msg.Summary)
	assert.Equal(t, 100, msg.Summary.Params.Hands)

	msg = dto.ServerMessage{}
	require.NoError(t, wsjson.Write(ctx, c, dto.ClientMessage{Action: dto.ActionStep}))
	require.NoError(t, wsjson.Read(ctx, c, &msg))
	assert.Equal(t, dto.MessageError, msg.Type)

	msg = dto.ServerMessage{}
	require.NoError(t, wsjson.Write(ctx, c, dto.ClientMessage{Action: dto.ActionStop}))
	require.NoError(t, wsjson.Read(ctx, c, &msg))
	assert.Equal(t, dto.MessageStopped, msg.Type)

	err = wsjson.Read(ctx, c, &msg)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))

	_, err = e.serv.GetPlayback(pb.ID)
	assert.ErrorIs(t, err, service.ErrPlaybackNotFound)
}

func TestPlayback_StreamUnknownSession(t *testing.T) {
	e := newEnv(t)
	rec := do(t, e.router, http.MethodGet, "/playback/nope/ws", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

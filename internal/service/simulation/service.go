package simulation

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/rs/zerolog"

	"baccarat_sim/internal/config"
	"baccarat_sim/internal/metrics"
	"baccarat_sim/internal/repository"
	"baccarat_sim/internal/service"
)

type serv struct {
	presets      config.SimulationConfig
	limits       config.LimitsConfig
	runRepo      repository.RunRepository
	playbackRepo repository.PlaybackRepository
	statsRepo    repository.RunStatsRepository
	txManager    trm.Manager
	metrics      *metrics.Metrics
	log          zerolog.Logger
}

type Deps struct {
	Presets      config.SimulationConfig
	Limits       config.LimitsConfig
	RunRepo      repository.RunRepository
	PlaybackRepo repository.PlaybackRepository
	StatsRepo    repository.RunStatsRepository
	TxManager    trm.Manager
	Metrics      *metrics.Metrics
	Log          zerolog.Logger
}

// NewSimulationService - сервис прогонов: политика параметров, пакетные
// прогоны с сохранением и пошаговые сессии
func NewSimulationService(deps Deps) service.SimulationService {
	return &serv{
		presets:      deps.Presets,
		limits:       deps.Limits,
		runRepo:      deps.RunRepo,
		playbackRepo: deps.PlaybackRepo,
		statsRepo:    deps.StatsRepo,
		txManager:    deps.TxManager,
		metrics:      deps.Metrics,
		log:          deps.Log.With().Str("component", "simulation").Logger(),
	}
}

package app

import (
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	authAPI "baccarat_sim/internal/api/auth"
	playbackAPI "baccarat_sim/internal/api/playback"
	simulationAPI "baccarat_sim/internal/api/simulation"
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/config/env"
	"baccarat_sim/internal/metrics"
	"baccarat_sim/internal/middleware"
	"baccarat_sim/internal/repository"
	"baccarat_sim/internal/repository/memory_run_repo"
	"baccarat_sim/internal/repository/playback_repo"
	"baccarat_sim/internal/repository/run_repo"
	"baccarat_sim/internal/repository/run_stats_repo"
	"baccarat_sim/internal/scheduler"
	"baccarat_sim/internal/service"
	"baccarat_sim/internal/service/auth"
	"baccarat_sim/internal/service/simulation"
	"baccarat_sim/pkg/logger"
)

const configPath = "config.yaml"

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zerolog.Logger

	//TXManager
	txManager trm.Manager

	// Database, опционально
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Simulation bits
	simulationCfg config.SimulationConfig
	limitsCfg     config.LimitsConfig
	runRepo       repository.RunRepository
	playbackRepo  repository.PlaybackRepository
	runStatsRepo  repository.RunStatsRepository
	simServ       service.SimulationService
	simHand       *simulationAPI.Handler
	playbackHand  *playbackAPI.Handler

	// Auth bits
	authCfg  config.AuthConfig
	jwtCfg   config.JWTConfig
	authServ service.AuthService
	authHand *authAPI.Handler

	metrics   *metrics.Metrics
	scheduler *scheduler.Scheduler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() zerolog.Logger {
	if sp.log == nil {
		l := logger.New(sp.LogCfg().Level(), sp.LogCfg().Pretty())
		logger.SetGlobalLogger(l)
		sp.log = &l
	}
	return *sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// TXManager - менеджер транзакций pgx, без базы пустой менеджер памяти
func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if !sp.PgConfig().Enabled() {
			sp.txManager = memory_run_repo.NewTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) SimulationCfg() config.SimulationConfig {
	if sp.simulationCfg == nil {
		cfg, err := env.NewSimulationConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get simulation config: " + err.Error())
		}
		sp.simulationCfg = cfg
	}
	return sp.simulationCfg
}

func (sp *ServiceProvider) LimitsCfg() config.LimitsConfig {
	if sp.limitsCfg == nil {
		cfg, err := env.NewLimitsConfig()
		if err != nil {
			panic("failed to get limits config: " + err.Error())
		}
		sp.limitsCfg = cfg
	}
	return sp.limitsCfg
}

// RunRepository - Postgres при заданном PG_DSN, иначе память процесса
func (sp *ServiceProvider) RunRepository(ctx context.Context) repository.RunRepository {
	if sp.runRepo == nil {
		if sp.PgConfig().Enabled() {
			sp.runRepo = run_repo.NewRunRepository(sp.DBClient(ctx))
		} else {
			sp.Logger().Warn().Msg("PG_DSN is not set, runs are kept in memory")
			sp.runRepo = memory_run_repo.NewRunRepository()
		}
	}
	return sp.runRepo
}

func (sp *ServiceProvider) PlaybackRepository() repository.PlaybackRepository {
	if sp.playbackRepo == nil {
		sp.playbackRepo = playback_repo.NewPlaybackRepository()
	}
	return sp.playbackRepo
}

func (sp *ServiceProvider) RunStatsRepository() repository.RunStatsRepository {
	if sp.runStatsRepo == nil {
		sp.runStatsRepo = run_stats_repo.NewRunStatsRepository(sp.LimitsCfg().StatsWindow())
	}
	return sp.runStatsRepo
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New()
	}
	return sp.metrics
}

func (sp *ServiceProvider) SimulationService(ctx context.Context) service.SimulationService {
	if sp.simServ == nil {
		sp.simServ = simulation.NewSimulationService(simulation.Deps{
			Presets:      sp.SimulationCfg(),
			Limits:       sp.LimitsCfg(),
			RunRepo:      sp.RunRepository(ctx),
			PlaybackRepo: sp.PlaybackRepository(),
			StatsRepo:    sp.RunStatsRepository(),
			TxManager:    sp.TXManager(ctx),
			Metrics:      sp.Metrics(),
			Log:          sp.Logger(),
		})
	}
	return sp.simServ
}

func (sp *ServiceProvider) SimulationHandler(ctx context.Context) *simulationAPI.Handler {
	if sp.simHand == nil {
		sp.simHand = simulationAPI.NewHandler(simulationAPI.HandlerDeps{
			Serv: sp.SimulationService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.simHand
}

func (sp *ServiceProvider) PlaybackHandler(ctx context.Context) *playbackAPI.Handler {
	if sp.playbackHand == nil {
		sp.playbackHand = playbackAPI.NewHandler(playbackAPI.HandlerDeps{
			Serv:           sp.SimulationService(ctx),
			Log:            sp.Logger(),
			OriginPatterns: sp.HTTPCfg().AllowedOrigins(),
		})
	}
	return sp.playbackHand
}

func (sp *ServiceProvider) AuthCfg() config.AuthConfig {
	if sp.authCfg == nil {
		cfg, err := env.NewAuthConfig()
		if err != nil {
			panic("failed to get auth config: " + err.Error())
		}
		sp.authCfg = cfg
	}
	return sp.authCfg
}

// JWTCfg нужен только при включенной авторизации
func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil && sp.AuthCfg().Enabled() {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.AuthCfg(), sp.JWTCfg(), sp.Logger())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(),
			Log:  sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) Scheduler(ctx context.Context) *scheduler.Scheduler {
	if sp.scheduler == nil {
		s := scheduler.New(sp.Logger())
		err := s.AddJob("@every 1m", simulation.NewPlaybackSweepJob(sp.SimulationService(ctx)))
		if err != nil {
			panic("failed to register playback sweep: " + err.Error())
		}
		sp.scheduler = s
	}
	return sp.scheduler
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.Recoverer)
		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logging(sp.Logger()))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.HTTPCfg().AllowedOrigins(),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Handle("/metrics", sp.Metrics().Handler())

		// Auth endpoints
		r.Post("/auth/login", sp.AuthHandler().Login)

		simHandler := sp.SimulationHandler(ctx)
		playbackHandler := sp.PlaybackHandler(ctx)
		r.Group(func(pr chi.Router) {
			pr.Use(middleware.Auth(sp.AuthService()))

			pr.Get("/presets", simHandler.Presets)
			pr.Get("/stats", simHandler.Stats)

			// Simulation endpoints
			pr.Route("/simulation/runs", func(rr chi.Router) {
				rr.Post("/", simHandler.CreateRun)
				rr.Get("/", simHandler.ListRuns)
				rr.Get("/{id}", simHandler.GetRun)
				rr.Get("/{id}/events.csv", simHandler.EventsCSV)
			})

			// Playback endpoints
			pr.Route("/playback", func(rr chi.Router) {
				rr.Post("/", playbackHandler.Start)
				rr.Get("/{id}", playbackHandler.Get)
				rr.Post("/{id}/step", playbackHandler.Step)
				rr.Get("/{id}/summary", playbackHandler.Summary)
				rr.Get("/{id}/ws", playbackHandler.Stream)
				rr.Delete("/{id}", playbackHandler.Stop)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает пул соединений, если он создавался
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

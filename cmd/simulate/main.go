package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"baccarat_sim/internal/config"
	cfgenv "baccarat_sim/internal/config/env"
	engine "baccarat_sim/internal/game/simulation"
	"baccarat_sim/internal/model"
	"baccarat_sim/internal/report"
	"baccarat_sim/pkg/logger"
)

// runnerConfig - настройки одноразового прогона пресета
type runnerConfig struct {
	Preset     string `env:"SIM_PRESET"`
	OutDir     string `env:"SIM_OUT_DIR" envDefault:"out"`
	ConfigPath string `env:"SIM_CONFIG" envDefault:"config.yaml"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	_ = config.Load(".env")

	var cfg runnerConfig
	if err := env.Parse(&cfg); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, true)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Str("preset", cfg.Preset).Msg("simulation failed")
	}
}

func run(cfg runnerConfig, log zerolog.Logger) error {
	sims, err := cfgenv.NewSimulationConfigFromYAML(cfg.ConfigPath)
	if err != nil {
		return err
	}

	preset := sims.Defaults()
	if cfg.Preset != "" {
		var ok bool
		if preset, ok = sims.Preset(cfg.Preset); !ok {
			return fmt.Errorf("preset %q not found in %s", cfg.Preset, cfg.ConfigPath)
		}
	}
	name := preset.Name
	if name == "" {
		name = "defaults"
	}

	started := time.Now()
	events, summary, err := engine.Run(preset.Params, engine.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info().
		Str("preset", name).
		Int("hands", len(events)).
		Dur("took", time.Since(started)).
		Msg("run finished")

	analytics := report.Analyze(summary, events, preset.RebatePct)
	csvPath, jsonPath, err := writeArtifacts(cfg.OutDir, name, events, summary, analytics)
	if err != nil {
		return err
	}

	pterm.DefaultHeader.Println("Punto Banco: " + name)
	if err = pterm.DefaultTable.WithHasHeader().WithData(summaryTable(summary, analytics)).Render(); err != nil {
		return err
	}
	pterm.Success.Printfln("events: %s", csvPath)
	pterm.Success.Printfln("summary: %s", jsonPath)
	return nil
}

func writeArtifacts(dir, name string, events []model.HandEvent, summary model.RunSummary, analytics model.Analytics) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	csvPath := filepath.Join(dir, name+"_events.csv")
	jsonPath := filepath.Join(dir, name+"_summary.json")

	f, err := os.Create(csvPath)
	if err != nil {
		return "", "", err
	}
	if err = report.WriteEvents(f, events, &summary.Params); err != nil {
		f.Close()
		return "", "", fmt.Errorf("write %s: %w", csvPath, err)
	}
	if err = f.Close(); err != nil {
		return "", "", err
	}

	f, err = os.Create(jsonPath)
	if err != nil {
		return "", "", err
	}
	if err = report.WriteSummary(f, report.Document{RunSummary: summary, Analytics: &analytics}); err != nil {
		f.Close()
		return "", "", fmt.Errorf("write %s: %w", jsonPath, err)
	}
	return csvPath, jsonPath, f.Close()
}

func summaryTable(s model.RunSummary, a model.Analytics) pterm.TableData {
	hitRate := "n/a"
	if s.StrategyHitRate != nil {
		hitRate = fmt.Sprintf("%.2f%%", *s.StrategyHitRate*100)
	}
	return pterm.TableData{
		{"metric", "value"},
		{"strategy", s.Params.Strategy},
		{"hands", fmt.Sprint(s.Params.Hands)},
		{"initial bankroll", fmt.Sprintf("%.2f", s.InitialBankroll)},
		{"final bankroll", fmt.Sprintf("%.2f", s.FinalBankroll)},
		{"profit", fmt.Sprintf("%.2f", s.TotalProfit)},
		{"wagered", fmt.Sprintf("%.2f", s.TotalWagered)},
		{"roi", fmt.Sprintf("%.4f%%", s.ROI*100)},
		{"bet / observe / push", fmt.Sprintf("%d / %d / %d", s.BetHands, s.ObserveHands, s.PushHands)},
		{"wins / losses", fmt.Sprintf("%d / %d", s.Wins, s.Losses)},
		{"hit rate", hitRate},
		{"commission", fmt.Sprintf("%.2f", s.CommissionTotal)},
		{"player / banker / tie", fmt.Sprintf("%d / %d / %d", s.PlayerWins, s.BankerWins, s.Ties)},
		{"shoe reshuffles", fmt.Sprint(s.ShoeReshuffles)},
		{"rebate", fmt.Sprintf("%.2f (%.2f%%)", a.Rebate, a.RebatePct)},
		{"profit with rebate", fmt.Sprintf("%.2f", a.ProfitWithRebate)},
		{"max drawdown", fmt.Sprintf("%.2f", a.MaxDrawdown)},
		{"longest win / loss streak", fmt.Sprintf("%d / %d", a.LongestWinStreak, a.LongestLossStreak)},
	}
}

package env

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"baccarat_sim/internal/config"
)

type limitsConfig struct {
	MinHandsValue          int           `env:"SIM_MIN_HANDS" envDefault:"100"`
	MaxHandsValue          int           `env:"SIM_MAX_HANDS" envDefault:"100000"`
	AllowedDecksValue      []int         `env:"SIM_ALLOWED_DECKS" envDefault:"6,8" envSeparator:","`
	PlaybackMaxActiveValue int           `env:"PLAYBACK_MAX_ACTIVE" envDefault:"64"`
	PlaybackTTLValue       time.Duration `env:"PLAYBACK_TTL" envDefault:"30m"`
	PersistEventsValue     bool          `env:"EVENTS_PERSIST" envDefault:"true"`
	StatsWindowValue       int           `env:"STATS_WINDOW" envDefault:"100"`
}

func NewLimitsConfig() (config.LimitsConfig, error) {
	cfg := &limitsConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse limits from environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *limitsConfig) validate() error {
	if l.MinHandsValue < 1 || l.MaxHandsValue < l.MinHandsValue {
		return fmt.Errorf("invalid hands range %d..%d", l.MinHandsValue, l.MaxHandsValue)
	}
	if len(l.AllowedDecksValue) == 0 {
		return fmt.Errorf("SIM_ALLOWED_DECKS is empty")
	}
	for _, d := range l.AllowedDecksValue {
		if d < 1 {
			return fmt.Errorf("invalid deck count %d", d)
		}
	}
	if l.PlaybackMaxActiveValue < 1 {
		return fmt.Errorf("invalid PLAYBACK_MAX_ACTIVE: %d", l.PlaybackMaxActiveValue)
	}
	if l.PlaybackTTLValue <= 0 {
		return fmt.Errorf("invalid PLAYBACK_TTL: %s", l.PlaybackTTLValue)
	}
	if l.StatsWindowValue < 1 {
		return fmt.Errorf("invalid STATS_WINDOW: %d", l.StatsWindowValue)
	}
	return nil
}

func (l *limitsConfig) MinHands() int              { return l.MinHandsValue }
func (l *limitsConfig) MaxHands() int              { return l.MaxHandsValue }
func (l *limitsConfig) AllowedDecks() []int        { return l.AllowedDecksValue }
func (l *limitsConfig) PlaybackMaxActive() int     { return l.PlaybackMaxActiveValue }
func (l *limitsConfig) PlaybackTTL() time.Duration { return l.PlaybackTTLValue }
func (l *limitsConfig) PersistEvents() bool        { return l.PersistEventsValue }
func (l *limitsConfig) StatsWindow() int           { return l.StatsWindowValue }

package config

import (
	"time"

	"github.com/joho/godotenv"

	"baccarat_sim/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Preset - именованный набор параметров прогона из config.yaml
type Preset struct {
	Name      string          `json:"name"`
	Params    model.RunParams `json:"params"`
	RebatePct float64         `json:"rebate_pct"`
}

type SimulationConfig interface {
	Defaults() Preset
	Preset(name string) (Preset, bool)
	Presets() []Preset
}

// LimitsConfig holds the service policy applied on top of the engine.
type LimitsConfig interface {
	MinHands() int
	MaxHands() int
	AllowedDecks() []int
	PlaybackMaxActive() int
	PlaybackTTL() time.Duration
	PersistEvents() bool
	StatsWindow() int
}

type LogConfig interface {
	Level() string
	Pretty() bool
}

type HTTPConfig interface {
	Address() string
	// AllowedOrigins используется для CORS и проверки Origin у websocket
	AllowedOrigins() []string
}

type PGConfig interface {
	DSN() string
	Enabled() bool
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

// AuthConfig - пустой хэш отключает авторизацию оператора
type AuthConfig interface {
	PasswordHash() string
	Enabled() bool
}

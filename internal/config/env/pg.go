package env

import (
	"os"

	"baccarat_sim/internal/config"
)

const (
	dsnName = "PG_DSN"
)

type pgConfig struct {
	dsn string
}

// NewPGConfig reads PG_DSN. An empty DSN is valid: runs are then kept in memory.
func NewPGConfig() (config.PGConfig, error) {
	return &pgConfig{
		dsn: os.Getenv(dsnName),
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) Enabled() bool {
	return len(cfg.dsn) > 0
}

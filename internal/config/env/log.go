package env

import (
	"os"
	"strconv"

	"baccarat_sim/internal/config"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logPrettyEnvName = "LOG_PRETTY"
)

type logConfig struct {
	level  string
	pretty bool
}

func NewLogConfig() (config.LogConfig, error) {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}

	pretty := false
	if raw := os.Getenv(logPrettyEnvName); len(raw) > 0 {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		pretty = v
	}

	return &logConfig{level: level, pretty: pretty}, nil
}

func (l *logConfig) Level() string { return l.level }
func (l *logConfig) Pretty() bool  { return l.pretty }

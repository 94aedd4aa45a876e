package auth

import (
	"github.com/rs/zerolog"

	"baccarat_sim/internal/config"
	"baccarat_sim/internal/service"
)

type serv struct {
	authConfig config.AuthConfig
	jwtConfig  config.JWTConfig
	log        zerolog.Logger
}

// NewService - вход оператора. jwtConfig может быть nil, если авторизация выключена
func NewService(authConfig config.AuthConfig, jwtConfig config.JWTConfig, log zerolog.Logger) service.AuthService {
	return &serv{
		authConfig: authConfig,
		jwtConfig:  jwtConfig,
		log:        log.With().Str("component", "auth").Logger(),
	}
}

func (s *serv) Enabled() bool {
	return s.authConfig.Enabled()
}

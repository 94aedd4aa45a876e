package env

import (
	"os"

	"baccarat_sim/internal/config"
)

const operatorPasswordHashEnvName = "OPERATOR_PASSWORD_HASH"

type authConfig struct {
	passwordHash string
}

func NewAuthConfig() (config.AuthConfig, error) {
	return &authConfig{
		passwordHash: os.Getenv(operatorPasswordHashEnvName),
	}, nil
}

func (a *authConfig) PasswordHash() string {
	return a.passwordHash
}

func (a *authConfig) Enabled() bool {
	return len(a.passwordHash) > 0
}

package auth

import (
	"context"
	"errors"

	"baccarat_sim/internal/model"
	"baccarat_sim/internal/service"
	"baccarat_sim/pkg/pass"
	"baccarat_sim/pkg/token"
)

var errAuthDisabled = errors.New("authentication is disabled")

// Login проверяет пароль оператора и выдает access токен
func (s *serv) Login(_ context.Context, password string) (*model.AuthData, error) {
	if !s.Enabled() {
		return nil, errAuthDisabled
	}

	// Верификация пароля
	if !pass.VerifyPassword(s.authConfig.PasswordHash(), password) {
		s.log.Warn().Msg("operator login rejected")
		return nil, service.ErrInvalidCredentials
	}

	// Создать access токен
	ttl := s.jwtConfig.AccessTokenDuration()
	accessToken, err := token.GenerateAccessToken(model.OperatorSubject, s.jwtConfig.AccessTokenSecretKey(), ttl)
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken: accessToken,
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// Verify проверяет access токен из заголовка Authorization
func (s *serv) Verify(accessToken string) (*model.OperatorClaims, error) {
	if !s.Enabled() {
		return nil, errAuthDisabled
	}
	claims, err := token.VerifyToken(accessToken, s.jwtConfig.AccessTokenSecretKey())
	if err != nil {
		return nil, errors.Join(service.ErrInvalidCredentials, err)
	}
	if claims.Subject != model.OperatorSubject {
		return nil, service.ErrInvalidCredentials
	}
	return claims, nil
}

package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// OperatorSubject is the token subject of the single operator account.
const OperatorSubject = "operator"

type OperatorClaims struct {
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken string
	ExpiresIn   int64
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"baccarat_sim/internal/model"
)

type stubAuth struct {
	enabled bool
}

func (s stubAuth) Enabled() bool { return s.enabled }

func (s stubAuth) Login(context.Context, string) (*model.AuthData, error) {
	return nil, errors.New("not used")
}

func (s stubAuth) Verify(tok string) (*model.OperatorClaims, error) {
	if tok != "good" {
		return nil, errors.New("bad token")
	}
	claims := &model.OperatorClaims{}
	claims.Subject = model.OperatorSubject
	return claims, nil
}

func protected(t *testing.T, auth stubAuth) http.Handler {
	t.Helper()
	return Auth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if auth.enabled {
			assert.True(t, ok)
			assert.Equal(t, model.OperatorSubject, claims.Subject)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		header  string
		query   string
		want    int
	}{
		{name: "disabled passes", enabled: false, want: http.StatusNoContent},
		{name: "missing token", enabled: true, want: http.StatusUnauthorized},
		{name: "wrong scheme", enabled: true, header: "Basic good", want: http.StatusUnauthorized},
		{name: "bad token", enabled: true, header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "good header", enabled: true, header: "Bearer good", want: http.StatusNoContent},
		{name: "good query", enabled: true, query: "?access_token=good", want: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/simulation/runs"+tt.query, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protected(t, stubAuth{enabled: tt.enabled}).ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

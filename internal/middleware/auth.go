package middleware

import (
	"context"
	"net/http"
	"strings"

	"baccarat_sim/internal/model"
	"baccarat_sim/internal/service"
	"baccarat_sim/pkg/resp"
)

type ctxKey struct{}

// Auth требует bearer токен оператора. При выключенной авторизации пропускает всех
func Auth(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := bearerToken(r)
			if !ok {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			claims, err := auth.Verify(raw)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken reads the Authorization header, falling back to the
// access_token query parameter for websocket clients that cannot set headers.
func bearerToken(r *http.Request) (string, bool) {
	if h := r.Header.Get("Authorization"); h != "" {
		raw, ok := strings.CutPrefix(h, "Bearer ")
		return raw, ok && raw != ""
	}
	raw := r.URL.Query().Get("access_token")
	return raw, raw != ""
}

// ClaimsFromContext - claims оператора, положенные Auth
func ClaimsFromContext(ctx context.Context) (*model.OperatorClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*model.OperatorClaims)
	return claims, ok
}

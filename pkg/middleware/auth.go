package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/authenticating"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"
)

type contextKey string

// ContextKeyUser guarda as claims do usuário autenticado no contexto
const ContextKeyUser contextKey = "user"

// publicPaths dispensa autenticação: login e liveness
var publicPaths = map[string]struct{}{
	"/v1/login": {},
	"/health":   {},
}

// AuthMiddleware valida o bearer token e injeta as claims no contexto
// para os handlers resolverem o usuário da requisição
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token do tipo Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

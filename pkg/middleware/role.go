package middleware

import (
	"net/http"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"

	"github.com/sirupsen/logrus"
)

// Papéis de acesso do dashboard
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// RoleMiddleware restringe a rota aos papéis listados
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !roleAllowed(userClaims.UserRoleID, allowedRoles) {
				logrus.Warnf("Acesso negado para usuário ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func roleAllowed(role int, allowed []int) bool {
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}

	return false
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin)
}

// AllRoles permite qualquer usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleSupervisor, RoleClient)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/scheduler"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/reporting"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// SyncStatus retorna o estado atual do worker de sincronização
func SyncStatus(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := service.Control().Status()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RunSync dispara manualmente uma sincronização de relatórios
func RunSync(service reporting.Reporter, syncService *scheduler.ReportSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSync")

		// Verificar permissões - apenas administradores podem disparar a sincronização
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem disparar a sincronização", nil)
			return
		}

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if service.Control().Busy() {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Sincronização já em andamento", nil)
			return
		}

		syncService.TriggerManualSync()

		response := map[string]any{
			"message": "Sincronização iniciada com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

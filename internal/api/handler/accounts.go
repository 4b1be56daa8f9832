package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/account"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// NetworkAccountList lista as redes do Ad Manager vinculadas ao usuário autenticado
func NetworkAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.NetworkAccountStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.NetworkAccountStatus(status))
			}
		}

		accounts, err := service.ListAccounts(userClaims.UserID, availableStatus)
		if err != nil {
			logrus.Error("Error listing accounts:", err)

			// Verificar se é um AccountError para obter detalhes específicos do erro
			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
				return
			}

			// Caso não seja um AccountError específico, verificar erros comuns
			if errors.Is(err, account.ErrFetchAccounts) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar contas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateNetworkAccount atualiza apelido e status de uma conta do usuário autenticado
func UpdateNetworkAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateNetworkAccount")

		// Define o tipo de conteúdo da resposta
		w.Header().Set("Content-Type", "application/json")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		// Decodifica o corpo da requisição
		var updateRequest domain.UpdateNetworkAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		resp, err := service.UpdateAccount(r.Context(), userClaims.UserID, &updateRequest)
		if err != nil {
			logrus.Error("Error updating account:", err)

			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
				return
			}

			switch {
			case errors.Is(err, account.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)

			case errors.Is(err, account.ErrDatabaseOperation) || errors.Is(err, account.ErrUpdateAccount):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar conta no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar conta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

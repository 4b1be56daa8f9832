package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro devolvidos ao cliente, agrupados por área
const (
	// Autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrUserLocked            = "AUTH_004" // Usuário bloqueado temporariamente
	ErrInvalidToken          = "AUTH_006" // Token inválido ou expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUpstreamAuthExpired   = "AUTH_010" // Credencial da conta expirada no Ad Manager

	// Validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados

	// Relatórios
	ErrUpstreamRateLimited = "RPT_001" // Limite de requisições do Ad Manager excedido
	ErrAllAccountsFailed   = "RPT_002" // Nenhuma conta retornou dados
	ErrReportTimeout       = "RPT_003" // Tempo limite excedido ao montar o relatório
	ErrSyncAlreadyRunning  = "RPT_004" // Sincronização já em andamento
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUpstreamAuthExpired:   http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrUpstreamRateLimited:   http.StatusTooManyRequests,
	ErrAllAccountsFailed:     http.StatusBadGateway,
	ErrReportTimeout:         http.StatusGatewayTimeout,
	ErrSyncAlreadyRunning:    http.StatusConflict,
}

// APIError é o corpo JSON de toda resposta de erro da API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError resolve o status HTTP pelo código e escreve o corpo padronizado.
// Código desconhecido vira 500 em vez de derrubar a resposta
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}

package gamdomain

import (
	"fmt"
	"time"
)

// ErrorResponse segue o envelope de erro padrão das APIs do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Type   string `json:"@type,omitempty"`
	Reason string `json:"reason,omitempty"`
	Domain string `json:"domain,omitempty"`
}

// IsTokenExpired verifica se a resposta indica credencial expirada ou revogada
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}

// IsRateLimited verifica se a resposta indica estouro de cota da API
func (e *ErrorResponse) IsRateLimited() bool {
	if e.Error.Code == 429 || e.Error.Status == "RESOURCE_EXHAUSTED" {
		return true
	}

	for _, detail := range e.Error.Details {
		if detail.Reason == "RATE_LIMIT_EXCEEDED" || detail.Reason == "QUOTA_EXCEEDED" {
			return true
		}
	}

	return false
}

// APIError carrega a classificação de uma resposta de erro do Ad Manager
// para que as camadas de cima decidam entre retry, renovação de token ou falha
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ad manager respondeu %d (%s): %s", e.StatusCode, e.Status, e.Message)
}

func (e *APIError) RateLimited() bool {
	return e.StatusCode == 429 || e.Status == "RESOURCE_EXHAUSTED"
}

func (e *APIError) AuthExpired() bool {
	return e.StatusCode == 401 || e.Status == "UNAUTHENTICATED"
}

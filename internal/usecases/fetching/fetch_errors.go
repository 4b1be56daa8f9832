package fetching

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de busca nas contas do Ad Manager
var (
	// Erros de enumeração
	ErrListAccounts = errors.New("error fetching accounts from database")

	// Erros de busca
	ErrAllAccountsFailed = errors.New("all accounts failed to return data")
	ErrAccountFetch      = errors.New("error fetching daily report for account")
)

// Motivos de falha por conta expostos no relatório parcial
const (
	ReasonRateLimited = "rate_limited"
	ReasonAuthExpired = "auth_expired"
	ReasonFetchFailed = "fetch_failed"
)

// FetchError é um erro com contexto adicional para a busca de relatórios
type FetchError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *FetchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError cria um novo FetchError
func NewFetchError(err error, code string, details string) *FetchError {
	return &FetchError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

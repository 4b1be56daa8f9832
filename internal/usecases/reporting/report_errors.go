package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação
	ErrInvalidDateOrder = errors.New("start date after end date")
	ErrInvalidDimension = errors.New("invalid report dimension")
	ErrFutureDate       = errors.New("date is in the future")
	ErrRangeTooLong     = errors.New("date range too long")

	// Erros de sincronização
	ErrSyncAlreadyRunning   = errors.New("sync already running")
	ErrUserRequestsInFlight = errors.New("user requests in flight")

	// Erros de montagem e armazenamento
	ErrReportTimeout = errors.New("report assembly timed out")
	ErrStoreDay      = errors.New("error persisting day record")
	ErrLoadDay       = errors.New("error loading day record")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

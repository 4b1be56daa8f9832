package account

import (
	"errors"
	"fmt"
)

// Erros sentinela do gerenciamento de contas vinculadas
var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidStatus     = errors.New("invalid account status")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrUpdateAccount     = errors.New("error updating account")
	ErrFetchAccounts     = errors.New("error fetching accounts from database")
)

// AccountError envolve um erro sentinela com o código de API e a conta afetada
type AccountError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}

	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID é NewAccountError com o ID da conta envolvida
func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}

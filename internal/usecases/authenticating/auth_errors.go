package authenticating

import (
	"errors"
	"fmt"
)

// Erros sentinela do fluxo de autenticação. Os handlers os mapeiam
// para os códigos de API correspondentes
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserLocked         = errors.New("usuário bloqueado temporariamente")
	ErrInvalidToken       = errors.New("token inválido")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	ErrWeakPassword = errors.New("senha fraca")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError envolve um erro sentinela com o código de API e o contexto
// do usuário afetado
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}

	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError é NewAuthError com o ID do usuário envolvido
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

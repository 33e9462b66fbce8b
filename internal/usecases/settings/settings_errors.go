package settings

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSettings   = errors.New("configurações inválidas")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SettingsError é um erro com o código da API e detalhes do campo inválido
type SettingsError struct {
	Err     error
	Code    string
	Details string
}

func (e *SettingsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

func NewSettingsError(err error, code string, details string) *SettingsError {
	return &SettingsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

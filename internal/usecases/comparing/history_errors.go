package comparing

import (
	"errors"
	"fmt"
)

var (
	ErrComparisonNotFound = errors.New("comparação não encontrada")
	ErrInvalidImport      = errors.New("arquivo de importação inválido")
	ErrInvalidComparison  = errors.New("comparação inválida")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// HistoryError é um erro com contexto adicional para o histórico de comparações
type HistoryError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	HistoryID string // Comparação envolvida (quando aplicável)
	Details   string
}

func (e *HistoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *HistoryError) Unwrap() error {
	return e.Err
}

func NewHistoryError(err error, code string, details string) *HistoryError {
	return &HistoryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewHistoryErrorWithID(err error, code string, historyID string, details string) *HistoryError {
	return &HistoryError{
		Err:       err,
		Code:      code,
		HistoryID: historyID,
		Details:   details,
	}
}

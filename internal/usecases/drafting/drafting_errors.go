package drafting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDraft = errors.New("rascunho inválido")
	ErrCache        = errors.New("erro ao acessar o armazenamento do rascunho")
)

type DraftError struct {
	Err     error
	Code    string
	Details string
}

func (e *DraftError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DraftError) Unwrap() error {
	return e.Err
}

func NewDraftError(err error, code string, details string) *DraftError {
	return &DraftError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

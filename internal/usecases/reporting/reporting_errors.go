package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("formato de exportação não suportado")
	ErrInvalidRecipient  = errors.New("destinatário inválido")
	ErrRenderFailed      = errors.New("erro ao gerar relatório")
	ErrSendFailed        = errors.New("erro ao enviar e-mail")
)

type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

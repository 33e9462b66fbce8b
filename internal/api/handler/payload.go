package handler

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/vfg2006/cet-calculator-api/internal/domain"
)

// amount aceita número ou texto digitado ("1.234,56", "2,5%"); o que não for número vira 0
type amount float64

func (a *amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}

	if b[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		*a = amount(domain.ParseAmount(text))
		return nil
	}

	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = amount(v)
	return nil
}

type installmentKeyError struct {
	key string
}

func (e *installmentKeyError) Error() string {
	return fmt.Sprintf("parcela inválida %q: %s", e.key, domain.ErrInvalidInstallment)
}

type installmentsPayload map[string]amount

func (p installmentsPayload) toDomain() (domain.Installments, error) {
	out := make(domain.Installments, len(p))
	for key, value := range p {
		n, err := strconv.Atoi(key)
		if err != nil || !domain.ValidInstallment(n) {
			return nil, &installmentKeyError{key: key}
		}
		out[n] = float64(value)
	}
	return out, nil
}

type schedulePayload struct {
	Debit        amount              `json:"debit"`
	Credit       amount              `json:"credit"`
	Pix          amount              `json:"pix"`
	Installments installmentsPayload `json:"installments"`
}

func (p schedulePayload) toRates() (domain.FeeRates, error) {
	installments, err := p.Installments.toDomain()
	if err != nil {
		return domain.FeeRates{}, err
	}
	return domain.FeeRates{
		Debit:        float64(p.Debit),
		Credit:       float64(p.Credit),
		Pix:          float64(p.Pix),
		Installments: installments,
	}, nil
}

func (p schedulePayload) toVolumes() (domain.TransactionVolumes, error) {
	rates, err := p.toRates()
	if err != nil {
		return domain.TransactionVolumes{}, err
	}
	return domain.TransactionVolumes(rates), nil
}

// comparisonPayload é o corpo dos endpoints de cálculo, exportação, histórico e rascunho
type comparisonPayload struct {
	Name         string          `json:"name"`
	CurrentRates schedulePayload `json:"currentRates"`
	NewRates     schedulePayload `json:"newRates"`
	Volumes      schedulePayload `json:"volumes"`
}

func (p comparisonPayload) toRequest() (domain.ComparisonRequest, error) {
	current, err := p.CurrentRates.toRates()
	if err != nil {
		return domain.ComparisonRequest{}, err
	}
	offered, err := p.NewRates.toRates()
	if err != nil {
		return domain.ComparisonRequest{}, err
	}
	volumes, err := p.Volumes.toVolumes()
	if err != nil {
		return domain.ComparisonRequest{}, err
	}

	return domain.ComparisonRequest{
		Name:         p.Name,
		CurrentRates: current,
		NewRates:     offered,
		Volumes:      volumes,
	}, nil
}

func draftFrom(req *domain.ComparisonRequest) *domain.Draft {
	return &domain.Draft{
		CurrentRates: req.CurrentRates,
		NewRates:     req.NewRates,
		Volumes:      req.Volumes,
	}
}

// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"errors"
	"sort"
)

const (
	MinInstallments = 2
	MaxInstallments = 12
)

var ErrInvalidInstallment = errors.New("número de parcelas deve estar entre 2 e 12")

// Installments mapeia o número de parcelas para um valor (taxa ou volume)
type Installments map[int]float64

// Keys retorna as quantidades de parcelas em ordem crescente
func (i Installments) Keys() []int {
	keys := make([]int, 0, len(i))
	for k := range i {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Get retorna o valor da parcela ou 0 quando ela não existe
func (i Installments) Get(n int) float64 {
	if i == nil {
		return 0
	}
	return i[n]
}

func (i Installments) Clone() Installments {
	out := make(Installments, len(i))
	for k, v := range i {
		out[k] = v
	}
	return out
}

func (i Installments) validate() error {
	for k := range i {
		if !ValidInstallment(k) {
			return ErrInvalidInstallment
		}
	}
	return nil
}

// ValidInstallment indica se n é uma quantidade de parcelas aceita pelo formulário
func ValidInstallment(n int) bool {
	return n >= MinInstallments && n <= MaxInstallments
}

// FeeRates é uma tabela de taxas em porcentagem por forma de pagamento
type FeeRates struct {
	Debit        float64      `json:"debit"`
	Credit       float64      `json:"credit"`
	Pix          float64      `json:"pix"`
	Installments Installments `json:"installments"`
}

func (r FeeRates) Validate() error {
	return r.Installments.validate()
}

// WithInstallment retorna uma cópia da tabela com a taxa da parcela n definida
func (r FeeRates) WithInstallment(n int, rate float64) (FeeRates, error) {
	if !ValidInstallment(n) {
		return r, ErrInvalidInstallment
	}
	out := r
	out.Installments = r.Installments.Clone()
	out.Installments[n] = rate
	return out, nil
}

// WithoutInstallment retorna uma cópia da tabela sem a parcela n
func (r FeeRates) WithoutInstallment(n int) FeeRates {
	out := r
	out.Installments = r.Installments.Clone()
	delete(out.Installments, n)
	return out
}

// TransactionVolumes é o volume mensal transacionado por forma de pagamento
type TransactionVolumes struct {
	Debit        float64      `json:"debit"`
	Credit       float64      `json:"credit"`
	Pix          float64      `json:"pix"`
	Installments Installments `json:"installments"`
}

func (v TransactionVolumes) Validate() error {
	return v.Installments.validate()
}

// WithInstallment retorna uma cópia dos volumes com o volume da parcela n definido
func (v TransactionVolumes) WithInstallment(n int, volume float64) (TransactionVolumes, error) {
	if !ValidInstallment(n) {
		return v, ErrInvalidInstallment
	}
	out := v
	out.Installments = v.Installments.Clone()
	out.Installments[n] = volume
	return out, nil
}

func (v TransactionVolumes) WithoutInstallment(n int) TransactionVolumes {
	out := v
	out.Installments = v.Installments.Clone()
	delete(out.Installments, n)
	return out
}

// EmptyFeeRates retorna a tabela inicial do formulário, com tudo zerado
func EmptyFeeRates() FeeRates {
	return FeeRates{Installments: Installments{}}
}

func EmptyTransactionVolumes() TransactionVolumes {
	return TransactionVolumes{Installments: Installments{}}
}

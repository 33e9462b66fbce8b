package domain

import "time"

// CostComparison é o custo de uma categoria nas duas tabelas
type CostComparison struct {
	Current float64 `json:"current"`
	New     float64 `json:"new"`
	Savings float64 `json:"savings"`
}

type Breakdown struct {
	Debit        CostComparison         `json:"debit"`
	Credit       CostComparison         `json:"credit"`
	Pix          CostComparison         `json:"pix"`
	Installments map[int]CostComparison `json:"installments"`
}

type SavingsByType struct {
	Debit             float64 `json:"debit"`
	Credit            float64 `json:"credit"`
	Pix               float64 `json:"pix"`
	InstallmentCredit float64 `json:"installmentCredit"`
}

// ComparisonResult é o resultado de uma comparação entre a tabela atual e a oferecida.
// Os valores não são arredondados; o arredondamento é feito apenas na apresentação.
type ComparisonResult struct {
	CurrentTotal      float64       `json:"currentTotal"`
	NewTotal          float64       `json:"newTotal"`
	Savings           float64       `json:"savings"`
	SavingsPercentage float64       `json:"savingsPercentage"`
	SavingsByType     SavingsByType `json:"savingsByType"`
	Breakdown         Breakdown     `json:"breakdown"`
}

// ComparisonRequest é o corpo aceito pelos endpoints de cálculo
type ComparisonRequest struct {
	Name         string             `json:"name,omitempty"`
	CurrentRates FeeRates           `json:"currentRates"`
	NewRates     FeeRates           `json:"newRates"`
	Volumes      TransactionVolumes `json:"volumes"`
}

func (r ComparisonRequest) Validate() error {
	if err := r.CurrentRates.Validate(); err != nil {
		return err
	}
	if err := r.NewRates.Validate(); err != nil {
		return err
	}
	return r.Volumes.Validate()
}

// ComparisonHistory é uma comparação salva no histórico do usuário
type ComparisonHistory struct {
	ID           string             `json:"id"`
	UserID       int                `json:"userId,omitempty"`
	Name         string             `json:"name"`
	Date         time.Time          `json:"date"`
	CurrentRates FeeRates           `json:"currentRates"`
	NewRates     FeeRates           `json:"newRates"`
	Volumes      TransactionVolumes `json:"volumes"`
	Result       ComparisonResult   `json:"result"`
}

// ExportData é o documento JSON de exportação e importação de dados
type ExportData struct {
	History      []*ComparisonHistory `json:"history"`
	CurrentRates *FeeRates            `json:"currentRates,omitempty"`
	NewRates     *FeeRates            `json:"newRates,omitempty"`
	Volumes      *TransactionVolumes  `json:"volumes,omitempty"`
}

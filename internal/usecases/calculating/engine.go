// Package calculating compara duas tabelas de taxas sobre o mesmo volume transacionado
package calculating

import "github.com/vfg2006/cet-calculator-api/internal/domain"

// Compare calcula o custo de cada forma de pagamento na tabela atual e na oferecida.
//
// Débito, crédito e PIX custam volume × taxa / 100. Cada faixa de parcelamento custa
// volume × taxa × parcelas / 100; as faixas percorridas são as que existem nos volumes e
// uma taxa ausente vale 0. Nenhum valor é arredondado.
func Compare(current, offered domain.FeeRates, volumes domain.TransactionVolumes) *domain.ComparisonResult {
	debit := compareCost(volumes.Debit, current.Debit, offered.Debit, 1)
	credit := compareCost(volumes.Credit, current.Credit, offered.Credit, 1)
	pix := compareCost(volumes.Pix, current.Pix, offered.Pix, 1)

	installments := make(map[int]domain.CostComparison, len(volumes.Installments))
	var installmentCurrent, installmentNew float64

	for n, volume := range volumes.Installments {
		cost := compareCost(volume, current.Installments.Get(n), offered.Installments.Get(n), float64(n))

		installmentCurrent += cost.Current
		installmentNew += cost.New
		installments[n] = cost
	}

	currentTotal := debit.Current + credit.Current + pix.Current + installmentCurrent
	newTotal := debit.New + credit.New + pix.New + installmentNew

	savings := currentTotal - newTotal
	savingsPercentage := 0.0
	if currentTotal > 0 {
		savingsPercentage = savings / currentTotal * 100
	}

	return &domain.ComparisonResult{
		CurrentTotal:      currentTotal,
		NewTotal:          newTotal,
		Savings:           savings,
		SavingsPercentage: savingsPercentage,
		SavingsByType: domain.SavingsByType{
			Debit:             debit.Savings,
			Credit:            credit.Savings,
			Pix:               pix.Savings,
			InstallmentCredit: installmentCurrent - installmentNew,
		},
		Breakdown: domain.Breakdown{
			Debit:        debit,
			Credit:       credit,
			Pix:          pix,
			Installments: installments,
		},
	}
}

func compareCost(volume, currentRate, newRate, multiplier float64) domain.CostComparison {
	current := volume * currentRate * multiplier / 100
	newCost := volume * newRate * multiplier / 100

	return domain.CostComparison{
		Current: current,
		New:     newCost,
		Savings: current - newCost,
	}
}

// Calculator expõe o motor de comparação para quem precisa injetá-lo
type Calculator interface {
	Compare(current, offered domain.FeeRates, volumes domain.TransactionVolumes) *domain.ComparisonResult
}

type Engine struct{}

func NewEngine() Calculator {
	return Engine{}
}

func (Engine) Compare(current, offered domain.FeeRates, volumes domain.TransactionVolumes) *domain.ComparisonResult {
	return Compare(current, offered, volumes)
}

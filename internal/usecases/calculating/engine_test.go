package calculating

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
)

const delta = 1e-9

func TestCompare_ExemploCompleto(t *testing.T) {
	current := domain.FeeRates{Debit: 2, Credit: 3, Pix: 0.5, Installments: domain.Installments{}}
	offered := domain.FeeRates{Debit: 1, Credit: 2, Pix: 0.3, Installments: domain.Installments{}}
	volumes := domain.TransactionVolumes{Debit: 10000, Credit: 5000, Pix: 2000, Installments: domain.Installments{}}

	result := Compare(current, offered, volumes)

	assert.InDelta(t, 200.0, result.Breakdown.Debit.Current, delta)
	assert.InDelta(t, 100.0, result.Breakdown.Debit.New, delta)
	assert.InDelta(t, 150.0, result.Breakdown.Credit.Current, delta)
	assert.InDelta(t, 100.0, result.Breakdown.Credit.New, delta)
	assert.InDelta(t, 10.0, result.Breakdown.Pix.Current, delta)
	assert.InDelta(t, 6.0, result.Breakdown.Pix.New, delta)

	assert.InDelta(t, 360.0, result.CurrentTotal, delta)
	assert.InDelta(t, 206.0, result.NewTotal, delta)
	assert.InDelta(t, 154.0, result.Savings, delta)
	assert.InDelta(t, 42.78, result.SavingsPercentage, 0.005)
	assert.Empty(t, result.Breakdown.Installments)
}

func TestCompare_Parcelamento(t *testing.T) {
	current := domain.FeeRates{Installments: domain.Installments{6: 2}}
	offered := domain.FeeRates{Installments: domain.Installments{6: 1}}
	volumes := domain.TransactionVolumes{Installments: domain.Installments{6: 1200}}

	result := Compare(current, offered, volumes)

	require.Contains(t, result.Breakdown.Installments, 6)
	tier := result.Breakdown.Installments[6]
	assert.InDelta(t, 144.0, tier.Current, delta)
	assert.InDelta(t, 72.0, tier.New, delta)
	assert.InDelta(t, 72.0, tier.Savings, delta)
	assert.InDelta(t, 72.0, result.SavingsByType.InstallmentCredit, delta)
	assert.InDelta(t, 50.0, result.SavingsPercentage, delta)
}

func TestCompare_TaxaDeParcelaAusente(t *testing.T) {
	volumes := domain.TransactionVolumes{Installments: domain.Installments{3: 1000}}

	result := Compare(domain.EmptyFeeRates(), domain.FeeRates{}, volumes)

	require.Contains(t, result.Breakdown.Installments, 3)
	assert.Equal(t, 0.0, result.Breakdown.Installments[3].Current)
	assert.Equal(t, 0.0, result.Breakdown.Installments[3].New)
	assert.Equal(t, 0.0, result.Breakdown.Installments[3].Savings)
}

func TestCompare_ParcelaSomenteNaTabelaNaoEntraNoCalculo(t *testing.T) {
	current := domain.FeeRates{Installments: domain.Installments{4: 3, 10: 5}}
	offered := domain.FeeRates{Installments: domain.Installments{4: 2, 10: 4}}
	volumes := domain.TransactionVolumes{Installments: domain.Installments{4: 500}}

	result := Compare(current, offered, volumes)

	assert.Len(t, result.Breakdown.Installments, 1)
	assert.NotContains(t, result.Breakdown.Installments, 10)
	assert.InDelta(t, 60.0, result.Breakdown.Installments[4].Current, delta)
	assert.InDelta(t, 40.0, result.Breakdown.Installments[4].New, delta)
}

func TestCompare_VolumesZerados(t *testing.T) {
	rates := []struct {
		name    string
		current domain.FeeRates
		offered domain.FeeRates
	}{
		{name: "taxas zeradas", current: domain.EmptyFeeRates(), offered: domain.EmptyFeeRates()},
		{
			name:    "taxas preenchidas",
			current: domain.FeeRates{Debit: 1.5, Credit: 3.2, Pix: 0.9, Installments: domain.Installments{2: 4, 12: 8}},
			offered: domain.FeeRates{Debit: 1.1, Credit: 2.8, Pix: 0.4, Installments: domain.Installments{2: 3}},
		},
		{
			name:    "taxas negativas",
			current: domain.FeeRates{Debit: -1, Credit: -2, Pix: -3},
			offered: domain.FeeRates{Debit: 5},
		},
	}

	volumes := domain.TransactionVolumes{Installments: domain.Installments{2: 0, 12: 0}}

	for _, tt := range rates {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(tt.current, tt.offered, volumes)

			assert.Equal(t, 0.0, result.CurrentTotal)
			assert.Equal(t, 0.0, result.NewTotal)
			assert.Equal(t, 0.0, result.SavingsPercentage)
		})
	}
}

func TestCompare_PercentualComTotalAtualZerado(t *testing.T) {
	// tabela atual sem custo e nova com custo: percentual continua 0
	offered := domain.FeeRates{Debit: 2}
	volumes := domain.TransactionVolumes{Debit: 1000}

	result := Compare(domain.EmptyFeeRates(), offered, volumes)

	assert.Equal(t, 0.0, result.CurrentTotal)
	assert.InDelta(t, 20.0, result.NewTotal, delta)
	assert.InDelta(t, -20.0, result.Savings, delta)
	assert.Equal(t, 0.0, result.SavingsPercentage)
	assert.False(t, math.IsNaN(result.SavingsPercentage))
	assert.False(t, math.IsInf(result.SavingsPercentage, 0))
}

func TestCompare_TotalAtualNegativo(t *testing.T) {
	current := domain.FeeRates{Debit: 2}
	volumes := domain.TransactionVolumes{Debit: -1000}

	result := Compare(current, domain.EmptyFeeRates(), volumes)

	assert.InDelta(t, -20.0, result.CurrentTotal, delta)
	assert.Equal(t, 0.0, result.SavingsPercentage)
}

func TestCompare_Invariantes(t *testing.T) {
	current := domain.FeeRates{
		Debit: 1.99, Credit: 3.19, Pix: 0.99,
		Installments: domain.Installments{2: 4.5, 3: 5.1, 6: 7.3, 12: 11.2},
	}
	offered := domain.FeeRates{
		Debit: 1.49, Credit: 2.99, Pix: 0,
		Installments: domain.Installments{2: 4.1, 6: 6.9, 12: 12.5},
	}
	volumes := domain.TransactionVolumes{
		Debit: 15432.17, Credit: 28999.9, Pix: 7310.55,
		Installments: domain.Installments{2: 3100, 3: 1250.75, 6: 9870.1, 12: 4400, 7: 300},
	}

	result := Compare(current, offered, volumes)

	categories := []domain.CostComparison{result.Breakdown.Debit, result.Breakdown.Credit, result.Breakdown.Pix}
	sumCurrent := result.Breakdown.Debit.Current + result.Breakdown.Credit.Current + result.Breakdown.Pix.Current
	sumNew := result.Breakdown.Debit.New + result.Breakdown.Credit.New + result.Breakdown.Pix.New
	for _, n := range volumes.Installments.Keys() {
		tier, ok := result.Breakdown.Installments[n]
		require.True(t, ok, "parcela %d ausente", n)
		categories = append(categories, tier)
		sumCurrent += tier.Current
		sumNew += tier.New
	}

	for _, c := range categories {
		assert.Equal(t, c.Current-c.New, c.Savings)
	}

	assert.InDelta(t, sumCurrent, result.CurrentTotal, delta)
	assert.InDelta(t, sumNew, result.NewTotal, delta)
	assert.Equal(t, result.CurrentTotal-result.NewTotal, result.Savings)
	assert.InDelta(t, result.Savings/result.CurrentTotal*100, result.SavingsPercentage, delta)

	byType := result.SavingsByType
	assert.Equal(t, result.Breakdown.Debit.Savings, byType.Debit)
	assert.Equal(t, result.Breakdown.Credit.Savings, byType.Credit)
	assert.Equal(t, result.Breakdown.Pix.Savings, byType.Pix)
	assert.InDelta(t, result.Savings, byType.Debit+byType.Credit+byType.Pix+byType.InstallmentCredit, delta)
}

func TestCompare_NaoAlteraEntradas(t *testing.T) {
	current := domain.FeeRates{Installments: domain.Installments{5: 2}}
	offered := domain.FeeRates{Installments: domain.Installments{5: 1}}
	volumes := domain.TransactionVolumes{Installments: domain.Installments{5: 100, 8: 50}}

	Compare(current, offered, volumes)

	assert.Equal(t, domain.Installments{5: 2}, current.Installments)
	assert.Equal(t, domain.Installments{5: 1}, offered.Installments)
	assert.Equal(t, domain.Installments{5: 100, 8: 50}, volumes.Installments)
}

func TestEngine_ChamadasConcorrentes(t *testing.T) {
	engine := NewEngine()
	current := domain.FeeRates{Debit: 2, Installments: domain.Installments{3: 4}}
	offered := domain.FeeRates{Debit: 1, Installments: domain.Installments{3: 2}}
	volumes := domain.TransactionVolumes{Debit: 1000, Installments: domain.Installments{3: 100}}

	var wg sync.WaitGroup
	results := make([]*domain.ComparisonResult, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = engine.Compare(current, offered, volumes)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.InDelta(t, 32.0, r.CurrentTotal, delta)
		assert.InDelta(t, 16.0, r.NewTotal, delta)
	}
}

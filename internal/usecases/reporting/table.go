package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/cet-calculator-api/internal/domain"
)

// Report é o conteúdo de um relatório: o resultado e, para comparações do histórico, o ID e a data
type Report struct {
	ID     string
	Date   *time.Time
	Result *domain.ComparisonResult
}

func ReportFromHistory(entry *domain.ComparisonHistory) Report {
	date := entry.Date
	result := entry.Result
	return Report{ID: entry.ID, Date: &date, Result: &result}
}

var tableHeader = []string{"Tipo", "Taxa Atual", "Taxa Nova", "Economia"}

// Row é uma linha da tabela de custos por forma de pagamento
type Row struct {
	Label   string
	Current float64
	New     float64
	Savings float64
}

func row(label string, c domain.CostComparison) Row {
	return Row{Label: label, Current: c.Current, New: c.New, Savings: c.Savings}
}

// Rows monta a tabela do relatório: débito, crédito à vista, PIX, parcelas em ordem crescente e total
func Rows(result *domain.ComparisonResult) []Row {
	rows := []Row{
		row("Débito", result.Breakdown.Debit),
		row("Crédito à Vista", result.Breakdown.Credit),
		row("PIX", result.Breakdown.Pix),
	}

	for _, n := range installmentKeys(result.Breakdown.Installments) {
		rows = append(rows, row(fmt.Sprintf("Crédito %dx", n), result.Breakdown.Installments[n]))
	}

	return append(rows, Row{
		Label:   "Total",
		Current: result.CurrentTotal,
		New:     result.NewTotal,
		Savings: result.Savings,
	})
}

func installmentKeys(m map[int]domain.CostComparison) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

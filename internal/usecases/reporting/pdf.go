package reporting

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/pkg/utils"
)

const reportTitle = "Relatório de Comparação de Taxas"

// PDF gera o relatório resumido com a tabela de custos
func PDF(report Report, f Formatter) ([]byte, error) {
	result := report.Result
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.Text(20, 20, tr(reportTitle))

	doc.SetFont("Helvetica", "", 12)
	y := 30.0
	if report.Date != nil {
		doc.Text(20, y, tr("Data: "+utils.FormatDateTime(*report.Date)))
		y += 10
	}
	doc.Text(20, y, tr("Economia Total: "+f.Money(result.Savings)))
	doc.Text(20, y+10, tr("Percentual de Economia: "+f.Percent(result.SavingsPercentage)))

	doc.SetXY(20, y+20)
	widths := []float64{50, 40, 40, 40}

	doc.SetFont("Helvetica", "B", 11)
	for i, h := range tableHeader {
		doc.CellFormat(widths[i], 8, tr(h), "1", 0, "C", false, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 11)
	for _, r := range Rows(result) {
		doc.SetX(20)
		doc.CellFormat(widths[0], 8, tr(r.Label), "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 8, tr(f.Money(r.Current)), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[2], 8, tr(f.Money(r.New)), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[3], 8, tr(f.Money(r.Savings)), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ShareText é o resumo enviado ao compartilhar uma comparação
func ShareText(result *domain.ComparisonResult, f Formatter) string {
	return "Comparação de Taxas:\n" +
		"Economia Total: " + f.Money(result.Savings) + "\n" +
		"Percentual de Economia: " + f.Percent(result.SavingsPercentage)
}

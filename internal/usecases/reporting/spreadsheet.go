package reporting

import (
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/cet-calculator-api/pkg/utils"
)

const sheetName = "Comparação"

// Spreadsheet gera a planilha com os valores sem arredondamento. Relatórios do histórico
// trazem a data da comparação na primeira linha.
func Spreadsheet(report Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	line := 1
	writeRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		line++
		return f.SetSheetRow(sheetName, cell, &values)
	}

	if report.Date != nil {
		if err := writeRow([]interface{}{"Data da Comparação", utils.FormatDateTime(*report.Date)}); err != nil {
			return nil, err
		}
	}

	header := make([]interface{}, len(tableHeader))
	for i, h := range tableHeader {
		header[i] = h
	}
	if err := writeRow(header); err != nil {
		return nil, err
	}

	for _, r := range Rows(report.Result) {
		if err := writeRow([]interface{}{r.Label, r.Current, r.New, r.Savings}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/reporting"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
)

// Calculate compara as duas tabelas sem salvar nada
func Calculate(calculator calculating.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeComparison(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, calculator.Compare(req.CurrentRates, req.NewRates, req.Volumes))
	}
}

// ExportComparison gera o relatório de uma comparação avulsa
func ExportComparison(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := reporting.ParseFormat(httprouter.ParamsFromContext(r.Context()).ByName("format"))
		if err != nil {
			writeServiceError(w, r, err, "Formato de exportação não suportado")
			return
		}

		req, ok := decodeComparison(w, r)
		if !ok {
			return
		}

		file, err := reporter.ExportResult(r.Context(), middleware.UserIDFromContext(r.Context()), *req, format)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório")
			return
		}

		writeFile(w, file)
	}
}

func writeFile(w http.ResponseWriter, file *reporting.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

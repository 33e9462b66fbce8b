package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
	"github.com/vfg2006/cet-calculator-api/pkg/utils"
)

// ExportData baixa o histórico e o rascunho do usuário em um único JSON
func ExportData(service comparing.Historian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := service.Export(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar dados")
			return
		}

		body, err := utils.PrettyJSON(data)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar dados")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", comparing.ExportFileName(time.Now())))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func ImportData(service comparing.Historian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidImport, "Arquivo muito grande ou ilegível", nil)
			return
		}

		summary, err := service.Import(r.Context(), middleware.UserIDFromContext(r.Context()), raw)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar dados")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/reporting"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
)

type ShareRequest struct {
	Email string `json:"email"`
}

func ListHistory(service comparing.Historian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.List(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar histórico")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// RecordHistory calcula e salva a comparação no histórico
func RecordHistory(service comparing.Historian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeComparison(w, r)
		if !ok {
			return
		}

		entry, err := service.Record(r.Context(), middleware.UserIDFromContext(r.Context()), req.Name, req.CurrentRates, req.NewRates, req.Volumes)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar comparação")
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

func ClearHistory(service comparing.Historian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Clear(r.Context(), middleware.UserIDFromContext(r.Context())); err != nil {
			writeServiceError(w, r, err, "Erro ao limpar histórico")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetHistory(service comparing.Historian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.Get(r.Context(), middleware.UserIDFromContext(r.Context()), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar comparação")
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

func DeleteHistory(service comparing.Historian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), middleware.UserIDFromContext(r.Context()), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir comparação")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ExportHistoryEntry(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		format, err := reporting.ParseFormat(params.ByName("format"))
		if err != nil {
			writeServiceError(w, r, err, "Formato de exportação não suportado")
			return
		}

		file, err := reporter.ExportHistory(r.Context(), middleware.UserIDFromContext(r.Context()), params.ByName("id"), format)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório")
			return
		}

		writeFile(w, file)
	}
}

// ShareHistory envia o resumo da comparação para o e-mail informado
func ShareHistory(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ShareRequest
		if !decodeBody(w, r, &req) {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := reporter.Share(r.Context(), middleware.UserIDFromContext(r.Context()), id, req.Email); err != nil {
			writeServiceError(w, r, err, "Erro ao compartilhar comparação")
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

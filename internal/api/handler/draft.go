package handler

import (
	"net/http"

	"github.com/vfg2006/cet-calculator-api/internal/usecases/drafting"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
)

func GetDraft(service drafting.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, err := service.GetDraft(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar rascunho")
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

func SaveDraft(service drafting.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeComparison(w, r)
		if !ok {
			return
		}

		draft, err := service.SaveDraft(r.Context(), middleware.UserIDFromContext(r.Context()), draftFrom(req))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar rascunho")
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

func ResetDraft(service drafting.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.ResetDraft(r.Context(), middleware.UserIDFromContext(r.Context())); err != nil {
			writeServiceError(w, r, err, "Erro ao limpar rascunho")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// PreviewDraft calcula o resultado do formulário e salva o rascunho quando o auto-save está ligado
func PreviewDraft(service drafting.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeComparison(w, r)
		if !ok {
			return
		}

		preview, err := service.Preview(r.Context(), middleware.UserIDFromContext(r.Context()), draftFrom(req))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular prévia")
			return
		}

		writeJSON(w, http.StatusOK, preview)
	}
}

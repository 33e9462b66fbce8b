package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/drafting"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/reporting"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/settings"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodySize = 5 << 20 // 5 MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição muito grande ou ilegível", nil)
		return false
	}

	if err := json.Unmarshal(body, dest); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	return true
}

// decodeComparison lê o corpo com as três tabelas; parcelas fora de 2 a 12 são rejeitadas
func decodeComparison(w http.ResponseWriter, r *http.Request) (*domain.ComparisonRequest, bool) {
	var payload comparisonPayload
	if !decodeBody(w, r, &payload) {
		return nil, false
	}

	req, err := payload.toRequest()
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, false
	}

	return &req, true
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		authErr     *authenticating.AuthError
		historyErr  *comparing.HistoryError
		draftErr    *drafting.DraftError
		settingsErr *settings.SettingsError
		reportErr   *reporting.ReportError
	)

	code, message := apiErrors.ErrInternalServer, fallback
	switch {
	case errors.As(err, &authErr):
		code, message = authErr.Code, authErr.Error()
	case errors.As(err, &historyErr):
		code, message = historyErr.Code, historyErr.Error()
	case errors.As(err, &draftErr):
		code, message = draftErr.Code, draftErr.Error()
	case errors.As(err, &settingsErr):
		code, message = settingsErr.Code, settingsErr.Error()
	case errors.As(err, &reportErr):
		code, message = reportErr.Code, reportErr.Error()
	}

	logger := log.ForContext(r.Context()).WithError(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(fallback)
		// detalhes internos não vão para o cliente
		message = fallback
	} else {
		logger.Warn(fallback)
	}

	apiErrors.WriteError(w, code, message, nil)
}

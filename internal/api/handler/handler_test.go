package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/cet-calculator-api/internal/api/handler/router"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	schedmocks "github.com/vfg2006/cet-calculator-api/internal/scheduler/mocks"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/cet-calculator-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	cmpmocks "github.com/vfg2006/cet-calculator-api/internal/usecases/comparing/mocks"
	draftmocks "github.com/vfg2006/cet-calculator-api/internal/usecases/drafting/mocks"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/reporting"
	repmocks "github.com/vfg2006/cet-calculator-api/internal/usecases/reporting/mocks"
	settingsmocks "github.com/vfg2006/cet-calculator-api/internal/usecases/settings/mocks"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/log"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
)

const comparisonBody = `{
	"name": "Proposta banco X",
	"currentRates": {"debit": 2, "credit": 3, "pix": 0.5, "installments": {"6": 2}},
	"newRates": {"debit": 1, "credit": "2,0", "pix": 0.3, "installments": {"6": 1}},
	"volumes": {"debit": "R$ 10.000,00", "credit": 5000, "pix": 2000, "installments": {"6": 1200}}
}`

func init() {
	log.SetupTestLogger()
}

// serve monta as rotas e injeta o usuário no contexto, como o AuthMiddleware faria
func serve(routes []router.Route, claims *domain.Claims, req *http.Request) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func user(id int) *domain.Claims {
	return &domain.Claims{UserID: id, UserRoleID: domain.RoleUser}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr apiErrors.APIError
	decodeResponse(t, rec, &apiErr)
	return apiErr.Code
}

func TestCalculate(t *testing.T) {
	routes := Comparisons(calculating.NewEngine(), nil, middleware.NewIPRateLimiter(0, 0))

	t.Run("compara as tabelas aceitando valores em texto", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/comparisons/calculate", strings.NewReader(comparisonBody))
		rec := serve(routes, nil, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.ComparisonResult
		decodeResponse(t, rec, &result)
		// 360 + 144 na tabela atual, 206 + 72 na nova
		assert.InDelta(t, 504.0, result.CurrentTotal, 1e-9)
		assert.InDelta(t, 278.0, result.NewTotal, 1e-9)
		assert.InDelta(t, 226.0, result.Savings, 1e-9)
		assert.InDelta(t, 72.0, result.SavingsByType.InstallmentCredit, 1e-9)
		assert.Contains(t, result.Breakdown.Installments, 6)
	})

	t.Run("parcela fora do intervalo", func(t *testing.T) {
		body := `{"currentRates": {"installments": {"13": 2}}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/comparisons/calculate", strings.NewReader(body))
		rec := serve(routes, nil, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("json inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/comparisons/calculate", strings.NewReader("{"))
		rec := serve(routes, nil, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})
}

func TestCalculate_RateLimit(t *testing.T) {
	routes := Comparisons(calculating.NewEngine(), nil, middleware.NewIPRateLimiter(1, 1))

	first := serve(routes, nil, httptest.NewRequest(http.MethodPost, "/v1/comparisons/calculate", strings.NewReader(comparisonBody)))
	second := serve(routes, nil, httptest.NewRequest(http.MethodPost, "/v1/comparisons/calculate", strings.NewReader(comparisonBody)))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, apiErrors.ErrTooManyRequests, errorCode(t, second))
}

func TestExportComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := repmocks.NewMockReporter(ctrl)
	routes := Comparisons(calculating.NewEngine(), reporter, middleware.NewIPRateLimiter(0, 0))

	t.Run("anônimo baixa a planilha", func(t *testing.T) {
		reporter.EXPECT().
			ExportResult(gomock.Any(), 0, gomock.Any(), reporting.FormatXLSX).
			DoAndReturn(func(_ context.Context, _ int, req domain.ComparisonRequest, _ reporting.Format) (*reporting.File, error) {
				assert.Equal(t, 2.0, req.NewRates.Credit)
				assert.Equal(t, 10000.0, req.Volumes.Debit)
				return &reporting.File{
					Name:        reporting.FileName("", reporting.FormatXLSX),
					ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
					Content:     []byte("xlsx"),
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/comparisons/export/xlsx", strings.NewReader(comparisonBody))
		rec := serve(routes, nil, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="comparacao-taxas.xlsx"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "xlsx", rec.Body.String())
	})

	t.Run("formato desconhecido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/comparisons/export/docx", strings.NewReader(comparisonBody))
		rec := serve(routes, nil, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrUnsupportedExport, errorCode(t, rec))
	})
}

func TestHistoryRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	historian := cmpmocks.NewMockHistorian(ctrl)
	reporter := repmocks.NewMockReporter(ctrl)
	routes := History(historian, reporter)

	t.Run("sem usuário", func(t *testing.T) {
		rec := serve(routes, nil, httptest.NewRequest(http.MethodGet, "/v1/history", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
	})

	t.Run("lista do usuário", func(t *testing.T) {
		historian.EXPECT().List(gomock.Any(), 7).Return([]*domain.ComparisonHistory{
			{ID: "a1", Name: "Primeira"},
		}, nil)

		rec := serve(routes, user(7), httptest.NewRequest(http.MethodGet, "/v1/history", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var entries []*domain.ComparisonHistory
		decodeResponse(t, rec, &entries)
		require.Len(t, entries, 1)
		assert.Equal(t, "a1", entries[0].ID)
	})

	t.Run("salva a comparação", func(t *testing.T) {
		historian.EXPECT().
			Record(gomock.Any(), 7, "Proposta banco X", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.ComparisonHistory{ID: "novo", Name: "Proposta banco X"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/history", strings.NewReader(comparisonBody))
		rec := serve(routes, user(7), req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("comparação inexistente", func(t *testing.T) {
		historian.EXPECT().Get(gomock.Any(), 7, "xyz").
			Return(nil, comparing.NewHistoryErrorWithID(comparing.ErrComparisonNotFound, apiErrors.ErrComparisonNotFound, "xyz", ""))

		rec := serve(routes, user(7), httptest.NewRequest(http.MethodGet, "/v1/history/xyz", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrComparisonNotFound, errorCode(t, rec))
	})

	t.Run("exclui e limpa", func(t *testing.T) {
		historian.EXPECT().Delete(gomock.Any(), 7, "a1").Return(nil)
		historian.EXPECT().Clear(gomock.Any(), 7).Return(nil)

		deleted := serve(routes, user(7), httptest.NewRequest(http.MethodDelete, "/v1/history/a1", nil))
		cleared := serve(routes, user(7), httptest.NewRequest(http.MethodDelete, "/v1/history", nil))

		assert.Equal(t, http.StatusNoContent, deleted.Code)
		assert.Equal(t, http.StatusNoContent, cleared.Code)
	})

	t.Run("erro de banco não expõe detalhes", func(t *testing.T) {
		historian.EXPECT().Clear(gomock.Any(), 7).
			Return(comparing.NewHistoryError(comparing.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "pq: conexão recusada"))

		rec := serve(routes, user(7), httptest.NewRequest(http.MethodDelete, "/v1/history", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})

	t.Run("exporta uma entrada em pdf", func(t *testing.T) {
		reporter.EXPECT().ExportHistory(gomock.Any(), 7, "a1", reporting.FormatPDF).Return(&reporting.File{
			Name:        reporting.FileName("a1", reporting.FormatPDF),
			ContentType: "application/pdf",
			Content:     []byte("%PDF"),
		}, nil)

		rec := serve(routes, user(7), httptest.NewRequest(http.MethodGet, "/v1/history/a1/export/pdf", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "comparacao-taxas-a1.pdf")
	})

	t.Run("compartilha por e-mail", func(t *testing.T) {
		reporter.EXPECT().Share(gomock.Any(), 7, "a1", "financeiro@loja.com.br").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/history/a1/share", strings.NewReader(`{"email":"financeiro@loja.com.br"}`))
		rec := serve(routes, user(7), req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("destinatário inválido", func(t *testing.T) {
		reporter.EXPECT().Share(gomock.Any(), 7, "a1", "nao-e-email").
			Return(reporting.NewReportError(reporting.ErrInvalidRecipient, apiErrors.ErrInvalidFormat, "nao-e-email"))

		req := httptest.NewRequest(http.MethodPost, "/v1/history/a1/share", strings.NewReader(`{"email":"nao-e-email"}`))
		rec := serve(routes, user(7), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})
}

func TestDraftRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	workspace := draftmocks.NewMockWorkspace(ctrl)
	routes := Drafts(workspace)

	t.Run("carrega o rascunho", func(t *testing.T) {
		workspace.EXPECT().GetDraft(gomock.Any(), 3).Return(domain.EmptyDraft(), nil)

		rec := serve(routes, user(3), httptest.NewRequest(http.MethodGet, "/v1/draft", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("salva o formulário", func(t *testing.T) {
		workspace.EXPECT().SaveDraft(gomock.Any(), 3, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, draft *domain.Draft) (*domain.Draft, error) {
				assert.Equal(t, 2.0, draft.CurrentRates.Installments[6])
				return draft, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/draft", strings.NewReader(comparisonBody))
		rec := serve(routes, user(3), req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("prévia", func(t *testing.T) {
		workspace.EXPECT().Preview(gomock.Any(), 3, gomock.Any()).Return(&domain.DraftPreview{
			Draft:  domain.EmptyDraft(),
			Result: &domain.ComparisonResult{},
			Saved:  true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/draft/preview", strings.NewReader(comparisonBody))
		rec := serve(routes, user(3), req)

		require.Equal(t, http.StatusOK, rec.Code)
		var preview domain.DraftPreview
		decodeResponse(t, rec, &preview)
		assert.True(t, preview.Saved)
	})

	t.Run("reinicia", func(t *testing.T) {
		workspace.EXPECT().ResetDraft(gomock.Any(), 3).Return(nil)

		rec := serve(routes, user(3), httptest.NewRequest(http.MethodDelete, "/v1/draft", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestDataRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	historian := cmpmocks.NewMockHistorian(ctrl)
	routes := Data(historian)

	t.Run("exporta como anexo json", func(t *testing.T) {
		historian.EXPECT().Export(gomock.Any(), 5).Return(&domain.ExportData{History: []*domain.ComparisonHistory{}}, nil)

		rec := serve(routes, user(5), httptest.NewRequest(http.MethodGet, "/v1/data/export", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment;")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".json")
		assert.Contains(t, rec.Body.String(), `"history": []`)
	})

	t.Run("importa o arquivo bruto", func(t *testing.T) {
		raw := `{"history": []}`
		historian.EXPECT().Import(gomock.Any(), 5, []byte(raw)).Return(&comparing.ImportSummary{HistoryReplaced: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/data/import", strings.NewReader(raw))
		rec := serve(routes, user(5), req)

		require.Equal(t, http.StatusOK, rec.Code)
		var summary comparing.ImportSummary
		decodeResponse(t, rec, &summary)
		assert.True(t, summary.HistoryReplaced)
	})

	t.Run("arquivo inválido", func(t *testing.T) {
		historian.EXPECT().Import(gomock.Any(), 5, gomock.Any()).
			Return(nil, comparing.NewHistoryError(comparing.ErrInvalidImport, apiErrors.ErrInvalidImport, "json malformado"))

		req := httptest.NewRequest(http.MethodPost, "/v1/data/import", strings.NewReader("{"))
		rec := serve(routes, user(5), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidImport, errorCode(t, rec))
	})
}

func TestSettingsRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := settingsmocks.NewMockManager(ctrl)
	backuper := schedmocks.NewMockHistoryBackuper(ctrl)
	routes := Settings(manager, backuper)

	t.Run("atualiza", func(t *testing.T) {
		manager.EXPECT().Update(gomock.Any(), 9, gomock.Any()).Return(&domain.Settings{Currency: "USD"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(`{"currency":"USD"}`))
		rec := serve(routes, user(9), req)

		require.Equal(t, http.StatusOK, rec.Code)
		var st domain.Settings
		decodeResponse(t, rec, &st)
		assert.Equal(t, "USD", st.Currency)
	})

	t.Run("backup manual", func(t *testing.T) {
		createdAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
		backuper.EXPECT().BackupUser(gomock.Any(), 9).Return(&domain.HistoryBackup{ID: "b1", Entries: 4, CreatedAt: createdAt}, nil)

		rec := serve(routes, user(9), httptest.NewRequest(http.MethodPost, "/v1/settings/backup", nil))

		require.Equal(t, http.StatusCreated, rec.Code)
		var status domain.BackupStatus
		decodeResponse(t, rec, &status)
		assert.Equal(t, 4, status.Entries)
		require.NotNil(t, status.LastBackupAt)
		assert.True(t, createdAt.Equal(*status.LastBackupAt))
	})
}

func TestCronRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := schedmocks.NewMockJob(ctrl)
	routes := CronJobs(CronJobServices{"history-backup": job})
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}

	t.Run("usuário comum não pode disparar", func(t *testing.T) {
		rec := serve(routes, user(2), httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("dispara todos", func(t *testing.T) {
		job.EXPECT().TriggerManualSync().Return(true)

		rec := serve(routes, admin, httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil))

		require.Equal(t, http.StatusAccepted, rec.Code)
		var resp CronRunResponse
		decodeResponse(t, rec, &resp)
		assert.Equal(t, []string{"history-backup"}, resp.Started)
		assert.Empty(t, resp.Skipped)
	})

	t.Run("execução em andamento", func(t *testing.T) {
		job.EXPECT().TriggerManualSync().Return(false)

		rec := serve(routes, admin, httptest.NewRequest(http.MethodPost, "/v1/cron/history-backup/run", nil))

		var resp CronRunResponse
		decodeResponse(t, rec, &resp)
		assert.Empty(t, resp.Started)
		assert.Equal(t, []string{"history-backup"}, resp.Skipped)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rec := serve(routes, admin, httptest.NewRequest(http.MethodPost, "/v1/cron/vendas/run", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status", func(t *testing.T) {
		job.EXPECT().GetStatus().Return(map[string]any{"running": false})

		rec := serve(routes, admin, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"history-backup"`)
	})
}

func TestAuthenticationRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	oauth := GoogleOAuth{State: "estado", FrontendBaseURL: "http://front.local"}
	routes := Authentication(auth, oauth)

	t.Run("login", func(t *testing.T) {
		auth.EXPECT().Login(gomock.Any(), "ana@loja.com", "segredo").Return("jwt-token", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ana@loja.com","password":"segredo"}`))
		rec := serve(routes, nil, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp domain.LoginResponse
		decodeResponse(t, rec, &resp)
		assert.Equal(t, "jwt-token", resp.Token)
	})

	t.Run("credenciais inválidas", func(t *testing.T) {
		auth.EXPECT().Login(gomock.Any(), "ana@loja.com", "errada").
			Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ana@loja.com","password":"errada"}`))
		rec := serve(routes, nil, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, errorCode(t, rec))
	})

	t.Run("cadastro", func(t *testing.T) {
		auth.EXPECT().SignUp(gomock.Any(), domain.SignUpRequest{Email: "bia@loja.com", Password: "123456", ConfirmPassword: "123456"}).
			Return(&domain.User{ID: 10, Email: "bia@loja.com"}, nil)

		body := `{"email":"bia@loja.com","password":"123456","confirm_password":"123456"}`
		rec := serve(routes, nil, httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "123456")
	})

	t.Run("redireciona para o google", func(t *testing.T) {
		auth.EXPECT().GoogleLoginURL("estado").Return("https://accounts.google.com/o/oauth2/auth?state=estado", nil)

		rec := serve(routes, nil, httptest.NewRequest(http.MethodGet, "/v1/auth/google/login", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "accounts.google.com")
	})

	t.Run("google não configurado", func(t *testing.T) {
		auth.EXPECT().GoogleLoginURL("estado").Return("", authenticating.ErrOAuthNotConfigured)

		rec := serve(routes, nil, httptest.NewRequest(http.MethodGet, "/v1/auth/google/login", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("callback devolve o token ao frontend", func(t *testing.T) {
		auth.EXPECT().GoogleCallback(gomock.Any(), "codigo").Return("jwt-google", nil)

		rec := serve(routes, nil, httptest.NewRequest(http.MethodGet, "/v1/auth/google/callback?state=estado&code=codigo", nil))

		require.Equal(t, http.StatusFound, rec.Code)
		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/auth/callback", location.Path)
		assert.Equal(t, "jwt-google", location.Query().Get("token"))
	})

	t.Run("callback com state diferente", func(t *testing.T) {
		rec := serve(routes, nil, httptest.NewRequest(http.MethodGet, "/v1/auth/google/callback?state=outro&code=codigo", nil))

		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, apiErrors.ErrOAuthFailed, location.Query().Get("error"))
		assert.Empty(t, location.Query().Get("token"))
	})

	t.Run("callback com conta local", func(t *testing.T) {
		auth.EXPECT().GoogleCallback(gomock.Any(), "codigo").
			Return("", authenticating.NewAuthError(authenticating.ErrProviderMismatch, apiErrors.ErrProviderMismatch, ""))

		rec := serve(routes, nil, httptest.NewRequest(http.MethodGet, "/v1/auth/google/callback?state=estado&code=codigo", nil))

		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, apiErrors.ErrProviderMismatch, location.Query().Get("error"))
	})

	t.Run("perfil do usuário logado", func(t *testing.T) {
		auth.EXPECT().GetUserProfile(gomock.Any(), 10).Return(nil, errors.New("falha inesperada"))

		rec := serve(routes, user(10), httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "falha inesperada")
	})
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}

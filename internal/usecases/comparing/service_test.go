package comparing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/cet-calculator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	draftmocks "github.com/vfg2006/cet-calculator-api/internal/usecases/drafting/mocks"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
)

var fixedNow = time.Date(2024, 3, 7, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, maxEntries int) (*Service, *mocks.MockHistoryRepository, *draftmocks.MockWorkspace) {
	t.Helper()

	ctrl := gomock.NewController(t)
	historyRepo := mocks.NewMockHistoryRepository(ctrl)
	drafts := draftmocks.NewMockWorkspace(ctrl)

	svc := NewService(historyRepo, calculating.NewEngine(), drafts, maxEntries).(*Service)
	svc.now = func() time.Time { return fixedNow }

	return svc, historyRepo, drafts
}

func exampleRates() (domain.FeeRates, domain.FeeRates, domain.TransactionVolumes) {
	return domain.FeeRates{Debit: 2, Credit: 3, Pix: 0.5, Installments: domain.Installments{}},
		domain.FeeRates{Debit: 1, Credit: 2, Pix: 0.3, Installments: domain.Installments{}},
		domain.TransactionVolumes{Debit: 10000, Credit: 5000, Pix: 2000, Installments: domain.Installments{}}
}

func TestService_Record(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{name: "nome informado", input: "Proposta banco X", wantName: "Proposta banco X"},
		{name: "nome padrão com data e hora", input: "  ", wantName: "Comparação 07/03/2024 14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, historyRepo, _ := newTestService(t, 0)
			current, offered, volumes := exampleRates()

			var saved *domain.ComparisonHistory
			historyRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, entry *domain.ComparisonHistory) error {
					saved = entry
					return nil
				})

			entry, err := svc.Record(context.Background(), 1, tt.input, current, offered, volumes)
			require.NoError(t, err)
			assert.Same(t, saved, entry)
			assert.Equal(t, tt.wantName, entry.Name)
			assert.Len(t, entry.ID, 36)
			assert.Equal(t, 1, entry.UserID)
			assert.Equal(t, fixedNow, entry.Date)
			assert.InDelta(t, 154.0, entry.Result.Savings, 1e-9)
		})
	}
}

func TestService_Record_LimiteDoHistorico(t *testing.T) {
	svc, historyRepo, _ := newTestService(t, 50)
	current, offered, volumes := exampleRates()

	gomock.InOrder(
		historyRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		historyRepo.EXPECT().TrimToLimit(gomock.Any(), 1, 50).Return(int64(1), nil),
	)

	_, err := svc.Record(context.Background(), 1, "", current, offered, volumes)
	require.NoError(t, err)
}

func TestService_Record_Erros(t *testing.T) {
	t.Run("parcela fora do intervalo", func(t *testing.T) {
		svc, _, _ := newTestService(t, 0)
		current, offered, volumes := exampleRates()
		volumes.Installments = domain.Installments{1: 100}

		_, err := svc.Record(context.Background(), 1, "", current, offered, volumes)
		require.ErrorIs(t, err, ErrInvalidComparison)

		var historyErr *HistoryError
		require.ErrorAs(t, err, &historyErr)
		assert.Equal(t, apiErrors.ErrInvalidFormat, historyErr.Code)
	})

	t.Run("erro no banco", func(t *testing.T) {
		svc, historyRepo, _ := newTestService(t, 0)
		current, offered, volumes := exampleRates()
		historyRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))

		_, err := svc.Record(context.Background(), 1, "", current, offered, volumes)
		require.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_Get_NaoEncontrada(t *testing.T) {
	svc, historyRepo, _ := newTestService(t, 0)
	historyRepo.EXPECT().GetByID(gomock.Any(), 1, "abc").Return(nil, nil)

	_, err := svc.Get(context.Background(), 1, "abc")
	require.ErrorIs(t, err, ErrComparisonNotFound)

	var historyErr *HistoryError
	require.ErrorAs(t, err, &historyErr)
	assert.Equal(t, "abc", historyErr.HistoryID)
	assert.Equal(t, apiErrors.ErrComparisonNotFound, historyErr.Code)
}

func TestService_Delete(t *testing.T) {
	svc, historyRepo, _ := newTestService(t, 0)

	historyRepo.EXPECT().Delete(gomock.Any(), 1, "existe").Return(true, nil)
	historyRepo.EXPECT().Delete(gomock.Any(), 1, "sumiu").Return(false, nil)

	assert.NoError(t, svc.Delete(context.Background(), 1, "existe"))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, "sumiu"), ErrComparisonNotFound)
}

func TestService_List_VazioNaoNulo(t *testing.T) {
	svc, historyRepo, _ := newTestService(t, 0)
	historyRepo.EXPECT().ListByUser(gomock.Any(), 1).Return(nil, nil)

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestService_Export(t *testing.T) {
	svc, historyRepo, drafts := newTestService(t, 0)
	current, offered, volumes := exampleRates()

	historyRepo.EXPECT().ListByUser(gomock.Any(), 1).Return([]*domain.ComparisonHistory{
		{ID: "a", UserID: 1, Name: "A", Date: fixedNow},
	}, nil)
	drafts.EXPECT().GetDraft(gomock.Any(), 1).Return(&domain.Draft{CurrentRates: current, NewRates: offered, Volumes: volumes}, nil)

	data, err := svc.Export(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, data.History, 1)
	assert.Zero(t, data.History[0].UserID)
	assert.Equal(t, 2.0, data.CurrentRates.Debit)
	assert.Equal(t, 10000.0, data.Volumes.Debit)

	assert.Equal(t, "cet-calculator-data-2024-03-07.json", ExportFileName(fixedNow))
}

func TestService_Import_RecalculaResultados(t *testing.T) {
	svc, historyRepo, _ := newTestService(t, 0)

	raw := []byte(`{
		"history": [
			{"id": "x1", "name": "Antiga", "date": "2024-01-10T10:00:00Z",
			 "currentRates": {"debit": 2, "credit": 0, "pix": 0, "installments": {"6": 2}},
			 "newRates": {"debit": 1, "credit": 0, "pix": 0, "installments": {"6": 1}},
			 "volumes": {"debit": 1000, "credit": 0, "pix": 0, "installments": {"6": 1200}},
			 "result": {"currentTotal": 999999, "newTotal": 0, "savings": 999999}},
			{"name": "", "date": "2024-02-10T10:00:00Z",
			 "currentRates": {"debit": 1}, "newRates": {"debit": 1}, "volumes": {"debit": 1}}
		]
	}`)

	var replaced []*domain.ComparisonHistory
	historyRepo.EXPECT().ReplaceAll(gomock.Any(), 7, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, entries []*domain.ComparisonHistory) error {
			replaced = entries
			return nil
		})

	summary, err := svc.Import(context.Background(), 7, raw)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.HistoryImported)
	assert.True(t, summary.HistoryReplaced)
	assert.False(t, summary.DraftUpdated)

	require.Len(t, replaced, 2)
	// ordenado do mais recente para o mais antigo
	assert.Len(t, replaced[0].ID, 36, "recebe um uuid novo")
	assert.Equal(t, "Comparação 10/02/2024 10:00", replaced[0].Name)
	assert.Equal(t, "x1", replaced[1].ID)
	assert.Equal(t, 7, replaced[1].UserID)
	assert.InDelta(t, 164.0, replaced[1].Result.CurrentTotal, 1e-9)
	assert.InDelta(t, 82.0, replaced[1].Result.Savings, 1e-9)
}

func TestService_Import_AtualizaRascunho(t *testing.T) {
	svc, _, drafts := newTestService(t, 0)

	drafts.EXPECT().GetDraft(gomock.Any(), 1).Return(domain.EmptyDraft(), nil)
	drafts.EXPECT().SaveDraft(gomock.Any(), 1, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, draft *domain.Draft) (*domain.Draft, error) {
			assert.Equal(t, 2.5, draft.CurrentRates.Debit)
			assert.Equal(t, 0.0, draft.NewRates.Debit, "campos ausentes continuam como estavam")
			return draft, nil
		})

	summary, err := svc.Import(context.Background(), 1, []byte(`{"currentRates": {"debit": 2.5}}`))
	require.NoError(t, err)
	assert.False(t, summary.HistoryReplaced)
	assert.True(t, summary.DraftUpdated)
}

func TestService_Import_HistoricoVazioLimpa(t *testing.T) {
	svc, historyRepo, _ := newTestService(t, 0)
	historyRepo.EXPECT().ReplaceAll(gomock.Any(), 1, []*domain.ComparisonHistory{}).Return(nil)

	summary, err := svc.Import(context.Background(), 1, []byte(`{"history": []}`))
	require.NoError(t, err)
	assert.True(t, summary.HistoryReplaced)
	assert.Zero(t, summary.HistoryImported)
}

func TestService_Import_RascunhoInvalidoPreservaHistorico(t *testing.T) {
	svc, _, drafts := newTestService(t, 0)
	drafts.EXPECT().GetDraft(gomock.Any(), 1).Return(domain.EmptyDraft(), nil)
	// ReplaceAll e SaveDraft sem EXPECT: qualquer chamada falha o teste

	raw := []byte(`{
		"history": [{"currentRates": {"debit": 1}, "newRates": {"debit": 1}, "volumes": {"debit": 1}}],
		"currentRates": {"debit": 1, "installments": {"15": 2}}
	}`)

	summary, err := svc.Import(context.Background(), 1, raw)
	require.ErrorIs(t, err, ErrInvalidImport)
	assert.Nil(t, summary)

	var historyErr *HistoryError
	require.ErrorAs(t, err, &historyErr)
	assert.Equal(t, apiErrors.ErrInvalidImport, historyErr.Code)
}

func TestService_Import_HistoricoERascunho(t *testing.T) {
	svc, historyRepo, drafts := newTestService(t, 0)

	gomock.InOrder(
		drafts.EXPECT().GetDraft(gomock.Any(), 1).Return(domain.EmptyDraft(), nil),
		historyRepo.EXPECT().ReplaceAll(gomock.Any(), 1, gomock.Len(1)).Return(nil),
		drafts.EXPECT().SaveDraft(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, draft *domain.Draft) (*domain.Draft, error) {
				return draft, nil
			}),
	)

	raw := []byte(`{
		"history": [{"currentRates": {"debit": 1}, "newRates": {"debit": 1}, "volumes": {"debit": 1}}],
		"volumes": {"debit": 5000}
	}`)

	summary, err := svc.Import(context.Background(), 1, raw)
	require.NoError(t, err)
	assert.True(t, summary.HistoryReplaced)
	assert.Equal(t, 1, summary.HistoryImported)
	assert.True(t, summary.DraftUpdated)
}

func TestService_Import_Invalido(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "json malformado", raw: `{"history": [`},
		{name: "tipo errado", raw: `{"history": "nada"}`},
		{name: "parcela fora do intervalo", raw: `{"history": [{"volumes": {"installments": {"15": 10}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t, 0)

			_, err := svc.Import(context.Background(), 1, []byte(tt.raw))
			require.ErrorIs(t, err, ErrInvalidImport)

			var historyErr *HistoryError
			require.ErrorAs(t, err, &historyErr)
			assert.Equal(t, apiErrors.ErrInvalidImport, historyErr.Code)
		})
	}
}

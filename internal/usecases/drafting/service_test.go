package drafting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/cet-calculator-api/infrastructure/cache"
	cachemocks "github.com/vfg2006/cet-calculator-api/infrastructure/cache/mocks"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	settingsmocks "github.com/vfg2006/cet-calculator-api/internal/usecases/settings/mocks"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
)

func sampleDraft() *domain.Draft {
	return &domain.Draft{
		CurrentRates: domain.FeeRates{Debit: 2, Credit: 3, Pix: 0.5},
		NewRates:     domain.FeeRates{Debit: 1, Credit: 2, Pix: 0.3},
		Volumes:      domain.TransactionVolumes{Debit: 10000, Credit: 5000, Pix: 2000},
	}
}

func TestService_GetDraft_VazioQuandoNaoExiste(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(cache.NewMemoryCache(0), calculating.NewEngine(), settingsmocks.NewMockManager(ctrl), time.Hour)

	draft, err := svc.GetDraft(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyDraft(), draft)
	assert.NotNil(t, draft.Volumes.Installments)
}

func TestService_SaveDraft_UltimaEscritaPrevalece(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(cache.NewMemoryCache(0), calculating.NewEngine(), settingsmocks.NewMockManager(ctrl), time.Hour)
	ctx := context.Background()

	first := sampleDraft()
	_, err := svc.SaveDraft(ctx, 1, first)
	require.NoError(t, err)

	second := sampleDraft()
	second.CurrentRates.Debit = 4
	saved, err := svc.SaveDraft(ctx, 1, second)
	require.NoError(t, err)
	require.NotNil(t, saved.UpdatedAt)

	got, err := svc.GetDraft(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.CurrentRates.Debit)
	assert.NotNil(t, got.CurrentRates.Installments, "mapas nulos viram mapas vazios")

	// rascunhos são isolados por usuário
	other, err := svc.GetDraft(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, other.CurrentRates.Debit)

	require.NoError(t, svc.ResetDraft(ctx, 1))
	got, err = svc.GetDraft(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyDraft(), got)
}

func TestService_SaveDraft_ParcelaInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(cache.NewMemoryCache(0), calculating.NewEngine(), settingsmocks.NewMockManager(ctrl), time.Hour)

	draft := sampleDraft()
	draft.Volumes.Installments = domain.Installments{13: 100}

	_, err := svc.SaveDraft(context.Background(), 1, draft)
	require.ErrorIs(t, err, ErrInvalidDraft)

	var draftErr *DraftError
	require.ErrorAs(t, err, &draftErr)
	assert.Equal(t, apiErrors.ErrInvalidFormat, draftErr.Code)

	_, err = svc.SaveDraft(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrInvalidDraft)
}

func TestService_SaveDraft_ErroNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := cachemocks.NewMockCache(ctrl)
	c.EXPECT().Set(gomock.Any(), cache.DraftKey(1), gomock.Any(), time.Hour).Return(errors.New("timeout"))

	svc := NewService(c, calculating.NewEngine(), settingsmocks.NewMockManager(ctrl), time.Hour)

	_, err := svc.SaveDraft(context.Background(), 1, sampleDraft())
	require.ErrorIs(t, err, ErrCache)
}

func TestService_Preview(t *testing.T) {
	tests := []struct {
		name      string
		autoSave  bool
		settings  error
		wantSaved bool
	}{
		{name: "salvamento automático ligado", autoSave: true, wantSaved: true},
		{name: "salvamento automático desligado", autoSave: false, wantSaved: false},
		{name: "erro nas configurações não impede o cálculo", settings: errors.New("banco fora do ar"), wantSaved: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := settingsmocks.NewMockManager(ctrl)

			prefs := domain.DefaultSettings()
			prefs.AutoSave = tt.autoSave
			if tt.settings != nil {
				manager.EXPECT().Get(gomock.Any(), 1).Return(nil, tt.settings)
			} else {
				manager.EXPECT().Get(gomock.Any(), 1).Return(prefs, nil)
			}

			svc := NewService(cache.NewMemoryCache(0), calculating.NewEngine(), manager, time.Hour)
			ctx := context.Background()

			preview, err := svc.Preview(ctx, 1, sampleDraft())
			require.NoError(t, err)
			assert.InDelta(t, 360.0, preview.Result.CurrentTotal, 1e-9)
			assert.InDelta(t, 154.0, preview.Result.Savings, 1e-9)
			assert.Equal(t, tt.wantSaved, preview.Saved)

			stored, err := svc.GetDraft(ctx, 1)
			require.NoError(t, err)
			if tt.wantSaved {
				assert.Equal(t, 2.0, stored.CurrentRates.Debit)
			} else {
				assert.Equal(t, domain.EmptyDraft(), stored)
			}
		})
	}
}

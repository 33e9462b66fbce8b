// Package drafting mantém as tabelas que cada usuário está editando entre uma sessão e outra
package drafting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/cet-calculator-api/infrastructure/cache"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/settings"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
)

type Workspace interface {
	GetDraft(ctx context.Context, userID int) (*domain.Draft, error)
	SaveDraft(ctx context.Context, userID int, draft *domain.Draft) (*domain.Draft, error)
	ResetDraft(ctx context.Context, userID int) error
	Preview(ctx context.Context, userID int, draft *domain.Draft) (*domain.DraftPreview, error)
}

type Service struct {
	cache      cache.Cache
	calculator calculating.Calculator
	settings   settings.Manager
	ttl        time.Duration
}

func NewService(c cache.Cache, calculator calculating.Calculator, settingsManager settings.Manager, ttl time.Duration) Workspace {
	return &Service{
		cache:      c,
		calculator: calculator,
		settings:   settingsManager,
		ttl:        ttl,
	}
}

// GetDraft retorna o rascunho salvo ou um rascunho zerado
func (s *Service) GetDraft(ctx context.Context, userID int) (*domain.Draft, error) {
	var draft domain.Draft
	found, err := s.cache.Get(ctx, cache.DraftKey(userID), &draft)
	if err != nil {
		return nil, NewDraftError(ErrCache, apiErrors.ErrInternalServer, err.Error())
	}

	if !found {
		return domain.EmptyDraft(), nil
	}

	normalize(&draft)
	return &draft, nil
}

// SaveDraft grava o rascunho; a última escrita prevalece
func (s *Service) SaveDraft(ctx context.Context, userID int, draft *domain.Draft) (*domain.Draft, error) {
	if draft == nil {
		return nil, NewDraftError(ErrInvalidDraft, apiErrors.ErrMissingRequiredData, "rascunho ausente")
	}

	if err := draft.Validate(); err != nil {
		return nil, NewDraftError(ErrInvalidDraft, apiErrors.ErrInvalidFormat, err.Error())
	}

	normalize(draft)
	now := time.Now()
	draft.UpdatedAt = &now

	if err := s.cache.Set(ctx, cache.DraftKey(userID), draft, s.ttl); err != nil {
		return nil, NewDraftError(ErrCache, apiErrors.ErrInternalServer, err.Error())
	}

	return draft, nil
}

func (s *Service) ResetDraft(ctx context.Context, userID int) error {
	if err := s.cache.Delete(ctx, cache.DraftKey(userID)); err != nil {
		return NewDraftError(ErrCache, apiErrors.ErrInternalServer, err.Error())
	}
	return nil
}

// Preview recalcula o resultado a cada alteração do formulário.
// Com o salvamento automático ligado o rascunho também é gravado.
func (s *Service) Preview(ctx context.Context, userID int, draft *domain.Draft) (*domain.DraftPreview, error) {
	if draft == nil {
		return nil, NewDraftError(ErrInvalidDraft, apiErrors.ErrMissingRequiredData, "rascunho ausente")
	}

	if err := draft.Validate(); err != nil {
		return nil, NewDraftError(ErrInvalidDraft, apiErrors.ErrInvalidFormat, err.Error())
	}

	normalize(draft)
	preview := &domain.DraftPreview{
		Draft:  draft,
		Result: s.calculator.Compare(draft.CurrentRates, draft.NewRates, draft.Volumes),
	}

	prefs, err := s.settings.Get(ctx, userID)
	if err != nil {
		logrus.Warnf("Não foi possível ler as configurações do usuário %d, rascunho não salvo: %v", userID, err)
		return preview, nil
	}

	if prefs.AutoSave {
		saved, err := s.SaveDraft(ctx, userID, draft)
		if err != nil {
			return nil, err
		}
		preview.Draft = saved
		preview.Saved = true
	}

	return preview, nil
}

func normalize(draft *domain.Draft) {
	if draft.CurrentRates.Installments == nil {
		draft.CurrentRates.Installments = domain.Installments{}
	}
	if draft.NewRates.Installments == nil {
		draft.NewRates.Installments = domain.Installments{}
	}
	if draft.Volumes.Installments == nil {
		draft.Volumes.Installments = domain.Installments{}
	}
}

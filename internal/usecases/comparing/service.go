// Package comparing registra as comparações calculadas no histórico de cada usuário
package comparing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/cet-calculator-api/infrastructure/repository"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/drafting"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Historian interface {
	Record(ctx context.Context, userID int, name string, current, offered domain.FeeRates, volumes domain.TransactionVolumes) (*domain.ComparisonHistory, error)
	List(ctx context.Context, userID int) ([]*domain.ComparisonHistory, error)
	Get(ctx context.Context, userID int, id string) (*domain.ComparisonHistory, error)
	Delete(ctx context.Context, userID int, id string) error
	Clear(ctx context.Context, userID int) error
	Export(ctx context.Context, userID int) (*domain.ExportData, error)
	Import(ctx context.Context, userID int, raw []byte) (*ImportSummary, error)
}

// ImportSummary resume o que foi alterado por uma importação
type ImportSummary struct {
	HistoryImported int  `json:"historyImported"`
	HistoryReplaced bool `json:"historyReplaced"`
	DraftUpdated    bool `json:"draftUpdated"`
}

type Service struct {
	historyRepo repository.HistoryRepository
	calculator  calculating.Calculator
	drafts      drafting.Workspace
	maxEntries  int
	now         func() time.Time
}

// NewService cria o serviço de histórico. maxEntries <= 0 mantém todas as comparações.
func NewService(
	historyRepo repository.HistoryRepository,
	calculator calculating.Calculator,
	drafts drafting.Workspace,
	maxEntries int,
) Historian {
	return &Service{
		historyRepo: historyRepo,
		calculator:  calculator,
		drafts:      drafts,
		maxEntries:  maxEntries,
		now:         time.Now,
	}
}

// DefaultName é o nome dado a uma comparação salva sem nome
func DefaultName(date time.Time) string {
	return "Comparação " + utils.FormatDateTime(date)
}

// ExportFileName é o nome do arquivo JSON de exportação
func ExportFileName(date time.Time) string {
	return fmt.Sprintf("cet-calculator-data-%s.json", utils.FileDate(date))
}

func (s *Service) Record(
	ctx context.Context,
	userID int,
	name string,
	current, offered domain.FeeRates,
	volumes domain.TransactionVolumes,
) (*domain.ComparisonHistory, error) {
	req := domain.ComparisonRequest{CurrentRates: current, NewRates: offered, Volumes: volumes}
	if err := req.Validate(); err != nil {
		return nil, NewHistoryError(ErrInvalidComparison, apiErrors.ErrInvalidFormat, err.Error())
	}

	now := s.now()
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName(now)
	}

	entry := &domain.ComparisonHistory{
		ID:           utils.NewUUID(),
		UserID:       userID,
		Name:         name,
		Date:         now,
		CurrentRates: current,
		NewRates:     offered,
		Volumes:      volumes,
		Result:       *s.calculator.Compare(current, offered, volumes),
	}

	if err := s.historyRepo.Save(ctx, entry); err != nil {
		return nil, NewHistoryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if s.maxEntries > 0 {
		removed, err := s.historyRepo.TrimToLimit(ctx, userID, s.maxEntries)
		if err != nil {
			logrus.Warnf("Erro ao aplicar limite de %d comparações para o usuário %d: %v", s.maxEntries, userID, err)
		} else if removed > 0 {
			logrus.Debugf("%d comparações antigas removidas do histórico do usuário %d", removed, userID)
		}
	}

	return entry, nil
}

// List retorna o histórico do mais recente para o mais antigo
func (s *Service) List(ctx context.Context, userID int) ([]*domain.ComparisonHistory, error) {
	entries, err := s.historyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewHistoryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if entries == nil {
		entries = []*domain.ComparisonHistory{}
	}

	return entries, nil
}

func (s *Service) Get(ctx context.Context, userID int, id string) (*domain.ComparisonHistory, error) {
	entry, err := s.historyRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, NewHistoryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if entry == nil {
		return nil, NewHistoryErrorWithID(ErrComparisonNotFound, apiErrors.ErrComparisonNotFound, id, "")
	}

	return entry, nil
}

func (s *Service) Delete(ctx context.Context, userID int, id string) error {
	deleted, err := s.historyRepo.Delete(ctx, userID, id)
	if err != nil {
		return NewHistoryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if !deleted {
		return NewHistoryErrorWithID(ErrComparisonNotFound, apiErrors.ErrComparisonNotFound, id, "")
	}

	return nil
}

func (s *Service) Clear(ctx context.Context, userID int) error {
	if err := s.historyRepo.DeleteAllByUser(ctx, userID); err != nil {
		return NewHistoryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

// Export monta o documento com o histórico e as tabelas do rascunho atual
func (s *Service) Export(ctx context.Context, userID int) (*domain.ExportData, error) {
	history, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft, err := s.drafts.GetDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, entry := range history {
		entry.UserID = 0
	}

	return &domain.ExportData{
		History:      history,
		CurrentRates: &draft.CurrentRates,
		NewRates:     &draft.NewRates,
		Volumes:      &draft.Volumes,
	}, nil
}

// Import aplica um documento exportado. O histórico presente substitui o atual e
// os resultados são recalculados a partir das tabelas gravadas.
func (s *Service) Import(ctx context.Context, userID int, raw []byte) (*ImportSummary, error) {
	var data domain.ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, NewHistoryError(ErrInvalidImport, apiErrors.ErrInvalidImport, err.Error())
	}

	// o rascunho é montado e validado antes de tocar no histórico
	var draft *domain.Draft
	if data.CurrentRates != nil || data.NewRates != nil || data.Volumes != nil {
		current, err := s.drafts.GetDraft(ctx, userID)
		if err != nil {
			return nil, err
		}

		if data.CurrentRates != nil {
			current.CurrentRates = *data.CurrentRates
		}
		if data.NewRates != nil {
			current.NewRates = *data.NewRates
		}
		if data.Volumes != nil {
			current.Volumes = *data.Volumes
		}

		if err := current.Validate(); err != nil {
			return nil, NewHistoryError(ErrInvalidImport, apiErrors.ErrInvalidImport, fmt.Sprintf("rascunho: %v", err))
		}
		draft = current
	}

	summary := &ImportSummary{}

	if data.History != nil {
		entries, err := s.prepareImport(userID, data.History)
		if err != nil {
			return nil, err
		}

		if err := s.historyRepo.ReplaceAll(ctx, userID, entries); err != nil {
			return nil, NewHistoryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		summary.HistoryImported = len(entries)
		summary.HistoryReplaced = true
	}

	if draft != nil {
		if _, err := s.drafts.SaveDraft(ctx, userID, draft); err != nil {
			return nil, NewHistoryError(ErrInvalidImport, apiErrors.ErrInvalidImport, err.Error())
		}

		summary.DraftUpdated = true
	}

	return summary, nil
}

func (s *Service) prepareImport(userID int, history []*domain.ComparisonHistory) ([]*domain.ComparisonHistory, error) {
	entries := make([]*domain.ComparisonHistory, 0, len(history))
	seen := make(map[string]bool, len(history))
	now := s.now()

	for i, entry := range history {
		if entry == nil {
			continue
		}

		req := domain.ComparisonRequest{CurrentRates: entry.CurrentRates, NewRates: entry.NewRates, Volumes: entry.Volumes}
		if err := req.Validate(); err != nil {
			return nil, NewHistoryError(ErrInvalidImport, apiErrors.ErrInvalidImport, fmt.Sprintf("comparação %d: %v", i+1, err))
		}

		if entry.ID == "" || seen[entry.ID] {
			entry.ID = utils.NewUUID()
		}
		seen[entry.ID] = true

		if entry.Date.IsZero() {
			entry.Date = now
		}
		if strings.TrimSpace(entry.Name) == "" {
			entry.Name = DefaultName(entry.Date)
		}

		entry.UserID = userID
		entry.Result = *s.calculator.Compare(entry.CurrentRates, entry.NewRates, entry.Volumes)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if s.maxEntries > 0 && len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}

	return entries, nil
}

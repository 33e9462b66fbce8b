package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/cet-calculator-api/infrastructure/cache"
	"github.com/vfg2006/cet-calculator-api/infrastructure/repository"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
)

const (
	minDecimalPlaces = 2
	maxDecimalPlaces = 4
)

type Manager interface {
	Get(ctx context.Context, userID int) (*domain.Settings, error)
	Update(ctx context.Context, userID int, req domain.UpdateSettingsRequest) (*domain.Settings, error)
	LastBackup(ctx context.Context, userID int) (*domain.BackupStatus, error)
}

type Service struct {
	settingsRepo repository.SettingsRepository
	backupRepo   repository.BackupRepository
	cache        cache.Cache
	ttl          time.Duration
}

func NewService(
	settingsRepo repository.SettingsRepository,
	backupRepo repository.BackupRepository,
	c cache.Cache,
	ttl time.Duration,
) Manager {
	return &Service{
		settingsRepo: settingsRepo,
		backupRepo:   backupRepo,
		cache:        c,
		ttl:          ttl,
	}
}

// Get retorna as preferências do usuário ou os valores padrão quando ele nunca salvou nenhuma
func (s *Service) Get(ctx context.Context, userID int) (*domain.Settings, error) {
	var cached domain.Settings
	found, err := s.cache.Get(ctx, cache.SettingsKey(userID), &cached)
	if err != nil {
		logrus.Warnf("Erro ao ler configurações do cache para o usuário %d: %v", userID, err)
	}
	if found {
		return &cached, nil
	}

	settings, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, NewSettingsError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar configurações")
	}

	if settings == nil {
		settings = domain.DefaultSettings()
	}

	s.store(ctx, userID, settings)
	return settings, nil
}

func (s *Service) Update(ctx context.Context, userID int, req domain.UpdateSettingsRequest) (*domain.Settings, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Currency != nil {
		updated.Currency = *req.Currency
	}
	if req.DecimalPlaces != nil {
		updated.DecimalPlaces = *req.DecimalPlaces
	}
	if req.AutoSave != nil {
		updated.AutoSave = *req.AutoSave
	}
	if req.BackupFrequency != nil {
		updated.BackupFrequency = *req.BackupFrequency
	}
	if req.Theme != nil {
		updated.Theme = *req.Theme
	}

	if err := Validate(&updated); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Upsert(ctx, userID, &updated); err != nil {
		return nil, NewSettingsError(err, apiErrors.ErrDatabaseOperation, "Erro ao salvar configurações")
	}

	s.store(ctx, userID, &updated)
	return &updated, nil
}

// LastBackup informa quando foi feito o último backup do histórico do usuário
func (s *Service) LastBackup(ctx context.Context, userID int) (*domain.BackupStatus, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &domain.BackupStatus{BackupFrequency: settings.BackupFrequency}

	backup, err := s.backupRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		return nil, NewSettingsError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar último backup")
	}

	if backup != nil {
		createdAt := backup.CreatedAt
		status.LastBackupAt = &createdAt
		status.Entries = backup.Entries
	}

	return status, nil
}

func (s *Service) store(ctx context.Context, userID int, settings *domain.Settings) {
	if err := s.cache.Set(ctx, cache.SettingsKey(userID), settings, s.ttl); err != nil {
		logrus.Warnf("Erro ao gravar configurações no cache para o usuário %d: %v", userID, err)
	}
}

// Validate verifica moeda, casas decimais, frequência de backup e tema
func Validate(settings *domain.Settings) error {
	if _, ok := domain.CurrencySymbols[settings.Currency]; !ok {
		return NewSettingsError(ErrInvalidSettings, apiErrors.ErrInvalidSettings, fmt.Sprintf("moeda não suportada: %s", settings.Currency))
	}

	if settings.DecimalPlaces < minDecimalPlaces || settings.DecimalPlaces > maxDecimalPlaces {
		return NewSettingsError(ErrInvalidSettings, apiErrors.ErrInvalidSettings, fmt.Sprintf("casas decimais devem estar entre %d e %d", minDecimalPlaces, maxDecimalPlaces))
	}

	if !settings.BackupFrequency.Valid() {
		return NewSettingsError(ErrInvalidSettings, apiErrors.ErrInvalidSettings, fmt.Sprintf("frequência de backup inválida: %s", settings.BackupFrequency))
	}

	if settings.Theme != domain.ThemeLight && settings.Theme != domain.ThemeDark {
		return NewSettingsError(ErrInvalidSettings, apiErrors.ErrInvalidSettings, fmt.Sprintf("tema inválido: %s", settings.Theme))
	}

	return nil
}

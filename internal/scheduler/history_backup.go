package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/cet-calculator-api/infrastructure/repository"
	"github.com/vfg2006/cet-calculator-api/internal/config"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/settings"
	"github.com/vfg2006/cet-calculator-api/pkg/utils"
)

const HistoryBackupJob = "history-backup"

// Job é um agendamento que pode ser disparado manualmente pelas rotas de cron
type Job interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// HistoryBackuper é usado pelas rotas de configuração para o backup manual
type HistoryBackuper interface {
	Job
	BackupUser(ctx context.Context, userID int) (*domain.HistoryBackup, error)
}

// HistoryBackupConfig representa a configuração do agendador de backup do histórico
type HistoryBackupConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	Enabled           bool
}

// BackupRunSummary resume uma execução do backup
type BackupRunSummary struct {
	Users     int `json:"users"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// HistoryBackupService gera cópias periódicas do histórico de cada usuário
type HistoryBackupService struct {
	scheduler  *gocron.Scheduler
	config     HistoryBackupConfig
	userRepo   repository.UserRepository
	backupRepo repository.BackupRepository
	historian  comparing.Historian
	settings   settings.Manager
	now        func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         BackupRunSummary
}

func NewHistoryBackupService(
	userRepo repository.UserRepository,
	backupRepo repository.BackupRepository,
	historian comparing.Historian,
	settingsManager settings.Manager,
	appConfig *config.Config,
) *HistoryBackupService {
	backupConfig := HistoryBackupConfig{
		CronSchedule:      appConfig.HistoryBackup.CronSchedule,
		MaxConcurrentJobs: appConfig.HistoryBackup.MaxConcurrentJobs,
		Enabled:           appConfig.HistoryBackup.Enabled,
	}
	if backupConfig.MaxConcurrentJobs <= 0 {
		backupConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       backupConfig.CronSchedule,
		"max_concurrent_jobs": backupConfig.MaxConcurrentJobs,
		"enabled":             backupConfig.Enabled,
	}).Info("Configuração do agendador de backup do histórico carregada")

	return &HistoryBackupService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     backupConfig,
		userRepo:   userRepo,
		backupRepo: backupRepo,
		historian:  historian,
		settings:   settingsManager,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *HistoryBackupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Backup automático do histórico desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backup do histórico")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunBackups(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup do histórico: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backup do histórico")
		s.scheduler.Stop()
	}()

	return nil
}

// RunBackups faz o backup dos usuários cuja frequência vence hoje. Execuções sobrepostas são ignoradas.
func (s *HistoryBackupService) RunBackups(ctx context.Context) (*BackupRunSummary, bool) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backup do histórico já em andamento, ignorando")
		return nil, false
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	summary := s.backupDueUsers(ctx, startTime)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSummary = summary
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"users":     summary.Users,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"skipped":   summary.Skipped,
	}).Info("Backup do histórico concluído")

	return &summary, true
}

func (s *HistoryBackupService) backupDueUsers(ctx context.Context, runDate time.Time) BackupRunSummary {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para backup do histórico")
		return BackupRunSummary{}
	}

	summary := BackupRunSummary{Users: len(users)}
	var succeeded, failed, skipped int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, user := range users {
		userID := user.ID
		g.Go(func() error {
			st, err := s.settings.Get(gctx, userID)
			if err != nil {
				logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar preferências para backup")
				atomic.AddInt64(&failed, 1)
				return nil
			}

			if !st.BackupFrequency.DueOn(runDate) {
				atomic.AddInt64(&skipped, 1)
				return nil
			}

			if _, err := s.BackupUser(gctx, userID); err != nil {
				atomic.AddInt64(&failed, 1)
				return nil
			}

			atomic.AddInt64(&succeeded, 1)
			return nil
		})
	}

	// falhas individuais não interrompem os demais usuários
	_ = g.Wait()

	summary.Succeeded = int(succeeded)
	summary.Failed = int(failed)
	summary.Skipped = int(skipped)
	return summary
}

// BackupUser grava o documento de exportação atual do usuário como um novo backup
func (s *HistoryBackupService) BackupUser(ctx context.Context, userID int) (*domain.HistoryBackup, error) {
	logger := logrus.WithField("user_id", userID)

	export, err := s.historian.Export(ctx, userID)
	if err != nil {
		logger.WithError(err).Error("Erro ao exportar histórico para backup")
		return nil, err
	}

	payload, err := utils.PrettyJSON(export)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar backup: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do backup: %w", err)
	}

	backup := &domain.HistoryBackup{
		ID:        id,
		UserID:    userID,
		Entries:   len(export.History),
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}

	if err := s.backupRepo.Save(ctx, backup); err != nil {
		logger.WithError(err).Error("Erro ao salvar backup do histórico")
		return nil, err
	}

	logger.WithField("entries", backup.Entries).Info("Backup do histórico salvo")
	return backup, nil
}

// TriggerManualSync dispara o backup em segundo plano. Retorna false quando já existe uma execução em andamento.
func (s *HistoryBackupService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Backup do histórico já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando backup manual do histórico")
	go s.RunBackups(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *HistoryBackupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"max_concurrent":         s.config.MaxConcurrentJobs,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
	}
}

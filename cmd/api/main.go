package main

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/cet-calculator-api/infrastructure/cache"
	"github.com/vfg2006/cet-calculator-api/infrastructure/database"
	"github.com/vfg2006/cet-calculator-api/infrastructure/mailer"
	"github.com/vfg2006/cet-calculator-api/infrastructure/migration"
	"github.com/vfg2006/cet-calculator-api/infrastructure/repository"
	"github.com/vfg2006/cet-calculator-api/internal/api"
	"github.com/vfg2006/cet-calculator-api/internal/config"
	"github.com/vfg2006/cet-calculator-api/internal/scheduler"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/drafting"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/reporting"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/settings"
	"github.com/vfg2006/cet-calculator-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := connect(ctx, cfg.Database)
	defer conn.Close()

	if err := migration.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	store, err := cache.NewCache(ctx, cfg.Cache)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar cache")
	}

	userRepo := repository.NewUserRepository(conn)
	historyRepo := repository.NewHistoryRepository(conn)
	settingsRepo := repository.NewSettingsRepository(conn)
	backupRepo := repository.NewBackupRepository(conn)

	calculator := calculating.NewEngine()
	settingsManager := settings.NewService(settingsRepo, backupRepo, store, cfg.Cache.DefaultTTL)
	drafts := drafting.NewService(store, calculator, settingsManager, cfg.Cache.DraftTTL)
	historian := comparing.NewService(historyRepo, calculator, drafts, cfg.History.MaxEntries)
	reporter := reporting.NewService(historian, settingsManager, calculator, mailer.NewMailer(cfg.Mail))
	authenticator := authenticating.NewService(userRepo, cfg)

	historyBackupService := scheduler.NewHistoryBackupService(userRepo, backupRepo, historian, settingsManager, cfg)
	if err := historyBackupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup do histórico")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Calculator:    calculator,
		Drafts:        drafts,
		Historian:     historian,
		Settings:      settingsManager,
		Reporter:      reporter,
		HistoryBackup: historyBackupService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// connect abre a conexão com o banco, tentando novamente com backoff exponencial enquanto ele sobe
func connect(ctx context.Context, dbConfig config.Database) *database.Connection {
	retries := dbConfig.ConnectRetries
	if retries == 0 {
		retries = 1
	}

	conn, err := backoff.Retry(ctx, func() (*database.Connection, error) {
		conn, err := database.NewConnection(ctx, dbConfig)
		if err != nil {
			logrus.WithError(err).Warn("Banco de dados indisponível, tentando novamente")
			return nil, err
		}
		if err := conn.Ping(ctx); err != nil {
			conn.Close()
			logrus.WithError(err).Warn("Banco de dados não respondeu, tentando novamente")
			return nil, err
		}
		return conn, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(retries),
		backoff.WithMaxElapsedTime(time.Minute),
	)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao conectar ao banco de dados (%s)", dbConfig.Driver)
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}

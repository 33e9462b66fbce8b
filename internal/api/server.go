package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/cet-calculator-api/internal/api/handler"
	"github.com/vfg2006/cet-calculator-api/internal/api/handler/router"
	"github.com/vfg2006/cet-calculator-api/internal/config"
	"github.com/vfg2006/cet-calculator-api/internal/scheduler"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/drafting"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/reporting"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/settings"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Calculator    calculating.Calculator
	Drafts        drafting.Workspace
	Historian     comparing.Historian
	Settings      settings.Manager
	Reporter      reporting.Reporter
	HistoryBackup scheduler.HistoryBackuper
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e os middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	oauth := handler.GoogleOAuth{
		State:           cfg.Google.OAuthState,
		FrontendBaseURL: cfg.Google.FrontendBaseURL,
	}
	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.Server.TrustedProxies...)
	cronServices := handler.CronJobServices{
		scheduler.HistoryBackupJob: services.HistoryBackup,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator, oauth)...),
		router.WithRoutes(handler.Comparisons(services.Calculator, services.Reporter, limiter)...),
		router.WithRoutes(handler.Drafts(services.Drafts)...),
		router.WithRoutes(handler.History(services.Historian, services.Reporter)...),
		router.WithRoutes(handler.Data(services.Historian)...),
		router.WithRoutes(handler.Settings(services.Settings, services.HistoryBackup)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

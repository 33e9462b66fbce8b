package handler

import (
	"net/http"

	"github.com/vfg2006/cet-calculator-api/internal/api/handler/router"
	"github.com/vfg2006/cet-calculator-api/internal/scheduler"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/drafting"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/reporting"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/settings"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
)

type mw = router.Middleware

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, oauth GoogleOAuth) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/auth/google/login",
			Method:  http.MethodGet,
			Handler: GoogleLogin(service, oauth),
		},
		{
			Path:    "/v1/auth/google/callback",
			Method:  http.MethodGet,
			Handler: GoogleCallback(service, oauth),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
	}
}

func Comparisons(calculator calculating.Calculator, reporter reporting.Reporter, limiter *middleware.IPRateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/comparisons/calculate",
			Method:      http.MethodPost,
			Handler:     Calculate(calculator),
			Middlewares: []mw{middleware.RateLimit(limiter)},
		},
		{
			Path:        "/v1/comparisons/export/:format",
			Method:      http.MethodPost,
			Handler:     ExportComparison(reporter),
			Middlewares: []mw{middleware.RateLimit(limiter)},
		},
	}
}

func Drafts(service drafting.Workspace) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/draft",
			Method:      http.MethodGet,
			Handler:     GetDraft(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/draft",
			Method:      http.MethodPut,
			Handler:     SaveDraft(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/draft",
			Method:      http.MethodDelete,
			Handler:     ResetDraft(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/draft/preview",
			Method:      http.MethodPost,
			Handler:     PreviewDraft(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
	}
}

func History(service comparing.Historian, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/history",
			Method:      http.MethodGet,
			Handler:     ListHistory(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/history",
			Method:      http.MethodPost,
			Handler:     RecordHistory(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/history",
			Method:      http.MethodDelete,
			Handler:     ClearHistory(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/history/:id",
			Method:      http.MethodGet,
			Handler:     GetHistory(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/history/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteHistory(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/history/:id/export/:format",
			Method:      http.MethodGet,
			Handler:     ExportHistoryEntry(reporter),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/history/:id/share",
			Method:      http.MethodPost,
			Handler:     ShareHistory(reporter),
			Middlewares: []mw{middleware.AllRoles()},
		},
	}
}

func Data(service comparing.Historian) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/data/export",
			Method:      http.MethodGet,
			Handler:     ExportData(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/data/import",
			Method:      http.MethodPost,
			Handler:     ImportData(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
	}
}

func Settings(service settings.Manager, backuper scheduler.HistoryBackuper) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPut,
			Handler:     UpdateSettings(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/backup",
			Method:      http.MethodGet,
			Handler:     GetBackupStatus(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/backup",
			Method:      http.MethodPost,
			Handler:     RunBackup(backuper),
			Middlewares: []mw{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []mw{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     CronStatus(services),
			Middlewares: []mw{middleware.AdminOnly()},
		},
	}
}

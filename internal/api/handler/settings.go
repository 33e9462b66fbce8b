package handler

import (
	"net/http"

	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/scheduler"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/settings"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
)

func GetSettings(service settings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := service.Get(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar configurações")
			return
		}

		writeJSON(w, http.StatusOK, st)
	}
}

func UpdateSettings(service settings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateSettingsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		st, err := service.Update(r.Context(), middleware.UserIDFromContext(r.Context()), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar configurações")
			return
		}

		writeJSON(w, http.StatusOK, st)
	}
}

func GetBackupStatus(service settings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := service.LastBackup(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar backup")
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

// RunBackup faz o backup manual do histórico de quem chamou
func RunBackup(backuper scheduler.HistoryBackuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())

		backup, err := backuper.BackupUser(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao realizar backup")
			return
		}

		writeJSON(w, http.StatusCreated, domain.BackupStatus{
			LastBackupAt: &backup.CreatedAt,
			Entries:      backup.Entries,
		})
	}
}

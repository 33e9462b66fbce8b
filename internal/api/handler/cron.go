package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/cet-calculator-api/internal/scheduler"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/log"
)

// CronJobServices são os agendamentos disponíveis nas rotas administrativas, por tipo
type CronJobServices map[string]scheduler.Job

type CronRunResponse struct {
	Message string   `json:"message"`
	Started []string `json:"started"`
	Skipped []string `json:"skipped,omitempty"`
}

// RunCronJob dispara um agendamento pelo tipo, ou todos com "all"
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		var names []string
		if jobType == "all" {
			for name := range services {
				names = append(names, name)
			}
		} else if _, ok := services[jobType]; ok {
			names = []string{jobType}
		} else {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido", map[string]any{"type": jobType})
			return
		}

		resp := CronRunResponse{Message: "Execução manual solicitada", Started: []string{}}
		for _, name := range names {
			if services[name].TriggerManualSync() {
				resp.Started = append(resp.Started, name)
			} else {
				resp.Skipped = append(resp.Skipped, name)
			}
		}

		log.ForContext(r.Context()).WithField("job", jobType).Info("Execução manual de job solicitada")
		writeJSON(w, http.StatusAccepted, resp)
	}
}

func CronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}

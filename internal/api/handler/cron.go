package handler

import (
	"net/http"

	"github.com/vfg2006/orbit-api/internal/scheduler"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
)

const CronJobTypeAll = "all"

// CronJob é implementado pelos serviços de internal/scheduler
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	InvoiceOverdueSyncService CronJob
	HealthSnapshotSyncService CronJob
	TokenCleanupSyncService   CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.InvoiceOverdueSyncService != nil {
		jobs[scheduler.JobInvoiceOverdue] = s.InvoiceOverdueSyncService
	}
	if s.HealthSnapshotSyncService != nil {
		jobs[scheduler.JobHealthSnapshot] = s.HealthSnapshotSyncService
	}
	if s.TokenCleanupSyncService != nil {
		jobs[scheduler.JobTokenCleanup] = s.TokenCleanupSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")
		jobs := services.jobs()

		var selected map[string]CronJob
		if cronType == CronJobTypeAll {
			selected = jobs
		} else if job, ok := jobs[cronType]; ok {
			selected = map[string]CronJob{cronType: job}
		} else {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: invoice-overdue, health-snapshot, token-cleanup, all", nil)
			return
		}

		started := map[string]bool{}
		for name, job := range selected {
			started[name] = job.TriggerManualSync()
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("Execução manual de cron job solicitada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

// InvoiceOverdueSyncConfig representa a configuração do agendador de faturas vencidas
type InvoiceOverdueSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// InvoiceOverdueSyncService marca diariamente como overdue as faturas enviadas e não pagas no vencimento
type InvoiceOverdueSyncService struct {
	scheduler           *gocron.Scheduler
	config              InvoiceOverdueSyncConfig
	invoices            OverdueMarker
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastMarkedCount     int64
}

func NewInvoiceOverdueSyncService(invoices OverdueMarker, appConfig *config.Config) *InvoiceOverdueSyncService {
	syncConfig := InvoiceOverdueSyncConfig{
		CronSchedule: appConfig.InvoiceOverdueSync.CronSchedule,
		SyncEnabled:  appConfig.InvoiceOverdueSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de faturas vencidas carregada")

	return &InvoiceOverdueSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		invoices:  invoices,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *InvoiceOverdueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de faturas vencidas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de faturas vencidas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncOverdueInvoices(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de faturas vencidas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de faturas vencidas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncOverdueInvoices usa o início do dia corrente (UTC): vence quem tem due_date anterior a hoje
func (s *InvoiceOverdueSyncService) syncOverdueInvoices(parent context.Context) {
	ctx, logger := jobLogger(parent, JobInvoiceOverdue)

	if !s.begin() {
		logger.Info("Sincronização de faturas vencidas já em andamento, ignorando")
		return
	}

	startTime := s.now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer s.finish()

	asOf := utils.StartOfDay(startTime)
	count, err := s.invoices.MarkOverdue(ctx, asOf)
	if err != nil {
		logger.WithError(err).Error("Erro ao marcar faturas vencidas")
		return
	}

	s.syncMutex.Lock()
	s.lastMarkedCount = count
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logger.WithFields(log.Fields{
		"as_of":    asOf.Format(time.DateOnly),
		"marked":   count,
		"duration": time.Since(startTime).String(),
	}).Info("Sincronização de faturas vencidas concluída")
}

func (s *InvoiceOverdueSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *InvoiceOverdueSyncService) finish() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente a sincronização. Retorna false se já houver uma em andamento.
func (s *InvoiceOverdueSyncService) TriggerManualSync() bool {
	if s.IsRunning() {
		logrus.Info("Sincronização de faturas vencidas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de faturas vencidas")
	go s.syncOverdueInvoices(context.Background())
	return true
}

func (s *InvoiceOverdueSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *InvoiceOverdueSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_marked_count":      s.lastMarkedCount,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

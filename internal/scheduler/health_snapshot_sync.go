package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

// HealthSnapshotSyncConfig representa a configuração do agendador de snapshots de health score
type HealthSnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// HealthSnapshotSyncService grava, no início de cada mês, o health score do mês anterior de todos os usuários ativos
type HealthSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              HealthSnapshotSyncConfig
	users               ActiveUserLister
	snapshotter         PeriodSnapshotter
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastPeriod          string
	lastProcessed       int64
	lastFailed          int64
}

func NewHealthSnapshotSyncService(users ActiveUserLister, snapshotter PeriodSnapshotter, appConfig *config.Config) *HealthSnapshotSyncService {
	syncConfig := HealthSnapshotSyncConfig{
		CronSchedule:      appConfig.HealthSnapshotSync.CronSchedule,
		MaxConcurrentJobs: appConfig.HealthSnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.HealthSnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de health score carregada")

	return &HealthSnapshotSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      syncConfig,
		users:       users,
		snapshotter: snapshotter,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *HealthSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshots de health score desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de health score")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncHealthSnapshots(ctx, s.previousPeriod())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de health score: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de health score")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *HealthSnapshotSyncService) previousPeriod() utils.Period {
	return utils.PeriodOf(s.now()).Previous()
}

// syncHealthSnapshots calcula o período para cada usuário ativo com no máximo MaxConcurrentJobs em paralelo.
// Falha de um usuário não interrompe os demais.
func (s *HealthSnapshotSyncService) syncHealthSnapshots(parent context.Context, period utils.Period) {
	ctx, logger := jobLogger(parent, JobHealthSnapshot)
	logger = logger.WithField("period", period.String())

	if !s.begin() {
		logger.Info("Snapshots de health score já em andamento, ignorando")
		return
	}
	defer s.finish()

	startTime := s.now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.lastPeriod = period.String()
	s.syncMutex.Unlock()

	userIDs, err := s.users.ListActiveUserIDs(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar usuários ativos para snapshot de health score")
		return
	}

	if len(userIDs) == 0 {
		logger.Info("Nenhum usuário ativo para snapshot de health score")
	}

	var (
		processed atomic.Int64
		failed    atomic.Int64
		wg        sync.WaitGroup
	)

	semaphore := make(chan struct{}, max(s.config.MaxConcurrentJobs, 1))

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(userID int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			snapshot, err := s.snapshotter.SnapshotPeriod(ctx, userID, period)
			if err != nil {
				failed.Add(1)
				logger.WithError(err).WithField("user_id", userID).Error("Erro ao gravar snapshot de health score")
				return
			}

			processed.Add(1)
			logger.WithFields(log.Fields{
				"user_id":      userID,
				"health_score": snapshot.HealthScore,
			}).Debug("Snapshot de health score gravado")
		}(userID)
	}

	wg.Wait()

	s.syncMutex.Lock()
	s.lastProcessed = processed.Load()
	s.lastFailed = failed.Load()
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logger.WithFields(log.Fields{
		"users":     len(userIDs),
		"processed": processed.Load(),
		"failed":    failed.Load(),
		"duration":  time.Since(startTime).String(),
	}).Info("Snapshots de health score concluídos")
}

func (s *HealthSnapshotSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *HealthSnapshotSyncService) finish() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// TriggerManualSync grava os snapshots do mês anterior. Retorna false se já houver uma execução em andamento.
func (s *HealthSnapshotSyncService) TriggerManualSync() bool {
	if s.IsRunning() {
		logrus.Info("Snapshots de health score já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando snapshots manuais de health score")
	go s.syncHealthSnapshots(context.Background(), s.previousPeriod())
	return true
}

func (s *HealthSnapshotSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *HealthSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_period":            s.lastPeriod,
		"last_processed":         s.lastProcessed,
		"last_failed":            s.lastFailed,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

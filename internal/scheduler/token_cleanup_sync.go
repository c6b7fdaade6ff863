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
)

// TokenCleanupSyncService remove os tokens de verificação e redefinição de senha já expirados
type TokenCleanupSyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	enabled             bool
	tokens              ExpiredTokenPurger
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncCompletedAt time.Time
	lastDeletedCount    int64
}

func NewTokenCleanupSyncService(tokens ExpiredTokenPurger, appConfig *config.Config) *TokenCleanupSyncService {
	return &TokenCleanupSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		cronSchedule: appConfig.TokenCleanupSync.CronSchedule,
		enabled:      appConfig.TokenCleanupSync.Enabled,
		tokens:       tokens,
		now:          time.Now,
	}
}

func (s *TokenCleanupSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Limpeza de tokens expirados desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.cleanupTokens(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de tokens: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TokenCleanupSyncService) cleanupTokens(parent context.Context) {
	ctx, logger := jobLogger(parent, JobTokenCleanup)

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logger.Info("Limpeza de tokens já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	count, err := s.tokens.DeleteExpired(ctx, s.now())
	if err != nil {
		logger.WithError(err).Error("Erro ao remover tokens expirados")
		return
	}

	s.syncMutex.Lock()
	s.lastDeletedCount = count
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logger.WithFields(log.Fields{"deleted": count}).Info("Tokens expirados removidos")
}

func (s *TokenCleanupSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()
	if running {
		return false
	}

	go s.cleanupTokens(context.Background())
	return true
}

func (s *TokenCleanupSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_cron":              s.cronSchedule,
		"sync_running":           s.syncRunning,
		"last_deleted_count":     s.lastDeletedCount,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

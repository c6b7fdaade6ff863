package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/scheduler/mocks"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

var fixedNow = time.Date(2026, time.February, 1, 5, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		InvoiceOverdueSync: config.InvoiceOverdueSync{CronSchedule: "0 2 * * *", Enabled: true},
		HealthSnapshotSync: config.HealthSnapshotSync{CronSchedule: "0 5 1 * *", MaxConcurrentJobs: 2, Enabled: true},
	}
}

func TestInvoiceOverdueSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	marker := mocks.NewMockOverdueMarker(ctrl)

	svc := NewInvoiceOverdueSyncService(marker, testConfig())
	svc.now = func() time.Time { return fixedNow }

	marker.EXPECT().
		MarkOverdue(gomock.Any(), time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)).
		Return(int64(3), nil)

	svc.syncOverdueInvoices(context.Background())

	status := svc.GetStatus()
	assert.Equal(t, int64(3), status["last_marked_count"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, fixedNow, status["last_sync_completed_at"])
}

func TestInvoiceOverdueSyncKeepsCountOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	marker := mocks.NewMockOverdueMarker(ctrl)

	svc := NewInvoiceOverdueSyncService(marker, testConfig())
	svc.now = func() time.Time { return fixedNow }
	svc.lastMarkedCount = 7

	marker.EXPECT().MarkOverdue(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

	svc.syncOverdueInvoices(context.Background())

	assert.Equal(t, int64(7), svc.GetStatus()["last_marked_count"])
	assert.False(t, svc.IsRunning())
}

func TestInvoiceOverdueSyncSkipsWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	marker := mocks.NewMockOverdueMarker(ctrl)

	svc := NewInvoiceOverdueSyncService(marker, testConfig())
	svc.syncRunning = true

	// nenhuma chamada ao MarkOverdue é esperada
	svc.syncOverdueInvoices(context.Background())
	assert.False(t, svc.TriggerManualSync())
}

func TestStartDisabledIsNoop(t *testing.T) {
	cfg := testConfig()
	cfg.InvoiceOverdueSync.Enabled = false
	cfg.HealthSnapshotSync.Enabled = false

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, NewInvoiceOverdueSyncService(nil, cfg).Start(ctx))
	require.NoError(t, NewHealthSnapshotSyncService(nil, nil, cfg).Start(ctx))
}

func TestStartRejectsInvalidCron(t *testing.T) {
	cfg := testConfig()
	cfg.InvoiceOverdueSync.CronSchedule = "não é cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := NewInvoiceOverdueSyncService(nil, cfg).Start(ctx)
	assert.Error(t, err)
}

func TestHealthSnapshotSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockActiveUserLister(ctrl)
	snapshotter := mocks.NewMockPeriodSnapshotter(ctrl)

	svc := NewHealthSnapshotSyncService(users, snapshotter, testConfig())
	svc.now = func() time.Time { return fixedNow }

	january := utils.Period{Year: 2026, Month: time.January}

	var (
		inFlight    atomic.Int32
		maxInFlight atomic.Int32
		mu          sync.Mutex
		seen        []int
	)

	users.EXPECT().ListActiveUserIDs(gomock.Any()).Return([]int{1, 2, 3, 4, 5}, nil)
	snapshotter.EXPECT().SnapshotPeriod(gomock.Any(), gomock.Any(), january).
		DoAndReturn(func(_ context.Context, userID int, _ utils.Period) (*domain.HealthSnapshot, error) {
			current := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				prev := maxInFlight.Load()
				if current <= prev || maxInFlight.CompareAndSwap(prev, current) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			seen = append(seen, userID)
			mu.Unlock()

			if userID == 3 {
				return nil, errors.New("dados corrompidos")
			}
			return &domain.HealthSnapshot{UserID: userID}, nil
		}).Times(5)

	svc.syncHealthSnapshots(context.Background(), svc.previousPeriod())

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, seen)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))

	status := svc.GetStatus()
	assert.Equal(t, "01-2026", status["last_period"])
	assert.Equal(t, int64(4), status["last_processed"])
	assert.Equal(t, int64(1), status["last_failed"])
	assert.False(t, svc.IsRunning())
}

func TestHealthSnapshotSyncUserListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockActiveUserLister(ctrl)
	snapshotter := mocks.NewMockPeriodSnapshotter(ctrl)

	svc := NewHealthSnapshotSyncService(users, snapshotter, testConfig())
	svc.now = func() time.Time { return fixedNow }

	users.EXPECT().ListActiveUserIDs(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	svc.syncHealthSnapshots(context.Background(), svc.previousPeriod())
	assert.False(t, svc.IsRunning())
}

func TestTokenCleanupSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	purger := mocks.NewMockExpiredTokenPurger(ctrl)

	cfg := testConfig()
	cfg.TokenCleanupSync = config.TokenCleanupSync{CronSchedule: "30 3 * * *", Enabled: true}

	svc := NewTokenCleanupSyncService(purger, cfg)
	svc.now = func() time.Time { return fixedNow }

	purger.EXPECT().DeleteExpired(gomock.Any(), fixedNow).Return(int64(4), nil)

	svc.cleanupTokens(context.Background())

	status := svc.GetStatus()
	assert.Equal(t, int64(4), status["last_deleted_count"])
	assert.Equal(t, false, status["sync_running"])
}

func TestTokenCleanupSyncError(t *testing.T) {
	ctrl := gomock.NewController(t)
	purger := mocks.NewMockExpiredTokenPurger(ctrl)

	svc := NewTokenCleanupSyncService(purger, testConfig())
	svc.now = func() time.Time { return fixedNow }

	purger.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

	svc.cleanupTokens(context.Background())

	status := svc.GetStatus()
	assert.Equal(t, int64(0), status["last_deleted_count"])
	assert.Equal(t, time.Time{}, status["last_sync_completed_at"])
}

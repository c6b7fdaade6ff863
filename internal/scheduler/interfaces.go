package scheduler

import (
	"context"
	"time"

	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

// OverdueMarker é implementado por invoicing.Service
type OverdueMarker interface {
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// PeriodSnapshotter é implementado por dashboarding.Service
type PeriodSnapshotter interface {
	SnapshotPeriod(ctx context.Context, userID int, period utils.Period) (*domain.HealthSnapshot, error)
}

// ActiveUserLister é implementado pelo repositório de usuários
type ActiveUserLister interface {
	ListActiveUserIDs(ctx context.Context) ([]int, error)
}

// ExpiredTokenPurger é implementado pelo repositório de tokens
type ExpiredTokenPurger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

package dashboarding

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orbit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/metrics"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

var (
	fixedNow = time.Date(2026, time.January, 21, 11, 0, 0, 0, time.UTC)
	january  = utils.Period{Year: 2026, Month: time.January}
)

type fixture struct {
	svc       *Service
	dashboard *mocks.MockDashboardRepository
	snapshots *mocks.MockHealthSnapshotRepository
	users     *mocks.MockUserRepository
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		dashboard: mocks.NewMockDashboardRepository(ctrl),
		snapshots: mocks.NewMockHealthSnapshotRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
	}
	f.svc = NewService(f.dashboard, f.snapshots, f.users)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

// expectJanuary prepara o mês de janeiro de 2026 usado pelo seed de demonstração
func (f fixture) expectJanuary(target *domain.PeriodTarget) {
	f.users.EXPECT().GetUserByID(gomock.Any(), 1).Return(&domain.User{
		ID: 1, DefaultCurrency: "USD", MonthlyCapacityHours: 160,
	}, nil)
	f.dashboard.EXPECT().GetPeriodTarget(gomock.Any(), 1, january).Return(target, nil)
	f.dashboard.EXPECT().SumCommittedHours(gomock.Any(), 1).Return(112.0, nil)
	f.dashboard.EXPECT().SumLoggedSeconds(gomock.Any(), 1, january.Start(), january.End()).Return(int64(315000), nil)
	f.dashboard.EXPECT().SumRevenue(gomock.Any(), 1, january.Start(), january.End()).
		Return(domain.RevenueSums{Earned: 8500, Pending: 2500}, nil)
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Resumo de janeiro", func(t *testing.T) {
		f := newFixture(t)
		f.expectJanuary(&domain.PeriodTarget{RevenueTarget: 12000, Currency: "USD"})

		summary, err := f.svc.GetSummary(ctx, 1, january)
		require.NoError(t, err)

		assert.Equal(t, domain.PeriodRange{Start: "2026-01-01", End: "2026-01-31", Label: "January 2026"}, summary.Period)

		assert.Equal(t, 160.0, summary.Bandwidth.HoursAvailable)
		assert.Equal(t, 112.0, summary.Bandwidth.HoursCommitted)
		assert.Equal(t, 87.5, summary.Bandwidth.HoursLogged)
		assert.Equal(t, 78.13, summary.Bandwidth.UtilizationPercentage)
		assert.Equal(t, 48.0, summary.Bandwidth.RemainingHours)
		assert.Equal(t, 78.13, summary.Bandwidth.BarWidth)

		assert.Equal(t, 12000.0, summary.Revenue.TargetAmount)
		assert.Equal(t, 70.83, summary.Revenue.RevenueProgressPercentage)
		assert.True(t, summary.Revenue.OnTrack)
		assert.Equal(t, 70.83, summary.Revenue.EarnedBarWidth)
		assert.Equal(t, 20.83, summary.Revenue.PendingBarWidth)
		assert.Equal(t, "USD", summary.Revenue.Currency)

		assert.Equal(t, 74, summary.HealthScore)
		assert.Equal(t, metrics.LabelGood, summary.HealthLabel)
	})

	t.Run("Horas disponíveis da meta substituem a capacidade", func(t *testing.T) {
		f := newFixture(t)
		hours := 120.0
		f.expectJanuary(&domain.PeriodTarget{RevenueTarget: 12000, HoursAvailable: &hours, Currency: "EUR"})

		summary, err := f.svc.GetSummary(ctx, 1, january)
		require.NoError(t, err)
		assert.Equal(t, 120.0, summary.Bandwidth.HoursAvailable)
		assert.Equal(t, 8.0, summary.Bandwidth.RemainingHours)
		assert.Equal(t, "EUR", summary.Revenue.Currency)
	})

	t.Run("Sem meta o progresso de receita é zero", func(t *testing.T) {
		f := newFixture(t)
		f.expectJanuary(nil)

		summary, err := f.svc.GetSummary(ctx, 1, january)
		require.NoError(t, err)
		assert.Equal(t, 0.0, summary.Revenue.RevenueProgressPercentage)
		assert.True(t, summary.Revenue.OnTrack)
		assert.Equal(t, 39, summary.HealthScore)
		assert.Equal(t, metrics.LabelCritical, summary.HealthLabel)
	})

	t.Run("Falha no banco", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil).AnyTimes()
		f.dashboard.EXPECT().GetPeriodTarget(gomock.Any(), 1, january).Return(nil, errors.New("conexão perdida")).AnyTimes()
		f.dashboard.EXPECT().SumCommittedHours(gomock.Any(), 1).Return(0.0, nil).AnyTimes()
		f.dashboard.EXPECT().SumLoggedSeconds(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
		f.dashboard.EXPECT().SumRevenue(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(domain.RevenueSums{}, nil).AnyTimes()

		_, err := f.svc.GetSummary(ctx, 1, january)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})

	t.Run("Dado corrompido vira erro interno", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(gomock.Any(), 1).Return(&domain.User{ID: 1, MonthlyCapacityHours: 160}, nil)
		f.dashboard.EXPECT().GetPeriodTarget(gomock.Any(), 1, january).Return(nil, nil)
		f.dashboard.EXPECT().SumCommittedHours(gomock.Any(), 1).Return(0.0, nil)
		f.dashboard.EXPECT().SumLoggedSeconds(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.dashboard.EXPECT().SumRevenue(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(domain.RevenueSums{Earned: -10}, nil)

		_, err := f.svc.GetSummary(ctx, 1, january)
		require.ErrorIs(t, err, ErrCorruptedMetricsInput)

		var dashErr *DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, apiErrors.ErrCorruptedMetricsInput, dashErr.Code)
		assert.Equal(t, "01-2026", dashErr.Period)
		assert.Equal(t, "revenueEarned", dashErr.Field)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(gomock.Any(), 9).Return(nil, nil)
		f.dashboard.EXPECT().GetPeriodTarget(gomock.Any(), 9, january).Return(nil, nil)
		f.dashboard.EXPECT().SumCommittedHours(gomock.Any(), 9).Return(0.0, nil)
		f.dashboard.EXPECT().SumLoggedSeconds(gomock.Any(), 9, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.dashboard.EXPECT().SumRevenue(gomock.Any(), 9, gomock.Any(), gomock.Any()).Return(domain.RevenueSums{}, nil)

		_, err := f.svc.GetSummary(ctx, 9, january)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestPreview(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("Período padrão é o mês corrente", func(t *testing.T) {
		summary, err := f.svc.Preview(ctx, &domain.DashboardPreviewRequest{
			PeriodInput: metrics.PeriodInput{
				HoursAvailable: 160, HoursCommitted: 100, HoursLogged: 150,
				RevenueTarget: 10000, RevenueEarned: 15000,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "January 2026", summary.Period.Label)
		assert.Equal(t, 150.0, summary.Bandwidth.UtilizationPercentage)
		assert.Equal(t, 100.0, summary.Bandwidth.BarWidth)
		assert.Equal(t, 100.0, summary.Revenue.EarnedBarWidth)
		assert.Equal(t, 0.0, summary.Revenue.PendingBarWidth)
		assert.Equal(t, 100, summary.HealthScore)
		assert.Equal(t, "USD", summary.Revenue.Currency)
	})

	t.Run("Entrada inválida identifica o campo", func(t *testing.T) {
		_, err := f.svc.Preview(ctx, &domain.DashboardPreviewRequest{
			PeriodInput: metrics.PeriodInput{HoursAvailable: 160, HoursLogged: math.Inf(1)},
		})
		require.ErrorIs(t, err, ErrInvalidMetricsInput)

		var dashErr *DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, apiErrors.ErrInvalidMetricsInput, dashErr.Code)
		assert.Equal(t, "hoursLogged", dashErr.Field)
		assert.Equal(t, "01-2026", dashErr.Period)
	})

	t.Run("Razão que estoura o float64 é rejeitada", func(t *testing.T) {
		_, err := f.svc.Preview(ctx, &domain.DashboardPreviewRequest{
			PeriodInput: metrics.PeriodInput{HoursAvailable: 160, HoursCommitted: 1e-300, HoursLogged: 1e300},
		})
		require.ErrorIs(t, err, ErrInvalidMetricsInput)

		var dashErr *DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, apiErrors.ErrInvalidMetricsInput, dashErr.Code)
		assert.Equal(t, "hoursLogged", dashErr.Field)
	})

	t.Run("Período mal formatado", func(t *testing.T) {
		_, err := f.svc.Preview(ctx, &domain.DashboardPreviewRequest{Period: "2026-01"})
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestRevenueChart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// semana de 19/01 é a corrente; quatro semanas começam em 29/12
	from := time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC)
	f.dashboard.EXPECT().RevenueByWeek(ctx, 1, from, to).Return([]domain.WeeklyRevenue{
		{WeekStart: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), Earned: 3000, Projected: 4500},
		{WeekStart: time.Date(2026, time.January, 19, 0, 0, 0, 0, time.UTC), Projected: 2500},
	}, nil)

	points, err := f.svc.RevenueChart(ctx, 1, 4)
	require.NoError(t, err)
	require.Len(t, points, 4)

	assert.Equal(t, domain.RevenueDataPoint{Date: "Dec 29", WeekStart: "2025-12-29"}, points[0])
	assert.Equal(t, domain.RevenueDataPoint{Date: "Jan 5", WeekStart: "2026-01-05", Earned: 3000, Projected: 4500}, points[1])
	assert.Equal(t, "Jan 12", points[2].Date)
	assert.Equal(t, 2500.0, points[3].Projected)
}

func TestRevenueChartDefaultsToTwelveWeeks(t *testing.T) {
	f := newFixture(t)
	f.dashboard.EXPECT().RevenueByWeek(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(nil, nil)

	points, err := f.svc.RevenueChart(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, points, DefaultChartWeeks)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.snapshots.EXPECT().ListByUser(ctx, 1, DefaultHistoryLimit).Return([]*domain.HealthSnapshot{{Period: "12-2025"}}, nil)

	history, err := f.svc.History(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTargets(t *testing.T) {
	ctx := context.Background()

	t.Run("Meta inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.dashboard.EXPECT().GetPeriodTarget(ctx, 1, january).Return(nil, nil)

		_, err := f.svc.GetTarget(ctx, 1, january)
		assert.ErrorIs(t, err, ErrTargetNotFound)
	})

	t.Run("Moeda padrão do usuário", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, DefaultCurrency: "BRL"}, nil)
		f.dashboard.EXPECT().UpsertPeriodTarget(ctx, gomock.Any(), january).
			DoAndReturn(func(_ context.Context, target *domain.PeriodTarget, p utils.Period) error {
				target.Period = p.String()
				return nil
			})

		target, err := f.svc.SetTarget(ctx, 1, january, &domain.UpsertPeriodTargetRequest{RevenueTarget: 12000})
		require.NoError(t, err)
		assert.Equal(t, "BRL", target.Currency)
		assert.Equal(t, "01-2026", target.Period)
	})

	t.Run("Meta negativa é rejeitada", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SetTarget(ctx, 1, january, &domain.UpsertPeriodTargetRequest{RevenueTarget: -1, Currency: "USD"})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestSnapshotPeriod(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectJanuary(&domain.PeriodTarget{RevenueTarget: 12000})
	f.snapshots.EXPECT().SaveOrUpdate(ctx, gomock.Any(), january).Return(nil)

	snapshot, err := f.svc.SnapshotPeriod(ctx, 1, january)
	require.NoError(t, err)
	assert.Equal(t, 74, snapshot.HealthScore)
	assert.Equal(t, metrics.LabelGood, snapshot.HealthLabel)
	assert.Equal(t, 1, snapshot.UserID)
}

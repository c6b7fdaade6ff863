package repository

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

const periodTargetsTable = "period_targets"

// DashboardRepository fornece os números brutos de um período para o cálculo das métricas
type DashboardRepository interface {
	GetPeriodTarget(ctx context.Context, userID int, period utils.Period) (*domain.PeriodTarget, error)
	UpsertPeriodTarget(ctx context.Context, target *domain.PeriodTarget, period utils.Period) error
	SumCommittedHours(ctx context.Context, userID int) (float64, error)
	SumLoggedSeconds(ctx context.Context, userID int, from, to time.Time) (int64, error)
	SumRevenue(ctx context.Context, userID int, from, to time.Time) (domain.RevenueSums, error)
	RevenueByWeek(ctx context.Context, userID int, from, to time.Time) ([]domain.WeeklyRevenue, error)
}

type dashboardRepository struct {
	conn *postgres.Connection
}

func NewDashboardRepository(conn *postgres.Connection) DashboardRepository {
	return &dashboardRepository{conn: conn}
}

// GetPeriodTarget retorna nil, nil quando não há meta cadastrada para o período
func (r *dashboardRepository) GetPeriodTarget(ctx context.Context, userID int, period utils.Period) (*domain.PeriodTarget, error) {
	query, args, err := psql.
		Select("user_id", "period", "revenue_target", "hours_available", "currency", "updated_at").
		From(periodTargetsTable).
		Where(squirrel.Eq{"user_id": userID, "period": period.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var t domain.PeriodTarget
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&t.UserID, &t.Period, &t.RevenueTarget, &t.HoursAvailable, &t.Currency, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar meta do período")
	}

	return &t, nil
}

func (r *dashboardRepository) UpsertPeriodTarget(ctx context.Context, t *domain.PeriodTarget, period utils.Period) error {
	t.Period = period.String()

	query, args, err := psql.
		Insert(periodTargetsTable).
		Columns("user_id", "period", "period_start", "revenue_target", "hours_available", "currency").
		Values(t.UserID, t.Period, period.Start(), t.RevenueTarget, t.HoursAvailable, t.Currency).
		Suffix(`ON CONFLICT (user_id, period) DO UPDATE SET
			revenue_target = EXCLUDED.revenue_target,
			hours_available = EXCLUDED.hours_available,
			currency = EXCLUDED.currency,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&t.UpdatedAt)
	return errors.Wrap(err, "erro ao salvar meta do período")
}

// SumCommittedHours soma o compromisso mensal dos projetos ativos
func (r *dashboardRepository) SumCommittedHours(ctx context.Context, userID int) (float64, error) {
	query, args, err := psql.
		Select("COALESCE(SUM(monthly_commitment_hours), 0)").
		From(projectsTable).
		Where(squirrel.Eq{"user_id": userID, "status": domain.ProjectStatusActive}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, errors.Wrap(err, "erro ao somar horas comprometidas")
	}

	return total, nil
}

func (r *dashboardRepository) SumLoggedSeconds(ctx context.Context, userID int, from, to time.Time) (int64, error) {
	return sumDuration(ctx, r.conn, userID, from, to)
}

// SumRevenue: realizado são faturas pagas com paid_at no intervalo;
// pendente são faturas enviadas ou vencidas com vencimento no intervalo.
func (r *dashboardRepository) SumRevenue(ctx context.Context, userID int, from, to time.Time) (domain.RevenueSums, error) {
	query, args, err := psql.
		Select().
		Column(squirrel.Expr("COALESCE(SUM(amount) FILTER (WHERE status = 'paid' AND paid_at >= ? AND paid_at < ?), 0)", from, to)).
		Column(squirrel.Expr("COALESCE(SUM(amount) FILTER (WHERE status IN ('sent', 'overdue') AND due_date >= ? AND due_date < ?), 0)",
			domain.NewDate(from), domain.NewDate(to))).
		From(invoicesTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.RevenueSums{}, err
	}

	var sums domain.RevenueSums
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&sums.Earned, &sums.Pending); err != nil {
		return domain.RevenueSums{}, errors.Wrap(err, "erro ao somar receita")
	}

	return sums, nil
}

// RevenueByWeek agrupa por semana ISO: realizado por paid_at, projetado por due_date (exceto rascunhos)
func (r *dashboardRepository) RevenueByWeek(ctx context.Context, userID int, from, to time.Time) ([]domain.WeeklyRevenue, error) {
	byWeek := map[time.Time]*domain.WeeklyRevenue{}

	earned, err := r.weeklySums(ctx, "paid_at", squirrel.Eq{"user_id": userID, "status": domain.InvoiceStatusPaid},
		squirrel.GtOrEq{"paid_at": from}, squirrel.Lt{"paid_at": to})
	if err != nil {
		return nil, err
	}
	for week, amount := range earned {
		byWeek[week] = &domain.WeeklyRevenue{WeekStart: week, Earned: amount}
	}

	projected, err := r.weeklySums(ctx, "due_date", squirrel.Eq{"user_id": userID},
		squirrel.NotEq{"status": domain.InvoiceStatusDraft},
		squirrel.GtOrEq{"due_date": domain.NewDate(from)}, squirrel.Lt{"due_date": domain.NewDate(to)})
	if err != nil {
		return nil, err
	}
	for week, amount := range projected {
		if wr, ok := byWeek[week]; ok {
			wr.Projected = amount
			continue
		}
		byWeek[week] = &domain.WeeklyRevenue{WeekStart: week, Projected: amount}
	}

	out := make([]domain.WeeklyRevenue, 0, len(byWeek))
	for _, wr := range byWeek {
		out = append(out, *wr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.Before(out[j].WeekStart) })

	return out, nil
}

func (r *dashboardRepository) weeklySums(ctx context.Context, column string, where ...squirrel.Sqlizer) (map[time.Time]float64, error) {
	builder := psql.
		Select("date_trunc('week', "+column+")::date AS week", "COALESCE(SUM(amount), 0)").
		From(invoicesTable).
		GroupBy("week")
	for _, w := range where {
		builder = builder.Where(w)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agrupar receita por semana")
	}
	defer rows.Close()

	sums := map[time.Time]float64{}
	for rows.Next() {
		var (
			week   time.Time
			amount float64
		)
		if err := rows.Scan(&week, &amount); err != nil {
			return nil, err
		}
		sums[utils.StartOfDay(week)] = amount
	}

	return sums, rows.Err()
}

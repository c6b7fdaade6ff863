package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

const healthSnapshotsTable = "health_snapshots"

var healthSnapshotColumns = []string{
	"id", "user_id", "period", "utilization_percentage", "remaining_hours", "revenue_progress_percentage",
	"on_track", "health_score", "health_label", "created_at", "updated_at",
}

type HealthSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.HealthSnapshot, period utils.Period) error
	ListByUser(ctx context.Context, userID int, limit int) ([]*domain.HealthSnapshot, error)
	GetByUserAndPeriod(ctx context.Context, userID int, period utils.Period) (*domain.HealthSnapshot, error)
}

type healthSnapshotRepository struct {
	conn *postgres.Connection
}

func NewHealthSnapshotRepository(conn *postgres.Connection) HealthSnapshotRepository {
	return &healthSnapshotRepository{conn: conn}
}

func (r *healthSnapshotRepository) SaveOrUpdate(ctx context.Context, s *domain.HealthSnapshot, period utils.Period) error {
	s.Period = period.String()

	query, args, err := psql.
		Insert(healthSnapshotsTable).
		Columns("user_id", "period", "period_start", "utilization_percentage", "remaining_hours",
			"revenue_progress_percentage", "on_track", "health_score", "health_label").
		Values(s.UserID, s.Period, period.Start(), s.UtilizationPercentage, s.RemainingHours,
			s.RevenueProgressPercentage, s.OnTrack, s.HealthScore, s.HealthLabel).
		Suffix(`ON CONFLICT (user_id, period) DO UPDATE SET
			utilization_percentage = EXCLUDED.utilization_percentage,
			remaining_hours = EXCLUDED.remaining_hours,
			revenue_progress_percentage = EXCLUDED.revenue_progress_percentage,
			on_track = EXCLUDED.on_track,
			health_score = EXCLUDED.health_score,
			health_label = EXCLUDED.health_label,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return errors.Wrapf(err, "erro ao salvar snapshot do usuário %d", s.UserID)
}

func (r *healthSnapshotRepository) ListByUser(ctx context.Context, userID int, limit int) ([]*domain.HealthSnapshot, error) {
	builder := psql.
		Select(healthSnapshotColumns...).
		From(healthSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("period_start DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar snapshots")
	}
	defer rows.Close()

	snapshots := []*domain.HealthSnapshot{}
	for rows.Next() {
		s, err := scanHealthSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

func (r *healthSnapshotRepository) GetByUserAndPeriod(ctx context.Context, userID int, period utils.Period) (*domain.HealthSnapshot, error) {
	query, args, err := psql.
		Select(healthSnapshotColumns...).
		From(healthSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID, "period": period.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	s, err := scanHealthSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar snapshot")
	}

	return s, nil
}

func scanHealthSnapshot(row rowScanner) (*domain.HealthSnapshot, error) {
	var s domain.HealthSnapshot
	if err := row.Scan(
		&s.ID, &s.UserID, &s.Period, &s.UtilizationPercentage, &s.RemainingHours, &s.RevenueProgressPercentage,
		&s.OnTrack, &s.HealthScore, &s.HealthLabel, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

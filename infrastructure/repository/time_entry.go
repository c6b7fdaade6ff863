package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/internal/domain"
)

const timeEntriesTable = "time_entries"

// nome do índice parcial que garante um único timer em execução por usuário
const runningTimerConstraint = "uq_time_entries_running"

// ErrRunningTimerExists é retornado quando o banco rejeita um segundo timer em execução
var ErrRunningTimerExists = errors.New("já existe um timer em execução")

var timeEntryColumns = []string{
	"id", "user_id", "project_id", "description", "start_time", "end_time", "duration_seconds", "billable", "date",
	"created_at", "updated_at",
}

type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	Update(ctx context.Context, entry *domain.TimeEntry) error
	GetByID(ctx context.Context, userID int, entryID string) (*domain.TimeEntry, error)
	GetRunning(ctx context.Context, userID int) (*domain.TimeEntry, error)
	List(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error)
	Delete(ctx context.Context, userID int, entryID string) (bool, error)
	SumDuration(ctx context.Context, userID int, from, to time.Time) (int64, error)
}

type timeEntryRepository struct {
	conn *postgres.Connection
}

func NewTimeEntryRepository(conn *postgres.Connection) TimeEntryRepository {
	return &timeEntryRepository{conn: conn}
}

func (r *timeEntryRepository) Create(ctx context.Context, e *domain.TimeEntry) error {
	query, args, err := psql.
		Insert(timeEntriesTable).
		Columns("id", "user_id", "project_id", "description", "start_time", "end_time", "duration_seconds", "billable", "date").
		Values(e.ID, e.UserID, e.ProjectID, e.Description, e.StartTime, e.EndTime, e.DurationSeconds, e.Billable, e.Date).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&e.CreatedAt, &e.UpdatedAt)
	if isUniqueViolation(err, runningTimerConstraint) {
		return ErrRunningTimerExists
	}

	return errors.Wrap(err, "erro ao inserir registro de tempo")
}

func (r *timeEntryRepository) Update(ctx context.Context, e *domain.TimeEntry) error {
	e.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(timeEntriesTable).
		Set("project_id", e.ProjectID).
		Set("description", e.Description).
		Set("start_time", e.StartTime).
		Set("end_time", e.EndTime).
		Set("duration_seconds", e.DurationSeconds).
		Set("billable", e.Billable).
		Set("date", e.Date).
		Set("updated_at", e.UpdatedAt).
		Where(squirrel.Eq{"id": e.ID, "user_id": e.UserID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if isUniqueViolation(err, runningTimerConstraint) {
		return ErrRunningTimerExists
	}

	return errors.Wrapf(err, "erro ao atualizar registro de tempo %s", e.ID)
}

func (r *timeEntryRepository) GetByID(ctx context.Context, userID int, entryID string) (*domain.TimeEntry, error) {
	return r.getOne(ctx, squirrel.Eq{"id": entryID, "user_id": userID})
}

// GetRunning retorna o timer em execução do usuário ou nil
func (r *timeEntryRepository) GetRunning(ctx context.Context, userID int) (*domain.TimeEntry, error) {
	return r.getOne(ctx, squirrel.And{
		squirrel.Eq{"user_id": userID, "end_time": nil},
		squirrel.NotEq{"start_time": nil},
	})
}

func (r *timeEntryRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.TimeEntry, error) {
	query, args, err := psql.Select(timeEntryColumns...).From(timeEntriesTable).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	entry, err := scanTimeEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar registro de tempo")
	}

	return entry, nil
}

func (r *timeEntryRepository) List(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error) {
	builder := psql.
		Select(timeEntryColumns...).
		From(timeEntriesTable).
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("date DESC", "start_time DESC NULLS LAST")

	if filter.ProjectID != nil {
		builder = builder.Where(squirrel.Eq{"project_id": *filter.ProjectID})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": domain.NewDate(*filter.From)})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": domain.NewDate(*filter.To)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar registros de tempo")
	}
	defer rows.Close()

	entries := []*domain.TimeEntry{}
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *timeEntryRepository) Delete(ctx context.Context, userID int, entryID string) (bool, error) {
	query, args, err := psql.
		Delete(timeEntriesTable).
		Where(squirrel.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover registro de tempo")
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

// SumDuration soma os segundos registrados com data em [from, to)
func (r *timeEntryRepository) SumDuration(ctx context.Context, userID int, from, to time.Time) (int64, error) {
	return sumDuration(ctx, r.conn, userID, from, to)
}

func sumDuration(ctx context.Context, q postgres.Queryer, userID int, from, to time.Time) (int64, error) {
	query, args, err := psql.
		Select("COALESCE(SUM(duration_seconds), 0)").
		From(timeEntriesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": domain.NewDate(from)}).
		Where(squirrel.Lt{"date": domain.NewDate(to)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, errors.Wrap(err, "erro ao somar horas registradas")
	}

	return total, nil
}

func scanTimeEntry(row rowScanner) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	if err := row.Scan(
		&e.ID, &e.UserID, &e.ProjectID, &e.Description, &e.StartTime, &e.EndTime, &e.DurationSeconds, &e.Billable, &e.Date,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}
	return false
}

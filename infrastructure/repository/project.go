package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

const projectsTable = "projects"

// Colunas persistidas mais as agregações usadas nos campos derivados
var projectColumns = []string{
	"p.id", "p.user_id", "p.client_id", "c.name", "p.name", "p.status", "p.billing_type", "p.rate", "p.budget",
	"p.currency", "p.hours_estimated", "p.monthly_commitment_hours", "p.deadline", "p.color", "p.created_at", "p.updated_at",
	"COALESCE((SELECT SUM(te.duration_seconds) FROM time_entries te WHERE te.project_id = p.id), 0)",
	"COALESCE((SELECT SUM(i.amount) FROM invoices i WHERE i.project_id = p.id AND i.status <> 'draft'), 0)",
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, userID int, projectID string) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error)
	Delete(ctx context.Context, userID int, projectID string) (bool, error)
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{conn: conn}
}

func (r *projectRepository) Create(ctx context.Context, p *domain.Project) error {
	query, args, err := psql.
		Insert(projectsTable).
		Columns("id", "user_id", "client_id", "name", "status", "billing_type", "rate", "budget", "currency",
			"hours_estimated", "monthly_commitment_hours", "deadline", "color").
		Values(p.ID, p.UserID, p.ClientID, p.Name, p.Status, p.BillingType, p.Rate, p.Budget, p.Currency,
			p.HoursEstimated, p.MonthlyCommitmentHours, p.Deadline, p.Color).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt)
	return errors.Wrap(err, "erro ao inserir projeto")
}

func (r *projectRepository) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(projectsTable).
		Set("client_id", p.ClientID).
		Set("name", p.Name).
		Set("status", p.Status).
		Set("billing_type", p.BillingType).
		Set("rate", p.Rate).
		Set("budget", p.Budget).
		Set("currency", p.Currency).
		Set("hours_estimated", p.HoursEstimated).
		Set("monthly_commitment_hours", p.MonthlyCommitmentHours).
		Set("deadline", p.Deadline).
		Set("color", p.Color).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID, "user_id": p.UserID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return errors.Wrapf(err, "erro ao atualizar projeto %s", p.ID)
}

func (r *projectRepository) selectProjects() squirrel.SelectBuilder {
	return psql.
		Select(projectColumns...).
		From("projects p").
		Join("clients c ON c.id = p.client_id")
}

// GetByID retorna nil, nil quando o projeto não existe ou pertence a outro usuário
func (r *projectRepository) GetByID(ctx context.Context, userID int, projectID string) (*domain.Project, error) {
	query, args, err := r.selectProjects().
		Where(squirrel.Eq{"p.id": projectID, "p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	project, err := scanProject(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar projeto")
	}

	return project, nil
}

func (r *projectRepository) List(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error) {
	builder := r.selectProjects().
		Where(squirrel.Eq{"p.user_id": filter.UserID}).
		OrderBy("p.created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"p.status": *filter.Status})
	}
	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"p.client_id": *filter.ClientID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar projetos")
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *projectRepository) Delete(ctx context.Context, userID int, projectID string) (bool, error) {
	query, args, err := psql.
		Delete(projectsTable).
		Where(squirrel.Eq{"id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover projeto")
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p             domain.Project
		clientName    string
		loggedSeconds int64
	)

	if err := row.Scan(
		&p.ID, &p.UserID, &p.ClientID, &clientName, &p.Name, &p.Status, &p.BillingType, &p.Rate, &p.Budget,
		&p.Currency, &p.HoursEstimated, &p.MonthlyCommitmentHours, &p.Deadline, &p.Color, &p.CreatedAt, &p.UpdatedAt,
		&loggedSeconds, &p.InvoicedAmount,
	); err != nil {
		return nil, err
	}

	p.Client = &domain.ProjectClient{ID: p.ClientID, Name: clientName}
	p.HoursLogged = utils.HoursFromSeconds(loggedSeconds)
	p.ComputeDerived()

	return &p, nil
}

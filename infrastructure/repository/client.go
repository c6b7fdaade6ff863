package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/internal/domain"
)

const clientsTable = "clients"

var clientColumns = []string{
	"id", "user_id", "name", "company_name", "email", "status", "currency", "color", "created_at", "updated_at",
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, userID int, clientID string) (*domain.Client, error)
	List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error)
	Delete(ctx context.Context, userID int, clientID string) (bool, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{conn: conn}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query, args, err := psql.
		Insert(clientsTable).
		Columns("id", "user_id", "name", "company_name", "email", "status", "currency", "color").
		Values(client.ID, client.UserID, client.Name, client.CompanyName, client.Email, client.Status, client.Currency, client.Color).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&client.CreatedAt, &client.UpdatedAt)
	return errors.Wrap(err, "erro ao inserir cliente")
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	client.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(clientsTable).
		Set("name", client.Name).
		Set("company_name", client.CompanyName).
		Set("email", client.Email).
		Set("status", client.Status).
		Set("currency", client.Currency).
		Set("color", client.Color).
		Set("updated_at", client.UpdatedAt).
		Where(squirrel.Eq{"id": client.ID, "user_id": client.UserID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return errors.Wrapf(err, "erro ao atualizar cliente %s", client.ID)
}

// GetByID só encontra clientes do próprio usuário; retorna nil, nil caso contrário
func (r *clientRepository) GetByID(ctx context.Context, userID int, clientID string) (*domain.Client, error) {
	query, args, err := psql.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	client, err := scanClient(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar cliente")
	}

	return client, nil
}

func (r *clientRepository) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	builder := psql.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("name ASC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar clientes")
	}
	defer rows.Close()

	clients := []*domain.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *clientRepository) Delete(ctx context.Context, userID int, clientID string) (bool, error) {
	query, args, err := psql.
		Delete(clientsTable).
		Where(squirrel.Eq{"id": clientID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover cliente")
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	if err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.CompanyName, &c.Email, &c.Status, &c.Currency, &c.Color, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

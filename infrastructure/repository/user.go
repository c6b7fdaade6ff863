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

const usersTable = "users"

var userColumns = []string{
	"id", "name", "lastname", "email", "password_hash", "active", "email_verified", "role_id",
	"avatar_url", "default_currency", "monthly_capacity_hours", "created_at", "updated_at",
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	ListUser(ctx context.Context) ([]*domain.User, error)
	ListActiveUserIDs(ctx context.Context) ([]int, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "email_verified", "role_id",
			"default_currency", "monthly_capacity_hours").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.EmailVerified, user.RoleID,
			user.DefaultCurrency, user.MonthlyCapacityHours).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir usuário")
	}

	return user, nil
}

// UpdateUser grava os campos preenchidos; campos vazios são mantidos
func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	builder := psql.
		Update(usersTable).
		Set("active", user.Active).
		Set("email_verified", user.EmailVerified).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		builder = builder.Set("name", user.Name)
	}
	if user.Lastname != "" {
		builder = builder.Set("lastname", user.Lastname)
	}
	if user.Email != "" {
		builder = builder.Set("email", user.Email)
	}
	if user.PasswordHash != "" {
		builder = builder.Set("password_hash", user.PasswordHash)
	}
	if user.RoleID != 0 {
		builder = builder.Set("role_id", user.RoleID)
	}
	if user.AvatarURL != nil {
		builder = builder.Set("avatar_url", user.AvatarURL)
	}
	if user.DefaultCurrency != "" {
		builder = builder.Set("default_currency", user.DefaultCurrency)
	}
	if user.MonthlyCapacityHours > 0 {
		builder = builder.Set("monthly_capacity_hours", user.MonthlyCapacityHours)
	}
	if user.Deleted {
		builder = builder.Set("deleted", true).Set("deleted_at", user.DeletedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao atualizar usuário %d", user.ID)
	}

	return nil
}

// GetUserByEmail retorna nil, nil quando o e-mail não existe
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email, "deleted": false})
}

// GetUserByID retorna nil, nil quando o usuário não existe ou foi removido
func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID, "deleted": false})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From(usersTable).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário")
	}

	return user, nil
}

func (r *userRepository) ListUser(ctx context.Context) ([]*domain.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar usuários")
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) ListActiveUserIDs(ctx context.Context) ([]int, error) {
	query, args, err := psql.
		Select("id").
		From(usersTable).
		Where(squirrel.Eq{"deleted": false, "active": true}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar usuários ativos")
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.EmailVerified,
		&user.RoleID,
		&user.AvatarURL,
		&user.DefaultCurrency,
		&user.MonthlyCapacityHours,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

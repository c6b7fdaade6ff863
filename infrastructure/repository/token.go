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

const verificationTokensTable = "verification_tokens"

type TokenRepository interface {
	Save(ctx context.Context, token *domain.VerificationToken) error
	Consume(ctx context.Context, kind domain.TokenKind, tokenHash string) (*domain.VerificationToken, error)
	DeleteByUser(ctx context.Context, userID int, kind domain.TokenKind) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type tokenRepository struct {
	conn *postgres.Connection
}

func NewTokenRepository(conn *postgres.Connection) TokenRepository {
	return &tokenRepository{conn: conn}
}

func (r *tokenRepository) Save(ctx context.Context, token *domain.VerificationToken) error {
	query, args, err := psql.
		Insert(verificationTokensTable).
		Columns("token_hash", "user_id", "kind", "expires_at").
		Values(token.TokenHash, token.UserID, token.Kind, token.ExpiresAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return errors.Wrap(err, "erro ao salvar token")
}

// Consume remove e devolve o token; tokens são de uso único. Retorna nil, nil se não existir.
func (r *tokenRepository) Consume(ctx context.Context, kind domain.TokenKind, tokenHash string) (*domain.VerificationToken, error) {
	query, args, err := psql.
		Delete(verificationTokensTable).
		Where(squirrel.Eq{"token_hash": tokenHash, "kind": kind}).
		Suffix("RETURNING user_id, kind, token_hash, expires_at, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var token domain.VerificationToken
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&token.UserID, &token.Kind, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consumir token")
	}

	return &token, nil
}

func (r *tokenRepository) DeleteByUser(ctx context.Context, userID int, kind domain.TokenKind) error {
	query, args, err := psql.
		Delete(verificationTokensTable).
		Where(squirrel.Eq{"user_id": userID, "kind": kind}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return errors.Wrap(err, "erro ao remover tokens do usuário")
}

func (r *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.
		Delete(verificationTokensTable).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover tokens expirados")
	}

	return res.RowsAffected()
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/userhub/pkg/apperr"
	"github.com/artem13815/userhub/pkg/auth"
)

const uniqueViolation = "23505"

// CredentialRepository implements auth.CredentialRepository backed by PostgreSQL (pgx).
type CredentialRepository struct {
	pool *pgxpool.Pool
}

func NewCredentialRepository(pool *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{pool: pool}
}

func (r *CredentialRepository) Create(ctx context.Context, c *auth.Credential) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO auth_users (name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Name, c.Email, c.PasswordHash, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return auth.ErrEmailTaken
		}
		return apperr.Store("create credential", err)
	}
	return nil
}

func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (auth.Credential, error) {
	var c auth.Credential
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM auth_users WHERE email = $1
	`, email).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Credential{}, auth.ErrCredentialNotFound
		}
		return auth.Credential{}, apperr.Store("get credential", err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (r *CredentialRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM auth_users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, apperr.Store("check credential", err)
	}
	return exists, nil
}

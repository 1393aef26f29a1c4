// Package sqlite implements the repository ports on top of the embedded
// SQLite store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/artem13815/userhub/pkg/apperr"
	"github.com/artem13815/userhub/pkg/auth"
)

// CredentialRepository implements auth.CredentialRepository on SQLite.
// created_at is stored as unix milliseconds.
type CredentialRepository struct {
	db *sql.DB
}

func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Create(ctx context.Context, c *auth.Credential) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO auth_users (name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, c.Name, c.Email, c.PasswordHash, c.CreatedAt.UTC().UnixMilli()).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.ErrEmailTaken
		}
		return apperr.Store("create credential", err)
	}
	return nil
}

func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (auth.Credential, error) {
	var (
		c         auth.Credential
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM auth_users WHERE email = ?
	`, email).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Credential{}, auth.ErrCredentialNotFound
		}
		return auth.Credential{}, apperr.Store("get credential", err)
	}
	c.CreatedAt = time.UnixMilli(createdAt).UTC()
	return c, nil
}

func (r *CredentialRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM auth_users WHERE email = ?)`, email).Scan(&exists)
	if err != nil {
		return false, apperr.Store("check credential", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

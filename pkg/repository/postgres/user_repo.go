package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/userhub/pkg/apperr"
	"github.com/artem13815/userhub/pkg/repository/internal/userrow"
	"github.com/artem13815/userhub/pkg/user"
)

const selectUsers = `SELECT id, ` + userrow.Columns + ` FROM users`

// UserRepository implements user.Repository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx, selectUsers+` ORDER BY id`)
	if err != nil {
		return nil, apperr.Store("list users", err)
	}
	defer rows.Close()

	res := []user.User{}
	for rows.Next() {
		var row userrow.Row
		if err := rows.Scan(row.Dest()...); err != nil {
			return nil, apperr.Store("scan user", err)
		}
		res = append(res, row.User())
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list users", err)
	}
	return res, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	var row userrow.Row
	if err := r.pool.QueryRow(ctx, selectUsers+` WHERE id = $1`, id).Scan(row.Dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.NotFound(id)
		}
		return user.User{}, apperr.Store("get user", err)
	}
	return row.User(), nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	in := userrow.FromUser(u)
	var out userrow.Row
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (`+userrow.Columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, `+userrow.Columns,
		in.Args()...,
	).Scan(out.Dest()...)
	if err != nil {
		return user.User{}, apperr.Store("create user", err)
	}
	return out.User(), nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	in := userrow.FromUser(u)
	args := append([]any{in.ID}, in.Args()...)
	var out userrow.Row
	err := r.pool.QueryRow(ctx, `
		UPDATE users SET
			user_name = $2, username = $3, email = $4, phone = $5, website = $6,
			street = $7, suite = $8, city = $9, zipcode = $10, geo_lat = $11, geo_lng = $12,
			company_name = $13, company_catch_phrase = $14, company_bs = $15
		WHERE id = $1
		RETURNING id, `+userrow.Columns,
		args...,
	).Scan(out.Dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.NotFound(u.ID)
		}
		return user.User{}, apperr.Store("update user", err)
	}
	return out.User(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperr.Store("delete user", err)
	}
	if cmd.RowsAffected() == 0 {
		return user.NotFound(id)
	}
	return nil
}

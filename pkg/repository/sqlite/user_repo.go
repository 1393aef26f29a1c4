package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/artem13815/userhub/pkg/apperr"
	"github.com/artem13815/userhub/pkg/repository/internal/userrow"
	"github.com/artem13815/userhub/pkg/user"
)

const selectUsers = `SELECT id, ` + userrow.Columns + ` FROM users`

// UserRepository implements user.Repository on SQLite.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsers+` ORDER BY id`)
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
	if err := r.db.QueryRowContext(ctx, selectUsers+` WHERE id = ?`, id).Scan(row.Dest()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.NotFound(id)
		}
		return user.User{}, apperr.Store("get user", err)
	}
	return row.User(), nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	in := userrow.FromUser(u)
	var out userrow.Row
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (`+userrow.Columns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
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
	args := append(in.Args(), in.ID)
	var out userrow.Row
	err := r.db.QueryRowContext(ctx, `
		UPDATE users SET
			user_name = ?, username = ?, email = ?, phone = ?, website = ?,
			street = ?, suite = ?, city = ?, zipcode = ?, geo_lat = ?, geo_lng = ?,
			company_name = ?, company_catch_phrase = ?, company_bs = ?
		WHERE id = ?
		RETURNING id, `+userrow.Columns,
		args...,
	).Scan(out.Dest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.NotFound(u.ID)
		}
		return user.User{}, apperr.Store("update user", err)
	}
	return out.User(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return apperr.Store("delete user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Store("delete user", err)
	}
	if n == 0 {
		return user.NotFound(id)
	}
	return nil
}

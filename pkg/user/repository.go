package user

import (
	"context"
	"fmt"

	"github.com/artem13815/userhub/pkg/apperr"
)

// Repository is the port to the user store.
type Repository interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	// Create stores u under a newly generated id and returns the stored row.
	Create(ctx context.Context, u User) (User, error)
	// Update replaces every column of the row with u.ID.
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id int64) error
}

// ErrNotFound is returned for a missing id. Use NotFound to attach the id.
var ErrNotFound = apperr.New(apperr.ErrNotFound, "user not found")

// NotFound reports a missing user id. The result matches ErrNotFound and
// apperr.ErrNotFound under errors.Is.
func NotFound(id int64) error {
	return &notFoundError{id: id}
}

type notFoundError struct{ id int64 }

func (e *notFoundError) Error() string {
	return fmt.Sprintf("User not found with id : '%d'", e.id)
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrNotFound || target == apperr.ErrNotFound
}

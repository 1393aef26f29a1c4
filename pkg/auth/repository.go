package auth

import (
	"context"

	"github.com/artem13815/userhub/pkg/apperr"
)

// Common errors used by repository/use cases
var (
	ErrCredentialNotFound = apperr.New(apperr.ErrNotFound, "user not found")
	ErrEmailTaken         = apperr.New(apperr.ErrConflict, "email already exists")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthenticated, "invalid credentials")
)

// CredentialRepository abstracts persistence concerns from the domain layer.
// Emails passed in are already normalized.
type CredentialRepository interface {
	// Create stores c and sets c.ID. A duplicate email yields ErrEmailTaken.
	Create(ctx context.Context, c *Credential) error
	GetByEmail(ctx context.Context, email string) (Credential, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

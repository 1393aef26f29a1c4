package auth

import (
	"context"
	"errors"
)

// Authenticator checks a plaintext password for an email against the stored
// credential and returns the authenticated principal.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (Principal, error)
}

type credentialAuthenticator struct {
	repo   CredentialRepository
	hasher PasswordHasher
}

// NewAuthenticator returns an Authenticator backed by the credential store.
func NewAuthenticator(repo CredentialRepository, hasher PasswordHasher) Authenticator {
	return &credentialAuthenticator{repo: repo, hasher: hasher}
}

func (a *credentialAuthenticator) Authenticate(ctx context.Context, email, password string) (Principal, error) {
	cred, err := a.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			return Principal{}, ErrInvalidCredentials
		}
		return Principal{}, err
	}
	if !a.hasher.Compare(cred.PasswordHash, password) {
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{Email: cred.Email, Name: cred.Name}, nil
}

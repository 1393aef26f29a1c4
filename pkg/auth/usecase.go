package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/artem13815/userhub/pkg/apperr"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	Token string
	Email string
	Name  string
}

type authService struct {
	repo   CredentialRepository
	hasher PasswordHasher
	authn  Authenticator
	tokens TokenGenerator
	log    *slog.Logger
	rec    Recorder
	now    func() time.Time
}

type Option func(*authService)

func WithLogger(l *slog.Logger) Option {
	return func(s *authService) { s.log = l }
}

func WithRecorder(r Recorder) Option {
	return func(s *authService) { s.rec = r }
}

// WithAuthenticator replaces the store-backed authenticator.
func WithAuthenticator(a Authenticator) Option {
	return func(s *authService) { s.authn = a }
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo CredentialRepository, hasher PasswordHasher, tokens TokenGenerator, opts ...Option) AuthUseCase {
	s := &authService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		log:    slog.Default(),
		rec:    nopRecorder{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.authn == nil {
		s.authn = NewAuthenticator(repo, hasher)
	}
	return s
}

func (s *authService) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return AuthResult{}, apperr.Validation("name, email and password are required")
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, s.fail("register", err)
	}
	if exists {
		return AuthResult{}, s.fail("register", ErrEmailTaken)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, s.fail("register", err)
	}

	cred := Credential{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC(),
	}
	// A concurrent registration can still win the race; the store's unique
	// constraint reports it as ErrEmailTaken.
	if err := s.repo.Create(ctx, &cred); err != nil {
		return AuthResult{}, s.fail("register", err)
	}

	principal, err := s.authn.Authenticate(ctx, email, password)
	if err != nil {
		return AuthResult{}, s.fail("register", err)
	}
	token, err := s.tokens.Generate(ctx, principal)
	if err != nil {
		return AuthResult{}, s.fail("register", err)
	}

	s.rec.RecordAuthEvent("register", "success")
	s.log.InfoContext(ctx, "credential registered", slog.Int64("credential_id", cred.ID), slog.String("email", cred.Email))
	return AuthResult{Token: token, Email: cred.Email, Name: cred.Name}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, apperr.Validation("email and password are required")
	}

	principal, err := s.authn.Authenticate(ctx, email, password)
	if err != nil {
		return AuthResult{}, s.fail("login", err)
	}

	// The record can disappear between authentication and lookup.
	cred, err := s.repo.GetByEmail(ctx, principal.Email)
	if err != nil {
		return AuthResult{}, s.fail("login", err)
	}

	token, err := s.tokens.Generate(ctx, principal)
	if err != nil {
		return AuthResult{}, s.fail("login", err)
	}

	s.rec.RecordAuthEvent("login", "success")
	s.log.InfoContext(ctx, "login succeeded", slog.String("email", cred.Email))
	return AuthResult{Token: token, Email: cred.Email, Name: cred.Name}, nil
}

func (s *authService) fail(event string, err error) error {
	outcome := "error"
	switch {
	case errors.Is(err, apperr.ErrConflict):
		outcome = "conflict"
	case errors.Is(err, apperr.ErrUnauthenticated):
		outcome = "rejected"
	case errors.Is(err, apperr.ErrNotFound):
		outcome = "not_found"
	}
	s.rec.RecordAuthEvent(event, outcome)
	if outcome == "error" {
		s.log.Error(event+" failed", slog.String("error", err.Error()))
	} else {
		s.log.Warn(event+" rejected", slog.String("reason", err.Error()))
	}
	return err
}

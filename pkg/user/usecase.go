package user

import (
	"context"
	"log/slog"
)

// UseCase exposes CRUD over user profiles in their transfer shape.
type UseCase interface {
	List(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, id int64) (Profile, error)
	Create(ctx context.Context, p Profile) (Profile, error)
	Update(ctx context.Context, id int64, p Profile) (Profile, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context) ([]Profile, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Profile, 0, len(users))
	for _, u := range users {
		out = append(out, ToProfile(u))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (Profile, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return ToProfile(u), nil
}

func (s *service) Create(ctx context.Context, p Profile) (Profile, error) {
	u := ToUser(p)
	u.ID = 0
	saved, err := s.repo.Create(ctx, u)
	if err != nil {
		return Profile{}, err
	}
	s.log.InfoContext(ctx, "user created", slog.Int64("user_id", saved.ID))
	return ToProfile(saved), nil
}

func (s *service) Update(ctx context.Context, id int64, p Profile) (Profile, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	updated := ApplyUpdate(existing, p)
	saved, err := s.repo.Update(ctx, updated)
	if err != nil {
		return Profile{}, err
	}
	s.log.InfoContext(ctx, "user updated", slog.Int64("user_id", saved.ID))
	return ToProfile(saved), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "user deleted", slog.Int64("user_id", id))
	return nil
}

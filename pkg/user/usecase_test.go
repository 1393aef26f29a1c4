package user

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/userhub/pkg/apperr"
)

type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]User
	err    error
}

func newMemRepo() *memRepo { return &memRepo{rows: map[int64]User{}} }

func (r *memRepo) List(context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]User, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return User{}, NotFound(id)
	}
	return u, nil
}

func (r *memRepo) Create(_ context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	r.rows[u.ID] = u
	return u, nil
}

func (r *memRepo) Update(_ context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[u.ID]; !ok {
		return User{}, NotFound(u.ID)
	}
	r.rows[u.ID] = u
	return u, nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return NotFound(id)
	}
	delete(r.rows, id)
	return nil
}

func newTestService(repo Repository) UseCase {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newUserProfile() Profile {
	return Profile{
		Name:     str("New User"),
		Username: str("newuser"),
		Email:    str("new@example.com"),
		Phone:    str("987-654-3210"),
		Website:  str("www.new.com"),
	}
}

func TestCreate_AssignsIDAndEchoesFields(t *testing.T) {
	svc := newTestService(newMemRepo())

	got, err := svc.Create(context.Background(), newUserProfile())
	require.NoError(t, err)

	assert.NotZero(t, got.ID)
	assert.Equal(t, "New User", *got.Name)
	assert.Equal(t, "newuser", *got.Username)
	assert.Equal(t, "new@example.com", *got.Email)
	assert.Equal(t, "987-654-3210", *got.Phone)
	assert.Equal(t, "www.new.com", *got.Website)
	assert.Nil(t, got.Address)
	assert.Nil(t, got.Company)
}

func TestCreate_IgnoresIncomingID(t *testing.T) {
	svc := newTestService(newMemRepo())
	p := newUserProfile()
	p.ID = 500

	got, err := svc.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestGetByID_LeftInverseOfCreate(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, ToProfile(fullUser()))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetByID_Missing(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "User not found with id : '42'")
}

func TestList_InsertionOrder(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, Profile{Name: str(name)})
		require.NoError(t, err)
	}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", *got[0].Name)
	assert.Equal(t, "c", *got[2].Name)
}

func TestList_StoreError(t *testing.T) {
	repo := newMemRepo()
	repo.err = apperr.Store("list users", errors.New("boom"))

	_, err := newTestService(repo).List(context.Background())
	assert.ErrorIs(t, err, apperr.ErrStore)
}

func TestUpdate_NameOnlyKeepsAddress(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	created, err := svc.Create(ctx, ToProfile(fullUser()))
	require.NoError(t, err)

	got, err := svc.Update(ctx, created.ID, Profile{Name: str("Updated Name")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Updated Name", *got.Name)
	require.NotNil(t, got.Address)
	assert.Equal(t, created.Address, got.Address)
	require.NotNil(t, got.Address.Geo)
	assert.Equal(t, "-74.0060", *got.Address.Geo.Lng)
	assert.Equal(t, created.Company, got.Company)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestUpdate_IgnoresBodyID(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()
	created, err := svc.Create(ctx, newUserProfile())
	require.NoError(t, err)

	got, err := svc.Update(ctx, created.ID, Profile{ID: 777, Name: str("x")})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdate_Idempotent(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()
	created, err := svc.Create(ctx, newUserProfile())
	require.NoError(t, err)
	patch := Profile{Name: str("Same"), Company: &CompanyDTO{Name: str("Acme")}}

	first, err := svc.Update(ctx, created.ID, patch)
	require.NoError(t, err)
	second, err := svc.Update(ctx, created.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdate_Missing(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Update(context.Background(), 5, newUserProfile())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_ThenGetIsNotFound(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()
	created, err := svc.Create(ctx, newUserProfile())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Missing(t *testing.T) {
	svc := newTestService(newMemRepo())

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

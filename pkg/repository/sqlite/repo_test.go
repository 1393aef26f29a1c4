package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/userhub/pkg/apperr"
	"github.com/artem13815/userhub/pkg/auth"
	sqlitestore "github.com/artem13815/userhub/pkg/storage/sqlite"
	"github.com/artem13815/userhub/pkg/user"
)

func strp(s string) *string { return &s }

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlitestore.Open(context.Background(), filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleUser() user.User {
	return user.User{
		Name:     strp("Leanne Graham"),
		Username: strp("Bret"),
		Email:    strp("Sincere@april.biz"),
		Phone:    strp("1-770-736-8031 x56442"),
		Website:  strp("hildegard.org"),
		Address: &user.Address{
			Street:  strp("Kulas Light"),
			Suite:   strp("Apt. 556"),
			City:    strp("Gwenborough"),
			Zipcode: strp("92998-3874"),
			Geo:     &user.Geo{Lat: strp("-37.3159"), Lng: strp("81.1496")},
		},
		Company: &user.Company{
			Name:        strp("Romaguera-Crona"),
			CatchPhrase: strp("Multi-layered client-server neural-net"),
			BS:          strp("harness real-time e-markets"),
		},
	}
}

func TestCredentialRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(openDB(t))

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &auth.Credential{Name: "Ann", Email: "ann@x.io", PasswordHash: "h", CreatedAt: created}
	require.NoError(t, repo.Create(ctx, c))
	assert.Positive(t, c.ID)

	got, err := repo.GetByEmail(ctx, "ann@x.io")
	require.NoError(t, err)
	assert.Equal(t, *c, got)

	exists, err := repo.ExistsByEmail(ctx, "ann@x.io")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "bob@x.io")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCredentialRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(openDB(t))

	require.NoError(t, repo.Create(ctx, &auth.Credential{Name: "Ann", Email: "ann@x.io", PasswordHash: "h", CreatedAt: time.Now()}))
	err := repo.Create(ctx, &auth.Credential{Name: "Other", Email: "ann@x.io", PasswordHash: "h2", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCredentialRepository_GetMissing(t *testing.T) {
	_, err := NewCredentialRepository(openDB(t)).GetByEmail(context.Background(), "nobody@x.io")
	assert.ErrorIs(t, err, auth.ErrCredentialNotFound)
}

func TestUserRepository_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openDB(t))

	in := sampleUser()
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	in.ID = created.ID
	assert.Equal(t, in, created)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUserRepository_EmptyEmbeddedReadsBackNil(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openDB(t))

	created, err := repo.Create(ctx, user.User{
		Name:    strp("Only name"),
		Address: &user.Address{Geo: &user.Geo{}},
		Company: &user.Company{},
	})
	require.NoError(t, err)
	assert.Nil(t, created.Address)
	assert.Nil(t, created.Company)
	assert.Nil(t, created.Email)

	partial, err := repo.Create(ctx, user.User{Address: &user.Address{City: strp("Riga")}})
	require.NoError(t, err)
	require.NotNil(t, partial.Address)
	assert.Equal(t, "Riga", *partial.Address.City)
	assert.Nil(t, partial.Address.Geo)
}

func TestUserRepository_ListInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openDB(t))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		u, err := repo.Create(ctx, user.User{Name: strp(name)})
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, u := range list {
		assert.Equal(t, ids[i], u.ID)
	}
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openDB(t))

	created, err := repo.Create(ctx, sampleUser())
	require.NoError(t, err)

	next := user.User{ID: created.ID, Name: strp("Renamed")}
	updated, err := repo.Update(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, next, updated)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestUserRepository_MissingID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openDB(t))

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.EqualError(t, err, "User not found with id : '42'")

	_, err = repo.Update(ctx, user.User{ID: 42, Name: strp("x")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openDB(t))

	created, err := repo.Create(ctx, sampleUser())
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_ClosedDBIsStoreError(t *testing.T) {
	db := openDB(t)
	repo := NewUserRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrStore))
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
}

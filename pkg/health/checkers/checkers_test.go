package checkers

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlitestore "github.com/artem13815/userhub/pkg/storage/sqlite"
)

func TestSQLChecker(t *testing.T) {
	db, err := sqlitestore.Open(context.Background(), filepath.Join(t.TempDir(), "h.db"))
	require.NoError(t, err)

	ch := NewSQLChecker("sqlite", db)
	assert.Equal(t, "sqlite", ch.Name())
	assert.NoError(t, ch.Check(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, ch.Check(context.Background()))
}

func TestPingChecker_Timeout(t *testing.T) {
	ch := &PingChecker{
		name: "slow",
		ping: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
		timeout: 10 * time.Millisecond,
	}
	assert.ErrorIs(t, ch.Check(context.Background()), context.DeadlineExceeded)
}

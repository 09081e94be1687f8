package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/workout-tracker/internal/database"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, "", ":memory:", 1, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.EnsureSchema(ctx, db))
	return db
}

type txKey struct{}

// contextTx mimics the transaction middleware lookup.
func contextTx(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

func insertUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	id, err := NewUserWriteRepository(db, nil).Create(context.Background(), username, "hash-"+username)
	require.NoError(t, err)
	return id
}

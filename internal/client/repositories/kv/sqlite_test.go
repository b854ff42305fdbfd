package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	r, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestOpen_CreatesSchemaAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "catalog.db")

	r, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, r.Set(ctx, "k", []byte("v")))
	require.NoError(t, r.Close())

	r, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v, "value must survive reopen")

	var n int
	require.NoError(t, r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='goose_db_version'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestRunMigrations_Twice(t *testing.T) {
	r := setupRepo(t)
	require.NoError(t, RunMigrations(context.Background(), r.db))
}

func TestSetAndGet(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("abc")))

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}

func TestGet_Absent_ReturnsNilNil(t *testing.T) {
	r := setupRepo(t)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_EmptyValueIsPresent(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "empty", nil))
	v, err := r.Get(ctx, "empty")
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Empty(t, v)
}

func TestSet_UpsertAndIdempotent(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"k": []byte("new")}, m)
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte{1}))
	require.NoError(t, r.Delete(ctx, "x"))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDeleteKeys_RemovesAllGiven(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("t")))
	require.NoError(t, r.Set(ctx, "user", []byte("{}")))
	require.NoError(t, r.Set(ctx, "@favorites", []byte("[1]")))

	require.NoError(t, r.DeleteKeys(ctx, "token", "user", "never-set"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"@favorites": []byte("[1]")}, m)
}

func TestClear(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{1}))
	require.NoError(t, r.Set(ctx, "b", []byte{2}))
	require.NoError(t, r.Clear(ctx))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestClosedDB_ReturnsStorageErrors(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "failed to get [k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "failed to set [k]")

	err = r.Delete(ctx, "k")
	require.ErrorIs(t, err, ErrStorage)

	err = r.DeleteKeys(ctx, "a", "b")
	require.ErrorIs(t, err, ErrStorage)

	err = r.Clear(ctx)
	require.ErrorIs(t, err, ErrStorage)

	_, err = r.List(ctx)
	require.ErrorIs(t, err, ErrStorage)

	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "list", se.Op)
	assert.Error(t, se.Err)
}

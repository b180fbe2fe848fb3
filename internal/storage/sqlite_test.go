package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghul07102002/holofolio/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE storage (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)

	return db
}

func TestSQLiteStorage_SetAndGet(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyProfile, `{"name":"Raghul R"}`))

	got, err := s.Get(ctx, KeyProfile)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Raghul R"}`, got)

	// wholesale replace
	require.NoError(t, s.Set(ctx, KeyProfile, `{"name":"Someone Else"}`))
	got, err = s.Get(ctx, KeyProfile)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Someone Else"}`, got)
}

func TestSQLiteStorage_GetMissing(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))

	_, err := s.Get(context.Background(), KeyResume)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_Delete(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyCertificates, `[]`))
	require.NoError(t, s.Delete(ctx, KeyCertificates))

	_, err := s.Get(ctx, KeyCertificates)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// deleting an absent key is not an error
	require.NoError(t, s.Delete(ctx, KeyCertificates))
}

func TestOpen_RunsMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStorage(db)
	require.NoError(t, s.Set(ctx, KeyProfile, `{}`))

	got, err := s.Get(ctx, KeyProfile)
	require.NoError(t, err)
	assert.Equal(t, `{}`, got)
}

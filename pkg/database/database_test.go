package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		url     string
		want    Kind
		wantErr bool
	}{
		{"", KindNone, false},
		{"mongodb://localhost:27017", KindMongo, false},
		{"mongodb+srv://cluster.example.net", KindMongo, false},
		{"postgres://user:pw@localhost:5432/seafood", KindPostgres, false},
		{"postgresql://localhost/seafood", KindPostgres, false},
		{"sqlite://seafood.db", KindSQLite, false},
		{"file::memory:?cache=shared", KindSQLite, false},
		{"mysql://localhost", KindNone, true},
	}

	for _, tc := range tests {
		got, err := DetectKind(tc.url)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedURL, tc.url)
			continue
		}
		require.NoError(t, err, tc.url)
		assert.Equal(t, tc.want, got, tc.url)
	}
}

func TestOpenWithoutURL(t *testing.T) {
	store, err := Open(context.Background(), "", "seafood", time.Second)
	require.NoError(t, err)

	assert.Equal(t, KindNone, store.Kind)
	assert.False(t, store.Available())

	_, err = store.Collections(context.Background(), 10)
	assert.Error(t, err)
	assert.NoError(t, store.Close(context.Background()))
}

func TestOpenSQLiteListsTables(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "file::memory:?cache=shared", "seafood", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	require.True(t, store.Available())
	require.NoError(t, store.SQL.Exec("CREATE TABLE IF NOT EXISTS product (name TEXT)").Error)
	require.NoError(t, store.SQL.Exec("CREATE TABLE IF NOT EXISTS inquiry (name TEXT)").Error)

	names, err := store.Collections(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, names, 1)

	names, err = store.Collections(ctx, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"product", "inquiry"}, names)
}

func TestNilStoreIsUnavailable(t *testing.T) {
	var store *Store
	assert.False(t, store.Available())
	assert.NoError(t, store.Close(context.Background()))
}

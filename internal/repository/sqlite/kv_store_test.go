package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdraft/internal/domain"
	"lexdraft/internal/profilestore"
	"lexdraft/internal/repository/sqlite"
)

func openStore(t *testing.T) (*sqlite.KVStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "profiles.db")
	store, err := sqlite.Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestKVStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := openStore(t)

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", []byte(`[1]`)))
	require.NoError(t, store.Set(ctx, "k", []byte(`[1,2]`)))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[1,2]`, string(value))

	require.NoError(t, store.Delete(ctx, "k"))
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.Ping(ctx))
}

func TestKVStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store, path := openStore(t)

	profiles := profilestore.NewKeyedStore(store, "saved_profiles")
	require.NoError(t, profiles.SaveAll(ctx, "client", []domain.SavedProfile{
		{Label: "Me", Type: domain.PartyTypeIndividual, IsDefault: true, Data: domain.ProfileData{Name: "Sara"}},
	}))
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	out, err := profilestore.NewKeyedStore(reopened, "saved_profiles").Load(ctx, "client")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Sara", out[0].Data.Name)
	assert.True(t, out[0].IsDefault)
}

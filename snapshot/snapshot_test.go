package snapshot_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/banditpam/banditpam/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := snapshot.NewLocalStore(dir)
	require.NoError(t, err)

	payload := snapshot.Payload{
		K:      2,
		Loss:   "L2",
		Seed:   7,
		MBuild: []int{1, 4},
		MFinal: []int{1, 7},
		A:      []int{0, 0, 1, 1},
		Steps:  3,
	}
	data, err := snapshot.Encode(payload)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "fit-1.gob", data))

	got, err := store.Get(ctx, "fit-1.gob")
	require.NoError(t, err)

	decoded, err := snapshot.Decode(got)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestLocalStore_GetMissingKeyErrors(t *testing.T) {
	store, err := snapshot.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "does-not-exist.gob")
	assert.Error(t, err)
}

func TestNewLocalStore_CreatesNestedRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snapshots")
	store, err := snapshot.NewLocalStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "k", []byte("v")))
}

// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypercounter/state"
)

func newTestDatabase(t *testing.T, dir string) *Database {
	cfg := NewDefaultConfig()
	cfg.CacheSize = 1024
	db, registry, err := New(dir, cfg)
	require.NoError(t, err)
	require.NotNil(t, registry)
	return db
}

func TestGetPutDelete(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t, t.TempDir())
	defer func() {
		require.NoError(db.Close())
	}()

	_, err := db.Get([]byte("key"))
	require.ErrorIs(err, database.ErrNotFound)
	has, err := db.Has([]byte("key"))
	require.NoError(err)
	require.False(has)

	require.NoError(db.Put([]byte("key"), []byte("value")))
	v, err := db.Get([]byte("key"))
	require.NoError(err)
	require.Equal([]byte("value"), v)
	has, err = db.Has([]byte("key"))
	require.NoError(err)
	require.True(has)

	require.NoError(db.Delete([]byte("key")))
	_, err = db.Get([]byte("key"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestBatch(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t, t.TempDir())
	defer func() {
		require.NoError(db.Close())
	}()

	require.NoError(db.Put([]byte("old"), []byte{1}))

	batch := db.NewBatch()
	require.NoError(batch.Put([]byte("a"), []byte{1, 2}))
	require.NoError(batch.Delete([]byte("old")))
	require.Equal(len("a")+2+len("old"), batch.Size())

	// nothing is visible before the batch is written
	has, err := db.Has([]byte("a"))
	require.NoError(err)
	require.False(has)

	require.NoError(batch.Write())
	v, err := db.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte{1, 2}, v)
	has, err = db.Has([]byte("old"))
	require.NoError(err)
	require.False(has)

	mem := memdb.New()
	require.NoError(batch.Replay(mem))
	v, err = mem.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte{1, 2}, v)

	batch.Reset()
	require.Zero(batch.Size())
}

func TestReopen(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	db := newTestDatabase(t, dir)
	mu := state.NewSimpleMutable(db)
	require.NoError(mu.Insert(ctx, []byte("counter"), []byte{0x7f}))
	require.NoError(mu.Commit(ctx))
	require.NoError(db.Close())

	db = newTestDatabase(t, dir)
	defer func() {
		require.NoError(db.Close())
	}()
	v, err := db.Get([]byte("counter"))
	require.NoError(err)
	require.Equal([]byte{0x7f}, v)
}

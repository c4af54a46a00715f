// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	require := require.New(t)
	l := New(2)

	l.Lock("a")
	l.RLock("b")
	l.RLock("b")
	require.Equal(2, l.Locks())

	l.Unlock("a")
	require.Equal(1, l.Locks())
	l.RUnlock("b")
	l.RUnlock("b")
	require.Zero(l.Locks())
}

func TestUnlockUnknownKeyPanics(t *testing.T) {
	l := New(0)
	require.Panics(t, func() {
		l.Unlock("missing")
	})
}

func TestSerializesWriters(t *testing.T) {
	require := require.New(t)
	l := New(1)

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Lock("counter")
				counter++
				l.Unlock("counter")
			}
		}()
	}
	wg.Wait()

	require.Equal(64*100, counter)
	require.Zero(l.Locks())
}

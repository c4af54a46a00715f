// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lockmap provides read/write locks keyed by string. Entries exist
// only while some goroutine holds or waits on them.
package lockmap

import "sync"

type holderLock struct {
	holders int
	mu      sync.RWMutex
}

type Lockmap struct {
	l sync.Mutex
	m map[string]*holderLock
}

func New(initSize int) *Lockmap {
	return &Lockmap{
		m: make(map[string]*holderLock, initSize),
	}
}

func (l *Lockmap) Lock(key string) {
	l.acquire(key).mu.Lock()
}

func (l *Lockmap) Unlock(key string) {
	l.release(key).mu.Unlock()
}

func (l *Lockmap) RLock(key string) {
	l.acquire(key).mu.RLock()
}

func (l *Lockmap) RUnlock(key string) {
	l.release(key).mu.RUnlock()
}

// acquire registers the caller as a holder of [key] and returns its lock.
func (l *Lockmap) acquire(key string) *holderLock {
	l.l.Lock()
	defer l.l.Unlock()

	hl, ok := l.m[key]
	if !ok {
		hl = &holderLock{}
		l.m[key] = hl
	}
	hl.holders++
	return hl
}

// release drops the caller as a holder of [key] and returns its lock. The
// entry is removed once the last holder leaves; the returned lock is still
// valid for the final unlock.
func (l *Lockmap) release(key string) *holderLock {
	l.l.Lock()
	defer l.l.Unlock()

	hl, ok := l.m[key]
	if !ok {
		panic("lockmap: unlock of unlocked key " + key)
	}
	hl.holders--
	if hl.holders == 0 {
		delete(l.m, key)
	}
	return hl
}

func (l *Lockmap) Locks() int {
	l.l.Lock()
	defer l.l.Unlock()

	return len(l.m)
}

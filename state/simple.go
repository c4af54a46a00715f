// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*SimpleMutable)(nil)

type change struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers writes on top of a [Database]. Nothing reaches the
// database until [SimpleMutable.Commit]; dropping the SimpleMutable discards
// every buffered change.
type SimpleMutable struct {
	db Database

	changes map[string]change
}

func NewSimpleMutable(db Database) *SimpleMutable {
	return &SimpleMutable{db, make(map[string]change)}
}

func (s *SimpleMutable) GetValue(_ context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.delete {
			return nil, database.ErrNotFound
		}
		return v.value, nil
	}
	return s.db.Get(k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = change{value: v}
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = change{delete: true}
	return nil
}

// Len returns the number of buffered changes.
func (s *SimpleMutable) Len() int {
	return len(s.changes)
}

// Commit writes all buffered changes to the database in a single batch.
func (s *SimpleMutable) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(s.changes) == 0 {
		return nil
	}
	batch := s.db.NewBatch()
	for k, v := range s.changes {
		var err error
		if v.delete {
			err = batch.Delete([]byte(k))
		} else {
			err = batch.Put([]byte(k), v.value)
		}
		if err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	clear(s.changes)
	return nil
}

// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

type Immutable interface {
	GetValue(ctx context.Context, key []byte) (value []byte, err error)
}

type Mutable interface {
	Immutable

	Insert(ctx context.Context, key []byte, value []byte) error
	Remove(ctx context.Context, key []byte) error
}

//go:generate go run go.uber.org/mock/mockgen -package=statemock -destination=statemock/database.go -mock_names=Database=MockDatabase . Database

// Database is the durable store contract state is committed to. Both
// [github.com/ava-labs/hypercounter/pebble.Database] and avalanchego's memdb
// satisfy it.
type Database interface {
	database.KeyValueReader
	database.KeyValueWriterDeleter
	database.Batcher
}

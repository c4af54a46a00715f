// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/contract"
	"github.com/ava-labs/hypercounter/state"
)

var ErrCorruptState = errors.New("corrupt contract state")

// [contractStatePrefix] + [address]
func StateKey(addr codec.Address) (k []byte) {
	k = make([]byte, 1+codec.AddressLen)
	k[0] = contractStatePrefix
	copy(k[1:], addr[:])
	return
}

// GetState loads the record of the contract at [addr]. A contract that never
// persisted anything reads as a freshly deployed one.
func GetState(ctx context.Context, im state.Immutable, addr codec.Address) (*contract.State, error) {
	b, err := im.GetValue(ctx, StateKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return contract.New(), nil
	}
	if err != nil {
		return nil, err
	}
	s, err := contract.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptState, addr, err)
	}
	return s, nil
}

func SetState(ctx context.Context, mu state.Mutable, addr codec.Address, s *contract.State) error {
	b, err := s.Bytes()
	if err != nil {
		return err
	}
	return mu.Insert(ctx, StateKey(addr), b)
}

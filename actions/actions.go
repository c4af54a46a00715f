// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package actions binds the counter contract to the runtime: each method
// loads the contract record, runs one contract operation on it and, for
// mutating methods, stores it back.
package actions

import (
	"context"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/contract"
	"github.com/ava-labs/hypercounter/runtime"
	"github.com/ava-labs/hypercounter/storage"
)

// NoteResult is the output of [GetNote].
type NoteResult struct {
	Found bool   `json:"found"`
	Note  string `json:"note"`
}

// Methods returns the full call surface of the counter contract.
func Methods() []runtime.Method {
	return []runtime.Method{
		{Name: GetValue, Access: runtime.ReadOnly, Handler: getValue},
		{Name: Increment, Access: runtime.ReadWrite, Handler: mutate(increment)},
		{Name: Decrement, Access: runtime.ReadWrite, Handler: mutate(decrement)},
		{Name: Reset, Access: runtime.ReadWrite, Handler: mutate(reset)},
		{Name: RecordNote, Access: runtime.ReadWrite, Handler: mutate(recordNote)},
		{Name: GetNote, Access: runtime.ReadOnly, Handler: getNote},
		{Name: SetLocalID, Access: runtime.ReadWrite, Handler: mutate(setLocalID)},
		{Name: GetLocalID, Access: runtime.ReadOnly, Handler: getLocalID},
		{Name: GetAccountID, Access: runtime.ReadOnly, Handler: getAccountID},
		{Name: DisplayAccountID, Access: runtime.ReadOnly, Handler: displayAccountID},
	}
}

// mutate wraps an operation in load-mutate-store. The record is only stored
// when [op] succeeds. Mutating methods return the counter value after the
// call.
func mutate(op func(call *runtime.CallContext, s *contract.State) error) runtime.Handler {
	return func(ctx context.Context, call *runtime.CallContext) ([]byte, error) {
		s, err := storage.GetState(ctx, call.State, call.Contract)
		if err != nil {
			return nil, err
		}
		if err := op(call, s); err != nil {
			return nil, err
		}
		if err := storage.SetState(ctx, call.State, call.Contract, s); err != nil {
			return nil, err
		}
		return codec.Marshal(s.GetValue())
	}
}

func increment(call *runtime.CallContext, s *contract.State) error {
	return s.Increment(call)
}

func decrement(call *runtime.CallContext, s *contract.State) error {
	return s.Decrement(call)
}

func reset(call *runtime.CallContext, s *contract.State) error {
	s.Reset(call)
	return nil
}

func recordNote(call *runtime.CallContext, s *contract.State) error {
	message, err := codec.Unmarshal[string](call.Params)
	if err != nil {
		return err
	}
	s.RecordNote(call, call.Actor, message)
	return nil
}

func setLocalID(call *runtime.CallContext, s *contract.State) error {
	id, err := codec.Unmarshal[string](call.Params)
	if err != nil {
		return err
	}
	return s.SetLocalID(call, id)
}

func getValue(ctx context.Context, call *runtime.CallContext) ([]byte, error) {
	s, err := storage.GetState(ctx, call.State, call.Contract)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(s.GetValue())
}

func getNote(ctx context.Context, call *runtime.CallContext) ([]byte, error) {
	account, err := codec.Unmarshal[codec.Address](call.Params)
	if err != nil {
		return nil, err
	}
	s, err := storage.GetState(ctx, call.State, call.Contract)
	if err != nil {
		return nil, err
	}
	note, found := s.Note(account)
	return codec.Marshal(NoteResult{Found: found, Note: note})
}

func getLocalID(ctx context.Context, call *runtime.CallContext) ([]byte, error) {
	s, err := storage.GetState(ctx, call.State, call.Contract)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(s.LocalID())
}

func getAccountID(_ context.Context, call *runtime.CallContext) ([]byte, error) {
	return codec.Marshal(call.Contract)
}

func displayAccountID(_ context.Context, call *runtime.CallContext) ([]byte, error) {
	contract.DisplayAccountID(call, call.Contract)
	return nil, nil
}

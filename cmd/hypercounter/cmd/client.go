// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/ava-labs/hypercounter/actions"
	"github.com/ava-labs/hypercounter/api/jsonrpc"
	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/runtime"
)

var (
	_ counterClient = (*localClient)(nil)
	_ counterClient = (*jsonrpc.JSONRPCClient)(nil)
)

// counterClient is the call surface shared by the local runtime and a
// remote node.
type counterClient interface {
	GetValue(ctx context.Context) (int8, error)
	Increment(ctx context.Context) (int8, []string, error)
	Decrement(ctx context.Context) (int8, []string, error)
	Reset(ctx context.Context) (int8, []string, error)
	RecordNote(ctx context.Context, message string) ([]string, error)
	GetNote(ctx context.Context, account codec.Address) (string, bool, error)
	SetLocalID(ctx context.Context, id string) ([]string, error)
	GetLocalID(ctx context.Context) (string, error)
	AccountID(ctx context.Context) (codec.Address, error)
}

type localClient struct {
	rt       *runtime.Runtime
	contract codec.Address
	actor    codec.Address
}

func (l *localClient) call(ctx context.Context, method string, params any) (*runtime.Result, error) {
	var b []byte
	if params != nil {
		var err error
		b, err = codec.Marshal(params)
		if err != nil {
			return nil, err
		}
	}
	return l.rt.Call(ctx, &runtime.CallInfo{
		Contract: l.contract,
		Actor:    l.actor,
		Method:   method,
		Params:   b,
	})
}

func (l *localClient) value(ctx context.Context, method string) (int8, []string, error) {
	result, err := l.call(ctx, method, nil)
	if err != nil {
		return 0, nil, err
	}
	v, err := codec.Unmarshal[int8](result.Output)
	return v, result.Logs, err
}

func (l *localClient) GetValue(ctx context.Context) (int8, error) {
	v, _, err := l.value(ctx, actions.GetValue)
	return v, err
}

func (l *localClient) Increment(ctx context.Context) (int8, []string, error) {
	return l.value(ctx, actions.Increment)
}

func (l *localClient) Decrement(ctx context.Context) (int8, []string, error) {
	return l.value(ctx, actions.Decrement)
}

func (l *localClient) Reset(ctx context.Context) (int8, []string, error) {
	return l.value(ctx, actions.Reset)
}

func (l *localClient) RecordNote(ctx context.Context, message string) ([]string, error) {
	result, err := l.call(ctx, actions.RecordNote, message)
	if err != nil {
		return nil, err
	}
	return result.Logs, nil
}

func (l *localClient) GetNote(ctx context.Context, account codec.Address) (string, bool, error) {
	result, err := l.call(ctx, actions.GetNote, account)
	if err != nil {
		return "", false, err
	}
	note, err := codec.Unmarshal[actions.NoteResult](result.Output)
	return note.Note, note.Found, err
}

func (l *localClient) SetLocalID(ctx context.Context, id string) ([]string, error) {
	result, err := l.call(ctx, actions.SetLocalID, id)
	if err != nil {
		return nil, err
	}
	return result.Logs, nil
}

func (l *localClient) GetLocalID(ctx context.Context) (string, error) {
	result, err := l.call(ctx, actions.GetLocalID, nil)
	if err != nil {
		return "", err
	}
	return codec.Unmarshal[string](result.Output)
}

func (l *localClient) AccountID(ctx context.Context) (codec.Address, error) {
	result, err := l.call(ctx, actions.GetAccountID, nil)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.Unmarshal[codec.Address](result.Output)
}

// DisplayAccountID has the contract log its own address.
func (l *localClient) DisplayAccountID(ctx context.Context) ([]string, error) {
	result, err := l.call(ctx, actions.DisplayAccountID, nil)
	if err != nil {
		return nil, err
	}
	return result.Logs, nil
}

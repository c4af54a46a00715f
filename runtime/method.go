// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/state"
)

type Access uint8

const (
	ReadOnly Access = iota
	ReadWrite
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case ReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// Handler executes one method against the working state of a call. Any
// returned error aborts the call and discards every write it made.
type Handler func(ctx context.Context, call *CallContext) ([]byte, error)

type Method struct {
	Name    string
	Access  Access
	Handler Handler
}

// CallInfo describes a single invocation.
type CallInfo struct {
	// Contract is the address of the contract instance being called.
	Contract codec.Address
	// Actor is the caller.
	Actor  codec.Address
	Method string
	// Params is the borsh encoding of the method arguments.
	Params []byte
}

// CallContext is what a [Handler] sees of the runtime.
type CallContext struct {
	State    state.Mutable
	Contract codec.Address
	Actor    codec.Address
	Params   []byte

	logs []string
}

// Log records a diagnostic line for the current call.
func (c *CallContext) Log(msg string) {
	c.logs = append(c.logs, msg)
}

func (c *CallContext) Logs() []string {
	return c.logs
}

// Result is the outcome of a call. Logs are kept for aborted calls too.
type Result struct {
	Contract  codec.Address `json:"contract"`
	Actor     codec.Address `json:"actor"`
	Method    string        `json:"method"`
	Output    codec.Bytes   `json:"output,omitempty"`
	Logs      []string      `json:"logs"`
	Error     string        `json:"error,omitempty"`
	Timestamp int64         `json:"timestamp"`
}

func (r *Result) Success() bool {
	return r.Error == ""
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import (
	"context"
	"net/http"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/hypercounter/actions"
	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/consts"
	"github.com/ava-labs/hypercounter/runtime"
	"github.com/ava-labs/hypercounter/server"
)

const (
	Name     = consts.Name
	Endpoint = "/counterapi"
)

// Caller executes contract calls.
type Caller interface {
	Call(ctx context.Context, info *runtime.CallInfo) (*runtime.Result, error)
}

type JSONRPCServer struct {
	log      logging.Logger
	tracer   trace.Tracer
	caller   Caller
	contract codec.Address
}

func NewJSONRPCServer(log logging.Logger, tracer trace.Tracer, caller Caller, contract codec.Address) *JSONRPCServer {
	return &JSONRPCServer{
		log:      log,
		tracer:   tracer,
		caller:   caller,
		contract: contract,
	}
}

// NewHandler returns the HTTP handler to mount at [Endpoint].
func NewHandler(j *JSONRPCServer) (http.Handler, error) {
	return server.NewHandler(j, Name)
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	j.log.Info("ping")
	reply.Success = true
	return nil
}

// CallArgs identify the caller. A missing actor calls as the local actor.
type CallArgs struct {
	Actor codec.Address `json:"actor"`
}

type ValueReply struct {
	Value int8     `json:"value"`
	Logs  []string `json:"logs"`
}

func (j *JSONRPCServer) GetValue(req *http.Request, args *CallArgs, reply *ValueReply) error {
	return j.callValue(req, args.Actor, actions.GetValue, reply)
}

func (j *JSONRPCServer) Increment(req *http.Request, args *CallArgs, reply *ValueReply) error {
	return j.callValue(req, args.Actor, actions.Increment, reply)
}

func (j *JSONRPCServer) Decrement(req *http.Request, args *CallArgs, reply *ValueReply) error {
	return j.callValue(req, args.Actor, actions.Decrement, reply)
}

func (j *JSONRPCServer) Reset(req *http.Request, args *CallArgs, reply *ValueReply) error {
	return j.callValue(req, args.Actor, actions.Reset, reply)
}

type RecordNoteArgs struct {
	Actor   codec.Address `json:"actor"`
	Message string        `json:"message"`
}

type LogsReply struct {
	Logs []string `json:"logs"`
}

func (j *JSONRPCServer) RecordNote(req *http.Request, args *RecordNoteArgs, reply *LogsReply) error {
	result, err := j.call(req, args.Actor, actions.RecordNote, args.Message)
	if err != nil {
		return err
	}
	reply.Logs = result.Logs
	return nil
}

type GetNoteArgs struct {
	Account codec.Address `json:"account"`
}

type GetNoteReply struct {
	Found bool   `json:"found"`
	Note  string `json:"note"`
}

func (j *JSONRPCServer) GetNote(req *http.Request, args *GetNoteArgs, reply *GetNoteReply) error {
	result, err := j.call(req, codec.EmptyAddress, actions.GetNote, args.Account)
	if err != nil {
		return err
	}
	note, err := codec.Unmarshal[actions.NoteResult](result.Output)
	if err != nil {
		return err
	}
	reply.Found = note.Found
	reply.Note = note.Note
	return nil
}

type SetLocalIDArgs struct {
	Actor codec.Address `json:"actor"`
	ID    string        `json:"id"`
}

func (j *JSONRPCServer) SetLocalID(req *http.Request, args *SetLocalIDArgs, reply *LogsReply) error {
	result, err := j.call(req, args.Actor, actions.SetLocalID, args.ID)
	if err != nil {
		return err
	}
	reply.Logs = result.Logs
	return nil
}

type GetLocalIDReply struct {
	ID string `json:"id"`
}

func (j *JSONRPCServer) GetLocalID(req *http.Request, args *CallArgs, reply *GetLocalIDReply) error {
	result, err := j.call(req, args.Actor, actions.GetLocalID, nil)
	if err != nil {
		return err
	}
	reply.ID, err = codec.Unmarshal[string](result.Output)
	return err
}

type AccountIDReply struct {
	Account codec.Address `json:"account"`
}

func (j *JSONRPCServer) AccountID(req *http.Request, args *CallArgs, reply *AccountIDReply) error {
	result, err := j.call(req, args.Actor, actions.GetAccountID, nil)
	if err != nil {
		return err
	}
	reply.Account, err = codec.Unmarshal[codec.Address](result.Output)
	return err
}

func (j *JSONRPCServer) callValue(req *http.Request, actor codec.Address, method string, reply *ValueReply) error {
	result, err := j.call(req, actor, method, nil)
	if err != nil {
		return err
	}
	reply.Value, err = codec.Unmarshal[int8](result.Output)
	reply.Logs = result.Logs
	return err
}

func (j *JSONRPCServer) call(req *http.Request, actor codec.Address, method string, params any) (*runtime.Result, error) {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Call")
	defer span.End()

	var (
		b   []byte
		err error
	)
	if params != nil {
		b, err = codec.Marshal(params)
		if err != nil {
			return nil, err
		}
	}
	if actor == codec.EmptyAddress {
		actor = consts.LocalActor
	}
	return j.caller.Call(ctx, &runtime.CallInfo{
		Contract: j.contract,
		Actor:    actor,
		Method:   method,
		Params:   b,
	})
}

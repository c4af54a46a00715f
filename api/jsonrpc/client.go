// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import (
	"context"
	"strings"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/requester"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester
	actor     codec.Address
}

// NewJSONRPCClient returns a client of the node at [uri] that calls as
// [actor].
func NewJSONRPCClient(uri string, actor codec.Address) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint
	req := requester.New(uri, Name)
	return &JSONRPCClient{requester: req, actor: actor}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		"ping",
		nil,
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) GetValue(ctx context.Context) (int8, error) {
	resp, err := cli.value(ctx, "getValue")
	return resp.Value, err
}

// Increment returns the value after the call and the lines it logged.
func (cli *JSONRPCClient) Increment(ctx context.Context) (int8, []string, error) {
	resp, err := cli.value(ctx, "increment")
	return resp.Value, resp.Logs, err
}

func (cli *JSONRPCClient) Decrement(ctx context.Context) (int8, []string, error) {
	resp, err := cli.value(ctx, "decrement")
	return resp.Value, resp.Logs, err
}

func (cli *JSONRPCClient) Reset(ctx context.Context) (int8, []string, error) {
	resp, err := cli.value(ctx, "reset")
	return resp.Value, resp.Logs, err
}

func (cli *JSONRPCClient) RecordNote(ctx context.Context, message string) ([]string, error) {
	resp := new(LogsReply)
	err := cli.requester.SendRequest(
		ctx,
		"recordNote",
		&RecordNoteArgs{Actor: cli.actor, Message: message},
		resp,
	)
	return resp.Logs, err
}

func (cli *JSONRPCClient) GetNote(ctx context.Context, account codec.Address) (string, bool, error) {
	resp := new(GetNoteReply)
	err := cli.requester.SendRequest(
		ctx,
		"getNote",
		&GetNoteArgs{Account: account},
		resp,
	)
	return resp.Note, resp.Found, err
}

func (cli *JSONRPCClient) SetLocalID(ctx context.Context, id string) ([]string, error) {
	resp := new(LogsReply)
	err := cli.requester.SendRequest(
		ctx,
		"setLocalID",
		&SetLocalIDArgs{Actor: cli.actor, ID: id},
		resp,
	)
	return resp.Logs, err
}

func (cli *JSONRPCClient) GetLocalID(ctx context.Context) (string, error) {
	resp := new(GetLocalIDReply)
	err := cli.requester.SendRequest(
		ctx,
		"getLocalID",
		&CallArgs{Actor: cli.actor},
		resp,
	)
	return resp.ID, err
}

func (cli *JSONRPCClient) AccountID(ctx context.Context) (codec.Address, error) {
	resp := new(AccountIDReply)
	err := cli.requester.SendRequest(
		ctx,
		"accountID",
		&CallArgs{Actor: cli.actor},
		resp,
	)
	return resp.Account, err
}

func (cli *JSONRPCClient) value(ctx context.Context, method string) (*ValueReply, error) {
	resp := new(ValueReply)
	err := cli.requester.SendRequest(
		ctx,
		method,
		&CallArgs{Actor: cli.actor},
		resp,
	)
	return resp, err
}

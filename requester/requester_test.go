// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/stretchr/testify/require"
)

type echoArgs struct {
	Message string `json:"message"`
}

func TestSendRequest(t *testing.T) {
	require := require.New(t)

	var (
		contentType string
		got         map[string]json.RawMessage
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","result":{"message":"pong"},"id":1}`))
	}))
	defer srv.Close()

	reply := new(echoArgs)
	err := New(srv.URL, "svc").SendRequest(context.Background(), "echo", &echoArgs{Message: "ping"}, reply)
	require.NoError(err)
	require.Equal("pong", reply.Message)
	require.Equal("application/json", contentType)
	require.JSONEq(`"svc.echo"`, string(got["method"]))
	require.JSONEq(`{"message":"ping"}`, string(got["params"]))
}

func TestRemoteError(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32000,"message":"call aborted"},"id":1}`))
	}))
	defer srv.Close()

	err := New(srv.URL, "svc").SendRequest(context.Background(), "fail", nil, new(echoArgs))
	var rpcErr *json2.Error
	require.ErrorAs(err, &rpcErr)
	require.Equal("call aborted", rpcErr.Message)
}

func TestBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	err := New(srv.URL, "svc").SendRequest(context.Background(), "any", nil, new(echoArgs))
	require.ErrorIs(t, err, ErrBadStatus)
}

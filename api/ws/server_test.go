// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/internal/logging"
	"github.com/ava-labs/hypercounter/runtime"
)

func newTestServer(t *testing.T, backlog int) (*Server, string) {
	s := New(&logging.Noop{}, backlog, []string{"http://localhost"})
	mux := http.NewServeMux()
	mux.Handle(Endpoint, s)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return s, srv.URL
}

func TestStreamResults(t *testing.T) {
	require := require.New(t)

	s, uri := newTestServer(t, 16)
	cli, err := NewClient(uri)
	require.NoError(err)
	defer cli.Close()

	require.Eventually(func() bool {
		return s.Len() == 1
	}, 5*time.Second, 10*time.Millisecond)

	result := &runtime.Result{
		Contract:  codec.CreateAddress(0, ids.GenerateTestID()),
		Actor:     codec.CreateAddress(1, ids.GenerateTestID()),
		Method:    "increment",
		Output:    codec.Bytes{0x1},
		Logs:      []string{"Increased number to 1"},
		Timestamp: 1,
	}
	s.Observe(result)

	got, err := cli.ListenResult()
	require.NoError(err)
	require.Equal(result, got)

	s.Close()
	require.Zero(s.Len())
	_, err = cli.ListenResult()
	require.Error(err)
}

func TestSlowSubscriberDropsMessages(t *testing.T) {
	require := require.New(t)

	s := New(&logging.Noop{}, 1, nil)
	conn := newConnection(s, nil, 1)
	s.conns.Add(conn)

	require.True(conn.Send([]byte("a")))
	require.False(conn.Send([]byte("b")))

	conn.deactivate()
	require.False(conn.Send([]byte("c")))
	require.Zero(s.Len())

	// deactivating twice is harmless
	conn.deactivate()
}

func TestUpgradeChecksOrigin(t *testing.T) {
	require := require.New(t)

	_, uri := newTestServer(t, 1)
	wsURI := strings.Replace(uri, "http", "ws", 1) + Endpoint

	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(wsURI, header)
	require.ErrorIs(err, websocket.ErrBadHandshake)
	require.Equal(http.StatusForbidden, resp.StatusCode)
	require.NoError(resp.Body.Close())

	header.Set("Origin", "http://localhost")
	conn, _, err := websocket.DefaultDialer.Dial(wsURI, header)
	require.NoError(err)
	require.NoError(conn.Close())

	s := New(&logging.Noop{}, 1, []string{"*"})
	r := httptest.NewRequest(http.MethodGet, Endpoint, nil)
	r.Header.Set("Origin", "http://evil.example")
	require.True(s.upgrader.CheckOrigin(r))
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ws

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ava-labs/hypercounter/runtime"
)

type Client struct {
	conn *websocket.Conn
	rl   sync.Mutex
	cl   sync.Once
}

// NewClient dials the result stream of the node at [uri] (for example
// http://127.0.0.1:9650).
func NewClient(uri string) (*Client, error) {
	uri = strings.TrimSuffix(uri, "/")
	uri = strings.Replace(uri, "http", "ws", 1) + Endpoint
	conn, resp, err := websocket.DefaultDialer.Dial(uri, nil)
	if err != nil {
		return nil, err
	}
	// not using resp for now
	resp.Body.Close()
	return &Client{conn: conn}, nil
}

// ListenResult blocks until the next call result is streamed.
func (c *Client) ListenResult() (*runtime.Result, error) {
	c.rl.Lock()
	defer c.rl.Unlock()

	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	result := new(runtime.Result)
	return result, json.Unmarshal(msg, result)
}

func (c *Client) Close() error {
	var err error
	c.cl.Do(func() {
		err = c.conn.Close()
	})
	return err
}

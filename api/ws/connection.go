// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Connection is a single subscriber of the result stream.
type Connection struct {
	s *Server

	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte

	// Represents if the connection can receive new messages. [sendLock]
	// keeps [send] from being closed while a message is queued.
	active   *atomic.Bool
	sendLock sync.RWMutex
}

func newConnection(s *Server, conn *websocket.Conn, backlog int) *Connection {
	return &Connection{
		s:      s,
		conn:   conn,
		send:   make(chan []byte, backlog),
		active: atomic.NewBool(true),
	}
}

// deactivate stops the connection from accepting new messages and lets the
// write pump drain and exit.
func (c *Connection) deactivate() {
	c.sendLock.Lock()
	if !c.active.CompareAndSwap(true, false) {
		c.sendLock.Unlock()
		return
	}
	close(c.send)
	c.sendLock.Unlock()

	c.s.removeConnection(c)
}

// Send queues [msg] and returns whether it was queued. A subscriber that
// falls more than the backlog behind misses messages.
func (c *Connection) Send(msg []byte) bool {
	c.sendLock.RLock()
	defer c.sendLock.RUnlock()

	if !c.active.Load() {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// readPump only processes control frames. Any data frame from a subscriber
// closes the connection.
func (c *Connection) readPump() {
	defer func() {
		c.deactivate()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxReadMessageSize)
	// SetReadDeadline returns an error if the connection is corrupted
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
			) {
				c.s.log.Debug("unexpected close in websockets",
					zap.Error(err),
				)
			}
			return
		}
		c.s.log.Debug("closing the connection",
			zap.String("reason", "subscriber sent a data frame"),
		)
		return
	}
}

// writePump is the only writer of the connection.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.deactivate()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.s.log.Debug("closing the connection",
					zap.String("reason", "failed to set the write deadline"),
					zap.Error(err),
				)
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.s.log.Debug("closing the connection",
					zap.String("reason", "failed to write message"),
					zap.Error(err),
				)
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

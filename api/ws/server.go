// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ava-labs/hypercounter/runtime"
)

// Server streams every executed call result, as JSON, to all connected
// subscribers. Register [Server.Observe] with the runtime.
type Server struct {
	log      logging.Logger
	backlog  int
	upgrader websocket.Upgrader

	lock  sync.RWMutex
	conns set.Set[*Connection]
}

// New returns a stream accepting upgrades from [allowedOrigins]. "*" allows
// every origin. Requests without an Origin header are not from a browser and
// are always accepted.
func New(log logging.Logger, backlog int, allowedOrigins []string) *Server {
	origins := set.Of(allowedOrigins...)
	return &Server{
		log:     log,
		backlog: backlog,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins.Contains("*") || origins.Contains(origin)
			},
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wsConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("failed to upgrade",
			zap.Error(err),
		)
		return
	}
	conn := newConnection(s, wsConn, s.backlog)

	s.lock.Lock()
	s.conns.Add(conn)
	s.lock.Unlock()

	go conn.writePump()
	go conn.readPump()
}

// Observe publishes [result] to every subscriber.
func (s *Server) Observe(result *runtime.Result) {
	msg, err := json.Marshal(result)
	if err != nil {
		s.log.Warn("unable to marshal result",
			zap.String("method", result.Method),
			zap.Error(err),
		)
		return
	}
	s.Publish(msg)
}

// Publish sends [msg] to every subscriber.
func (s *Server) Publish(msg []byte) {
	s.lock.RLock()
	conns := s.conns.List()
	s.lock.RUnlock()

	for _, conn := range conns {
		if !conn.Send(msg) {
			s.log.Verbo("dropping message to subscriber due to too many pending messages")
		}
	}
}

// Len returns the number of connected subscribers.
func (s *Server) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.conns.Len()
}

// Close disconnects every subscriber.
func (s *Server) Close() {
	s.lock.RLock()
	conns := s.conns.List()
	s.lock.RUnlock()

	for _, conn := range conns {
		conn.deactivate()
	}
}

func (s *Server) removeConnection(c *Connection) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.conns.Remove(c)
}

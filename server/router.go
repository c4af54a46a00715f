// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/gorilla/mux"
)

var ErrDuplicateRoute = errors.New("duplicate route")

type router struct {
	lock   sync.RWMutex
	router *mux.Router
	routes set.Set[string]
}

func newRouter() *router {
	return &router{
		router: mux.NewRouter(),
	}
}

func (r *router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	r.router.ServeHTTP(w, req)
}

func (r *router) AddRouter(path string, handler http.Handler) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.routes.Contains(path) {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, path)
	}
	r.router.Handle(path, handler)
	r.routes.Add(path)
	return nil
}

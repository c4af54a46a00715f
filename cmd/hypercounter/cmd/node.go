// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/hypercounter/actions"
	"github.com/ava-labs/hypercounter/config"
	"github.com/ava-labs/hypercounter/pebble"
	"github.com/ava-labs/hypercounter/runtime"
	"github.com/ava-labs/hypercounter/storage"
	"github.com/ava-labs/hypercounter/trace"

	avatrace "github.com/ava-labs/avalanchego/trace"
	hlogging "github.com/ava-labs/hypercounter/internal/logging"
)

// node is the local contract host every command other than "remote" runs
// against.
type node struct {
	config  *config.Config
	logs    *hlogging.Factory
	log     logging.Logger
	tracer  avatrace.Tracer
	db      *pebble.Database
	metrics prometheus.Gatherers
	runtime *runtime.Runtime
}

func loadConfig() (*config.Config, error) {
	var (
		c   *config.Config
		err error
	)
	if configPath != "" {
		c, err = config.Load(dataDir, configPath)
	} else {
		c, err = config.New(dataDir, nil)
	}
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		if err := c.SetLogLevel(logLevel); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newNode() (*node, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}
	n := &node{config: c}

	logConfig, err := c.GetLogConfig()
	if err != nil {
		return nil, err
	}
	n.logs = hlogging.NewFactory(logConfig)
	n.log, err = n.logs.Make("hypercounter")
	if err != nil {
		n.logs.Close()
		return nil, err
	}

	n.tracer, err = trace.New(c.GetTraceConfig())
	if err != nil {
		n.logs.Close()
		return nil, err
	}

	db, dbRegistry, err := storage.New(c.Database, c.DataDir, storage.StateNamespace)
	if err != nil {
		n.close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	n.db = db

	runtimeRegistry := prometheus.NewRegistry()
	n.runtime, err = runtime.New(n.log, n.tracer, db, runtimeRegistry, actions.Methods()...)
	if err != nil {
		n.close()
		return nil, err
	}
	n.metrics = prometheus.Gatherers{runtimeRegistry, dbRegistry}

	n.log.Info("node initialized",
		zap.String("dataDir", c.DataDir),
		zap.Stringer("contract", c.GetContract()),
	)
	return n, nil
}

func (n *node) close() {
	var errs []error
	if n.db != nil {
		errs = append(errs, n.db.Close())
	}
	if n.tracer != nil {
		errs = append(errs, n.tracer.Close())
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close node: %s\n", err)
	}
	n.logs.Close()
}

// withNode runs [f] against a freshly opened node and closes it afterwards.
func withNode(ctx context.Context, f func(context.Context, *node) error) error {
	n, err := newNode()
	if err != nil {
		return err
	}
	defer n.close()

	return f(ctx, n)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ava-labs/hypercounter/lockmap"
	"github.com/ava-labs/hypercounter/state"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Observer is notified of every executed call, committed or aborted.
type Observer func(*Result)

// Runtime dispatches contract calls. Each call runs against a fresh view of
// the contract state; its writes reach the database in one batch if and
// only if the handler succeeds.
type Runtime struct {
	log     logging.Logger
	tracer  trace.Tracer
	db      state.Database
	metrics *metrics

	methods map[string]Method
	// calls on the same contract never overlap
	locks *lockmap.Lockmap

	observersLock sync.RWMutex
	observers     []Observer
}

func New(
	log logging.Logger,
	tracer trace.Tracer,
	db state.Database,
	registerer prometheus.Registerer,
	methods ...Method,
) (*Runtime, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	r := &Runtime{
		log:     log,
		tracer:  tracer,
		db:      db,
		metrics: m,
		methods: make(map[string]Method, len(methods)),
		locks:   lockmap.New(16),
	}
	for _, method := range methods {
		if _, ok := r.methods[method.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMethod, method.Name)
		}
		r.methods[method.Name] = method
	}
	return r, nil
}

// Method returns the registered method named [name].
func (r *Runtime) Method(name string) (Method, bool) {
	m, ok := r.methods[name]
	return m, ok
}

func (r *Runtime) AddObserver(o Observer) {
	r.observersLock.Lock()
	defer r.observersLock.Unlock()

	r.observers = append(r.observers, o)
}

// Call executes [info]. A failed call returns its [Result] (with the logs
// emitted before the failure) together with an error wrapping
// [ErrCallAborted]; the database is left exactly as it was.
func (r *Runtime) Call(ctx context.Context, info *CallInfo) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "Runtime.Call", oteltrace.WithAttributes(
		attribute.String("method", info.Method),
		attribute.Stringer("contract", info.Contract),
	))
	defer span.End()

	method, ok := r.methods[info.Method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, info.Method)
	}

	key := string(info.Contract[:])
	if method.Access == ReadOnly {
		r.locks.RLock(key)
		defer r.locks.RUnlock(key)
	} else {
		r.locks.Lock(key)
		defer r.locks.Unlock(key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := r.execute(ctx, method, info)
	r.metrics.callLatency.Observe(float64(time.Since(start)))

	if err != nil {
		r.metrics.abortedCalls.WithLabelValues(method.Name).Inc()
		result.Error = err.Error()
		span.RecordError(err)
		r.log.Debug("call aborted",
			zap.Stringer("contract", info.Contract),
			zap.String("method", method.Name),
			zap.Error(err),
		)
		err = fmt.Errorf("%w: %s: %w", ErrCallAborted, method.Name, err)
	} else {
		r.metrics.calls.WithLabelValues(method.Name).Inc()
	}
	r.notify(result)
	return result, err
}

func (r *Runtime) execute(ctx context.Context, method Method, info *CallInfo) (*Result, error) {
	// reads come from the committed database, writes stay in the recorder
	// until the handler returns successfully
	mu := state.NewSimpleMutable(r.db)
	recorder := state.NewRecorder(mu)
	call := &CallContext{
		State:    recorder,
		Contract: info.Contract,
		Actor:    info.Actor,
		Params:   info.Params,
	}
	result := &Result{
		Contract:  info.Contract,
		Actor:     info.Actor,
		Method:    method.Name,
		Timestamp: time.Now().UnixMilli(),
	}

	output, err := method.Handler(ctx, call)
	result.Logs = call.logs
	for _, line := range call.logs {
		r.log.Info("contract log",
			zap.Stringer("contract", info.Contract),
			zap.String("method", method.Name),
			zap.String("line", line),
		)
	}
	if err != nil {
		return result, err
	}

	keys := recorder.GetStateKeys()
	if method.Access == ReadOnly {
		if keys.Writes() {
			return result, ErrReadOnlyViolation
		}
		result.Output = output
		return result, nil
	}

	if err := recorder.Apply(ctx, mu); err != nil {
		return result, err
	}
	// a handler that returned successfully is committed even if the caller
	// went away in the meantime
	if err := mu.Commit(context.WithoutCancel(ctx)); err != nil {
		return result, err
	}
	result.Output = output
	return result, nil
}

func (r *Runtime) notify(result *Result) {
	r.observersLock.RLock()
	defer r.observersLock.RUnlock()

	for _, o := range r.observers {
		o(result)
	}
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "runtime"

type metrics struct {
	calls        *prometheus.CounterVec
	abortedCalls *prometheus.CounterVec
	callLatency  metric.Averager
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	callLatency, err := metric.NewAverager(
		namespace+"_call_latency",
		"time spent executing a contract call",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls",
			Help:      "number of committed contract calls",
		}, []string{"method"}),
		abortedCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aborted_calls",
			Help:      "number of contract calls aborted with their writes discarded",
		}, []string{"method"}),
		callLatency: callLatency,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.calls),
		r.Register(m.abortedCalls),
	)
	return m, errs.Err
}

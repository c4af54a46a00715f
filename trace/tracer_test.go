// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/stretchr/testify/require"
)

func TestDisabledTracerIsNoop(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{Enabled: false, AppName: "hypercounter"})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "test")
	require.False(span.IsRecording())
	span.End()
	require.NoError(tracer.Close())
}

func TestNoopTracer(t *testing.T) {
	require := require.New(t)

	var tracer trace.Tracer = Noop("hypercounter")
	ctx, span := tracer.Start(context.Background(), "test")
	require.NotNil(ctx)
	require.False(span.IsRecording())
	require.False(span.SpanContext().IsValid())
	span.End()
	require.NoError(tracer.Close())
}

func TestEnabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{
		Enabled:         true,
		TraceSampleRate: 1,
		AppName:         "hypercounter",
		Agent:           "test",
	})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "test")
	require.True(span.IsRecording())
	span.End()
}

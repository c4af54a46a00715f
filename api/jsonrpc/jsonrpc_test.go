// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc_test

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypercounter/actions"
	"github.com/ava-labs/hypercounter/api/jsonrpc"
	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/consts"
	"github.com/ava-labs/hypercounter/contract"
	"github.com/ava-labs/hypercounter/internal/logging"
	"github.com/ava-labs/hypercounter/runtime"
	"github.com/ava-labs/hypercounter/trace"

	ginkgo "github.com/onsi/ginkgo/v2"
)

var _ = ginkgo.Describe("[JSON-RPC]", func() {
	var (
		ctx      context.Context
		counter  codec.Address
		actor    codec.Address
		srv      *httptest.Server
		cli      *jsonrpc.JSONRPCClient
	)

	ginkgo.BeforeEach(func() {
		require := require.New(ginkgo.GinkgoT())

		ctx = context.Background()
		counter = codec.CreateAddress(consts.ContractTypeID, ids.GenerateTestID())
		actor = codec.CreateAddress(consts.ActorTypeID, ids.GenerateTestID())

		tracer := trace.Noop("jsonrpc_test")
		rt, err := runtime.New(&logging.Noop{}, tracer, memdb.New(), prometheus.NewRegistry(), actions.Methods()...)
		require.NoError(err)
		handler, err := jsonrpc.NewHandler(jsonrpc.NewJSONRPCServer(&logging.Noop{}, tracer, rt, counter))
		require.NoError(err)

		mux := http.NewServeMux()
		mux.Handle(jsonrpc.Endpoint, handler)
		srv = httptest.NewServer(mux)
		cli = jsonrpc.NewJSONRPCClient(srv.URL, actor)
	})

	ginkgo.AfterEach(func() {
		srv.Close()
	})

	ginkgo.It("pings", func() {
		require := require.New(ginkgo.GinkgoT())

		ok, err := cli.Ping(ctx)
		require.NoError(err)
		require.True(ok)
	})

	ginkgo.It("counts", func() {
		require := require.New(ginkgo.GinkgoT())

		v, err := cli.GetValue(ctx)
		require.NoError(err)
		require.Zero(v)

		v, logs, err := cli.Increment(ctx)
		require.NoError(err)
		require.Equal(int8(1), v)
		require.Equal([]string{"Increased number to 1"}, logs)

		v, _, err = cli.Decrement(ctx)
		require.NoError(err)
		require.Zero(v)

		v, _, err = cli.Decrement(ctx)
		require.NoError(err)
		require.Equal(int8(-1), v)

		v, logs, err = cli.Reset(ctx)
		require.NoError(err)
		require.Zero(v)
		require.Equal([]string{"Reset counter to zero"}, logs)
	})

	ginkgo.It("rejects overflow and keeps the value", func() {
		require := require.New(ginkgo.GinkgoT())

		for i := 0; i < math.MaxInt8; i++ {
			_, _, err := cli.Increment(ctx)
			require.NoError(err)
		}
		_, _, err := cli.Increment(ctx)
		require.ErrorContains(err, contract.ErrArithmeticBoundsViolation.Error())

		v, err := cli.GetValue(ctx)
		require.NoError(err)
		require.Equal(int8(math.MaxInt8), v)
	})

	ginkgo.It("records notes per caller", func() {
		require := require.New(ginkgo.GinkgoT())

		_, found, err := cli.GetNote(ctx, actor)
		require.NoError(err)
		require.False(found)

		logs, err := cli.RecordNote(ctx, "hello")
		require.NoError(err)
		require.Len(logs, 1)

		note, found, err := cli.GetNote(ctx, actor)
		require.NoError(err)
		require.True(found)
		require.Equal("hello", note)
	})

	ginkgo.It("stores the local id", func() {
		require := require.New(ginkgo.GinkgoT())

		_, err := cli.SetLocalID(ctx, " ")
		require.ErrorContains(err, contract.ErrEmptyLocalID.Error())

		_, err = cli.SetLocalID(ctx, "alice.near")
		require.NoError(err)

		id, err := cli.GetLocalID(ctx)
		require.NoError(err)
		require.Equal("alice.near", id)
	})

	ginkgo.It("returns the contract account", func() {
		require := require.New(ginkgo.GinkgoT())

		account, err := cli.AccountID(ctx)
		require.NoError(err)
		require.Equal(counter, account)
	})
})

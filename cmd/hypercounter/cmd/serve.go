// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/hypercounter/api/jsonrpc"
	"github.com/ava-labs/hypercounter/api/ws"
	"github.com/ava-labs/hypercounter/server"
	"github.com/ava-labs/hypercounter/utils"
)

const metricsEndpoint = "/metrics"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the contract over JSON-RPC and stream call results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return withNode(ctx, serve)
	},
}

func serve(ctx context.Context, n *node) error {
	c := n.config

	stream := ws.New(n.log, c.GetStreamingBacklogSize(), c.AllowedOrigins)
	n.runtime.AddObserver(stream.Observe)
	defer stream.Close()

	rpcHandler, err := jsonrpc.NewHandler(jsonrpc.NewJSONRPCServer(n.log, n.tracer, n.runtime, c.GetContract()))
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", c.GetHTTPAddress())
	if err != nil {
		return err
	}
	srv := server.New(
		n.log,
		listener,
		server.HTTPConfig{ReadHeaderTimeout: c.ReadHeaderTimeout},
		c.AllowedOrigins,
		c.AllowedHosts,
		c.GetShutdownTimeout(),
	)
	routes := map[string]http.Handler{
		jsonrpc.Endpoint: http.MaxBytesHandler(rpcHandler, int64(c.MaxRequestSize)),
		ws.Endpoint:      stream,
		metricsEndpoint:  promhttp.HandlerFor(n.metrics, promhttp.HandlerOpts{}),
	}
	for path, handler := range routes {
		if err := srv.AddRoute(handler, path); err != nil {
			return err
		}
	}

	utils.Outf("{{green}}serving contract{{/}} %s {{green}}on{{/}} http://%s\n", c.GetContract(), listener.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Dispatch(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		n.log.Info("shutting down server",
			zap.Error(context.Cause(gctx)),
		)
		return srv.Shutdown()
	})
	return g.Wait()
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/hypercounter/api/jsonrpc"
	"github.com/ava-labs/hypercounter/api/ws"
	"github.com/ava-labs/hypercounter/utils"
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Call the contract hosted by a running node",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

func remoteCmds() []*cobra.Command {
	return counterCmds(func(ctx context.Context) (counterClient, func(), error) {
		a, err := actor()
		if err != nil {
			return nil, nil, err
		}
		if _, err := utils.GetHost(remoteURI); err != nil {
			return nil, nil, err
		}
		cli := jsonrpc.NewJSONRPCClient(remoteURI, a)
		if _, err := cli.Ping(ctx); err != nil {
			return nil, nil, err
		}
		return cli, func() {}, nil
	})
}

var remoteWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print every call the node executes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := ws.NewClient(remoteURI)
		if err != nil {
			return err
		}
		go func() {
			<-cmd.Context().Done()
			_ = cli.Close()
		}()
		defer cli.Close()

		utils.Outf("{{green}}watching{{/}} %s\n", remoteURI)
		for {
			result, err := cli.ListenResult()
			if err != nil {
				return err
			}
			if result.Success() {
				utils.Outf("{{green}}%s{{/}} by %s\n", result.Method, result.Actor)
			} else {
				utils.Outf("{{red}}%s failed:{{/}} %s\n", result.Method, result.Error)
			}
			if len(result.Logs) > 0 {
				utils.Outf("  %s\n", strings.Join(result.Logs, "\n  "))
			}
		}
	},
}

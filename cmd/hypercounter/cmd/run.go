// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/hypercounter/plan"
)

var runCmd = &cobra.Command{
	Use:   "run <path|->",
	Short: "Run a JSON or YAML call plan against the local contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			b   []byte
			err error
		)
		// if the first argument is "-" read from stdin
		if args[0] == "-" {
			b, err = io.ReadAll(cmd.InOrStdin())
		} else {
			b, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}
		p, err := plan.Parse(b)
		if err != nil {
			return err
		}
		return withNode(cmd.Context(), func(ctx context.Context, n *node) error {
			runner := plan.NewRunner(n.log, n.runtime, n.config.GetContract(), cmd.OutOrStdout())
			return runner.Run(ctx, p)
		})
	},
}

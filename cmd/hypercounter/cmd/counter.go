// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/utils"
)

// opener returns the client a command calls through and a function
// releasing it.
type opener func(ctx context.Context) (counterClient, func(), error)

// counterCmds returns the contract commands, calling through [open].
func counterCmds(open opener) []*cobra.Command {
	run := func(f func(context.Context, counterClient, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			cli, release, err := open(ctx)
			if err != nil {
				return err
			}
			defer release()
			return f(ctx, cli, args)
		}
	}
	valueCmd := func(use string, short string, call func(counterClient, context.Context) (int8, []string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, cli counterClient, _ []string) error {
				v, logs, err := call(cli, ctx)
				if err != nil {
					return err
				}
				printLogs(logs)
				utils.Outf("{{yellow}}value:{{/}} %d\n", v)
				return nil
			}),
		}
	}

	return []*cobra.Command{
		{
			Use:   "get",
			Short: "Print the counter value",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, cli counterClient, _ []string) error {
				v, err := cli.GetValue(ctx)
				if err != nil {
					return err
				}
				utils.Outf("{{yellow}}value:{{/}} %d\n", v)
				return nil
			}),
		},
		valueCmd("increment", "Add one to the counter", counterClient.Increment),
		valueCmd("decrement", "Subtract one from the counter", counterClient.Decrement),
		valueCmd("reset", "Set the counter to zero", counterClient.Reset),
		{
			Use:   "note [message]",
			Short: "Record a note for the caller",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 0 {
					message, err := promptString("note", 1, maxNoteLen)
					if err != nil {
						return err
					}
					args = []string{message}
				}
				return run(func(ctx context.Context, cli counterClient, args []string) error {
					logs, err := cli.RecordNote(ctx, args[0])
					if err != nil {
						return err
					}
					printLogs(logs)
					return nil
				})(cmd, args)
			},
		},
		{
			Use:   "note-of <address>",
			Short: "Print the note recorded by an account",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, cli counterClient, args []string) error {
				account, err := codec.StringToAddress(args[0])
				if err != nil {
					return err
				}
				note, found, err := cli.GetNote(ctx, account)
				if err != nil {
					return err
				}
				if !found {
					utils.Outf("{{red}}no note recorded for{{/}} %s\n", account)
					return nil
				}
				utils.Outf("{{yellow}}note:{{/}} %s\n", note)
				return nil
			}),
		},
		{
			Use:   "local-id [id]",
			Short: "Set the local account id, or print it when no id is given",
			Args:  cobra.MaximumNArgs(1),
			RunE: run(func(ctx context.Context, cli counterClient, args []string) error {
				if len(args) == 0 {
					id, err := cli.GetLocalID(ctx)
					if err != nil {
						return err
					}
					utils.Outf("{{yellow}}local id:{{/}} %q\n", id)
					return nil
				}
				logs, err := cli.SetLocalID(ctx, args[0])
				if err != nil {
					return err
				}
				printLogs(logs)
				return nil
			}),
		},
		{
			Use:   "account",
			Short: "Print the contract account address",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, cli counterClient, _ []string) error {
				// the local runtime can have the contract log it itself
				if l, ok := cli.(*localClient); ok {
					logs, err := l.DisplayAccountID(ctx)
					if err != nil {
						return err
					}
					printLogs(logs)
					return nil
				}
				account, err := cli.AccountID(ctx)
				if err != nil {
					return err
				}
				utils.Outf("{{yellow}}account:{{/}} %s\n", account)
				return nil
			}),
		},
	}
}

func printLogs(logs []string) {
	for _, line := range logs {
		utils.Outf("{{cyan}}log:{{/}} %s\n", line)
	}
}

func localCmds() []*cobra.Command {
	return counterCmds(func(context.Context) (counterClient, func(), error) {
		a, err := actor()
		if err != nil {
			return nil, nil, err
		}
		n, err := newNode()
		if err != nil {
			return nil, nil, err
		}
		return &localClient{
			rt:       n.runtime,
			contract: n.config.GetContract(),
			actor:    a,
		}, n.close, nil
	})
}

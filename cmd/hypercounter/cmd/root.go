// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/consts"
)

const (
	requestTimeout = 30 * time.Second
	dataFolder     = ".hypercounter"
)

var (
	dataDir    string
	configPath string
	logLevel   string
	actorFlag  string
	remoteURI  string

	rootCmd = &cobra.Command{
		Use:        "hypercounter",
		Short:      "Signed 8-bit counter contract",
		SuggestFor: []string{"hypercounter", "counter"},
	}
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	cobra.EnablePrefixMatching = true
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.DisableAutoGenTag = true
	rootCmd.SilenceErrors = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().StringVar(
		&dataDir,
		"data-dir",
		filepath.Join(homeDir, dataFolder),
		"directory holding the database and logs",
	)
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"JSON or YAML config file",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"",
		"log level (overrides the config file)",
	)
	rootCmd.PersistentFlags().StringVar(
		&actorFlag,
		"actor",
		"",
		"address calls are made as",
	)

	rootCmd.AddCommand(localCmds()...)
	rootCmd.AddCommand(
		runCmd,
		serveCmd,
		remoteCmd,
	)

	remoteCmd.PersistentFlags().StringVar(
		&remoteURI,
		"uri",
		"http://127.0.0.1:9650",
		"node to call",
	)
	remoteCmd.AddCommand(remoteCmds()...)
	remoteCmd.AddCommand(remoteWatchCmd)
}

// actor returns the caller named by --actor.
func actor() (codec.Address, error) {
	if actorFlag == "" {
		return consts.LocalActor, nil
	}
	return codec.StringToAddress(actorFlag)
}

func Execute() error {
	return rootCmd.Execute()
}

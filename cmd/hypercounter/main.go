// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "hypercounter" runs and calls the counter contract.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/ava-labs/hypercounter/cmd/hypercounter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("hypercounter failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}

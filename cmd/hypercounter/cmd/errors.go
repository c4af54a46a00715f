// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInputEmpty        = errors.New("input is empty")
	ErrInputTooLarge     = errors.New("input is too large")
	ErrMissingSubcommand = errors.New("must specify a subcommand")
)

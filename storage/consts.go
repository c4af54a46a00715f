// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

const (
	// StateNamespace is the database folder contract records live in.
	StateNamespace = "statedb"

	contractStatePrefix byte = 0x0
)

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/ava-labs/hypercounter/codec"
)

const (
	Name    = "hypercounter"
	Version = "v0.1.0"

	// Address type prefixes.
	ContractTypeID uint8 = 0
	ActorTypeID    uint8 = 1
)

var (
	// DefaultContract is where a node deploys its counter unless configured
	// otherwise.
	DefaultContract = codec.CreateAddress(ContractTypeID, ids.ID(hashing.ComputeHash256Array([]byte(Name))))

	// LocalActor is the caller of CLI commands that don't name one.
	LocalActor = codec.CreateAddress(ActorTypeID, ids.ID(hashing.ComputeHash256Array([]byte("local"))))
)

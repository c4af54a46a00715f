// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ws

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/units"
)

const (
	Endpoint = "/counterws"

	readBufferSize  = units.KiB
	writeBufferSize = units.KiB
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	// subscribers only send control frames
	maxReadMessageSize = 512 // bytes
)

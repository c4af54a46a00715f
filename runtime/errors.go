// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	ErrCallAborted       = errors.New("call aborted")
	ErrUnknownMethod     = errors.New("unknown method")
	ErrDuplicateMethod   = errors.New("duplicate method")
	ErrReadOnlyViolation = errors.New("read-only method wrote state")
)

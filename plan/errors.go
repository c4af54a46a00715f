// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import "errors"

var (
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidConfigFormat = errors.New("invalid config format")
	ErrInvalidParamType    = errors.New("invalid param type")
	ErrFailedParamTypeCast = errors.New("failed to cast param type")
	ErrInvalidOperator     = errors.New("invalid operator")
	ErrAssertionFailed     = errors.New("assertion failed")
)

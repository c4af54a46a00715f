// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Names of the contract's callable methods.
const (
	GetValue         = "get_value"
	Increment        = "increment"
	Decrement        = "decrement"
	Reset            = "reset"
	RecordNote       = "record_note"
	GetNote          = "get_note"
	SetLocalID       = "set_local_id"
	GetLocalID       = "get_local_id"
	GetAccountID     = "get_account_id"
	DisplayAccountID = "display_account_id"
)

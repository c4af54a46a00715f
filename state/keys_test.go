// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddPermissions(t *testing.T) {
	tests := []struct {
		name       string
		permission Permissions
		canRead    bool
		canAlloc   bool
		canWrite   bool
	}{
		{
			name:       "key is given Read, Write",
			permission: Read | Write,
			canRead:    true,
			canAlloc:   false,
			canWrite:   true,
		},
		{
			name:       "key is just given allocate",
			permission: Allocate,
			canRead:    true,
			canAlloc:   true,
			canWrite:   false,
		},
		{
			name:       "key is given nothing",
			permission: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			keys := Keys{}
			keys.Add("test", tt.permission)

			require.Equal(tt.canRead, keys["test"].Has(Read))
			require.Equal(tt.canAlloc, keys["test"].Has(Allocate))
			require.Equal(tt.canWrite, keys["test"].Has(Write))
			require.Equal(tt.canWrite, keys.Writes())
		})
	}
}

func TestAddUnionsPermissions(t *testing.T) {
	require := require.New(t)

	keys := Keys{}
	keys.Add("test", Read)
	keys.Add("test", Write)
	keys.Add("test", Allocate)
	require.Equal(All, keys["test"])
	require.Equal("all", keys["test"].String())
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Value   int8
	Owner   Address
	Message string
}

func TestMarshalLayout(t *testing.T) {
	require := require.New(t)

	b, err := Marshal(int8(-1))
	require.NoError(err)
	require.Equal([]byte{0xff}, b)

	b, err = Marshal("hi")
	require.NoError(err)
	require.Equal([]byte{2, 0, 0, 0, 'h', 'i'}, b)
}

func TestMarshalStruct(t *testing.T) {
	require := require.New(t)

	record := testRecord{
		Value:   -128,
		Owner:   CreateAddress(1, ids.GenerateTestID()),
		Message: "note",
	}
	b, err := Marshal(record)
	require.NoError(err)
	require.Len(b, 1+AddressLen+4+len(record.Message))

	decoded, err := Unmarshal[testRecord](b)
	require.NoError(err)
	require.Equal(record, decoded)
}

func TestUnmarshalTrailingBytes(t *testing.T) {
	require := require.New(t)

	_, err := Unmarshal[int8]([]byte{1, 2})
	require.Error(err)
}

func TestMarshalNil(t *testing.T) {
	var record *testRecord
	_, err := Marshal(record)
	require.ErrorIs(t, err, ErrNilValue)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypercounter/codec"
)

type logLines []string

func (l *logLines) Log(msg string) {
	*l = append(*l, msg)
}

func TestIncrement(t *testing.T) {
	require := require.New(t)
	var logs logLines

	s := New()
	require.NoError(s.Increment(&logs))
	require.Equal(int8(1), s.GetValue())
	require.Equal(logLines{"Increased number to 1"}, logs)
}

func TestDecrement(t *testing.T) {
	require := require.New(t)
	var logs logLines

	s := New()
	require.NoError(s.Decrement(&logs))
	require.Equal(int8(-1), s.GetValue())
	require.Equal(logLines{"Decreased number to -1"}, logs)
}

func TestIncrementAndReset(t *testing.T) {
	require := require.New(t)
	var logs logLines

	s := New()
	require.NoError(s.Increment(&logs))
	s.Reset(&logs)
	require.Zero(s.GetValue())
	require.Equal(logLines{"Increased number to 1", "Reset counter to zero"}, logs)
}

func TestResetIsIdempotent(t *testing.T) {
	require := require.New(t)
	var logs logLines

	for _, start := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
		s := &State{Value: start}
		s.Reset(&logs)
		s.Reset(&logs)
		require.Zero(s.GetValue())
	}
}

func TestOverflow(t *testing.T) {
	require := require.New(t)
	var logs logLines

	s := &State{Value: math.MaxInt8}
	err := s.Increment(&logs)
	require.ErrorIs(err, ErrArithmeticBoundsViolation)
	require.Equal(int8(math.MaxInt8), s.GetValue())
	require.Empty(logs)
}

func TestUnderflow(t *testing.T) {
	require := require.New(t)
	var logs logLines

	s := &State{Value: math.MinInt8}
	err := s.Decrement(&logs)
	require.ErrorIs(err, ErrArithmeticBoundsViolation)
	require.Equal(int8(math.MinInt8), s.GetValue())
	require.Empty(logs)
}

func TestRandomWalk(t *testing.T) {
	require := require.New(t)
	var logs logLines
	r := rand.New(rand.NewSource(1)) //nolint:gosec

	s := New()
	expected := 0
	for i := 0; i < 10_000; i++ {
		up := r.Intn(2) == 0
		switch {
		case up && expected < math.MaxInt8:
			require.NoError(s.Increment(&logs))
			expected++
		case !up && expected > math.MinInt8:
			require.NoError(s.Decrement(&logs))
			expected--
		}
		require.Equal(int8(expected), s.GetValue())
	}
}

func TestRecords(t *testing.T) {
	require := require.New(t)
	var logs logLines

	alice := codec.CreateAddress(0, ids.GenerateTestID())
	bob := codec.CreateAddress(0, ids.GenerateTestID())

	s := New()
	_, ok := s.Note(alice)
	require.False(ok)

	s.RecordNote(&logs, alice, "hello")
	s.RecordNote(&logs, alice, "hello again")
	note, ok := s.Note(alice)
	require.True(ok)
	require.Equal("hello again", note)

	_, ok = s.Note(bob)
	require.False(ok)
	require.Len(logs, 2)

	// a zero-value record still accepts notes
	empty := &State{}
	empty.RecordNote(&logs, bob, "")
	note, ok = empty.Note(bob)
	require.True(ok)
	require.Empty(note)
}

func TestSetLocalID(t *testing.T) {
	require := require.New(t)
	var logs logLines

	s := New()
	require.ErrorIs(s.SetLocalID(&logs, ""), ErrEmptyLocalID)
	require.ErrorIs(s.SetLocalID(&logs, " \n"), ErrEmptyLocalID)
	require.Empty(s.LocalID())
	require.Empty(logs)

	require.NoError(s.SetLocalID(&logs, "alice"))
	require.Equal("alice", s.LocalID())
	require.Equal(logLines{"Local account ID set to alice"}, logs)
}

func TestDisplayAccountID(t *testing.T) {
	var logs logLines
	addr := codec.CreateAddress(0, ids.GenerateTestID())

	DisplayAccountID(&logs, addr)
	require.Equal(t, logLines{"Contract Account ID: " + addr.String()}, logs)
}

func TestStateRoundTrip(t *testing.T) {
	require := require.New(t)

	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		s := New()
		s.Value = int8(v)
		b, err := s.Bytes()
		require.NoError(err)

		parsed, err := Parse(b)
		require.NoError(err)
		require.Equal(s, parsed)
	}
}

func TestStateLayout(t *testing.T) {
	require := require.New(t)

	s := &State{
		Value:          -2,
		Records:        map[string]string{"a": "x"},
		LocalAccountID: "id",
	}
	b, err := s.Bytes()
	require.NoError(err)
	require.Equal([]byte{
		0xfe,       // value
		1, 0, 0, 0, // records length
		1, 0, 0, 0, 'a',
		1, 0, 0, 0, 'x',
		2, 0, 0, 0, 'i', 'd', // local account id
	}, b)

	parsed, err := Parse(b)
	require.NoError(err)
	require.Equal(s, parsed)

	_, err = Parse(b[:len(b)-1])
	require.Error(err)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract implements the counter contract: a signed 8-bit counter
// whose arithmetic traps instead of wrapping, plus a per-account note map.
//
// A [State] is a working copy of the persisted record. Operations mutate it
// in place; an operation that returns an error leaves it untouched, so the
// caller can drop the copy and keep the previously persisted record.
package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/smath"
)

var (
	ErrArithmeticBoundsViolation = errors.New("arithmetic bounds violation")
	ErrEmptyLocalID              = errors.New("local account id is empty")
)

// Sink receives the diagnostic lines a call emits. Emission is fire and
// forget.
type Sink interface {
	Log(msg string)
}

// State is the persisted contract record. Field order is the storage
// layout and must not change.
type State struct {
	Value          int8
	Records        map[string]string
	LocalAccountID string
}

// New returns the record of a freshly deployed contract.
func New() *State {
	return &State{Records: map[string]string{}}
}

func (s *State) GetValue() int8 {
	return s.Value
}

func (s *State) Increment(sink Sink) error {
	v, err := smath.Add(s.Value, 1)
	if err != nil {
		return fmt.Errorf("%w: increment of %d: %w", ErrArithmeticBoundsViolation, s.Value, err)
	}
	s.Value = v
	sink.Log(fmt.Sprintf("Increased number to %d", s.Value))
	return nil
}

func (s *State) Decrement(sink Sink) error {
	v, err := smath.Sub(s.Value, 1)
	if err != nil {
		return fmt.Errorf("%w: decrement of %d: %w", ErrArithmeticBoundsViolation, s.Value, err)
	}
	s.Value = v
	sink.Log(fmt.Sprintf("Decreased number to %d", s.Value))
	return nil
}

func (s *State) Reset(sink Sink) {
	s.Value = 0
	sink.Log("Reset counter to zero")
}

// RecordNote stores [message] as the note of [account], replacing any
// previous note.
func (s *State) RecordNote(sink Sink, account codec.Address, message string) {
	if s.Records == nil {
		s.Records = map[string]string{}
	}
	s.Records[account.String()] = message
	sink.Log(fmt.Sprintf("Recorded note for %s", account))
}

func (s *State) Note(account codec.Address) (string, bool) {
	note, ok := s.Records[account.String()]
	return note, ok
}

// SetLocalID stores a free-form local account id. Blank ids are rejected.
func (s *State) SetLocalID(sink Sink, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyLocalID
	}
	s.LocalAccountID = id
	sink.Log(fmt.Sprintf("Local account ID set to %s", id))
	return nil
}

func (s *State) LocalID() string {
	return s.LocalAccountID
}

// DisplayAccountID logs the address the contract is deployed at.
func DisplayAccountID(sink Sink, contract codec.Address) {
	sink.Log(fmt.Sprintf("Contract Account ID: %s", contract))
}

// Bytes returns the borsh encoding of the record.
func (s *State) Bytes() ([]byte, error) {
	return codec.Marshal(*s)
}

// Parse decodes a record produced by [State.Bytes].
func Parse(b []byte) (*State, error) {
	s, err := codec.Unmarshal[State](b)
	if err != nil {
		return nil, err
	}
	if s.Records == nil {
		s.Records = map[string]string{}
	}
	return &s, nil
}

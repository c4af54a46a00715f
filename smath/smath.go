// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package smath implements checked arithmetic over fixed-width signed
// integers. Results that do not fit in the operand type are reported as
// errors instead of wrapping around.
package smath

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrOverflow  = errors.New("overflow")
	ErrUnderflow = errors.New("underflow")
)

// Max returns the largest value representable by T.
func Max[T constraints.Signed]() T {
	return ^Min[T]()
}

// Min returns the smallest value representable by T.
func Min[T constraints.Signed]() T {
	var v T = 1
	for v<<1 != 0 {
		v <<= 1
	}
	return v
}

// Add returns a + b, or an error if the sum is outside the range of T.
func Add[T constraints.Signed](a, b T) (T, error) {
	if b > 0 && a > Max[T]()-b {
		return a, ErrOverflow
	}
	if b < 0 && a < Min[T]()-b {
		return a, ErrUnderflow
	}
	return a + b, nil
}

// Sub returns a - b, or an error if the difference is outside the range
// of T.
func Sub[T constraints.Signed](a, b T) (T, error) {
	if b < 0 && a > Max[T]()+b {
		return a, ErrOverflow
	}
	if b > 0 && a < Min[T]()+b {
		return a, ErrUnderflow
	}
	return a - b, nil
}

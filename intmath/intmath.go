// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides overflow-checked integer arithmetic.
package intmath

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned if a return value would have overflowed its type.
var ErrOverflow = errors.New("overflow")

// Double returns `2*n`. If the result would overflow T then [ErrOverflow] is
// returned instead.
func Double[T constraints.Integer](n T) (T, error) {
	d := n << 1
	// Shifting back recovers `n` i.f.f. no significant bit (including the sign
	// bit of signed types) was lost.
	if d>>1 != n {
		return 0, ErrOverflow
	}
	return d, nil
}

// CheckedAdd returns `a+b`. If the result would overflow T then [ErrOverflow]
// is returned instead.
func CheckedAdd[T constraints.Integer](a, b T) (T, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrOverflow
	}
	return s, nil
}

// NextDoubling returns the smallest value of the sequence `from, 2*from,
// 4*from, ...` that is >= `need`, treating `from <= 0` as 1. If no such value
// can be represented then [ErrOverflow] is returned.
func NextDoubling[T constraints.Signed](from, need T) (T, error) {
	c := from
	for c < need {
		if c <= 0 {
			c = 1
			continue
		}
		d, err := Double(c)
		if err != nil {
			return 0, err
		}
		c = d
	}
	return c, nil
}

// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package collectionstest provides testing helpers, including a conformance
// suite, for implementations of [collections.List].
package collectionstest

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/ava-labs/collections"
)

// NoLeak calls [goleak.VerifyTestMain] with [goleak.IgnoreCurrent]. None of
// the lists start goroutines, so any found at exit were leaked by a test.
func NoLeak(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

// A Factory returns a new, empty list.
type Factory func() collections.List[int]

// Fill appends `xs` to a new list from `f`.
func (f Factory) Fill(tb testing.TB, xs ...int) collections.List[int] {
	tb.Helper()
	l := f()
	for _, x := range xs {
		if !l.Add(x) {
			tb.Fatalf("%T.Add(%d) returned false", l, x)
		}
	}
	return l
}

// Seq returns the integers `[0,n)`.
func Seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

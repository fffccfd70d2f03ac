// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arraylist

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/collections"
	"github.com/ava-labs/collections/collectionstest"
)

func TestMain(m *testing.M) {
	collectionstest.NoLeak(m)
}

func TestList(t *testing.T) {
	configs := map[string][]Option{
		"default":         nil,
		"zero_capacity":   {WithCapacity(0)},
		"exact_growth":    {WithCapacity(1), WithGrowth(Exact)},
		"large_capacity":  {WithCapacity(1000)},
		"nil_growth_opts": {WithGrowth(nil), WithLogger(nil)},
	}
	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			collectionstest.Suite{
				New: func() collections.List[int] {
					return New[int](opts...)
				},
				Invariants: func(l collections.List[int]) error {
					return invariants(l.(*List[int]))
				},
			}.Run(t)
		})
	}
}

func invariants[T comparable](l *List[T]) error {
	b := &l.buf
	if n, c := b.len(), b.cap(); n < 0 || n > c {
		return fmt.Errorf("len %d outside [0, cap %d]", n, c)
	}
	if len(b.slots) != cap(b.slots) {
		return fmt.Errorf("len(slots) %d != cap(slots) %d", len(b.slots), cap(b.slots))
	}
	var zero T
	for i := b.len(); i < b.cap(); i++ {
		if b.slots[i] != zero {
			return fmt.Errorf("unused slot %d holds %v", i, b.slots[i])
		}
	}
	return nil
}

func TestGrowth(t *testing.T) {
	const initCap = 4
	rec := collectionstest.NewLogRecorder(logging.Debug)
	l := New[int](WithCapacity(initCap), WithLogger(rec))
	require.Equal(t, initCap, l.Cap())

	var wantCaps []int
	for i := range 2*initCap + 1 {
		require.True(t, l.Add(i))
		wantCaps = append(wantCaps, l.Cap())
	}
	if diff := cmp.Diff(collectionstest.Seq(2*initCap+1), l.ToArray()); diff != "" {
		t.Errorf("%T.ToArray() after growth; diff (-want +got):\n%s", l, diff)
	}
	assert.Equal(t, []int{4, 4, 4, 4, 8, 8, 8, 8, 16}, wantCaps, "Cap() after each Add()")

	type resize struct{ From, To, Len int64 }
	var got []resize
	for _, r := range rec.At(logging.Debug) {
		f := r.Ints()
		got = append(got, resize{f["from"], f["to"], f["len"]})
	}
	want := []resize{
		{From: 4, To: 8, Len: 4},
		{From: 8, To: 16, Len: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DEBUG logs of buffer growth; diff (-want +got):\n%s", diff)
	}
}

func TestGrowthFromZeroCapacity(t *testing.T) {
	l := New[string](WithCapacity(0))
	require.Zero(t, l.Cap())

	var caps []int
	for range 5 {
		l.Add("x")
		caps = append(caps, l.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8}, caps)
}

func TestDefaultCapacity(t *testing.T) {
	l := New[int]()
	assert.Equal(t, DefaultCapacity, l.Cap())
	for i := range DefaultCapacity + 1 {
		l.Add(i)
	}
	assert.Equal(t, 2*DefaultCapacity, l.Cap())
}

func TestInsertGrowsWhenFull(t *testing.T) {
	l := Of(1, 3)
	require.Equal(t, 2, l.Cap())
	require.NoError(t, l.Insert(1, 2))
	assert.Equal(t, 4, l.Cap())
	assert.Equal(t, []int{1, 2, 3}, l.ToArray())
}

func TestInsertAllGrowsToFit(t *testing.T) {
	rec := collectionstest.NewLogRecorder(logging.Debug)
	l := New[int](WithLogger(rec))
	for i := range DefaultCapacity {
		l.Add(i)
	}

	changed, err := l.InsertAll(3, Of(collectionstest.Seq(25)...))
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 35, l.Len())
	assert.Equal(t, 40, l.Cap(), "Cap() after doubling 10 until >= 35")
	assert.Len(t, rec.Records, 1, "single resize for bulk insertion")

	want := slices.Concat([]int{0, 1, 2}, collectionstest.Seq(25), []int{3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, want, l.ToArray())
}

func TestGrowthPolicy(t *testing.T) {
	var calls [][2]int
	policy := func(have, need int) int {
		calls = append(calls, [2]int{have, need})
		return need + 3
	}
	l := New[int](WithCapacity(1), WithGrowth(policy))
	for i := range 6 {
		l.Add(i)
	}
	assert.Equal(t, [][2]int{{1, 2}, {5, 6}}, calls)
	assert.Equal(t, 9, l.Cap())

	undersized := New[int](WithCapacity(0), WithGrowth(func(int, int) int { return 0 }))
	undersized.Add(1)
	undersized.Add(2)
	assert.Equal(t, 2, undersized.Cap(), "policy returning less than needed")
	assert.Equal(t, []int{1, 2}, undersized.ToArray())
}

func TestGrowAndClip(t *testing.T) {
	l := Of(1, 2, 3)
	l.Grow(2)
	assert.Equal(t, 3, l.Cap(), "Grow() to smaller capacity")
	l.Grow(50)
	assert.Equal(t, 50, l.Cap())
	assert.Equal(t, []int{1, 2, 3}, l.ToArray())

	l.Clip()
	assert.Equal(t, 3, l.Cap())
	assert.Equal(t, []int{1, 2, 3}, l.ToArray())
}

func TestClone(t *testing.T) {
	l := New[int](WithCapacity(100))
	for i := range 7 {
		l.Add(i)
	}
	c := l.Clone()
	assert.Equal(t, 7, c.Cap(), "Clone() capacity")
	assert.Equal(t, l.ToArray(), c.ToArray())

	c.Set(0, -1) //nolint:errcheck // Index known to be valid
	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Zero(t, got, "original modified by Set() on clone")
	assert.NotSame(t, &l.buf.slots[0], &c.buf.slots[0], "clone shares buffer")
}

func TestVacatedSlotsAreCleared(t *testing.T) {
	ptrs := make([]*int, 5)
	for i := range ptrs {
		ptrs[i] = new(int)
	}
	l := Of(ptrs...)

	_, err := l.RemoveAt(1)
	require.NoError(t, err)
	require.NoError(t, invariants(l))
	assert.Nil(t, l.buf.slots[4])

	l.Remove(ptrs[3])
	require.NoError(t, invariants(l))

	l.Clear()
	require.NoError(t, invariants(l))
	assert.Equal(t, 5, l.Cap(), "Cap() retained by Clear()")
}

func TestNewFunc(t *testing.T) {
	l := NewFunc(slices.Equal[[]int])
	l.Add([]int{1, 2})
	l.Add([]int{3})
	l.Add([]int{1, 2})

	assert.Equal(t, 0, l.IndexOf([]int{1, 2}))
	assert.True(t, l.Contains([]int{3}))
	assert.False(t, l.Contains([]int{1}))
	assert.Equal(t, 2, l.Remove([]int{1, 2}))
	assert.Equal(t, [][]int{{3}}, l.ToArray())

	require.Panics(t, func() { NewFunc[int](nil) })
}

func TestWithCapacityPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { WithCapacity(-1) })
}

func TestFrom(t *testing.T) {
	src := Of(1, 2, 3)
	l := From[int](src)
	assert.Equal(t, []int{1, 2, 3}, l.ToArray())
	assert.Equal(t, 3, l.Cap())

	l.Add(4)
	assert.Equal(t, 3, src.Len(), "From() source modified")

	empty := From[int](nil)
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.Add(1))

	var nilList *List[int]
	fromNil := From[int](nilList)
	assert.True(t, fromNil.IsEmpty(), "From() of nil *List")
	assert.Equal(t, 0, fromNil.Cap())

	withCap := From[int](src, WithCapacity(64))
	assert.Equal(t, 64, withCap.Cap())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", Of(1, 2, 3).String())
	assert.Equal(t, "[]", New[int]().String())
}

func TestIteratorObservesLengthAtCreation(t *testing.T) {
	l := Of(0, 1, 2)
	it := l.Iterator()
	l.Add(3)

	var got []int
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, x)
	}
	assert.Equal(t, []int{0, 1, 2}, got)

	_, ok := it.Next()
	assert.False(t, ok, "Next() after exhaustion")
}

func TestInterleavedInsertRemove(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is useful in tests

	l := New[int](WithCapacity(0))
	var want []int
	for i := range 1000 {
		switch n := len(want); {
		case n > 0 && rng.IntN(3) == 0:
			idx := rng.IntN(n)
			got, err := l.RemoveAt(idx)
			require.NoError(t, err)
			require.Equal(t, want[idx], got)
			want = slices.Delete(want, idx, idx+1)
		default:
			idx := rng.IntN(n + 1)
			require.NoError(t, l.Insert(idx, i))
			want = slices.Insert(want, idx, i)
		}
	}

	if diff := cmp.Diff(want, l.ToArray()); diff != "" {
		t.Errorf("%T after interleaved Insert() and RemoveAt(); diff (-want +got):\n%s", l, diff)
	}
	require.NoError(t, invariants(l))
}

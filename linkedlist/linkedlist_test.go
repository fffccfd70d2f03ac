// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linkedlist

import (
	"errors"
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
		"default":        nil,
		"large_capacity": {WithCapacity(1000)},
		"nil_logger":     {WithLogger(nil)},
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

// invariants checks that the chain is well formed in both directions and
// that every arena slot is either reachable or free.
func invariants[T any](l *List[T]) error {
	if l.n == 0 {
		if l.head != none || l.tail != none {
			return fmt.Errorf("empty list with head %d and tail %d", l.head, l.tail)
		}
	} else {
		if p := l.node(l.head).prev; p != none {
			return fmt.Errorf("head.prev == %d", p)
		}
		if n := l.node(l.tail).next; n != none {
			return fmt.Errorf("tail.next == %d", n)
		}
	}

	var fwd []handle
	for h, prev := l.head, none; h != none; prev, h = h, l.node(h).next {
		if len(fwd) > l.n {
			return errors.New("cycle following next links")
		}
		if p := l.node(h).prev; p != prev {
			return fmt.Errorf("node %d: prev == %d; want %d", h, p, prev)
		}
		fwd = append(fwd, h)
	}
	if len(fwd) != l.n {
		return fmt.Errorf("%d nodes reachable from head; want %d", len(fwd), l.n)
	}
	if len(fwd) > 0 && fwd[len(fwd)-1] != l.tail {
		return fmt.Errorf("last reachable node %d is not tail %d", fwd[len(fwd)-1], l.tail)
	}

	var back []handle
	for h := l.tail; h != none && len(back) <= l.n; h = l.node(h).prev {
		back = append(back, h)
	}
	slices.Reverse(back)
	if !slices.Equal(fwd, back) {
		return fmt.Errorf("forward path %v != reversed backward path %v", fwd, back)
	}

	if got, want := l.arena.live(), l.n; got != want {
		return fmt.Errorf("%d live arena nodes; want %d", got, want)
	}
	reachable := make(map[handle]bool)
	for _, h := range fwd {
		reachable[h] = true
	}
	for _, h := range l.arena.free {
		if reachable[h] {
			return fmt.Errorf("free node %d is reachable", h)
		}
		if nd := l.node(h); nd.prev != none || nd.next != none {
			return fmt.Errorf("free node %d retains links %d, %d", h, nd.prev, nd.next)
		}
	}
	return nil
}

func TestNodeAt(t *testing.T) {
	for n := range 20 {
		l := Of(collectionstest.Seq(n)...)

		var want []handle
		for h := l.head; h != none; h = l.node(h).next {
			want = append(want, h)
		}
		for i := range n {
			assert.Equalf(t, want[i], l.nodeAt(i), "nodeAt(%d) with Len() == %d", i, n)
		}
	}
}

// TestNodeAtNearestEnd severs the links in one direction so that walking from
// the farther end would dereference [none], bounding every walk by Len()/2.
func TestNodeAtNearestEnd(t *testing.T) {
	for n := 1; n < 20; n++ {
		fwd := Of(collectionstest.Seq(n)...)
		want := fwd.ToArray()
		bwd := fwd.Clone()

		for h := range fwd.arena.nodes {
			fwd.arena.nodes[h].prev = none
		}
		for h := range bwd.arena.nodes {
			bwd.arena.nodes[h].next = none
		}

		for i := range n {
			l, dir := fwd, "forwards"
			if i > n>>1 {
				l, dir = bwd, "backwards"
			}
			var got int
			require.NotPanicsf(t, func() {
				got = l.node(l.nodeAt(i)).value
			}, "nodeAt(%d) with Len() == %d walking %s", i, n, dir)
			assert.Equalf(t, want[i], got, "nodeAt(%d) with Len() == %d", i, n)
		}
	}
}

func TestUnlinkClearsNode(t *testing.T) {
	v := new(int)
	l := Of[*int](nil, v, nil)

	h := l.nodeAt(1)
	got, err := l.RemoveAt(1)
	require.NoError(t, err)
	require.Same(t, v, got)

	nd := l.node(h)
	assert.Nil(t, nd.value, "value retained by unlinked node")
	assert.Equal(t, none, nd.prev)
	assert.Equal(t, none, nd.next)
	require.NoError(t, invariants(l))

	size := len(l.arena.nodes)
	l.Add(v)
	assert.Equal(t, size, len(l.arena.nodes), "released slot not reused")
	assert.Equal(t, h, l.tail)
	require.NoError(t, invariants(l))
}

func TestClearDetachesNodes(t *testing.T) {
	rec := collectionstest.NewLogRecorder(logging.Debug)
	ptrs := make([]*int, 11)
	for i := range ptrs {
		ptrs[i] = new(int)
	}
	l := New[*int](WithLogger(rec))
	for _, p := range ptrs {
		l.Add(p)
	}

	storage := l.arena.nodes[:cap(l.arena.nodes)]
	l.Clear()
	require.NoError(t, invariants(l))
	for i, nd := range storage {
		assert.Nilf(t, nd.value, "node %d value after Clear()", i)
	}

	cleared := rec.Filter(func(r *collectionstest.LogRecord) bool {
		return r.Msg == "Cleared list"
	})
	require.Len(t, cleared, 1)
	assert.Equal(t, int64(11), cleared[0].Ints()["nodes"])

	l.Add(ptrs[0])
	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Same(t, ptrs[0], got)
}

func TestStorageGrowthLogged(t *testing.T) {
	rec := collectionstest.NewLogRecorder(logging.Debug)
	l := New[int](WithCapacity(2), WithLogger(rec))
	l.Add(0)
	l.Add(1)
	assert.Empty(t, rec.Records, "logs before exceeding capacity")

	l.Add(2)
	require.Len(t, rec.Records, 1)
	f := rec.Records[0].Ints()
	assert.Equal(t, int64(2), f["from"])
	assert.Greater(t, f["to"], int64(2))
	assert.Equal(t, int64(2), f["len"])
}

func TestFrontBack(t *testing.T) {
	l := New[string]()
	_, ok := l.Front()
	assert.False(t, ok, "Front() of empty list")
	_, ok = l.Back()
	assert.False(t, ok, "Back() of empty list")

	l.Add("b")
	require.NoError(t, l.Insert(0, "a"))
	l.Add("c")

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, "a", front)
	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, "c", back)
}

func TestBackward(t *testing.T) {
	l := Of(collectionstest.Seq(7)...)

	var idx, vals []int
	for i, v := range l.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	want := []int{6, 5, 4, 3, 2, 1, 0}
	assert.Equal(t, want, idx)
	assert.Equal(t, want, vals)

	for i := range l.Backward() {
		if i == 4 {
			break
		}
	}
}

func TestClone(t *testing.T) {
	l := Of(collectionstest.Seq(9)...)
	for range 3 {
		_, err := l.RemoveAt(0) // leave free slots behind in the original
		require.NoError(t, err)
	}

	c := l.Clone()
	require.NoError(t, invariants(c))
	assert.Equal(t, l.ToArray(), c.ToArray())
	assert.Empty(t, c.arena.free, "free slots in clone")
	assert.NotSame(t, &l.arena.nodes[0], &c.arena.nodes[0], "clone shares node storage")

	_, err := c.Set(0, -1)
	require.NoError(t, err)
	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 3, got, "original modified by Set() on clone")
}

func TestNewFunc(t *testing.T) {
	type point struct{ x, y []int }
	eq := func(a, b point) bool {
		return slices.Equal(a.x, b.x) && slices.Equal(a.y, b.y)
	}
	l := NewFunc(eq)
	l.Add(point{x: []int{1}})
	l.Add(point{y: []int{2}})

	assert.Equal(t, 1, l.IndexOf(point{y: []int{2}}))
	assert.Equal(t, -1, l.IndexOf(point{x: []int{2}}))

	require.Panics(t, func() { NewFunc[int](nil) })
	require.Panics(t, func() { WithCapacity(-1) })
}

func TestFrom(t *testing.T) {
	src := Of("a", "b")
	l := From[string](src)
	assert.Equal(t, []string{"a", "b"}, l.ToArray())
	l.Add("c")
	assert.Equal(t, 2, src.Len())

	assert.True(t, From[string](nil).IsEmpty())

	var nilList *List[string]
	assert.True(t, From[string](nilList).IsEmpty(), "From() of nil *List")
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", Of(1, 2, 3).String())
	assert.Equal(t, "[]", New[int]().String())
}

func TestInterleavedInsertRemove(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is useful in tests

	l := New[int]()
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

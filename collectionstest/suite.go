// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionstest

import (
	"reflect"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/collections"
)

// A Suite tests an implementation of [collections.List] against the behaviour
// expected of all lists.
type Suite struct {
	New Factory
	// Invariants, if non-nil, checks implementation-specific invariants and is
	// called after every operation of the model-based test.
	Invariants func(collections.List[int]) error
}

// Run runs all tests in the suite as sub-tests of `t`.
func (s Suite) Run(t *testing.T) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(*testing.T, Factory)
	}{
		{"Add", testAdd},
		{"insert_and_remove_scenario", testInsertRemoveScenario},
		{"out_of_range", testOutOfRange},
		{"Insert", testInsert},
		{"Set", testSet},
		{"IndexOf_Contains", testIndexOf},
		{"Remove", testRemove},
		{"RemoveAll", testRemoveAll},
		{"AddAll", testAddAll},
		{"InsertAll", testInsertAll},
		{"ContainsAll", testContainsAll},
		{"Copy", testCopy},
		{"Clear", testClear},
		{"ToArray", testToArray},
		{"collections.ToArray", testToArrayInto},
		{"iteration", testIteration},
		{"ReadOnly", testReadOnly},
		{"nil_pointer_argument", testNilPointerArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, s.New)
		})
	}
	t.Run("model", s.testModel)
}

func diff(tb testing.TB, l collections.Collection[int], want []int) {
	tb.Helper()
	if diff := cmp.Diff(want, l.ToArray(), cmpopts.EquateEmpty()); diff != "" {
		tb.Errorf("%T.ToArray() diff (-want +got):\n%s", l, diff)
	}
	if got, want := l.Len(), len(want); got != want {
		tb.Errorf("%T.Len() got %d; want %d", l, got, want)
	}
}

func testAdd(t *testing.T, f Factory) {
	l := f()
	assert.True(t, l.IsEmpty(), "IsEmpty() before Add()")

	const n = 11
	for i := range n {
		require.Truef(t, l.Add(i), "%T.Add(%d)", l, i)
	}
	assert.False(t, l.IsEmpty(), "IsEmpty() after Add()")
	require.Equal(t, n, l.Len())
	for i := range n {
		got, err := l.Get(i)
		require.NoErrorf(t, err, "Get(%d)", i)
		assert.Equalf(t, i, got, "Get(%d)", i)
	}
	diff(t, l, Seq(n))
}

func testInsertRemoveScenario(t *testing.T, f Factory) {
	l := f.Fill(t, Seq(11)...)
	require.Equal(t, 11, l.Len())
	got, err := l.Get(10)
	require.NoError(t, err)
	require.Equal(t, 10, got)

	require.NoError(t, l.Insert(5, -456))
	require.Equal(t, 12, l.Len())
	for i, want := range map[int]int{5: -456, 6: 5, 11: 10} {
		got, err := l.Get(i)
		require.NoErrorf(t, err, "Get(%d)", i)
		assert.Equalf(t, want, got, "Get(%d) after Insert(5, -456)", i)
	}
	require.ErrorIs(t, l.Insert(-1, 100), collections.ErrOutOfRange)
	require.ErrorIs(t, l.Insert(20, 100), collections.ErrOutOfRange)

	removed, err := l.RemoveAt(5)
	require.NoError(t, err)
	require.Equal(t, -456, removed)
	require.Equal(t, 11, l.Len())
	got, err = l.Get(5)
	require.NoError(t, err)
	require.Equal(t, 5, got)
	diff(t, l, Seq(11))
}

func testOutOfRange(t *testing.T, f Factory) {
	for _, n := range []int{0, 1, 5} {
		l := f.Fill(t, Seq(n)...)
		for _, i := range []int{-1, n, n + 1} {
			_, err := l.Get(i)
			assert.ErrorIsf(t, err, collections.ErrOutOfRange, "Get(%d) with Len() == %d", i, n)
			_, err = l.Set(i, 42)
			assert.ErrorIsf(t, err, collections.ErrOutOfRange, "Set(%d) with Len() == %d", i, n)
			_, err = l.RemoveAt(i)
			assert.ErrorIsf(t, err, collections.ErrOutOfRange, "RemoveAt(%d) with Len() == %d", i, n)
		}
		for _, i := range []int{-1, n + 1} {
			assert.ErrorIsf(t, l.Insert(i, 42), collections.ErrOutOfRange, "Insert(%d) with Len() == %d", i, n)
			_, err := l.InsertAll(i, f.Fill(t, 42))
			assert.ErrorIsf(t, err, collections.ErrOutOfRange, "InsertAll(%d) with Len() == %d", i, n)
		}
		// Failed operations MUST NOT have mutated the list.
		diff(t, l, Seq(n))
	}
}

func testInsert(t *testing.T, f Factory) {
	l := f()
	steps := []struct {
		i, v int
		want []int
	}{
		{i: 0, v: 1, want: []int{1}},
		{i: 1, v: 3, want: []int{1, 3}}, // Len() appends
		{i: 1, v: 2, want: []int{1, 2, 3}},
		{i: 0, v: 0, want: []int{0, 1, 2, 3}},
		{i: 4, v: 4, want: []int{0, 1, 2, 3, 4}},
		{i: 3, v: -1, want: []int{0, 1, 2, -1, 3, 4}},
	}
	for _, s := range steps {
		require.NoErrorf(t, l.Insert(s.i, s.v), "Insert(%d, %d)", s.i, s.v)
		got, err := l.Get(s.i)
		require.NoError(t, err)
		assert.Equalf(t, s.v, got, "Get(%d) after Insert(%[1]d, %d)", s.i, s.v)
		diff(t, l, s.want)
	}
}

func testSet(t *testing.T, f Factory) {
	l := f.Fill(t, 0, 1, 2, 3, 4, 5, 6)
	for i := range l.Len() {
		prev, err := l.Set(i, i*10)
		require.NoErrorf(t, err, "Set(%d)", i)
		assert.Equalf(t, i, prev, "Set(%d) returned previous value", i)
	}
	diff(t, l, []int{0, 10, 20, 30, 40, 50, 60})
}

func testIndexOf(t *testing.T, f Factory) {
	l := f.Fill(t, 5, 3, 5, 7, 3)
	for v, want := range map[int]int{5: 0, 3: 1, 7: 3, 42: -1} {
		assert.Equalf(t, want, l.IndexOf(v), "IndexOf(%d)", v)
		assert.Equalf(t, want >= 0, l.Contains(v), "Contains(%d)", v)
	}
	assert.Equal(t, -1, f().IndexOf(0), "IndexOf() on empty list")
}

func testRemove(t *testing.T, f Factory) {
	l := f.Fill(t, 1, 2, 1, 3, 1, 1)
	assert.Equal(t, 4, l.Remove(1), "Remove() count")
	diff(t, l, []int{2, 3})
	assert.Equal(t, 0, l.Remove(42), "Remove() of absent element")
	diff(t, l, []int{2, 3})
	assert.Equal(t, 1, l.Remove(3), "Remove() of tail")
	assert.Equal(t, 1, l.Remove(2), "Remove() of last element")
	diff(t, l, nil)

	l.Add(9)
	diff(t, l, []int{9})
}

func testRemoveAll(t *testing.T, f Factory) {
	l := f.Fill(t, Seq(10)...)

	changed, err := l.RemoveAll(f.Fill(t, 0, 9, 4, 4, 42))
	require.NoError(t, err)
	assert.True(t, changed)
	diff(t, l, []int{1, 2, 3, 5, 6, 7, 8})

	changed, err = l.RemoveAll(f.Fill(t, 42))
	require.NoError(t, err)
	assert.False(t, changed, "RemoveAll() of absent elements")

	_, err = l.RemoveAll(nil)
	require.ErrorIs(t, err, collections.ErrPrecondition)

	changed, err = l.RemoveAll(l)
	require.NoError(t, err)
	assert.True(t, changed, "RemoveAll() of self")
	diff(t, l, nil)
}

func testAddAll(t *testing.T, f Factory) {
	l := f.Fill(t, 0, 1)

	changed, err := l.AddAll(f())
	require.NoError(t, err)
	assert.False(t, changed, "AddAll() of empty collection")

	_, err = l.AddAll(nil)
	require.ErrorIs(t, err, collections.ErrPrecondition)
	diff(t, l, []int{0, 1})

	changed, err = l.AddAll(f.Fill(t, 2, 3, 4))
	require.NoError(t, err)
	assert.True(t, changed)
	diff(t, l, []int{0, 1, 2, 3, 4})

	changed, err = l.AddAll(l)
	require.NoError(t, err)
	assert.True(t, changed, "AddAll() of self")
	diff(t, l, []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4})

	big := f.Fill(t, Seq(100)...)
	changed, err = l.AddAll(big)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Equal(t, 110, l.Len())
	diff(t, big, Seq(100)) // unmodified source
}

func testInsertAll(t *testing.T, f Factory) {
	tests := []struct {
		name string
		i    int
		want []int
	}{
		{name: "front", i: 0, want: []int{7, 8, 9, 0, 1, 2}},
		{name: "middle", i: 2, want: []int{0, 1, 7, 8, 9, 2}},
		{name: "back", i: 3, want: []int{0, 1, 2, 7, 8, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := f.Fill(t, 0, 1, 2)
			changed, err := l.InsertAll(tt.i, f.Fill(t, 7, 8, 9))
			require.NoError(t, err)
			assert.True(t, changed)
			diff(t, l, tt.want)
		})
	}

	t.Run("empty", func(t *testing.T) {
		l := f.Fill(t, 0, 1, 2)
		changed, err := l.InsertAll(1, f())
		require.NoError(t, err)
		assert.False(t, changed)
		diff(t, l, []int{0, 1, 2})
	})

	t.Run("nil", func(t *testing.T) {
		l := f.Fill(t, 0, 1, 2)
		_, err := l.InsertAll(1, nil)
		require.ErrorIs(t, err, collections.ErrPrecondition)
		diff(t, l, []int{0, 1, 2})
	})

	t.Run("self", func(t *testing.T) {
		l := f.Fill(t, 0, 1, 2)
		changed, err := l.InsertAll(1, l)
		require.NoError(t, err)
		assert.True(t, changed)
		diff(t, l, []int{0, 0, 1, 2, 1, 2})
	})
}

func testContainsAll(t *testing.T, f Factory) {
	l := f.Fill(t, 1, 2, 3)
	assert.True(t, l.ContainsAll(f.Fill(t, 3, 1, 1)))
	assert.False(t, l.ContainsAll(f.Fill(t, 1, 4)))
	assert.True(t, l.ContainsAll(f()), "ContainsAll() of empty collection")
	assert.True(t, l.ContainsAll(nil), "ContainsAll(nil)")
	assert.True(t, l.ContainsAll(l), "ContainsAll() of self")
}

func testCopy(t *testing.T, f Factory) {
	l := f.Fill(t, Seq(11)...)
	c, ok := l.Copy().(collections.List[int])
	require.Truef(t, ok, "%T.Copy() returned %T; want %T", l, c, l)
	diff(t, c, Seq(11))

	_, err := c.RemoveAt(2)
	require.NoError(t, err)
	c.Add(20)
	c.Add(21)
	_, err = c.Set(0, -1)
	require.NoError(t, err)
	require.Equal(t, 12, c.Len())
	diff(t, l, Seq(11))

	l.Clear()
	require.Equal(t, 12, c.Len(), "Copy() Len() after Clear() of original")
}

func testClear(t *testing.T, f Factory) {
	l := f.Fill(t, Seq(11)...)
	l.Clear()
	assert.True(t, l.IsEmpty())
	diff(t, l, nil)
	_, err := l.Get(0)
	require.ErrorIs(t, err, collections.ErrOutOfRange)

	require.True(t, l.Add(1))
	got, err := l.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	f().Clear() // MUST NOT panic when empty
}

func testToArray(t *testing.T, f Factory) {
	l := f.Fill(t, Seq(5)...)
	got := l.ToArray()
	require.Equal(t, Seq(5), got)

	got[0] = 42
	diff(t, l, Seq(5))

	assert.Empty(t, f().ToArray())
}

func testToArrayInto(t *testing.T, f Factory) {
	l := f.Fill(t, Seq(11)...)

	t.Run("short_dest", func(t *testing.T) {
		dest := make([]int, 5)
		got, err := collections.ToArray[int, int](l, dest)
		require.NoError(t, err)
		require.Equal(t, l.ToArray(), got)
		require.Equal(t, make([]int, 5), dest, "short destination modified")
	})

	t.Run("long_dest", func(t *testing.T) {
		dest := make([]int, 14)
		for i := range dest {
			dest[i] = -1
		}
		got, err := collections.ToArray[int, int](l, dest)
		require.NoError(t, err)
		require.Equal(t, &dest[0], &got[0], "destination not reused")
		want := append(Seq(11), 0, -1, -1)
		require.Equal(t, want, got)
	})

	t.Run("exact_dest", func(t *testing.T) {
		dest := make([]int, 11)
		got, err := collections.ToArray[int, int](l, dest)
		require.NoError(t, err)
		require.Equal(t, &dest[0], &got[0], "destination not reused")
		require.Equal(t, Seq(11), got)
	})

	t.Run("interface_dest", func(t *testing.T) {
		got, err := collections.ToArray[any, int](l, nil)
		require.NoError(t, err)
		require.Len(t, got, 11)
		for i, v := range got {
			assert.Equal(t, i, v)
		}
	})

	t.Run("type_mismatch", func(t *testing.T) {
		dest := make([]int64, 11)
		_, err := collections.ToArray[int64, int](l, dest)
		require.ErrorIs(t, err, collections.ErrTypeMismatch)
		require.Equal(t, make([]int64, 11), dest, "partial copy on type mismatch")
	})

	t.Run("nil_collection", func(t *testing.T) {
		_, err := collections.ToArray[int, int](nil, nil)
		require.ErrorIs(t, err, collections.ErrPrecondition)
	})
}

func testIteration(t *testing.T, f Factory) {
	l := f.Fill(t, Seq(20)...)

	var got []int
	for v := range l.Values() {
		got = append(got, v)
	}
	require.Equal(t, Seq(20), got)

	got = got[:0]
	for i, v := range l.All() {
		require.Equal(t, i, v)
		got = append(got, v)
		if i == 9 {
			break
		}
	}
	require.Equal(t, Seq(10), got)

	// Behaviour under mutation is undefined but the current implementations
	// bound iteration by the length observed when it started.
	var n int
	for range l.Values() {
		if n < 5 {
			l.Add(-1)
		}
		n++
	}
	assert.Equal(t, 20, n, "elements yielded while appending during iteration")
	assert.Equal(t, 25, l.Len())
}

func testReadOnly(t *testing.T, f Factory) {
	l := f.Fill(t, Seq(5)...)
	ro := collections.ReadOnly(l)
	assert.Equal(t, ro, collections.ReadOnly(ro), "ReadOnly() of read-only view")

	assert.PanicsWithError(t, "unsupported operation: Add on read-only list", func() { ro.Add(5) })
	assert.PanicsWithError(t, "unsupported operation: Remove on read-only list", func() { ro.Remove(0) })
	assert.ErrorIs(t, ro.Insert(0, 0), collections.ErrUnsupported)
	_, err := ro.Set(0, 0)
	assert.ErrorIs(t, err, collections.ErrUnsupported)
	_, err = ro.RemoveAt(0)
	assert.ErrorIs(t, err, collections.ErrUnsupported)
	_, err = ro.AddAll(l)
	assert.ErrorIs(t, err, collections.ErrUnsupported)
	_, err = ro.InsertAll(0, l)
	assert.ErrorIs(t, err, collections.ErrUnsupported)
	_, err = ro.RemoveAll(l)
	assert.ErrorIs(t, err, collections.ErrUnsupported)
	assert.PanicsWithError(t, "unsupported operation: Clear on read-only list", ro.Clear)
	diff(t, l, Seq(5))

	l.Add(5)
	got, err := ro.Get(5)
	require.NoError(t, err)
	assert.Equal(t, 5, got, "read-only view reflects underlying list")
	assert.Equal(t, 2, ro.IndexOf(2))

	c := ro.Copy()
	c.Clear()
	diff(t, ro, Seq(6))
	assert.Equal(t, Seq(6), slices.Collect(ro.Values()))
}

// nilOf returns a nil pointer of the concrete type built by `f`, held in a
// non-nil interface.
func nilOf(tb testing.TB, f Factory) collections.List[int] {
	tb.Helper()
	typ := reflect.TypeOf(f())
	require.Equalf(tb, reflect.Pointer, typ.Kind(), "%v is not a pointer type", typ)
	nl, ok := reflect.Zero(typ).Interface().(collections.List[int])
	require.True(tb, ok)
	return nl
}

func testNilPointerArgument(t *testing.T, f Factory) {
	nl := nilOf(t, f)
	assert.True(t, collections.IsNil[int](nl))

	l := f.Fill(t, 0, 1, 2)
	_, err := l.AddAll(nl)
	assert.ErrorIs(t, err, collections.ErrPrecondition, "AddAll()")
	_, err = l.InsertAll(1, nl)
	assert.ErrorIs(t, err, collections.ErrPrecondition, "InsertAll()")
	_, err = l.RemoveAll(nl)
	assert.ErrorIs(t, err, collections.ErrPrecondition, "RemoveAll()")
	assert.True(t, l.ContainsAll(nl), "ContainsAll() of nil pointer")
	diff(t, l, []int{0, 1, 2})

	_, err = collections.ToArray[int, int](nl, nil)
	assert.ErrorIs(t, err, collections.ErrPrecondition, "collections.ToArray()")
}

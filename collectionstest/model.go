// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionstest

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ava-labs/collections"
)

// testModel drives a list with random operations, checking after each one
// that it is equivalent to a slice to which the same operations are applied.
func (s Suite) testModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			l     = s.New()
			model []int
			// A small domain makes duplicates, and therefore Remove(), likely.
			elem = rapid.IntRange(-4, 4)
		)

		fill := func(xs []int) collections.List[int] {
			c := s.New()
			for _, x := range xs {
				c.Add(x)
			}
			return c
		}
		index := func(t *rapid.T, upper int) int {
			return rapid.IntRange(-1, upper+1).Draw(t, "index")
		}

		t.Repeat(map[string]func(*rapid.T){
			"Add": func(t *rapid.T) {
				v := elem.Draw(t, "v")
				require.True(t, l.Add(v))
				model = append(model, v)
			},
			"Insert": func(t *rapid.T) {
				i, v := index(t, len(model)), elem.Draw(t, "v")
				err := l.Insert(i, v)
				if i < 0 || i > len(model) {
					require.ErrorIs(t, err, collections.ErrOutOfRange)
					return
				}
				require.NoError(t, err)
				model = slices.Insert(model, i, v)
			},
			"InsertAll": func(t *rapid.T) {
				i := index(t, len(model))
				xs := rapid.SliceOfN(elem, 0, 8).Draw(t, "xs")
				changed, err := l.InsertAll(i, fill(xs))
				if i < 0 || i > len(model) {
					require.ErrorIs(t, err, collections.ErrOutOfRange)
					return
				}
				require.NoError(t, err)
				require.Equal(t, len(xs) > 0, changed)
				model = slices.Insert(model, i, xs...)
			},
			"Get": func(t *rapid.T) {
				i := index(t, len(model)-1)
				got, err := l.Get(i)
				if i < 0 || i >= len(model) {
					require.ErrorIs(t, err, collections.ErrOutOfRange)
					return
				}
				require.NoError(t, err)
				require.Equal(t, model[i], got)
			},
			"Set": func(t *rapid.T) {
				i, v := index(t, len(model)-1), elem.Draw(t, "v")
				prev, err := l.Set(i, v)
				if i < 0 || i >= len(model) {
					require.ErrorIs(t, err, collections.ErrOutOfRange)
					return
				}
				require.NoError(t, err)
				require.Equal(t, model[i], prev)
				model[i] = v
			},
			"RemoveAt": func(t *rapid.T) {
				i := index(t, len(model)-1)
				got, err := l.RemoveAt(i)
				if i < 0 || i >= len(model) {
					require.ErrorIs(t, err, collections.ErrOutOfRange)
					return
				}
				require.NoError(t, err)
				require.Equal(t, model[i], got)
				model = slices.Delete(model, i, i+1)
			},
			"Remove": func(t *rapid.T) {
				v := elem.Draw(t, "v")
				before := len(model)
				model = slices.DeleteFunc(model, func(x int) bool { return x == v })
				require.Equal(t, before-len(model), l.Remove(v))
			},
			"IndexOf": func(t *rapid.T) {
				v := elem.Draw(t, "v")
				require.Equal(t, slices.Index(model, v), l.IndexOf(v))
				require.Equal(t, slices.Contains(model, v), l.Contains(v))
			},
			"Copy": func(t *rapid.T) {
				c, ok := l.Copy().(collections.List[int])
				require.True(t, ok)
				c.Add(elem.Draw(t, "v"))
				if !c.IsEmpty() {
					_, err := c.RemoveAt(0)
					require.NoError(t, err)
				}
				c.Clear()
			},
			"Clear": func(t *rapid.T) {
				if rapid.IntRange(0, 9).Draw(t, "clear") > 0 {
					return // otherwise lists rarely grow large
				}
				l.Clear()
				model = nil
			},
			"": func(t *rapid.T) {
				if diff := cmp.Diff(model, l.ToArray(), cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("%T.ToArray() diff (-model +got):\n%s", l, diff)
				}
				if diff := cmp.Diff(model, slices.Collect(l.Values()), cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("%T.Values() diff (-model +got):\n%s", l, diff)
				}
				require.Equal(t, len(model), l.Len())
				if s.Invariants != nil {
					require.NoError(t, s.Invariants(l))
				}
			},
		})
	})
}

// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collections

import (
	"fmt"
	"reflect"
)

// ToArray copies the elements of `c` into a slice of element type E.
//
// If len(dest) >= c.Len() then the elements are copied into `dest`, which is
// returned. Should `dest` have room to spare, the slot immediately after the
// last copied element is set to E's zero value. Otherwise a new slice of
// exactly c.Len() elements is allocated.
//
// Every element MUST be assignable to E, otherwise an [ErrTypeMismatch] error
// is returned and `dest` is left unmodified. Nil elements are converted to the
// zero value of E.
func ToArray[E, T any](c Collection[T], dest []E) ([]E, error) {
	if err := NilCollection("ToArray", c); err != nil {
		return nil, err
	}

	src := c.ToArray()
	out := make([]E, len(src))
	for i, v := range src {
		a := any(v)
		if a == nil {
			continue
		}
		e, ok := a.(E)
		if !ok {
			return nil, fmt.Errorf("%w: element %d of type %T not assignable to %v", ErrTypeMismatch, i, v, reflect.TypeFor[E]())
		}
		out[i] = e
	}

	if len(dest) < len(out) {
		return out, nil
	}
	copy(dest, out)
	if len(dest) > len(out) {
		var zero E
		dest[len(out)] = zero
	}
	return dest, nil
}

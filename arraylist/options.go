// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arraylist

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/collections"
	"github.com/ava-labs/collections/intmath"
)

// DefaultCapacity is the capacity of a [List] constructed without
// [WithCapacity].
const DefaultCapacity = 10

// A GrowthPolicy returns the capacity to which a buffer of capacity `have` is
// grown so that it can hold `need` elements, where `need > have`. Values less
// than `need` are ignored in favour of `need` itself.
type GrowthPolicy func(have, need int) int

// Doubling is the default [GrowthPolicy]. It repeatedly doubles the capacity,
// treating zero as one, until `need` elements fit.
func Doubling(have, need int) int {
	n, err := intmath.NextDoubling(have, need)
	if err != nil {
		return need
	}
	return n
}

// Exact is a [GrowthPolicy] that grows the buffer to exactly the capacity
// needed. Appending to a list with this policy is O(n).
func Exact(_, need int) int {
	return need
}

type config struct {
	capacity int
	growth   GrowthPolicy
	log      logging.Logger
}

func defaultConfig() config {
	return config{
		capacity: DefaultCapacity,
		growth:   Doubling,
		log:      logging.NoLog{},
	}
}

// An Option configures a [List] at construction.
type Option func(*config)

// WithCapacity sets the initial capacity of the backing buffer. It panics if
// `n` is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", collections.ErrPrecondition, n))
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithGrowth overrides the [GrowthPolicy]; nil restores [Doubling].
func WithGrowth(p GrowthPolicy) Option {
	return func(c *config) {
		if p == nil {
			p = Doubling
		}
		c.growth = p
	}
}

// WithLogger sets the logger to which buffer growth is reported at DEBUG
// level; nil disables logging.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = logging.NoLog{}
		}
		c.log = l
	}
}

// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linkedlist

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/collections"
)

type config struct {
	capacity int
	log      logging.Logger
}

// An Option configures a [List] at construction.
type Option func(*config)

// WithCapacity pre-allocates storage for `n` nodes. It panics if `n` is
// negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", collections.ErrPrecondition, n))
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithLogger sets the logger to which node-storage growth and clearing are
// reported at DEBUG level; nil disables logging.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = logging.NoLog{}
		}
		c.log = l
	}
}

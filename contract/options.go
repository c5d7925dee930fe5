// SPDX-License-Identifier: MIT
// Package: qgraph/contract
//
// options.go — functional options resolved into an immutable engine
// config. No global state; identical inputs and options give identical
// results.

package contract

import "errors"

// ErrTensorRank indicates a native tensor whose axis count or dimensions
// disagree with the operation's declared register signature.
var ErrTensorRank = errors.New("contract: tensor rank disagrees with signature")

// ErrTensorTooLarge indicates an intermediate tensor would exceed the
// configured element budget - the engine's catchable resource-exhaustion
// condition.
var ErrTensorTooLarge = errors.New("contract: intermediate tensor exceeds element budget")

// ErrNetwork indicates an internally inconsistent tensor network - a
// wiring defect in a graph that did not come out of the builder.
var ErrNetwork = errors.New("contract: inconsistent tensor network")

// DefaultMaxTensorElems bounds any single intermediate tensor (complex128
// elements). 1<<26 elements ≈ 1 GiB, comfortably catchable before the
// allocator is.
const DefaultMaxTensorElems = 1 << 26

// Option configures one Contract/ToMatrix invocation.
type Option func(*config)

type config struct {
	maxDepth int
	maxElems int
	serial   bool
}

func newConfig(opts ...Option) config {
	cfg := config{maxElems: DefaultMaxTensorElems}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxDepth overrides the decomposition recursion budget
// (decompose.DefaultMaxDepth when unset or non-positive).
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}

// WithMaxTensorElems overrides the per-intermediate element budget.
// Non-positive values keep the default.
func WithMaxTensorElems(elems int) Option {
	return func(c *config) {
		if elems > 0 {
			c.maxElems = elems
		}
	}
}

// WithSerial disables the per-component parallelism; useful when the
// caller already saturates every core.
func WithSerial() Option {
	return func(c *config) { c.serial = true }
}

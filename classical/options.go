// SPDX-License-Identifier: MIT
// Package: qgraph/classical
//
// options.go — functional options for the evaluation walk.

package classical

// Option configures one Apply/Propagate invocation.
type Option func(*config)

type config struct {
	maxDepth int
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxDepth overrides the recursion budget for expanding instances
// without a native classical transition (decompose.DefaultMaxDepth when
// unset or non-positive).
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}

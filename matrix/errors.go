// SPDX-License-Identifier: MIT
// Package: qgraph/matrix
//
// errors.go — sentinel errors for dense tensor operations.
//
// Error policy: sentinels only, errors.Is for branching, %w wrapping with
// method context at the detection site, never panic at the public surface.

package matrix

import "errors"

// ErrBadShape indicates a shape with a non-positive dimension, or an empty
// shape where at least a scalar was required.
var ErrBadShape = errors.New("matrix: invalid shape")

// ErrIndexOutOfBounds indicates At/Set received an index outside the shape,
// or an index tuple whose rank differs from the tensor's.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrShapeMismatch indicates two tensors with incompatible shapes for the
// requested operation (reshape size change, matmul inner dims, ...).
var ErrShapeMismatch = errors.New("matrix: shape mismatch")

// ErrNotMatrix indicates a 2-d-only operation (MatMul, AsCDense) was given
// a tensor of a different rank.
var ErrNotMatrix = errors.New("matrix: operation requires rank 2")

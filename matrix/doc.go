// SPDX-License-Identifier: MIT

// Package matrix provides the dense complex128 N-dimensional tensor used as
// the numerical substrate of tensor-network contraction.
//
// What & Why:
//
//	A Tensor is a row-major flat buffer plus a shape. The contraction engine
//	only ever needs four algebraic moves - reshape (free), axis permutation,
//	matrix multiplication, and outer product - so the type stays deliberately
//	small. The multiply kernel delegates to gonum's mat.CDense, keeping the
//	hot loop in tuned library code.
//
// Safety:
//
//	Public accessors are bounds-checked and return errors instead of
//	panicking, matching the module-wide "no runtime panics" policy. Loop
//	orders are fixed; results are deterministic.
//
// Complexity quicksheet:
//
//	New: O(Π shape) zero-init; At/Set: O(rank); Reshape: O(rank);
//	Transpose: O(size · rank); MatMul: O(n·m·k) via gonum; Outer: O(n·m).
package matrix

// SPDX-License-Identifier: MIT

// Package decompose lowers operations one level at a time: a bloq that
// knows how to expand itself is turned into the equivalent CompositeBloq,
// and a composite can have all of its decomposable instances inlined once.
//
// Decomposition is deliberately NOT recursive here: callers request one
// level at a time, and only the contraction engine recurses through
// multiple levels on demand. What this package does own is the recursion
// budget: a Guard value threads an explicit depth counter through any
// recursing caller, so a mis-specified operation whose expansion never
// bottoms out fails fast with ErrDepthExceeded instead of overflowing the
// stack. There is no cross-level cycle detection beyond the budget -
// termination is the operation author's contract.
//
// Errors:
//
//	ErrNotDecomposable   - the operation declares no decomposition.
//	ErrSignatureMismatch - a decomposition's boundary differs from the
//	                       operation's own signature.
//	ErrDepthExceeded     - the recursion budget ran out.
package decompose

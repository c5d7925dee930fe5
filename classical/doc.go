// SPDX-License-Identifier: MIT

// Package classical evaluates bloqs and composite graphs on classical
// basis states - the cheap simulation path for circuits built entirely
// from basis-permuting operations (X, CNOT, Swap, Split/Join, ancilla
// bookkeeping).
//
// Values travel as Vals: one uint64 per wire, keyed by register name,
// row-major within a shaped register, and always strictly below
// 2^bitsize for the wire's width.
//
// Two entry points:
//
//	Apply     - evaluate a single bloq on one input assignment.
//	Propagate - walk a composite graph in topological order, carrying a
//	            value on every wire from the left boundary to the right.
//
// An instance without a native classical transition is expanded one
// level (decompose.OneLevel) and propagated recursively, under the same
// explicit depth budget the contraction engine uses.
//
// Errors:
//
//	ErrNotClassical - the operation has neither a classical transition
//	                  nor a decomposition to recurse into.
//	ErrBadValue     - a missing assignment, a wire-count mismatch, or a
//	                  value too wide for its register.
package classical

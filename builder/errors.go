// SPDX-License-Identifier: MIT
// Package: qgraph/builder
//
// errors.go — sentinel errors for graph construction.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every violation is detected eagerly at the offending call (or at
//     Finalize for coverage/ancilla checks) - never deferred to the
//     contraction engine.
//   • Methods never panic at runtime; a failed call leaves the builder
//     exactly as it was (validate-then-mutate).

package builder

import "errors"

// ErrDuplicateRegister indicates AddRegister was called with a name that
// is already declared on this builder.
var ErrDuplicateRegister = errors.New("builder: register already declared")

// ErrWrongRegister indicates the named soquets handed to Add/Finalize do
// not match the target signature: unknown or missing name, wrong wire
// count for the register's shape, or wrong bit width.
var ErrWrongRegister = errors.New("builder: supplied soquets do not match signature")

// ErrDoubleUse indicates a soquet was consumed a second time anywhere in
// the build - the linear-use (no-cloning) violation.
var ErrDoubleUse = errors.New("builder: soquet already consumed")

// ErrForeignSoquet indicates a soquet this builder never produced (e.g.
// minted by a different builder, or hand-constructed).
var ErrForeignSoquet = errors.New("builder: soquet not produced by this builder")

// ErrMissingOutput indicates Finalize did not name a declared output
// register (or supplied the wrong multiplicity for it).
var ErrMissingOutput = errors.New("builder: declared output register not covered")

// ErrUnusedSoquet indicates a live wire left dangling at Finalize: it was
// neither consumed by an operation nor surfaced at the right boundary.
var ErrUnusedSoquet = errors.New("builder: live soquet neither consumed nor surfaced")

// ErrUnfreedAncilla indicates an allocated ancilla wire that was never
// freed or surfaced by Finalize time.
var ErrUnfreedAncilla = errors.New("builder: allocated ancilla never freed or surfaced")

// ErrFinalized indicates a mutating call after a successful Finalize; a
// builder is single-shot.
var ErrFinalized = errors.New("builder: builder already finalized")

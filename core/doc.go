// SPDX-License-Identifier: MIT

// Package core defines the central IR types: the Bloq operation contract,
// Soquet wire identities, instance arenas, and the frozen CompositeBloq
// graph, together with full structural validation.
//
// The model, leaves first:
//
//   - A Bloq is an immutable operation value publishing a qreg.Signature.
//     Capabilities are a small closed set probed explicitly by engines:
//     TensorBloq (native dense tensor), Decomposer (expands into a
//     CompositeBloq), ClassicalBloq (basis-state transition function).
//   - A BloqInstance places a Bloq value at a specific graph position under
//     an arena-unique small-integer InstanceID. Two sentinel IDs, LeftDangle
//     and RightDangle, stand for the graph's external boundary.
//   - A Soquet names one concrete wire segment by value:
//     (producing/consuming instance, register name, row-major index key).
//     Soquets are comparable and key every connection map.
//   - A Connection records one wire: producing Soquet → consuming Soquet.
//   - A CompositeBloq is the finalized, immutable DAG: instances plus a
//     complete connection list. NewCompositeBloq re-checks every structural
//     invariant (each consumable slot read exactly once, each producible
//     slot written exactly once, width agreement, acyclicity) and reports
//     ALL violations at once via multierr aggregation.
//
// Wire linearity (the no-cloning discipline) is what the invariants encode:
// quantum state may never be implicitly duplicated or dropped, so every
// wire has exactly one writer and exactly one reader.
//
// Errors:
//
//	ErrDuplicateInstance - two arena entries share an InstanceID.
//	ErrUnknownInstance   - a connection references an ID outside the arena.
//	ErrUnknownSlot       - a connection references a register slot the
//	                       instance's signature does not expose on that side.
//	ErrReadTwice / ErrNeverRead       - consumable-slot linearity violations.
//	ErrWriteTwice / ErrNeverWritten   - producible-slot linearity violations.
//	ErrWidthMismatch     - producer and consumer disagree on bit width.
//	ErrCyclic            - the instance dependency graph has a cycle.
//
// A CompositeBloq is itself a Bloq (and a trivial Decomposer), so composite
// graphs nest uniformly inside larger builds and inside the engines.
package core

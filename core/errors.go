// SPDX-License-Identifier: MIT
// Package: qgraph/core
//
// errors.go — sentinel errors for IR structure validation.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • NewCompositeBloq aggregates every violation it finds (multierr), so a
//     single returned error may satisfy errors.Is for several sentinels.

package core

import "errors"

// ErrDuplicateInstance indicates two arena entries were declared with the
// same InstanceID, or an entry reused a dangling sentinel ID.
var ErrDuplicateInstance = errors.New("core: duplicate instance id")

// ErrUnknownInstance indicates a connection referenced an InstanceID that
// is neither in the arena nor a dangling sentinel.
var ErrUnknownInstance = errors.New("core: unknown instance")

// ErrUnknownSlot indicates a connection endpoint named a register slot the
// referenced instance does not expose on the required side (bad register
// name, out-of-shape index, or wrong directionality).
var ErrUnknownSlot = errors.New("core: unknown register slot")

// ErrReadTwice indicates a wire consumed more than once - an implicit
// duplication of quantum state.
var ErrReadTwice = errors.New("core: soquet consumed twice")

// ErrNeverRead indicates a consumable slot with no incoming connection - a
// wire silently dropped.
var ErrNeverRead = errors.New("core: soquet never consumed")

// ErrWriteTwice indicates a producible slot written by more than one
// connection.
var ErrWriteTwice = errors.New("core: soquet produced twice")

// ErrNeverWritten indicates a producible slot with no connection feeding
// its consumer side.
var ErrNeverWritten = errors.New("core: soquet never produced")

// ErrWidthMismatch indicates a connection whose producing and consuming
// registers disagree on bit width.
var ErrWidthMismatch = errors.New("core: bit width mismatch on connection")

// ErrCyclic indicates the producer→consumer instance dependency graph is
// not acyclic.
var ErrCyclic = errors.New("core: instance dependency cycle")

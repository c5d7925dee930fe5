// SPDX-License-Identifier: MIT
// Package: qgraph/core
//
// bloq.go — the operation contract and its closed capability set.
//
// Design contract (strict):
//   - A Bloq is a pure immutable value identified by its type + parameters;
//     two equal values are interchangeable everywhere except where they
//     appear as distinct instances in a graph.
//   - Capabilities form a small CLOSED enumeration. Engines probe them with
//     explicit type assertions (see Capabilities) - never by open-ended
//     subtype reflection.
//   - A bloq must implement at least one of the three capabilities to be
//     useful to any engine; the contract itself does not enforce that, the
//     engines surface it as their respective "not decomposable / no tensor /
//     not classical" errors.

package core

import (
	"github.com/katalvlaran/qgraph/matrix"
	"github.com/katalvlaran/qgraph/qreg"
)

// Bloq is the minimal contract every operation satisfies: a stable name for
// diagnostics and a fixed, ordered register signature.
type Bloq interface {
	// Name returns a short stable identifier used in diagnostics.
	Name() string

	// Signature returns the fixed ordered register list of the operation.
	Signature() qreg.Signature
}

// TensorBloq is the native-tensor capability.
//
// Axis convention (the bit-exact contract the contraction engine relies
// on): one axis per outgoing wire - RIGHT|THRU registers in signature
// order, row-major within a shape, each axis of dimension 2^bitsize -
// followed by one axis per incoming wire (LEFT|THRU registers, same
// convention). A bloq with neither inputs nor outputs returns a rank-0
// scalar.
type TensorBloq interface {
	Bloq

	// Tensor returns the operation's dense tensor under the axis
	// convention above. Implementations return a fresh value or an
	// immutable cached one; the engine never mutates it.
	Tensor() (*matrix.Tensor, error)
}

// Decomposer is the self-expansion capability: the operation can produce a
// one-level-lower CompositeBloq whose boundary signature exactly matches
// its own.
type Decomposer interface {
	Bloq

	// Decompose expands the operation one level. It must not recurse into
	// its own sub-operations; multi-level lowering is the caller's job.
	Decompose() (*CompositeBloq, error)
}

// ClassicalBloq is the optional basis-state transition capability: given
// one classical value per incoming wire (keyed by register name, row-major
// slice per shaped register), produce the values on the outgoing wires.
type ClassicalBloq interface {
	Bloq

	// CallClassically maps incoming basis-state values to outgoing ones.
	CallClassically(in map[string][]uint64) (map[string][]uint64, error)
}

// Capability flags reported by Capabilities.
type Capability uint8

const (
	// CanTensor is set when the bloq natively provides a dense tensor.
	CanTensor Capability = 1 << iota
	// CanDecompose is set when the bloq can expand one level.
	CanDecompose
	// CanClassical is set when the bloq has a basis-state transition.
	CanClassical
)

// Has reports whether all bits of want are present. Complexity: O(1).
func (c Capability) Has(want Capability) bool { return c&want == want }

// Capabilities probes the closed capability set of a bloq. This is the one
// sanctioned dispatch point; engines branch on the returned mask instead of
// scattering type assertions.
// Complexity: O(1).
func Capabilities(b Bloq) Capability {
	var c Capability
	if _, ok := b.(TensorBloq); ok {
		c |= CanTensor
	}
	if _, ok := b.(Decomposer); ok {
		c |= CanDecompose
	}
	if _, ok := b.(ClassicalBloq); ok {
		c |= CanClassical
	}
	return c
}

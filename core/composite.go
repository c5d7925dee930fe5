// SPDX-License-Identifier: MIT
// Package: qgraph/core
//
// composite.go — CompositeBloq: the finalized, immutable operation DAG.
//
// Design contract (strict):
//   - One-way conversion: NewCompositeBloq validates and freezes; the type
//     exposes no mutators, so a finished graph is safe to share across
//     goroutines and to reuse as a sub-graph of larger builds.
//   - Deterministic accessors: Instances returns the Kahn topological order
//     with smallest-ID tie-breaking; Connections preserves insertion order.
//   - CompositeBloq implements Bloq and Decomposer so composites nest
//     uniformly wherever a bloq is expected.

package core

import (
	"fmt"

	"github.com/katalvlaran/qgraph/qreg"
)

// CompositeBloq is a frozen operation graph: an arena of instances plus the
// complete producer→consumer connection list, bounded by the dangling
// sentinels of its boundary signature.
type CompositeBloq struct {
	sig    qreg.Signature
	binsts []BloqInstance // ascending InstanceID
	conns  []Connection   // insertion order

	producerOf map[Soquet]Soquet // consumer → producer
	consumerOf map[Soquet]Soquet // producer → consumer
	topo       []BloqInstance    // Kahn order, smallest-ID tie-break
}

// NewCompositeBloq validates every structural invariant and freezes the
// graph. All violations found are aggregated into the returned error, so a
// caller sees every defect at once (branch with errors.Is per sentinel).
//
// Invariants checked:
//   - arena IDs unique and non-negative;
//   - every consumable slot (instance LEFT|THRU wires and RightDangle
//     boundary wires) is consumed exactly once;
//   - every producible slot (instance RIGHT|THRU wires and LeftDangle
//     boundary wires) is produced exactly once;
//   - producer/consumer bit widths agree per connection;
//   - the induced instance dependency graph is acyclic.
//
// Complexity: O(instances · registers · wires + connections).
func NewCompositeBloq(sig qreg.Signature, binsts []BloqInstance, conns []Connection) (*CompositeBloq, error) {
	cb := &CompositeBloq{
		sig:    sig,
		binsts: append([]BloqInstance(nil), binsts...),
		conns:  append([]Connection(nil), conns...),
	}
	topo, err := validateStructure(sig, cb.binsts, cb.conns)
	if err != nil {
		return nil, fmt.Errorf("NewCompositeBloq: %w", err)
	}
	cb.topo = topo
	cb.producerOf = make(map[Soquet]Soquet, len(cb.conns))
	cb.consumerOf = make(map[Soquet]Soquet, len(cb.conns))
	for _, c := range cb.conns {
		cb.producerOf[c.To] = c.From
		cb.consumerOf[c.From] = c.To
	}
	return cb, nil
}

// Name implements Bloq. Complexity: O(1).
func (cb *CompositeBloq) Name() string { return "CompositeBloq" }

// Signature implements Bloq: the graph's boundary registers.
// Complexity: O(1).
func (cb *CompositeBloq) Signature() qreg.Signature { return cb.sig }

// Decompose implements Decomposer trivially: a composite already IS its own
// one-level expansion. This keeps recursion in the engines uniform.
func (cb *CompositeBloq) Decompose() (*CompositeBloq, error) { return cb, nil }

// NumInstances returns the arena size. Complexity: O(1).
func (cb *CompositeBloq) NumInstances() int { return len(cb.binsts) }

// Instances returns the instances in deterministic topological order
// (producers before consumers, smallest ID first among ready instances).
// Complexity: O(n) for the defensive copy.
func (cb *CompositeBloq) Instances() []BloqInstance {
	return append([]BloqInstance(nil), cb.topo...)
}

// Connections returns the connection list in insertion order.
// Complexity: O(n) for the defensive copy.
func (cb *CompositeBloq) Connections() []Connection {
	return append([]Connection(nil), cb.conns...)
}

// ProducerOf returns the soquet feeding the given consuming soquet.
// Complexity: O(1).
func (cb *CompositeBloq) ProducerOf(consumer Soquet) (Soquet, bool) {
	s, ok := cb.producerOf[consumer]
	return s, ok
}

// ConsumerOf returns the soquet reading the given producing soquet.
// Complexity: O(1).
func (cb *CompositeBloq) ConsumerOf(producer Soquet) (Soquet, bool) {
	s, ok := cb.consumerOf[producer]
	return s, ok
}

// LeftSoquets returns the boundary soquets produced by LeftDangle, keyed by
// register name, row-major per register.
// Complexity: O(boundary wires).
func (cb *CompositeBloq) LeftSoquets() map[string][]Soquet {
	return danglingSoquets(cb.sig.Lefts(), LeftDangle)
}

// RightSoquets returns the boundary soquets consumed by RightDangle, keyed
// by register name, row-major per register.
// Complexity: O(boundary wires).
func (cb *CompositeBloq) RightSoquets() map[string][]Soquet {
	return danglingSoquets(cb.sig.Rights(), RightDangle)
}

// danglingSoquets enumerates boundary soquets for one side.
func danglingSoquets(regs []qreg.Register, id InstanceID) map[string][]Soquet {
	out := make(map[string][]Soquet, len(regs))
	for _, r := range regs {
		out[r.Name] = SoquetsFor(id, r)
	}
	return out
}

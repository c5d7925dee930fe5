// SPDX-License-Identifier: MIT

// Package qgraph is an in-memory intermediate representation for quantum
// programs: operations ("bloqs") wired together through typed, shape-aware
// registers, with the machinery to build the wiring imperatively, keep it
// well-formed under linear-use (no-cloning) constraints, and lower it either
// to a dense numerical tensor or, one level at a time, into finer-grained
// sub-graphs.
//
// 🚀 What is qgraph?
//
//	A pure-Go quantum operation-graph toolkit that brings together:
//		• Register model: named, width- and shape-typed ports (qreg)
//		• Wire identity: soquets naming one concrete wire segment (core)
//		• Imperative builder: add/allocate/free/split/join/finalize (builder)
//		• Frozen composite graphs: immutable, validated DAGs (core)
//		• Primitive bloqs: Split, Join, Allocate, Free, X, Z, H, CNOT, Swap (bloqs)
//		• Decomposition: one-level expansion with an explicit depth guard (decompose)
//		• Contraction: tensor-network lowering to dense arrays (contract)
//		• Classical path: basis-state propagation for testing (classical)
//
// ✨ Why choose qgraph?
//
//   - Eager validation - every structural defect fails at the offending
//     builder call or at Finalize, never at contraction time
//   - Rock-solid guarantees - linear use of every wire is enforced by
//     construction; finalized graphs are immutable and safe to share
//   - Deterministic - stable instance, connection, and boundary orderings;
//     identical inputs always produce identical graphs and tensors
//   - Extensible - any value type exposing a register signature plus one of
//     {tensor, decomposition, classical} capabilities plugs straight in
//
// Under the hood, everything is organized under eight subpackages:
//
//	qreg/      — Register, Side, Signature + qubit/integer slicing helpers
//	matrix/    — dense complex128 N-d tensors backed by gonum for algebra
//	core/      — Bloq contract, Soquet identity, frozen CompositeBloq
//	builder/   — mutable Builder enforcing linear-use while you wire
//	bloqs/     — primitive operations used by the builder and the tests
//	decompose/ — one-level lowering with explicit recursion budgets
//	contract/  — tensor-network contraction to dense arrays/unitaries
//	classical/ — per-basis-state transition propagation
//
// Quick ASCII example (a wire flipped twice is the identity):
//
//	LeftDangle:q ──►[X]──►[X]──► RightDangle:q
//
// Dive into each package's doc.go for contracts, error taxonomies, and
// complexity notes.
//
//	go get github.com/katalvlaran/qgraph
package qgraph

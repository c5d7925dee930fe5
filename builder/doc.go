// SPDX-License-Identifier: MIT

// Package builder provides the mutable accumulator that turns imperative
// wiring calls into a validated, frozen core.CompositeBloq.
//
// What & Why:
//
//	Quantum wires obey a linear-use discipline inherited from no-cloning:
//	every produced wire must be consumed exactly once. The Builder enforces
//	that mechanically while you work, by tracking exactly one "available"
//	soquet per not-yet-connected wire: consuming a soquet removes it from
//	the available set, so a double use (or a soquet from another build)
//	fails at the offending call - never later, never at contraction time.
//
// Typical flow:
//
//	bb := builder.New()
//	q, _ := bb.AddRegister("q", 1)
//	out, _ := bb.Add(bloqs.XGate{}, builder.Soqs{"q": q})
//	out, _ = bb.Add(bloqs.XGate{}, builder.Soqs{"q": out["q"]})
//	cb, _ := bb.Finalize(builder.Soqs{"q": out["q"]})
//
// Convenience wiring (each inserts a dedicated bloqs instance):
//
//	Allocate(n) — fresh |0…0⟩ ancilla wire
//	Free(s)     — consume an ancilla (must be uncomputed)
//	Split(s)    — width-w wire → w width-1 wires
//	Join(ss)    — exact inverse of Split
//
// Errors (all eager, all sentinels, branch with errors.Is):
//
//	ErrDuplicateRegister - AddRegister name already declared.
//	ErrWrongRegister     - supplied name/width/shape does not match the
//	                       operation's signature.
//	ErrDoubleUse         - a soquet consumed a second time.
//	ErrForeignSoquet     - a soquet this builder never produced.
//	ErrMissingOutput     - Finalize did not cover a declared register.
//	ErrUnusedSoquet      - a live wire was neither consumed nor surfaced.
//	ErrUnfreedAncilla    - an allocated wire was never freed or surfaced.
//	ErrFinalized         - any call after a successful Finalize.
//
// Concurrency: a Builder is inherently sequential (each Add reads and
// mutates the linear-use bookkeeping); serialize external access. The
// CompositeBloq it produces is immutable and freely shareable.
package builder

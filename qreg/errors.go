// SPDX-License-Identifier: MIT
// Package: qgraph/qreg
//
// errors.go — sentinel errors for the register model.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w at the detection site.

package qreg

import "errors"

// ErrDuplicateName indicates that two registers inside one signature were
// declared with the same name. Register names are the keys every wiring and
// classical-value map uses, so uniqueness is non-negotiable.
// Usage: if errors.Is(err, qreg.ErrDuplicateName) { /* rename a register */ }.
var ErrDuplicateName = errors.New("qreg: duplicate register name")

// ErrUnknownRegister indicates that a lookup or a named-value map referenced
// a register name the signature does not declare.
// Usage: if errors.Is(err, qreg.ErrUnknownRegister) { /* check spelling */ }.
var ErrUnknownRegister = errors.New("qreg: unknown register")

// ErrBadWidth indicates a register declared with bit width zero, or a bit
// helper invoked with a zero/overflowing width. Every wire carries at least
// one bit.
var ErrBadWidth = errors.New("qreg: invalid bit width")

// ErrWireCount indicates that a flat wire slice handed to SplitQubits (or a
// per-register slice handed to MergeQubits) does not match the wire count
// the signature mandates.
var ErrWireCount = errors.New("qreg: wire count mismatch")

// ErrValueTooWide indicates a classical value that does not fit in the
// register's declared bit width (x >= 2^bitsize).
var ErrValueTooWide = errors.New("qreg: value exceeds register width")

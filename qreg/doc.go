// SPDX-License-Identifier: MIT

// Package qreg models the typed ports ("registers") a quantum operation
// exposes, and the signature - an ordered, unique-name register list - that
// every bloq publishes.
//
// What & Why:
//
//	A Register names one port, gives it a bit width, an optional multi-wire
//	shape (an array of independent equal-width wires), and a Side describing
//	directionality: LEFT ports are consumed only, RIGHT ports are produced
//	only, THRU ports are consumed and re-produced in place. The Signature
//	fixes the declaration order, which in turn fixes every downstream
//	convention (boundary wiring, tensor axis order, classical bit packing).
//
// The package also carries the classical-addressing helpers any backend
// needs to reach individual wires or bit-packed integer views:
//
//	SplitQubits/MergeQubits — register list ↔ flat ordered wire sequence
//	SplitInteger/MergeInteger — register list ↔ bit-packed integer slices
//	IntToBits/BitsToInt — fixed-width big-endian bit vectors
//
// Errors:
//
//	ErrDuplicateName - two registers in one signature share a name.
//	ErrUnknownRegister - a lookup referenced a name the signature lacks.
//	ErrBadWidth - a register was declared with zero bit width.
//	ErrWireCount - a flat wire slice does not match the signature's total.
//	ErrValueTooWide - an integer does not fit the register's bit width.
//
// Complexity:
//
//	Register accessors are O(1); signature construction is O(n) over the
//	register count; the slicing helpers are O(total wires) or O(total bits).
package qreg

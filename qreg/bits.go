// SPDX-License-Identifier: MIT
// Package: qgraph/qreg
//
// bits.go — classical addressing helpers over a signature.
//
// Purpose:
//   - SplitQubits/MergeQubits map between the register list and a flat,
//     ordered sequence of individual wire/qubit labels - needed by any
//     backend that addresses physical wires one by one.
//   - SplitInteger/MergeInteger provide the classical-data analog: a
//     fixed-width bit-packed integer sliced into per-register sub-integers
//     and back. Used by the classical-simulation path, never by the tensor
//     path.
//   - IntToBits/BitsToInt are the big-endian bit-vector primitives both of
//     the above (and the classical bloq implementations) share.
//
// Conventions:
//   - Declaration order, big-endian: the first register owns the most
//     significant bits; within a register, bit 0 of the vector is the most
//     significant bit.

package qreg

import "fmt"

// IntToBits returns the big-endian w-bit vector of x.
//
// Errors: ErrBadWidth for w == 0 or w > 64; ErrValueTooWide when x needs
// more than w bits.
// Complexity: O(w).
func IntToBits(x uint64, w uint) ([]uint8, error) {
	if w == 0 || w > 64 {
		return nil, fmt.Errorf("IntToBits(width=%d): %w", w, ErrBadWidth)
	}
	if w < 64 && x>>w != 0 {
		return nil, fmt.Errorf("IntToBits(%d, width=%d): %w", x, w, ErrValueTooWide)
	}
	bits := make([]uint8, w)
	for i := uint(0); i < w; i++ {
		// Big-endian: bits[0] is the most significant bit.
		bits[i] = uint8(x >> (w - 1 - i) & 1)
	}
	return bits, nil
}

// BitsToInt folds a big-endian bit vector back into an integer.
//
// Errors: ErrBadWidth for empty or >64-bit input, ErrValueTooWide for a
// digit outside {0,1}.
// Complexity: O(len(bits)).
func BitsToInt(bits []uint8) (uint64, error) {
	if len(bits) == 0 || len(bits) > 64 {
		return 0, fmt.Errorf("BitsToInt(len=%d): %w", len(bits), ErrBadWidth)
	}
	var x uint64
	for i, b := range bits {
		if b > 1 {
			return 0, fmt.Errorf("BitsToInt: bit %d is %d: %w", i, b, ErrValueTooWide)
		}
		x = x<<1 | uint64(b)
	}
	return x, nil
}

// SplitQubits slices a flat ordered wire sequence register-by-register in
// declaration order. Each register consumes TotalBits entries.
//
// The element type is generic so callers can slice qubit labels, indices,
// or any per-wire handle without conversion.
//
// Errors: ErrWireCount when len(flat) differs from the signature total.
// Complexity: O(total bits).
func SplitQubits[T any](sig Signature, flat []T) (map[string][]T, error) {
	var total uint
	for _, r := range sig.Registers() {
		total += r.TotalBits()
	}
	if uint(len(flat)) != total {
		return nil, fmt.Errorf("SplitQubits: got %d wires, signature needs %d: %w",
			len(flat), total, ErrWireCount)
	}
	out := make(map[string][]T, sig.Len())
	base := uint(0)
	for _, r := range sig.Registers() {
		n := r.TotalBits()
		out[r.Name] = flat[base : base+n : base+n]
		base += n
	}
	return out, nil
}

// MergeQubits is the exact inverse of SplitQubits: it concatenates the
// per-register slices back into one flat sequence in declaration order.
//
// Errors: ErrUnknownRegister when a declared name is missing from the map;
// ErrWireCount when a slice has the wrong length.
// Complexity: O(total bits).
func MergeQubits[T any](sig Signature, regs map[string][]T) ([]T, error) {
	var flat []T
	for _, r := range sig.Registers() {
		part, ok := regs[r.Name]
		if !ok {
			return nil, fmt.Errorf("MergeQubits: register %q missing: %w", r.Name, ErrUnknownRegister)
		}
		if uint(len(part)) != r.TotalBits() {
			return nil, fmt.Errorf("MergeQubits: register %q has %d wires, needs %d: %w",
				r.Name, len(part), r.TotalBits(), ErrWireCount)
		}
		flat = append(flat, part...)
	}
	return flat, nil
}

// SplitInteger interprets n as the big-endian bit-packed concatenation of
// every scalar register's value, first register most significant, and
// extracts the per-register integers.
//
// Errors: ErrWireCount for a shaped register (packing order across wires is
// not defined here), ErrBadWidth when the packed width exceeds 64 bits,
// ErrValueTooWide when n needs more bits than the signature packs.
// Complexity: O(total bits).
func SplitInteger(sig Signature, n uint64) (map[string]uint64, error) {
	total, err := packedWidth(sig, "SplitInteger")
	if err != nil {
		return nil, err
	}
	if total < 64 && n>>total != 0 {
		return nil, fmt.Errorf("SplitInteger(%d): packed width is %d bits: %w", n, total, ErrValueTooWide)
	}
	out := make(map[string]uint64, sig.Len())
	rem := total
	for _, r := range sig.Registers() {
		rem -= r.Bitsize
		// Shift the register's slice down to the low bits, then mask.
		out[r.Name] = n >> rem & mask(r.Bitsize)
	}
	return out, nil
}

// MergeInteger folds per-register integers back into the single bit-packed
// value SplitInteger slices. Exact inverse on valid input.
//
// Errors: ErrUnknownRegister for a missing name, ErrValueTooWide for a
// value exceeding its register's width, plus the SplitInteger width checks.
// Complexity: O(register count).
func MergeInteger(sig Signature, vals map[string]uint64) (uint64, error) {
	if _, err := packedWidth(sig, "MergeInteger"); err != nil {
		return 0, err
	}
	var n uint64
	for _, r := range sig.Registers() {
		v, ok := vals[r.Name]
		if !ok {
			return 0, fmt.Errorf("MergeInteger: register %q missing: %w", r.Name, ErrUnknownRegister)
		}
		if r.Bitsize < 64 && v>>r.Bitsize != 0 {
			return 0, fmt.Errorf("MergeInteger: register %q value %d: %w", r.Name, v, ErrValueTooWide)
		}
		n = n<<r.Bitsize | v
	}
	return n, nil
}

// packedWidth validates the scalar-register precondition and the 64-bit
// budget shared by SplitInteger/MergeInteger, returning the packed width.
func packedWidth(sig Signature, method string) (uint, error) {
	var total uint
	for _, r := range sig.Registers() {
		if len(r.Shape) > 0 {
			return 0, fmt.Errorf("%s: register %q is shaped: %w", method, r.Name, ErrWireCount)
		}
		total += r.Bitsize
	}
	if total == 0 || total > 64 {
		return 0, fmt.Errorf("%s: packed width %d: %w", method, total, ErrBadWidth)
	}
	return total, nil
}

// mask returns the low-w-bits mask; w must be ≤ 64 (callers validate).
func mask(w uint) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}

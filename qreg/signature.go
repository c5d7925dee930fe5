// SPDX-License-Identifier: MIT
// Package: qgraph/qreg
//
// signature.go — Signature: the ordered, unique-name register list every
// bloq publishes.
//
// Design contract (strict):
//   - Declaration order is part of the contract: boundary wiring, tensor
//     axis order, and classical bit packing all follow it.
//   - A Signature is immutable after NewSignature; accessors return copies
//     or iterate in declaration order only (no map iteration leaks).
//   - Lefts/Rights filter by side but preserve declaration order.

package qreg

import "fmt"

// Signature is an immutable, ordered list of uniquely named registers.
// The zero value is an empty signature (legal: a graph with no boundary).
type Signature struct {
	regs   []Register
	byName map[string]int // name → index into regs
}

// NewSignature validates each register and the uniqueness of their names,
// then freezes the declaration order.
//
// Errors:
//   - ErrBadWidth / ErrUnknownRegister via Register.validate.
//   - ErrDuplicateName on a repeated register name.
//
// Complexity: O(n) time and space over the register count.
func NewSignature(regs ...Register) (Signature, error) {
	byName := make(map[string]int, len(regs))
	for i, r := range regs {
		if err := r.validate(); err != nil {
			return Signature{}, fmt.Errorf("NewSignature: %w", err)
		}
		if _, dup := byName[r.Name]; dup {
			return Signature{}, fmt.Errorf("NewSignature: register %q: %w", r.Name, ErrDuplicateName)
		}
		byName[r.Name] = i
	}
	return Signature{regs: append([]Register(nil), regs...), byName: byName}, nil
}

// MustSignature is the test/fixture variant of NewSignature: it panics on a
// malformed register list. Intended for package-level fixtures where the
// registers are literals and an error return would only obscure the setup.
func MustSignature(regs ...Register) Signature {
	sig, err := NewSignature(regs...)
	if err != nil {
		panic(err)
	}
	return sig
}

// BuildThru constructs a signature of scalar THRU registers from ordered
// (name, bitsize) pairs - the most common shape by far. Mirrors the
// "one in-place port per name" convention used throughout the primitive
// bloqs.
//
// Complexity: O(n).
func BuildThru(pairs ...NamedWidth) (Signature, error) {
	regs := make([]Register, len(pairs))
	for i, p := range pairs {
		regs[i] = Thru(p.Name, p.Bitsize)
	}
	return NewSignature(regs...)
}

// NamedWidth is one (name, bitsize) pair for BuildThru.
type NamedWidth struct {
	Name    string
	Bitsize uint
}

// Len returns the number of registers. Complexity: O(1).
func (s Signature) Len() int { return len(s.regs) }

// Registers returns the registers in declaration order (fresh slice).
// Complexity: O(n).
func (s Signature) Registers() []Register {
	return append([]Register(nil), s.regs...)
}

// At returns the i-th register in declaration order.
// Complexity: O(1). Panics on out-of-range i (programmer error, as with any
// slice index).
func (s Signature) At(i int) Register { return s.regs[i] }

// Get returns the register with the given name.
//
// Errors: ErrUnknownRegister when the name is not declared.
// Complexity: O(1).
func (s Signature) Get(name string) (Register, error) {
	i, ok := s.byName[name]
	if !ok {
		return Register{}, fmt.Errorf("Signature.Get(%q): %w", name, ErrUnknownRegister)
	}
	return s.regs[i], nil
}

// Has reports whether a register with the given name is declared.
// Complexity: O(1).
func (s Signature) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Lefts returns, in declaration order, every register whose side consumes
// an incoming wire (LEFT and THRU). Complexity: O(n).
func (s Signature) Lefts() []Register {
	out := make([]Register, 0, len(s.regs))
	for _, r := range s.regs {
		if r.Side.Consumes() {
			out = append(out, r)
		}
	}
	return out
}

// Rights returns, in declaration order, every register whose side produces
// an outgoing wire (RIGHT and THRU). Complexity: O(n).
func (s Signature) Rights() []Register {
	out := make([]Register, 0, len(s.regs))
	for _, r := range s.regs {
		if r.Side.Produces() {
			out = append(out, r)
		}
	}
	return out
}

// NumLeftBits returns the total incoming width: Σ TotalBits over Lefts().
// Complexity: O(n).
func (s Signature) NumLeftBits() uint {
	var n uint
	for _, r := range s.Lefts() {
		n += r.TotalBits()
	}
	return n
}

// NumRightBits returns the total outgoing width: Σ TotalBits over Rights().
// Complexity: O(n).
func (s Signature) NumRightBits() uint {
	var n uint
	for _, r := range s.Rights() {
		n += r.TotalBits()
	}
	return n
}

// Equal reports element-wise structural equality in declaration order.
// Complexity: O(n · max shape length).
func (s Signature) Equal(o Signature) bool {
	if len(s.regs) != len(o.regs) {
		return false
	}
	for i := range s.regs {
		if !s.regs[i].Equal(o.regs[i]) {
			return false
		}
	}
	return true
}

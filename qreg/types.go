// SPDX-License-Identifier: MIT
// Package: qgraph/qreg
//
// types.go — Side and Register: the leaf value types of the whole IR.
//
// Design contract (strict):
//   - Register is a pure value: no pointers, no mutation after construction.
//   - Side is a 2-bit mask so THRU literally is LEFT|RIGHT; direction tests
//     are bitwise and O(1).
//   - Shape is row-major everywhere; a nil/empty shape means one scalar wire.
//   - Constructors (Thru/Left/Right) are the only intended creation path;
//     they validate width eagerly and panic-free callers should prefer them
//     over struct literals.

package qreg

import (
	"fmt"
	"strings"
)

// Side describes the directionality of a register as a 2-bit mask.
// LEFT means the port is consumed only; RIGHT means produced only; THRU is
// the union: the same logical wire is consumed and re-produced in place.
type Side uint8

const (
	// SideLeft marks a consumed-only port (no corresponding output wire).
	SideLeft Side = 1 << iota
	// SideRight marks a produced-only port (e.g., a freshly allocated wire).
	SideRight
	// SideThru marks an in-place port: consumed and re-produced.
	SideThru = SideLeft | SideRight
)

// Consumes reports whether a port on this side reads an incoming wire.
// Complexity: O(1).
func (s Side) Consumes() bool { return s&SideLeft != 0 }

// Produces reports whether a port on this side emits an outgoing wire.
// Complexity: O(1).
func (s Side) Produces() bool { return s&SideRight != 0 }

// String renders the side for diagnostics.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	case SideThru:
		return "THRU"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Register is one named, typed port of an operation.
//
// Bitsize is the width of each wire; Shape generalizes the register to a
// row-major array of independent equal-width wires (nil means one scalar
// wire). Side fixes directionality per the no-cloning wiring rules.
type Register struct {
	// Name uniquely identifies this register within its signature.
	Name string

	// Bitsize is the width in bits of each wire of this register (≥ 1).
	Bitsize uint

	// Shape is the row-major multi-wire shape; nil/empty means scalar.
	Shape []uint

	// Side is the directionality of the port (LEFT, RIGHT, or THRU).
	Side Side
}

// RegOption configures optional Register fields at construction time.
type RegOption func(*Register)

// WithShape declares the register as an array of independent wires with the
// given row-major shape. Zero-length dimensions are not meaningful and are
// rejected by the signature validator.
func WithShape(shape ...uint) RegOption {
	return func(r *Register) { r.Shape = append([]uint(nil), shape...) }
}

// WithSide overrides the register's directionality. Intended for callers
// that build registers through a THRU-defaulting constructor (e.g. the
// builder's AddRegister) and need a consumed-only or produced-only port.
func WithSide(side Side) RegOption {
	return func(r *Register) { r.Side = side }
}

// Thru constructs a THRU register: one in-place port of the given width.
// Complexity: O(len(opts)).
func Thru(name string, bitsize uint, opts ...RegOption) Register {
	return newRegister(name, bitsize, SideThru, opts)
}

// Left constructs a consumed-only register (no output counterpart).
func Left(name string, bitsize uint, opts ...RegOption) Register {
	return newRegister(name, bitsize, SideLeft, opts)
}

// Right constructs a produced-only register (no input counterpart).
func Right(name string, bitsize uint, opts ...RegOption) Register {
	return newRegister(name, bitsize, SideRight, opts)
}

// newRegister applies options over the mandatory fields.
func newRegister(name string, bitsize uint, side Side, opts []RegOption) Register {
	r := Register{Name: name, Bitsize: bitsize, Side: side}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NumWires returns the number of independent wires this register stands
// for: the product of the shape dimensions, or 1 for a scalar register.
// Complexity: O(len(Shape)).
func (r Register) NumWires() uint {
	n := uint(1)
	for _, d := range r.Shape {
		n *= d
	}
	return n
}

// TotalBits returns Bitsize summed over every wire of the register.
// Complexity: O(len(Shape)).
func (r Register) TotalBits() uint { return r.Bitsize * r.NumWires() }

// Equal reports structural equality: same name, width, shape, and side.
// Complexity: O(len(Shape)).
func (r Register) Equal(o Register) bool {
	if r.Name != o.Name || r.Bitsize != o.Bitsize || r.Side != o.Side {
		return false
	}
	if len(r.Shape) != len(o.Shape) {
		return false
	}
	for i := range r.Shape {
		if r.Shape[i] != o.Shape[i] {
			return false
		}
	}
	return true
}

// String renders the register for diagnostics, e.g. "q:3[2,2](THRU)".
func (r Register) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d", r.Name, r.Bitsize)
	if len(r.Shape) > 0 {
		b.WriteByte('[')
		for i, d := range r.Shape {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%d", d)
		}
		b.WriteByte(']')
	}
	fmt.Fprintf(&b, "(%s)", r.Side)
	return b.String()
}

// validate performs the eager per-register checks shared by signature
// construction: non-empty name, non-zero width, non-zero shape dimensions.
func (r Register) validate() error {
	if r.Name == "" {
		return fmt.Errorf("register with empty name: %w", ErrUnknownRegister)
	}
	if r.Bitsize == 0 {
		return fmt.Errorf("register %q: %w", r.Name, ErrBadWidth)
	}
	for _, d := range r.Shape {
		if d == 0 {
			return fmt.Errorf("register %q: zero shape dimension: %w", r.Name, ErrBadWidth)
		}
	}
	return nil
}

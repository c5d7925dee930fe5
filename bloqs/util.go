// SPDX-License-Identifier: MIT
// Package: qgraph/bloqs
//
// util.go — wiring utilities: Split, Join, Allocate, Free.
//
// Design contract (strict):
//   - Split/Join are exact inverses: join(split(s)) ≡ s. Both contract as
//     identity tensors (big-endian bit regrouping deltas), so round-
//     tripping never perturbs a computed result.
//   - Allocate/Free are the paired ancilla endpoints: every allocated wire
//     must eventually be freed or surfaced, which the builder enforces at
//     Finalize.
//   - Register naming: the consumed wide wire is "reg" on Split and the
//     produced wide wire is "reg" on Join; the bit-array sides are named
//     after the operation ("split"/"join"); Allocate produces "alloc" and
//     Free consumes "free". The builder sugar hides all of these.

package bloqs

import (
	"fmt"

	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/matrix"
	"github.com/katalvlaran/qgraph/qreg"
)

// widthCheck validates a primitive width: [min, 64].
func widthCheck(kind string, n, min uint) error {
	if n < min || n > 64 {
		return fmt.Errorf("New%s(%d): width must be in [%d,64]: %w", kind, n, min, ErrBadWidth)
	}
	return nil
}

// oneValue extracts the single classical value of a scalar register.
func oneValue(in map[string][]uint64, name string) (uint64, error) {
	vs, ok := in[name]
	if !ok || len(vs) != 1 {
		return 0, fmt.Errorf("register %q: %w", name, ErrMissingValue)
	}
	return vs[0], nil
}

// ---------------------------------------------------------------------------
// Split
// ---------------------------------------------------------------------------

// Split decomposes one width-N wire into N individual width-1 wires
// (big-endian: wire 0 carries the most significant bit).
type Split struct {
	// N is the width of the consumed wire (≥ 2).
	N uint
}

// NewSplit validates the width. Errors: ErrBadWidth outside [2,64].
func NewSplit(n uint) (Split, error) {
	if err := widthCheck("Split", n, 2); err != nil {
		return Split{}, err
	}
	return Split{N: n}, nil
}

// Name implements core.Bloq.
func (s Split) Name() string { return "Split" }

// Signature implements core.Bloq: LEFT reg:N → RIGHT split:1[N].
func (s Split) Signature() qreg.Signature {
	return qreg.MustSignature(
		qreg.Left("reg", s.N),
		qreg.Right("split", 1, qreg.WithShape(s.N)),
	)
}

// Tensor implements core.TensorBloq: the 2^N identity with its row axis
// regrouped into N big-endian bit axes. Pure reshaping, no numeric change.
// Complexity: O(4^N) for the identity fill.
func (s Split) Tensor() (*matrix.Tensor, error) {
	dim := 1 << s.N
	shape := make([]int, 0, s.N+1)
	for i := uint(0); i < s.N; i++ {
		shape = append(shape, 2) // outgoing bit wires, most significant first
	}
	shape = append(shape, dim) // incoming wide wire
	return matrix.Eye(dim).Reshape(shape...)
}

// CallClassically implements core.ClassicalBloq: big-endian bit slicing.
func (s Split) CallClassically(in map[string][]uint64) (map[string][]uint64, error) {
	v, err := oneValue(in, "reg")
	if err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}
	bits, err := qreg.IntToBits(v, s.N)
	if err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}
	out := make([]uint64, s.N)
	for i, b := range bits {
		out[i] = uint64(b)
	}
	return map[string][]uint64{"split": out}, nil
}

// ---------------------------------------------------------------------------
// Join
// ---------------------------------------------------------------------------

// Join is the exact inverse of Split: N width-1 wires fused into one
// width-N wire (wire 0 becomes the most significant bit).
type Join struct {
	// N is the width of the produced wire (≥ 2).
	N uint
}

// NewJoin validates the width. Errors: ErrBadWidth outside [2,64].
func NewJoin(n uint) (Join, error) {
	if err := widthCheck("Join", n, 2); err != nil {
		return Join{}, err
	}
	return Join{N: n}, nil
}

// Name implements core.Bloq.
func (j Join) Name() string { return "Join" }

// Signature implements core.Bloq: LEFT join:1[N] → RIGHT reg:N.
func (j Join) Signature() qreg.Signature {
	return qreg.MustSignature(
		qreg.Left("join", 1, qreg.WithShape(j.N)),
		qreg.Right("reg", j.N),
	)
}

// Tensor implements core.TensorBloq: the 2^N identity with its column axis
// regrouped into N big-endian bit axes.
// Complexity: O(4^N).
func (j Join) Tensor() (*matrix.Tensor, error) {
	dim := 1 << j.N
	shape := make([]int, 0, j.N+1)
	shape = append(shape, dim) // outgoing wide wire
	for i := uint(0); i < j.N; i++ {
		shape = append(shape, 2) // incoming bit wires, most significant first
	}
	return matrix.Eye(dim).Reshape(shape...)
}

// CallClassically implements core.ClassicalBloq: big-endian bit folding.
func (j Join) CallClassically(in map[string][]uint64) (map[string][]uint64, error) {
	vs, ok := in["join"]
	if !ok || uint(len(vs)) != j.N {
		return nil, fmt.Errorf("Join: register %q: %w", "join", ErrMissingValue)
	}
	bits := make([]uint8, j.N)
	for i, v := range vs {
		if v > 1 {
			return nil, fmt.Errorf("Join: wire %d holds %d: %w", i, v, qreg.ErrValueTooWide)
		}
		bits[i] = uint8(v)
	}
	v, err := qreg.BitsToInt(bits)
	if err != nil {
		return nil, fmt.Errorf("Join: %w", err)
	}
	return map[string][]uint64{"reg": {v}}, nil
}

// ---------------------------------------------------------------------------
// Allocate / Free
// ---------------------------------------------------------------------------

// Allocate produces one fresh width-N ancilla wire in the |0…0⟩ state.
type Allocate struct {
	// N is the width of the produced wire (≥ 1).
	N uint
}

// NewAllocate validates the width. Errors: ErrBadWidth outside [1,64].
func NewAllocate(n uint) (Allocate, error) {
	if err := widthCheck("Allocate", n, 1); err != nil {
		return Allocate{}, err
	}
	return Allocate{N: n}, nil
}

// Name implements core.Bloq.
func (a Allocate) Name() string { return "Allocate" }

// Signature implements core.Bloq: RIGHT alloc:N.
func (a Allocate) Signature() qreg.Signature {
	return qreg.MustSignature(qreg.Right("alloc", a.N))
}

// Tensor implements core.TensorBloq: the basis vector |0…0⟩.
func (a Allocate) Tensor() (*matrix.Tensor, error) {
	t, err := matrix.New(1 << a.N)
	if err != nil {
		return nil, fmt.Errorf("Allocate.Tensor: %w", err)
	}
	t.Data()[0] = 1
	return t, nil
}

// CallClassically implements core.ClassicalBloq: a fresh zero.
func (a Allocate) CallClassically(map[string][]uint64) (map[string][]uint64, error) {
	return map[string][]uint64{"alloc": {0}}, nil
}

// Free consumes one width-N ancilla wire, which must be back in |0…0⟩.
type Free struct {
	// N is the width of the consumed wire (≥ 1).
	N uint
}

// NewFree validates the width. Errors: ErrBadWidth outside [1,64].
func NewFree(n uint) (Free, error) {
	if err := widthCheck("Free", n, 1); err != nil {
		return Free{}, err
	}
	return Free{N: n}, nil
}

// Name implements core.Bloq.
func (f Free) Name() string { return "Free" }

// Signature implements core.Bloq: LEFT free:N.
func (f Free) Signature() qreg.Signature {
	return qreg.MustSignature(qreg.Left("free", f.N))
}

// Tensor implements core.TensorBloq: the projection ⟨0…0|. Contracting a
// properly uncomputed ancilla against it is the identity on the surviving
// wires.
func (f Free) Tensor() (*matrix.Tensor, error) {
	t, err := matrix.New(1 << f.N)
	if err != nil {
		return nil, fmt.Errorf("Free.Tensor: %w", err)
	}
	t.Data()[0] = 1
	return t, nil
}

// CallClassically implements core.ClassicalBloq: only |0…0⟩ may be freed.
func (f Free) CallClassically(in map[string][]uint64) (map[string][]uint64, error) {
	v, err := oneValue(in, "free")
	if err != nil {
		return nil, fmt.Errorf("Free: %w", err)
	}
	if v != 0 {
		return nil, fmt.Errorf("Free: value %d: %w", v, ErrFreeNonZero)
	}
	return map[string][]uint64{}, nil
}

// Interface conformance pins (compile-time).
var (
	_ core.TensorBloq    = Split{}
	_ core.ClassicalBloq = Split{}
	_ core.TensorBloq    = Join{}
	_ core.ClassicalBloq = Join{}
	_ core.TensorBloq    = Allocate{}
	_ core.ClassicalBloq = Allocate{}
	_ core.TensorBloq    = Free{}
	_ core.ClassicalBloq = Free{}
)

// SPDX-License-Identifier: MIT
// Package: qgraph/bloqs
//
// gates.go — basic gates: XGate, ZGate, Hadamard, CNOT, Swap.
//
// Tensor axis convention (core.TensorBloq): outgoing wires first (RIGHT|THRU
// registers in signature order), then incoming wires, each axis of dimension
// 2^bitsize. For a 1-qubit THRU gate that is exactly the familiar 2×2
// matrix with rows = output index, columns = input index.

package bloqs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/matrix"
	"github.com/katalvlaran/qgraph/qreg"
)

// oneQubit is the shared THRU q:1 signature of the single-qubit gates.
func oneQubit() qreg.Signature {
	return qreg.MustSignature(qreg.Thru("q", 1))
}

// XGate is the Pauli-X bit flip on one qubit.
type XGate struct{}

// Name implements core.Bloq.
func (XGate) Name() string { return "XGate" }

// Signature implements core.Bloq: THRU q:1.
func (XGate) Signature() qreg.Signature { return oneQubit() }

// Tensor implements core.TensorBloq: [[0,1],[1,0]].
func (XGate) Tensor() (*matrix.Tensor, error) {
	return matrix.FromData([]complex128{0, 1, 1, 0}, 2, 2)
}

// CallClassically implements core.ClassicalBloq: the bit flip.
func (XGate) CallClassically(in map[string][]uint64) (map[string][]uint64, error) {
	v, err := oneValue(in, "q")
	if err != nil {
		return nil, fmt.Errorf("XGate: %w", err)
	}
	if v > 1 {
		return nil, fmt.Errorf("XGate: value %d: %w", v, qreg.ErrValueTooWide)
	}
	return map[string][]uint64{"q": {v ^ 1}}, nil
}

// ZGate is the Pauli-Z phase flip on one qubit.
type ZGate struct{}

// Name implements core.Bloq.
func (ZGate) Name() string { return "ZGate" }

// Signature implements core.Bloq: THRU q:1.
func (ZGate) Signature() qreg.Signature { return oneQubit() }

// Tensor implements core.TensorBloq: diag(1, -1).
func (ZGate) Tensor() (*matrix.Tensor, error) {
	return matrix.FromData([]complex128{1, 0, 0, -1}, 2, 2)
}

// Hadamard rotates one qubit between the Z and X bases.
type Hadamard struct{}

// Name implements core.Bloq.
func (Hadamard) Name() string { return "Hadamard" }

// Signature implements core.Bloq: THRU q:1.
func (Hadamard) Signature() qreg.Signature { return oneQubit() }

// Tensor implements core.TensorBloq: (1/√2)·[[1,1],[1,-1]].
func (Hadamard) Tensor() (*matrix.Tensor, error) {
	s := complex(1/math.Sqrt2, 0)
	return matrix.FromData([]complex128{s, s, s, -s}, 2, 2)
}

// CNOT flips the target qubit when the control qubit is set.
type CNOT struct{}

// Name implements core.Bloq.
func (CNOT) Name() string { return "CNOT" }

// Signature implements core.Bloq: THRU ctrl:1, THRU target:1.
func (CNOT) Signature() qreg.Signature {
	return qreg.MustSignature(qreg.Thru("ctrl", 1), qreg.Thru("target", 1))
}

// Tensor implements core.TensorBloq: rank 4, axes
// (ctrl_out, target_out, ctrl_in, target_in); entry 1 iff ctrl_out=ctrl_in
// and target_out = target_in ⊕ ctrl_in.
func (CNOT) Tensor() (*matrix.Tensor, error) {
	t, err := matrix.New(2, 2, 2, 2)
	if err != nil {
		return nil, fmt.Errorf("CNOT.Tensor: %w", err)
	}
	for c := 0; c < 2; c++ {
		for tgt := 0; tgt < 2; tgt++ {
			if err := t.Set(1, c, tgt^c, c, tgt); err != nil {
				return nil, fmt.Errorf("CNOT.Tensor: %w", err)
			}
		}
	}
	return t, nil
}

// CallClassically implements core.ClassicalBloq: target ^= ctrl.
func (CNOT) CallClassically(in map[string][]uint64) (map[string][]uint64, error) {
	c, err := oneValue(in, "ctrl")
	if err != nil {
		return nil, fmt.Errorf("CNOT: %w", err)
	}
	tgt, err := oneValue(in, "target")
	if err != nil {
		return nil, fmt.Errorf("CNOT: %w", err)
	}
	if c > 1 || tgt > 1 {
		return nil, fmt.Errorf("CNOT: values (%d,%d): %w", c, tgt, qreg.ErrValueTooWide)
	}
	return map[string][]uint64{"ctrl": {c}, "target": {tgt ^ c}}, nil
}

// Swap exchanges two qubits. It carries BOTH a native tensor and a
// three-CNOT decomposition, which makes it the reference fixture for
// decomposition-equivalence testing.
type Swap struct{}

// Name implements core.Bloq.
func (Swap) Name() string { return "Swap" }

// Signature implements core.Bloq: THRU x:1, THRU y:1.
func (Swap) Signature() qreg.Signature {
	return qreg.MustSignature(qreg.Thru("x", 1), qreg.Thru("y", 1))
}

// Tensor implements core.TensorBloq: rank 4, axes (x_out, y_out, x_in,
// y_in); entry 1 iff x_out=y_in and y_out=x_in.
func (Swap) Tensor() (*matrix.Tensor, error) {
	t, err := matrix.New(2, 2, 2, 2)
	if err != nil {
		return nil, fmt.Errorf("Swap.Tensor: %w", err)
	}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			if err := t.Set(1, y, x, x, y); err != nil {
				return nil, fmt.Errorf("Swap.Tensor: %w", err)
			}
		}
	}
	return t, nil
}

// Decompose implements core.Decomposer with the classic three-CNOT ladder:
//
//	x ──●──⊕──●── x
//	y ──⊕──●──⊕── y
//
// The graph is wired directly against the arena constructor; the middle
// CNOT runs with control and target exchanged.
func (Swap) Decompose() (*core.CompositeBloq, error) {
	sig := Swap{}.Signature()
	binsts := []core.BloqInstance{
		{ID: 0, Bloq: CNOT{}},
		{ID: 1, Bloq: CNOT{}},
		{ID: 2, Bloq: CNOT{}},
	}
	soq := func(id core.InstanceID, reg string) core.Soquet {
		return core.Soquet{Binst: id, Reg: reg}
	}
	conns := []core.Connection{
		// Boundary in.
		{From: soq(core.LeftDangle, "x"), To: soq(0, "ctrl")},
		{From: soq(core.LeftDangle, "y"), To: soq(0, "target")},
		// First CNOT feeds the exchanged-middle CNOT.
		{From: soq(0, "ctrl"), To: soq(1, "target")},
		{From: soq(0, "target"), To: soq(1, "ctrl")},
		// Middle CNOT feeds the final one, exchanged back.
		{From: soq(1, "target"), To: soq(2, "ctrl")},
		{From: soq(1, "ctrl"), To: soq(2, "target")},
		// Boundary out.
		{From: soq(2, "ctrl"), To: soq(core.RightDangle, "x")},
		{From: soq(2, "target"), To: soq(core.RightDangle, "y")},
	}
	cb, err := core.NewCompositeBloq(sig, binsts, conns)
	if err != nil {
		return nil, fmt.Errorf("Swap.Decompose: %w", err)
	}
	return cb, nil
}

// CallClassically implements core.ClassicalBloq: exchange the two values.
func (Swap) CallClassically(in map[string][]uint64) (map[string][]uint64, error) {
	x, err := oneValue(in, "x")
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}
	y, err := oneValue(in, "y")
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}
	return map[string][]uint64{"x": {y}, "y": {x}}, nil
}

// Interface conformance pins (compile-time).
var (
	_ core.TensorBloq    = XGate{}
	_ core.ClassicalBloq = XGate{}
	_ core.TensorBloq    = ZGate{}
	_ core.TensorBloq    = Hadamard{}
	_ core.TensorBloq    = CNOT{}
	_ core.ClassicalBloq = CNOT{}
	_ core.TensorBloq    = Swap{}
	_ core.Decomposer    = Swap{}
	_ core.ClassicalBloq = Swap{}
)

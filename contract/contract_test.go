// SPDX-License-Identifier: MIT

// Package contract_test validates the contraction engine end to end:
// native tensors, recursive expansion, boundary axis ordering, identity
// edge cases, ancilla neutrality, and the resource guards.
package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qgraph/bloqs"
	"github.com/katalvlaran/qgraph/builder"
	"github.com/katalvlaran/qgraph/contract"
	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/decompose"
	"github.com/katalvlaran/qgraph/matrix"
	"github.com/katalvlaran/qgraph/qreg"
)

const tol = 1e-8

// wrapped forwards its whole signature to one inner operation through a
// single-instance decomposition - the register-forwarding nesting fixture.
type wrapped struct{ inner core.Bloq }

func (w wrapped) Name() string { return "wrapped" }
func (w wrapped) Signature() qreg.Signature { return w.inner.Signature() }
func (w wrapped) Decompose() (*core.CompositeBloq, error) {
	bb, ins, err := builder.NewFromSignature(w.inner.Signature())
	if err != nil {
		return nil, err
	}
	outs, err := bb.Add(w.inner, ins)
	if err != nil {
		return nil, err
	}
	return bb.Finalize(outs)
}

// badRank declares one qubit but emits a rank-1 tensor.
type badRank struct{}

func (badRank) Name() string { return "badRank" }
func (badRank) Signature() qreg.Signature { return qreg.MustSignature(qreg.Thru("q", 1)) }
func (badRank) Tensor() (*matrix.Tensor, error) {
	return matrix.FromData([]complex128{1, 0}, 2)
}

// inert has neither a tensor nor a decomposition.
type inert struct{}

func (inert) Name() string { return "inert" }
func (inert) Signature() qreg.Signature { return qreg.MustSignature(qreg.Thru("q", 1)) }

// requireMatrix contracts b and compares the 2^R×2^L readout with want
// (row-major complex data).
func requireMatrix(t *testing.T, b core.Bloq, rows, cols int, want []complex128, opts ...contract.Option) {
	t.Helper()
	m, err := contract.ToMatrix(b, opts...)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
	got, err := matrix.FromData(rawCDense(m, rows, cols), rows, cols)
	require.NoError(t, err)
	wantT, err := matrix.FromData(want, rows, cols)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(got, wantT, tol), "got %v want %v", got.Data(), want)
}

// rawCDense flattens a gonum complex matrix row-major.
func rawCDense(m interface{ At(i, j int) complex128 }, rows, cols int) []complex128 {
	out := make([]complex128, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// ------------------------------------------------------------------------
// 1. Native single-bloq contraction and readout ordering
// ------------------------------------------------------------------------

func TestContract_XGate(t *testing.T) {
	requireMatrix(t, bloqs.XGate{}, 2, 2, []complex128{0, 1, 1, 0})
}

func TestContract_CNOTReadout(t *testing.T) {
	// Big-endian (ctrl, target): |10⟩→|11⟩ and |11⟩→|10⟩.
	requireMatrix(t, bloqs.CNOT{}, 4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
}

func TestContract_AllocateColumnVector(t *testing.T) {
	a, err := bloqs.NewAllocate(1)
	require.NoError(t, err)
	// No inputs: a 2×1 readout, the |0⟩ column.
	requireMatrix(t, a, 2, 1, []complex128{1, 0})
}

func TestContract_TensorRankGuard(t *testing.T) {
	_, err := contract.Contract(badRank{})
	require.ErrorIs(t, err, contract.ErrTensorRank)
}

func TestContract_NotDecomposable(t *testing.T) {
	_, err := contract.Contract(inert{})
	require.ErrorIs(t, err, decompose.ErrNotDecomposable)
}

// ------------------------------------------------------------------------
// 2. Graph contraction
// ------------------------------------------------------------------------

// xChain builds a graph of n sequential X gates on one qubit.
func xChain(t *testing.T, n int) *core.CompositeBloq {
	t.Helper()
	bb := builder.New()
	qs, err := bb.AddRegister("q", 1)
	require.NoError(t, err)
	s := qs[0]
	for i := 0; i < n; i++ {
		outs, err := bb.Add(bloqs.XGate{}, builder.Soqs{"q": {s}})
		require.NoError(t, err)
		s = outs.One("q")
	}
	cb, err := bb.Finalize(builder.Soqs{"q": {s}})
	require.NoError(t, err)
	return cb
}

func TestContract_FourXIsIdentity(t *testing.T) {
	cb := xChain(t, 4)
	require.Equal(t, 4, cb.NumInstances())
	requireMatrix(t, cb, 2, 2, []complex128{1, 0, 0, 1})
}

func TestContract_ThreeXIsX(t *testing.T) {
	requireMatrix(t, xChain(t, 3), 2, 2, []complex128{0, 1, 1, 0})
}

func TestContract_HadamardTwiceIsIdentity(t *testing.T) {
	bb := builder.New()
	qs, err := bb.AddRegister("q", 1)
	require.NoError(t, err)
	o1, err := bb.Add(bloqs.Hadamard{}, builder.Soqs{"q": qs})
	require.NoError(t, err)
	o2, err := bb.Add(bloqs.Hadamard{}, builder.Soqs{"q": {o1.One("q")}})
	require.NoError(t, err)
	cb, err := bb.Finalize(builder.Soqs{"q": {o2.One("q")}})
	require.NoError(t, err)

	requireMatrix(t, cb, 2, 2, []complex128{1, 0, 0, 1})
}

func TestContract_EmptyGraphIsIdentity(t *testing.T) {
	// A passthrough wire with zero instances contracts to the identity.
	bb := builder.New()
	qs, err := bb.AddRegister("q", 2)
	require.NoError(t, err)
	cb, err := bb.Finalize(builder.Soqs{"q": qs})
	require.NoError(t, err)
	require.Equal(t, 0, cb.NumInstances())

	requireMatrix(t, cb, 4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

func TestContract_NoBoundaryNoInstances(t *testing.T) {
	cb, err := builder.New().Finalize(builder.Soqs{})
	require.NoError(t, err)
	tt, err := contract.Contract(cb)
	require.NoError(t, err)
	require.Equal(t, 0, tt.Rank())
	require.Equal(t, complex128(1), tt.Data()[0])
}

func TestContract_SplitJoinIsIdentity(t *testing.T) {
	bb := builder.New()
	qs, err := bb.AddRegister("q", 3)
	require.NoError(t, err)
	wires, err := bb.Split(qs[0])
	require.NoError(t, err)
	back, err := bb.Join(wires)
	require.NoError(t, err)
	cb, err := bb.Finalize(builder.Soqs{"q": {back}})
	require.NoError(t, err)

	want := make([]complex128, 64)
	for i := 0; i < 8; i++ {
		want[i*8+i] = 1
	}
	requireMatrix(t, cb, 8, 8, want)
}

func TestContract_AncillaNeutrality(t *testing.T) {
	// allocate → X → X → free alongside a passthrough qubit: the ancilla
	// loop contracts to the scalar 1 and the readout is the identity.
	bb := builder.New()
	qs, err := bb.AddRegister("q", 1)
	require.NoError(t, err)
	anc, err := bb.Allocate(1)
	require.NoError(t, err)
	o1, err := bb.Add(bloqs.XGate{}, builder.Soqs{"q": {anc}})
	require.NoError(t, err)
	o2, err := bb.Add(bloqs.XGate{}, builder.Soqs{"q": {o1.One("q")}})
	require.NoError(t, err)
	require.NoError(t, bb.Free(o2.One("q")))
	cb, err := bb.Finalize(builder.Soqs{"q": qs})
	require.NoError(t, err)

	// The two connected components (ancilla loop, passthrough) also
	// exercise the parallel and the serial paths.
	requireMatrix(t, cb, 2, 2, []complex128{1, 0, 0, 1})
	requireMatrix(t, cb, 2, 2, []complex128{1, 0, 0, 1}, contract.WithSerial())
}

// ------------------------------------------------------------------------
// 3. Decomposition equivalence and nesting
// ------------------------------------------------------------------------

func TestContract_SwapNativeVsDecomposed(t *testing.T) {
	native, err := contract.Contract(bloqs.Swap{})
	require.NoError(t, err)

	cb, err := bloqs.Swap{}.Decompose()
	require.NoError(t, err)
	expanded, err := contract.Contract(cb)
	require.NoError(t, err)

	require.True(t, matrix.EqualApprox(native, expanded, tol))
}

func TestContract_RegisterForwardingNesting(t *testing.T) {
	want := []complex128{0, 1, 1, 0}
	var b core.Bloq = bloqs.XGate{}
	for level := 1; level <= 3; level++ {
		b = wrapped{inner: b}
		requireMatrix(t, b, 2, 2, want)
	}
}

func TestContract_DepthBudget(t *testing.T) {
	deep := wrapped{inner: wrapped{inner: wrapped{inner: bloqs.XGate{}}}}
	_, err := contract.Contract(deep, contract.WithMaxDepth(2))
	require.ErrorIs(t, err, decompose.ErrDepthExceeded)

	_, err = contract.Contract(deep, contract.WithMaxDepth(3))
	require.NoError(t, err)
}

// ------------------------------------------------------------------------
// 4. Resource guard
// ------------------------------------------------------------------------

func TestContract_ElementBudget(t *testing.T) {
	// Contracting two 2×2 tensors yields a 4-element intermediate.
	_, err := contract.Contract(xChain(t, 2), contract.WithMaxTensorElems(2))
	require.ErrorIs(t, err, contract.ErrTensorTooLarge)

	_, err = contract.Contract(xChain(t, 2), contract.WithMaxTensorElems(4))
	require.NoError(t, err)
}

// SPDX-License-Identifier: MIT

// Package decompose_test validates one-level expansion, the recursion
// guard, and the graph-flattening rebuild.
package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qgraph/bloqs"
	"github.com/katalvlaran/qgraph/builder"
	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/decompose"
	"github.com/katalvlaran/qgraph/qreg"
)

// badDecomposer expands to a graph whose boundary drops a register.
type badDecomposer struct{}

func (badDecomposer) Name() string { return "badDecomposer" }
func (badDecomposer) Signature() qreg.Signature {
	return qreg.MustSignature(qreg.Thru("x", 1), qreg.Thru("y", 1))
}
func (badDecomposer) Decompose() (*core.CompositeBloq, error) {
	bb, err := core.NewCompositeBloq(qreg.MustSignature(qreg.Thru("x", 1)), nil,
		[]core.Connection{{
			From: core.Soquet{Binst: core.LeftDangle, Reg: "x"},
			To:   core.Soquet{Binst: core.RightDangle, Reg: "x"},
		}})
	if err != nil {
		return nil, err
	}
	return bb, nil
}

// ------------------------------------------------------------------------
// 1. Guard
// ------------------------------------------------------------------------

func TestGuard_Budget(t *testing.T) {
	g := decompose.NewGuard(2)
	g1, err := g.Descend()
	require.NoError(t, err)
	g2, err := g1.Descend()
	require.NoError(t, err)
	_, err = g2.Descend()
	require.ErrorIs(t, err, decompose.ErrDepthExceeded)
}

func TestGuard_DefaultBudget(t *testing.T) {
	// Non-positive budgets fall back to the default; the zero value is
	// already spent.
	g := decompose.NewGuard(0)
	_, err := g.Descend()
	require.NoError(t, err)

	var spent decompose.Guard
	_, err = spent.Descend()
	require.ErrorIs(t, err, decompose.ErrDepthExceeded)
}

// ------------------------------------------------------------------------
// 2. OneLevel
// ------------------------------------------------------------------------

func TestOneLevel_Swap(t *testing.T) {
	cb, err := decompose.OneLevel(bloqs.Swap{})
	require.NoError(t, err)
	require.Equal(t, 3, cb.NumInstances())
	require.True(t, cb.Signature().Equal(bloqs.Swap{}.Signature()))
}

func TestOneLevel_CompositePassesThrough(t *testing.T) {
	cb, err := decompose.OneLevel(bloqs.Swap{})
	require.NoError(t, err)
	same, err := decompose.OneLevel(cb)
	require.NoError(t, err)
	require.Same(t, cb, same)
}

func TestOneLevel_Primitive(t *testing.T) {
	_, err := decompose.OneLevel(bloqs.XGate{})
	require.ErrorIs(t, err, decompose.ErrNotDecomposable)
}

func TestOneLevel_SignatureMismatch(t *testing.T) {
	_, err := decompose.OneLevel(badDecomposer{})
	require.ErrorIs(t, err, decompose.ErrSignatureMismatch)
}

// ------------------------------------------------------------------------
// 3. FlattenOnce
// ------------------------------------------------------------------------

// buildSwapCircuit wires X on x, then a Swap, into one composite.
func buildSwapCircuit(t *testing.T) *core.CompositeBloq {
	t.Helper()
	bb := builder.New()
	xs, err := bb.AddRegister("x", 1)
	require.NoError(t, err)
	ys, err := bb.AddRegister("y", 1)
	require.NoError(t, err)

	xo, err := bb.Add(bloqs.XGate{}, builder.Soqs{"q": xs})
	require.NoError(t, err)
	so, err := bb.Add(bloqs.Swap{}, builder.Soqs{"x": {xo.One("q")}, "y": ys})
	require.NoError(t, err)

	cb, err := bb.Finalize(builder.Soqs{"x": {so.One("x")}, "y": {so.One("y")}})
	require.NoError(t, err)
	return cb
}

func TestFlattenOnce_InlinesOneLevel(t *testing.T) {
	cb := buildSwapCircuit(t)
	require.Equal(t, 2, cb.NumInstances())

	flat, err := decompose.FlattenOnce(cb)
	require.NoError(t, err)
	// X is primitive and passes through; Swap inlines to three CNOTs.
	require.Equal(t, 4, flat.NumInstances())
	require.True(t, flat.Signature().Equal(cb.Signature()))

	var cnots, xs int
	for _, bi := range flat.Instances() {
		switch bi.Bloq.Name() {
		case "CNOT":
			cnots++
		case "XGate":
			xs++
		}
	}
	require.Equal(t, 3, cnots)
	require.Equal(t, 1, xs)
}

func TestFlattenOnce_AllPrimitivesUnchanged(t *testing.T) {
	bb := builder.New()
	qs, err := bb.AddRegister("q", 1)
	require.NoError(t, err)
	outs, err := bb.Add(bloqs.XGate{}, builder.Soqs{"q": qs})
	require.NoError(t, err)
	cb, err := bb.Finalize(builder.Soqs{"q": outs["q"]})
	require.NoError(t, err)

	flat, err := decompose.FlattenOnce(cb)
	require.NoError(t, err)
	require.Equal(t, cb.NumInstances(), flat.NumInstances())
	require.True(t, flat.Signature().Equal(cb.Signature()))
}

func TestFlattenOnce_IsOneLevelOnly(t *testing.T) {
	// Wrap the Swap circuit as an instance of a bigger graph: one flatten
	// splices the composite's own body (X + Swap), not the Swap's CNOTs.
	inner := buildSwapCircuit(t)

	bb, ins, err := builder.NewFromSignature(inner.Signature())
	require.NoError(t, err)
	outs, err := bb.Add(inner, ins)
	require.NoError(t, err)
	outerGraph, err := bb.Finalize(outs)
	require.NoError(t, err)
	require.Equal(t, 1, outerGraph.NumInstances())

	flat, err := decompose.FlattenOnce(outerGraph)
	require.NoError(t, err)
	require.Equal(t, 2, flat.NumInstances()) // X and Swap, CNOTs untouched
}

// SPDX-License-Identifier: MIT

// Package qreg_test validates the register/signature value layer: side
// semantics, constructor validation, declaration-order accessors, and
// structural equality.
package qreg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qgraph/qreg"
)

// ------------------------------------------------------------------------
// 1. Side semantics
// ------------------------------------------------------------------------

func TestSide_ConsumesProduces(t *testing.T) {
	require.True(t, qreg.SideLeft.Consumes())
	require.False(t, qreg.SideLeft.Produces())
	require.False(t, qreg.SideRight.Consumes())
	require.True(t, qreg.SideRight.Produces())
	require.True(t, qreg.SideThru.Consumes())
	require.True(t, qreg.SideThru.Produces())
}

func TestSide_String(t *testing.T) {
	require.Equal(t, "LEFT", qreg.SideLeft.String())
	require.Equal(t, "RIGHT", qreg.SideRight.String())
	require.Equal(t, "THRU", qreg.SideThru.String())
}

// ------------------------------------------------------------------------
// 2. Register construction and derived quantities
// ------------------------------------------------------------------------

func TestRegister_Constructors(t *testing.T) {
	r := qreg.Thru("q", 3)
	require.Equal(t, qreg.SideThru, r.Side)
	require.Equal(t, uint(1), r.NumWires())
	require.Equal(t, uint(3), r.TotalBits())

	l := qreg.Left("in", 2, qreg.WithShape(2, 3))
	require.Equal(t, qreg.SideLeft, l.Side)
	require.Equal(t, uint(6), l.NumWires())
	require.Equal(t, uint(12), l.TotalBits())

	// WithSide overrides the constructor default.
	o := qreg.Thru("out", 1, qreg.WithSide(qreg.SideRight))
	require.Equal(t, qreg.SideRight, o.Side)
}

func TestRegister_String(t *testing.T) {
	require.Equal(t, "q:3[2,2](THRU)", qreg.Thru("q", 3, qreg.WithShape(2, 2)).String())
	require.Equal(t, "a:1(RIGHT)", qreg.Right("a", 1).String())
}

func TestRegister_Equal(t *testing.T) {
	a := qreg.Thru("q", 2, qreg.WithShape(3))
	require.True(t, a.Equal(qreg.Thru("q", 2, qreg.WithShape(3))))
	require.False(t, a.Equal(qreg.Thru("q", 2)))
	require.False(t, a.Equal(qreg.Left("q", 2, qreg.WithShape(3))))
	require.False(t, a.Equal(qreg.Thru("p", 2, qreg.WithShape(3))))
}

// ------------------------------------------------------------------------
// 3. Signature validation and accessors
// ------------------------------------------------------------------------

func TestNewSignature_DuplicateName(t *testing.T) {
	_, err := qreg.NewSignature(qreg.Thru("q", 1), qreg.Thru("q", 2))
	require.ErrorIs(t, err, qreg.ErrDuplicateName)
}

func TestNewSignature_ZeroWidth(t *testing.T) {
	_, err := qreg.NewSignature(qreg.Thru("q", 0))
	require.ErrorIs(t, err, qreg.ErrBadWidth)
}

func TestNewSignature_EmptyName(t *testing.T) {
	_, err := qreg.NewSignature(qreg.Thru("", 1))
	require.ErrorIs(t, err, qreg.ErrUnknownRegister)
}

func TestNewSignature_ZeroShapeDim(t *testing.T) {
	_, err := qreg.NewSignature(qreg.Thru("q", 1, qreg.WithShape(2, 0)))
	require.ErrorIs(t, err, qreg.ErrBadWidth)
}

func TestSignature_Accessors(t *testing.T) {
	sig := qreg.MustSignature(
		qreg.Left("in", 2),
		qreg.Thru("q", 1, qreg.WithShape(3)),
		qreg.Right("out", 4),
	)
	require.Equal(t, 3, sig.Len())
	require.True(t, sig.Has("q"))
	require.False(t, sig.Has("nope"))

	r, err := sig.Get("out")
	require.NoError(t, err)
	require.Equal(t, uint(4), r.Bitsize)
	_, err = sig.Get("nope")
	require.ErrorIs(t, err, qreg.ErrUnknownRegister)

	// Lefts/Rights filter by side but keep declaration order.
	lefts := sig.Lefts()
	require.Len(t, lefts, 2)
	require.Equal(t, "in", lefts[0].Name)
	require.Equal(t, "q", lefts[1].Name)
	rights := sig.Rights()
	require.Len(t, rights, 2)
	require.Equal(t, "q", rights[0].Name)
	require.Equal(t, "out", rights[1].Name)

	require.Equal(t, uint(5), sig.NumLeftBits())  // 2 + 3·1
	require.Equal(t, uint(7), sig.NumRightBits()) // 3·1 + 4
}

func TestSignature_Equal(t *testing.T) {
	a := qreg.MustSignature(qreg.Thru("q", 1), qreg.Thru("p", 2))
	b := qreg.MustSignature(qreg.Thru("q", 1), qreg.Thru("p", 2))
	c := qreg.MustSignature(qreg.Thru("p", 2), qreg.Thru("q", 1))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c)) // order is part of the contract
}

func TestBuildThru(t *testing.T) {
	sig, err := qreg.BuildThru(
		qreg.NamedWidth{Name: "ctrl", Bitsize: 1},
		qreg.NamedWidth{Name: "target", Bitsize: 1},
	)
	require.NoError(t, err)
	require.Equal(t, 2, sig.Len())
	require.Equal(t, qreg.SideThru, sig.At(0).Side)
	require.Equal(t, "ctrl", sig.At(0).Name)
}

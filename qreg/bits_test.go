// SPDX-License-Identifier: MIT

// Package qreg_test: bit-vector and bit-packing helper tests. The
// conventions under test are load-bearing for the classical path: big
// endian everywhere, declaration order owns the most significant bits.
package qreg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qgraph/qreg"
)

func TestIntToBits_BigEndian(t *testing.T) {
	bits, err := qreg.IntToBits(5, 4) // 0101
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 1, 0, 1}, bits)
}

func TestIntToBits_Errors(t *testing.T) {
	_, err := qreg.IntToBits(1, 0)
	require.ErrorIs(t, err, qreg.ErrBadWidth)
	_, err = qreg.IntToBits(1, 65)
	require.ErrorIs(t, err, qreg.ErrBadWidth)
	_, err = qreg.IntToBits(4, 2) // needs 3 bits
	require.ErrorIs(t, err, qreg.ErrValueTooWide)
}

func TestBitsToInt_RoundTrip(t *testing.T) {
	for _, x := range []uint64{0, 1, 5, 6, 255, 1023} {
		bits, err := qreg.IntToBits(x, 10)
		require.NoError(t, err)
		back, err := qreg.BitsToInt(bits)
		require.NoError(t, err)
		require.Equal(t, x, back)
	}
}

func TestBitsToInt_Errors(t *testing.T) {
	_, err := qreg.BitsToInt(nil)
	require.ErrorIs(t, err, qreg.ErrBadWidth)
	_, err = qreg.BitsToInt([]uint8{0, 2})
	require.ErrorIs(t, err, qreg.ErrValueTooWide)
}

func TestSplitMergeQubits_RoundTrip(t *testing.T) {
	sig := qreg.MustSignature(
		qreg.Thru("a", 2),
		qreg.Thru("b", 1, qreg.WithShape(3)),
	)
	flat := []string{"q0", "q1", "q2", "q3", "q4"} // 2 + 3·1 wires
	parts, err := qreg.SplitQubits(sig, flat)
	require.NoError(t, err)
	require.Equal(t, []string{"q0", "q1"}, parts["a"])
	require.Equal(t, []string{"q2", "q3", "q4"}, parts["b"])

	back, err := qreg.MergeQubits(sig, parts)
	require.NoError(t, err)
	require.Equal(t, flat, back)
}

func TestSplitQubits_WireCount(t *testing.T) {
	sig := qreg.MustSignature(qreg.Thru("a", 2))
	_, err := qreg.SplitQubits(sig, []int{1})
	require.ErrorIs(t, err, qreg.ErrWireCount)
}

func TestMergeQubits_Errors(t *testing.T) {
	sig := qreg.MustSignature(qreg.Thru("a", 2))
	_, err := qreg.MergeQubits(sig, map[string][]int{})
	require.ErrorIs(t, err, qreg.ErrUnknownRegister)
	_, err = qreg.MergeQubits(sig, map[string][]int{"a": {1}})
	require.ErrorIs(t, err, qreg.ErrWireCount)
}

func TestSplitMergeInteger_RoundTrip(t *testing.T) {
	// a owns the top 3 bits, b the bottom 2: n = a<<2 | b.
	sig := qreg.MustSignature(qreg.Thru("a", 3), qreg.Thru("b", 2))
	vals, err := qreg.SplitInteger(sig, 0b101_11)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101), vals["a"])
	require.Equal(t, uint64(0b11), vals["b"])

	n, err := qreg.MergeInteger(sig, vals)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101_11), n)
}

func TestSplitInteger_Errors(t *testing.T) {
	shaped := qreg.MustSignature(qreg.Thru("a", 1, qreg.WithShape(2)))
	_, err := qreg.SplitInteger(shaped, 0)
	require.ErrorIs(t, err, qreg.ErrWireCount)

	sig := qreg.MustSignature(qreg.Thru("a", 2))
	_, err = qreg.SplitInteger(sig, 4) // needs 3 bits
	require.ErrorIs(t, err, qreg.ErrValueTooWide)
}

func TestMergeInteger_Errors(t *testing.T) {
	sig := qreg.MustSignature(qreg.Thru("a", 2))
	_, err := qreg.MergeInteger(sig, map[string]uint64{})
	require.ErrorIs(t, err, qreg.ErrUnknownRegister)
	_, err = qreg.MergeInteger(sig, map[string]uint64{"a": 4})
	require.ErrorIs(t, err, qreg.ErrValueTooWide)
}

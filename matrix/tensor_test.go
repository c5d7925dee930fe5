// SPDX-License-Identifier: MIT

// Package matrix_test validates the dense tensor layer: construction,
// safe element access, reshape/transpose semantics, and the gonum-backed
// matrix product.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qgraph/matrix"
)

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNew_BadShape(t *testing.T) {
	_, err := matrix.New(2, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestFromData_SizeMismatch(t *testing.T) {
	_, err := matrix.FromData([]complex128{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestScalar(t *testing.T) {
	s := matrix.Scalar(3 + 4i)
	require.Equal(t, 0, s.Rank())
	require.Equal(t, 1, s.Size())
	require.Equal(t, complex128(3+4i), s.Data()[0])
}

func TestEye(t *testing.T) {
	e := matrix.Eye(3)
	require.Equal(t, []int{3, 3}, e.Shape())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := e.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, complex128(1), v)
			} else {
				require.Equal(t, complex128(0), v)
			}
		}
	}
}

func TestEye_Degenerate(t *testing.T) {
	e := matrix.Eye(1)
	require.Equal(t, []int{1, 1}, e.Shape())
	require.Equal(t, []complex128{1}, e.Data())

	require.Panics(t, func() { matrix.Eye(0) })
	require.Panics(t, func() { matrix.Eye(-2) })
}

// ------------------------------------------------------------------------
// 2. Element access
// ------------------------------------------------------------------------

func TestAtSet_RowMajorOffsets(t *testing.T) {
	tt, err := matrix.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, tt.Set(7, 1, 2)) // last element in row-major order
	require.Equal(t, complex128(7), tt.Data()[5])

	v, err := tt.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, complex128(7), v)
}

func TestAtSet_Bounds(t *testing.T) {
	tt, err := matrix.New(2, 2)
	require.NoError(t, err)
	_, err = tt.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = tt.At(0) // wrong rank
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = tt.Set(1, 0, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDim(t *testing.T) {
	tt, err := matrix.New(2, 5)
	require.NoError(t, err)
	d, err := tt.Dim(1)
	require.NoError(t, err)
	require.Equal(t, 5, d)
	_, err = tt.Dim(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// ------------------------------------------------------------------------
// 3. Reshape / Transpose / Clone
// ------------------------------------------------------------------------

func TestReshape_SharesBuffer(t *testing.T) {
	a, err := matrix.New(4)
	require.NoError(t, err)
	b, err := a.Reshape(2, 2)
	require.NoError(t, err)

	require.NoError(t, a.Set(9, 3))
	v, err := b.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(9), v) // same backing storage
}

func TestReshape_SizeMismatch(t *testing.T) {
	a, err := matrix.New(4)
	require.NoError(t, err)
	_, err = a.Reshape(3)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestClone_Independent(t *testing.T) {
	a, err := matrix.FromData([]complex128{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b := a.Clone()
	require.NoError(t, b.Set(99, 0, 0))
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), v)
}

func TestTranspose_Matrix(t *testing.T) {
	a, err := matrix.FromData([]complex128{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	at, err := a.Transpose([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, at.Shape())
	require.Equal(t, []complex128{1, 4, 2, 5, 3, 6}, at.Data())
}

func TestTranspose_BadPerm(t *testing.T) {
	a, err := matrix.New(2, 2)
	require.NoError(t, err)
	_, err = a.Transpose([]int{0, 0})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = a.Transpose([]int{0})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestTranspose_Rank3(t *testing.T) {
	// shape (2,1,3) → perm (2,0,1) → shape (3,2,1).
	a, err := matrix.FromData([]complex128{1, 2, 3, 4, 5, 6}, 2, 1, 3)
	require.NoError(t, err)
	at, err := a.Transpose([]int{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, at.Shape())
	// out[i,j,0] = in[j,0,i].
	v, err := at.At(2, 1, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(6), v)
	v, err = at.At(0, 1, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(4), v)
}

// ------------------------------------------------------------------------
// 4. Products and comparison
// ------------------------------------------------------------------------

func TestMatMul(t *testing.T) {
	a, err := matrix.FromData([]complex128{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := matrix.FromData([]complex128{0, 1, 1, 0}, 2, 2)
	require.NoError(t, err)
	m, err := matrix.MatMul(a, b)
	require.NoError(t, err)
	require.Equal(t, []complex128{2, 1, 4, 3}, m.Data())
}

func TestMatMul_Rectangular(t *testing.T) {
	// (2×3)·(3×2), complex entries to exercise the full product kernel.
	a, err := matrix.FromData([]complex128{1, 2i, 3, 4, 5i, 6}, 2, 3)
	require.NoError(t, err)
	b, err := matrix.FromData([]complex128{1, 0, 0, 1i, 2, 0}, 3, 2)
	require.NoError(t, err)
	m, err := matrix.MatMul(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, m.Shape())
	require.Equal(t, []complex128{7, -2, 16, -5}, m.Data())
}

func TestMatMul_Errors(t *testing.T) {
	a, err := matrix.New(2, 3)
	require.NoError(t, err)
	b, err := matrix.New(2, 2)
	require.NoError(t, err)
	_, err = matrix.MatMul(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	v, err := matrix.New(3)
	require.NoError(t, err)
	_, err = matrix.MatMul(v, b)
	require.ErrorIs(t, err, matrix.ErrNotMatrix)
}

func TestAsCDense_RankGuard(t *testing.T) {
	v, err := matrix.New(3)
	require.NoError(t, err)
	_, err = v.AsCDense()
	require.ErrorIs(t, err, matrix.ErrNotMatrix)
}

func TestOuter(t *testing.T) {
	a, err := matrix.FromData([]complex128{1, 2}, 2)
	require.NoError(t, err)
	b, err := matrix.FromData([]complex128{3, 4, 5}, 3)
	require.NoError(t, err)
	o := matrix.Outer(a, b)
	require.Equal(t, []int{2, 3}, o.Shape())
	require.Equal(t, []complex128{3, 4, 5, 6, 8, 10}, o.Data())
}

func TestEqualApprox(t *testing.T) {
	a, err := matrix.FromData([]complex128{1, 2}, 2)
	require.NoError(t, err)
	b, err := matrix.FromData([]complex128{1 + 1e-10, 2}, 2)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(a, b, 1e-8))
	require.False(t, matrix.EqualApprox(a, b, 1e-12))

	c, err := matrix.FromData([]complex128{1, 2}, 2, 1)
	require.NoError(t, err)
	require.False(t, matrix.EqualApprox(a, c, 1e-8)) // shape mismatch
}

// SPDX-License-Identifier: MIT
// Package: qgraph/matrix
//
// tensor.go — Tensor: row-major dense complex128 storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit offset
//     formula Σ idx[k]·stride[k].
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Hand the 2-d fast path to gonum's complex BLAS (cblas128.Gemm over the
//     raw CDense storage) rather than re-rolling a multiply kernel.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// Tensor is a dense row-major complex128 array of arbitrary rank.
// A rank-0 tensor (empty shape) holds exactly one scalar element.
type Tensor struct {
	shape []int        // dimension sizes, all ≥ 1
	data  []complex128 // flat row-major buffer, len = Π shape
}

// New allocates a zero-initialized tensor with the given shape.
//
// Errors: ErrBadShape on any dimension < 1.
// Complexity: O(Π shape).
func New(shape ...int) (*Tensor, error) {
	n := 1
	for _, d := range shape {
		if d < 1 {
			return nil, fmt.Errorf("New%v: %w", shape, ErrBadShape)
		}
		n *= d
	}
	return &Tensor{shape: append([]int(nil), shape...), data: make([]complex128, n)}, nil
}

// FromData wraps an existing row-major buffer. The buffer is NOT copied;
// the caller hands over ownership.
//
// Errors: ErrShapeMismatch when len(data) ≠ Π shape, ErrBadShape as New.
// Complexity: O(rank).
func FromData(data []complex128, shape ...int) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("FromData: %d elements for shape %v: %w", len(data), shape, ErrShapeMismatch)
	}
	t.data = data
	return t, nil
}

// Scalar returns a rank-0 tensor holding v. Complexity: O(1).
func Scalar(v complex128) *Tensor {
	return &Tensor{shape: nil, data: []complex128{v}}
}

// Eye returns the n×n identity matrix as a rank-2 tensor. n must be at
// least 1; Eye panics otherwise, in the manner of the Must constructors.
// Complexity: O(n²).
func Eye(n int) *Tensor {
	if n < 1 {
		panic(fmt.Sprintf("matrix: Eye(%d): %v", n, ErrBadShape))
	}
	t := &Tensor{shape: []int{n, n}, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t
}

// Shape returns a copy of the dimension sizes. Complexity: O(rank).
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// Rank returns the number of axes. Complexity: O(1).
func (t *Tensor) Rank() int { return len(t.shape) }

// Size returns the total element count. Complexity: O(1).
func (t *Tensor) Size() int { return len(t.data) }

// Dim returns the size of axis k. Complexity: O(1); ErrIndexOutOfBounds on
// a bad axis.
func (t *Tensor) Dim(k int) (int, error) {
	if k < 0 || k >= len(t.shape) {
		return 0, fmt.Errorf("Dim(%d) on rank %d: %w", k, len(t.shape), ErrIndexOutOfBounds)
	}
	return t.shape[k], nil
}

// Data exposes the backing row-major buffer without copying. Mutating it
// mutates the tensor; clone first if independence is needed.
func (t *Tensor) Data() []complex128 { return t.data }

// Clone returns a deep copy. Complexity: O(size).
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		shape: append([]int(nil), t.shape...),
		data:  append([]complex128(nil), t.data...),
	}
}

// offset folds a full index tuple into the flat row-major offset.
func (t *Tensor) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("index rank %d vs tensor rank %d: %w", len(idx), len(t.shape), ErrIndexOutOfBounds)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, fmt.Errorf("index %v axis %d: %w", idx, k, ErrIndexOutOfBounds)
		}
		off = off*t.shape[k] + i
	}
	return off, nil
}

// At returns the element at the given full index tuple.
// Complexity: O(rank).
func (t *Tensor) At(idx ...int) (complex128, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, fmt.Errorf("At: %w", err)
	}
	return t.data[off], nil
}

// Set assigns the element at the given full index tuple.
// Complexity: O(rank).
func (t *Tensor) Set(v complex128, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	t.data[off] = v
	return nil
}

// Reshape returns a new header over the SAME buffer with a different shape
// of identical total size. Row-major reshapes are free.
//
// Errors: ErrShapeMismatch on a size change, ErrBadShape as New.
// Complexity: O(rank).
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	n := 1
	for _, d := range shape {
		if d < 1 {
			return nil, fmt.Errorf("Reshape%v: %w", shape, ErrBadShape)
		}
		n *= d
	}
	if n != len(t.data) {
		return nil, fmt.Errorf("Reshape%v: size %d vs %d: %w", shape, n, len(t.data), ErrShapeMismatch)
	}
	return &Tensor{shape: append([]int(nil), shape...), data: t.data}, nil
}

// Transpose materializes the axis permutation perm: result axis k is input
// axis perm[k].
//
// Errors: ErrIndexOutOfBounds when perm is not a permutation of the axes.
// Complexity: O(size · rank).
func (t *Tensor) Transpose(perm []int) (*Tensor, error) {
	r := len(t.shape)
	if len(perm) != r {
		return nil, fmt.Errorf("Transpose%v on rank %d: %w", perm, r, ErrIndexOutOfBounds)
	}
	seen := make([]bool, r)
	outShape := make([]int, r)
	for k, p := range perm {
		if p < 0 || p >= r || seen[p] {
			return nil, fmt.Errorf("Transpose%v: axis %d: %w", perm, p, ErrIndexOutOfBounds)
		}
		seen[p] = true
		outShape[k] = t.shape[p]
	}
	out, _ := New(outShape...)
	if r == 0 {
		out.data[0] = t.data[0]
		return out, nil
	}
	// Walk the output in row-major order, reading the permuted input offset.
	idx := make([]int, r) // output index
	inStride := make([]int, r)
	stride := 1
	for k := r - 1; k >= 0; k-- {
		inStride[k] = stride
		stride *= t.shape[k]
	}
	for off := range out.data {
		inOff := 0
		for k := 0; k < r; k++ {
			inOff += idx[k] * inStride[perm[k]]
		}
		out.data[off] = t.data[inOff]
		// Increment the row-major output index.
		for k := r - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < outShape[k] {
				break
			}
			idx[k] = 0
		}
	}
	return out, nil
}

// AsCDense views a rank-2 tensor as a gonum complex dense matrix sharing
// the same buffer.
//
// Errors: ErrNotMatrix on any other rank.
// Complexity: O(1).
func (t *Tensor) AsCDense() (*mat.CDense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("AsCDense on rank %d: %w", len(t.shape), ErrNotMatrix)
	}
	return mat.NewCDense(t.shape[0], t.shape[1], t.data), nil
}

// MatMul multiplies two rank-2 tensors (a: n×k, b: k×m) through gonum's
// complex general matrix multiply.
//
// Errors: ErrNotMatrix on wrong rank, ErrShapeMismatch on inner dims.
// Complexity: O(n·k·m).
func MatMul(a, b *Tensor) (*Tensor, error) {
	am, err := a.AsCDense()
	if err != nil {
		return nil, fmt.Errorf("MatMul: left: %w", err)
	}
	bm, err := b.AsCDense()
	if err != nil {
		return nil, fmt.Errorf("MatMul: right: %w", err)
	}
	if a.shape[1] != b.shape[0] {
		return nil, fmt.Errorf("MatMul: %d×%d by %d×%d: %w",
			a.shape[0], a.shape[1], b.shape[0], b.shape[1], ErrShapeMismatch)
	}
	out, _ := New(a.shape[0], b.shape[1])
	om, _ := out.AsCDense()
	// Gemm writes through the General view into out's backing buffer.
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1,
		am.RawCMatrix(), bm.RawCMatrix(), 0, om.RawCMatrix())
	return out, nil
}

// Outer returns the outer product a⊗b with shape append(a.Shape, b.Shape...).
// Complexity: O(a.Size · b.Size).
func Outer(a, b *Tensor) *Tensor {
	shape := append(a.Shape(), b.Shape()...)
	out := &Tensor{shape: shape, data: make([]complex128, len(a.data)*len(b.data))}
	for i, av := range a.data {
		base := i * len(b.data)
		for j, bv := range b.data {
			out.data[base+j] = av * bv
		}
	}
	return out
}

// EqualApprox reports element-wise equality within tol, delegating the
// slice comparison to gonum. Shapes must match exactly.
// Complexity: O(size).
func EqualApprox(a, b *Tensor, tol float64) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			return false
		}
	}
	return cmplxs.EqualApprox(a.data, b.data, tol)
}

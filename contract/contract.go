// SPDX-License-Identifier: MIT
// Package: qgraph/contract
//
// contract.go — the contraction engine: greedy pairwise path, parallel
// components, fixed boundary axis ordering.
//
// Design contract (strict):
//   - The pair order is a performance choice only; any order yields the
//     same numbers. The greedy rule (smallest resulting intermediate) is
//     deterministic: ties break on the lowest index pair.
//   - Every intermediate is size-checked BEFORE allocation; exhaustion is
//     a catchable error, not a crash.
//   - The final axis order is fixed: right boundary wires in declaration
//     order, then left boundary wires in declaration order.

package contract

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/decompose"
	"github.com/katalvlaran/qgraph/matrix"
)

// Contract lowers b (a primitive bloq or a CompositeBloq) to a dense
// tensor with one axis per boundary wire: right wires first (declaration
// order, row-major per shaped register, each axis of dim 2^bitsize), then
// left wires.
//
// Errors: ErrTensorRank, ErrTensorTooLarge, ErrNetwork, and the decompose
// sentinels for bloqs that must expand but cannot.
// Complexity: network build O(flattened instances · wires); contraction
// dominated by the pairwise matrix products.
func Contract(b core.Bloq, opts ...Option) (*matrix.Tensor, error) {
	cfg := newConfig(opts...)
	ins, outs, order := boundaryLabels(b.Signature())

	var net []labeled
	if err := addBloq(&net, b, ins, outs, "", decompose.NewGuard(cfg.maxDepth)); err != nil {
		return nil, fmt.Errorf("Contract: %w", err)
	}
	if len(net) == 0 {
		// No instances and no boundary wires: the empty graph is the
		// scalar 1.
		if len(order) != 0 {
			return nil, fmt.Errorf("Contract: empty network with %d boundary wires: %w", len(order), ErrNetwork)
		}
		return matrix.Scalar(1), nil
	}

	result, err := contractNetwork(net, cfg)
	if err != nil {
		return nil, fmt.Errorf("Contract: %w", err)
	}

	// Reorder the surviving axes into the boundary contract.
	if len(result.labels) != len(order) {
		return nil, fmt.Errorf("Contract: %d surviving axes for %d boundary wires: %w",
			len(result.labels), len(order), ErrNetwork)
	}
	pos := make(map[string]int, len(result.labels))
	for i, l := range result.labels {
		pos[l] = i
	}
	perm := make([]int, len(order))
	for k, l := range order {
		i, ok := pos[l]
		if !ok {
			return nil, fmt.Errorf("Contract: boundary wire %s missing from result: %w", l, ErrNetwork)
		}
		perm[k] = i
	}
	t, err := result.t.Transpose(perm)
	if err != nil {
		return nil, fmt.Errorf("Contract: %w", err)
	}
	return t, nil
}

// ToMatrix contracts b and collapses the result to the dense 2^R × 2^L
// matrix (rows = right boundary, columns = left boundary, big-endian).
func ToMatrix(b core.Bloq, opts ...Option) (*mat.CDense, error) {
	t, err := Contract(b, opts...)
	if err != nil {
		return nil, err
	}
	sig := b.Signature()
	rows, cols := 1, 1
	for _, r := range sig.Rights() {
		d, err := wireDim(r.Bitsize)
		if err != nil {
			return nil, fmt.Errorf("ToMatrix: %w", err)
		}
		for i := uint(0); i < r.NumWires(); i++ {
			rows *= d
		}
	}
	for _, r := range sig.Lefts() {
		d, err := wireDim(r.Bitsize)
		if err != nil {
			return nil, fmt.Errorf("ToMatrix: %w", err)
		}
		for i := uint(0); i < r.NumWires(); i++ {
			cols *= d
		}
	}
	m, err := t.Reshape(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("ToMatrix: %w", err)
	}
	return m.AsCDense()
}

// contractNetwork reduces the whole network to a single labeled tensor:
// connected components in parallel, then outer products across components.
func contractNetwork(net []labeled, cfg config) (labeled, error) {
	comps := components(net)
	results := make([]labeled, len(comps))

	if cfg.serial || len(comps) == 1 {
		for i, comp := range comps {
			r, err := contractComponent(comp, cfg.maxElems)
			if err != nil {
				return labeled{}, err
			}
			results[i] = r
		}
	} else {
		var eg errgroup.Group
		for i, comp := range comps {
			i, comp := i, comp
			eg.Go(func() error {
				r, err := contractComponent(comp, cfg.maxElems)
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return labeled{}, err
		}
	}

	out := results[0]
	for _, r := range results[1:] {
		if out.t.Size()*r.t.Size() > cfg.maxElems {
			return labeled{}, fmt.Errorf("outer product of %d and %d elements: %w",
				out.t.Size(), r.t.Size(), ErrTensorTooLarge)
		}
		out = labeled{
			labels: append(append([]string(nil), out.labels...), r.labels...),
			t:      matrix.Outer(out.t, r.t),
		}
	}
	return out, nil
}

// contractComponent greedily contracts one connected component down to a
// single tensor: always the sharing pair with the smallest result,
// lowest-index pair on ties.
func contractComponent(comp []labeled, maxElems int) (labeled, error) {
	work := append([]labeled(nil), comp...)
	for len(work) > 1 {
		bi, bj, bestSize := -1, -1, 0
		for i := 0; i < len(work); i++ {
			for j := i + 1; j < len(work); j++ {
				shared := sharedLabels(work[i], work[j])
				if len(shared) == 0 {
					continue
				}
				size := resultSize(work[i], work[j], shared)
				if bi < 0 || size < bestSize {
					bi, bj, bestSize = i, j, size
				}
			}
		}
		if bi < 0 {
			// A component by construction always has a sharing pair; fall
			// back to an outer product only to stay total.
			bi, bj = 0, 1
		}
		merged, err := contractPair(work[bi], work[bj], maxElems)
		if err != nil {
			return labeled{}, err
		}
		// Remove j first (j > i), then i, then append the merged node.
		work = append(work[:bj], work[bj+1:]...)
		work = append(work[:bi], work[bi+1:]...)
		work = append(work, merged)
	}
	return work[0], nil
}

// sharedLabels lists the labels present on both tensors, in a's axis
// order (deterministic).
func sharedLabels(a, b labeled) []string {
	inB := make(map[string]struct{}, len(b.labels))
	for _, l := range b.labels {
		inB[l] = struct{}{}
	}
	var shared []string
	for _, l := range a.labels {
		if _, ok := inB[l]; ok {
			shared = append(shared, l)
		}
	}
	return shared
}

// resultSize is the element count of contracting a with b over shared.
func resultSize(a, b labeled, shared []string) int {
	s := 1
	dims := axisDims(a)
	for _, l := range shared {
		s *= dims[l]
	}
	return a.t.Size() / s * (b.t.Size() / s)
}

// axisDims maps each label of a tensor to its axis dimension.
func axisDims(x labeled) map[string]int {
	dims := make(map[string]int, len(x.labels))
	shape := x.t.Shape()
	for i, l := range x.labels {
		dims[l] = shape[i]
	}
	return dims
}

// contractPair contracts every shared label between a and b in one matrix
// product: a is permuted to (free, shared), b to (shared, free), both are
// reshaped to matrices and multiplied via gonum.
func contractPair(a, b labeled, maxElems int) (labeled, error) {
	shared := sharedLabels(a, b)
	aDims, bDims := axisDims(a), axisDims(b)
	for _, l := range shared {
		if aDims[l] != bDims[l] {
			return labeled{}, fmt.Errorf("label %s: dims %d vs %d: %w", l, aDims[l], bDims[l], ErrNetwork)
		}
	}
	sharedSet := make(map[string]struct{}, len(shared))
	for _, l := range shared {
		sharedSet[l] = struct{}{}
	}

	// Permutations: a → (freeA..., shared...), b → (shared..., freeB...).
	var permA []int
	var freeLabels []string
	var freeDims []int
	fa, s := 1, 1
	for i, l := range a.labels {
		if _, ok := sharedSet[l]; !ok {
			permA = append(permA, i)
			freeLabels = append(freeLabels, l)
			freeDims = append(freeDims, aDims[l])
			fa *= aDims[l]
		}
	}
	axisOfA := indexOf(a.labels)
	axisOfB := indexOf(b.labels)
	for _, l := range shared {
		permA = append(permA, axisOfA[l])
		s *= aDims[l]
	}
	permB := make([]int, 0, len(b.labels))
	for _, l := range shared {
		permB = append(permB, axisOfB[l])
	}
	fb := 1
	for i, l := range b.labels {
		if _, ok := sharedSet[l]; !ok {
			permB = append(permB, i)
			freeLabels = append(freeLabels, l)
			freeDims = append(freeDims, bDims[l])
			fb *= bDims[l]
		}
	}
	if fa*fb > maxElems {
		return labeled{}, fmt.Errorf("intermediate of %d elements (budget %d): %w", fa*fb, maxElems, ErrTensorTooLarge)
	}

	at, err := a.t.Transpose(permA)
	if err != nil {
		return labeled{}, fmt.Errorf("contractPair: %w", err)
	}
	am, err := at.Reshape(fa, s)
	if err != nil {
		return labeled{}, fmt.Errorf("contractPair: %w", err)
	}
	bt, err := b.t.Transpose(permB)
	if err != nil {
		return labeled{}, fmt.Errorf("contractPair: %w", err)
	}
	bm, err := bt.Reshape(s, fb)
	if err != nil {
		return labeled{}, fmt.Errorf("contractPair: %w", err)
	}
	m, err := matrix.MatMul(am, bm)
	if err != nil {
		return labeled{}, fmt.Errorf("contractPair: %w", err)
	}
	out, err := m.Reshape(freeDims...)
	if err != nil {
		return labeled{}, fmt.Errorf("contractPair: %w", err)
	}
	return labeled{labels: freeLabels, t: out}, nil
}

// indexOf maps each label to its axis index.
func indexOf(labels []string) map[string]int {
	m := make(map[string]int, len(labels))
	for i, l := range labels {
		m[l] = i
	}
	return m
}

// components partitions the network into label-connected groups (the
// units of parallel contraction). Union-find over shared labels.
func components(net []labeled) [][]labeled {
	parent := make([]int, len(net))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	owner := make(map[string]int)
	for i, n := range net {
		for _, l := range n.labels {
			if j, ok := owner[l]; ok {
				parent[find(i)] = find(j)
			} else {
				owner[l] = i
			}
		}
	}
	groups := make(map[int][]labeled)
	var orderKeys []int
	for i, n := range net {
		root := find(i)
		if _, ok := groups[root]; !ok {
			orderKeys = append(orderKeys, root)
		}
		groups[root] = append(groups[root], n)
	}
	out := make([][]labeled, 0, len(orderKeys))
	for _, k := range orderKeys {
		out = append(out, groups[k])
	}
	return out
}

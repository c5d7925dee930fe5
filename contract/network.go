// SPDX-License-Identifier: MIT
// Package: qgraph/contract
//
// network.go — building the labeled tensor network from a bloq/graph.
//
// Labeling scheme:
//   - Every wire segment of the fully spliced network gets one unique
//     string label; a label appears on exactly two tensors (an interior
//     wire) or on exactly one (a boundary wire of the whole contraction).
//   - Interior labels are derived from the producing soquet, prefixed by
//     the chain of instance IDs leading into the current recursion level
//     ("4/", "4/0/", ...), so sibling and nested expansions can never
//     collide.
//   - Boundary labels of the outermost bloq are "R:<soquet>" and
//     "L:<soquet>" over the dangling sentinels; they become the axes of
//     the final dense result.

package contract

import (
	"fmt"

	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/decompose"
	"github.com/katalvlaran/qgraph/matrix"
	"github.com/katalvlaran/qgraph/qreg"
)

// labeled is one network node: a dense tensor plus one label per axis.
type labeled struct {
	labels []string
	t      *matrix.Tensor
}

// wireDim returns the tensor-axis dimension of one wire: 2^bitsize.
func wireDim(bitsize uint) (int, error) {
	if bitsize >= 31 {
		return 0, fmt.Errorf("wire of %d bits: %w", bitsize, ErrTensorTooLarge)
	}
	return 1 << bitsize, nil
}

// addBloq appends the tensors representing b to the network. The
// surrounding wire labels arrive per register name, row-major per shaped
// register: ins for LEFT|THRU registers, outs for RIGHT|THRU ones.
func addBloq(net *[]labeled, b core.Bloq, ins, outs map[string][]string, prefix string, g decompose.Guard) error {
	if tb, ok := b.(core.TensorBloq); ok {
		return addNative(net, tb, ins, outs)
	}
	g2, err := g.Descend()
	if err != nil {
		return fmt.Errorf("expanding %s: %w", b.Name(), err)
	}
	cb, err := decompose.OneLevel(b)
	if err != nil {
		return err
	}
	return addComposite(net, cb, ins, outs, prefix, g2)
}

// addNative validates the declared-signature/tensor-axis agreement and
// appends the bloq's own tensor with the surrounding labels.
func addNative(net *[]labeled, b core.TensorBloq, ins, outs map[string][]string) error {
	t, err := b.Tensor()
	if err != nil {
		return fmt.Errorf("%s.Tensor: %w", b.Name(), err)
	}
	sig := b.Signature()

	// Expected axes: outgoing wires then incoming wires.
	var labels []string
	var dims []int
	for _, r := range sig.Rights() {
		d, err := wireDim(r.Bitsize)
		if err != nil {
			return fmt.Errorf("%s register %q: %w", b.Name(), r.Name, err)
		}
		ls, ok := outs[r.Name]
		if !ok || uint(len(ls)) != r.NumWires() {
			return fmt.Errorf("%s register %q: %d outgoing labels for %d wires: %w",
				b.Name(), r.Name, len(ls), r.NumWires(), ErrNetwork)
		}
		for _, l := range ls {
			labels = append(labels, l)
			dims = append(dims, d)
		}
	}
	for _, r := range sig.Lefts() {
		d, err := wireDim(r.Bitsize)
		if err != nil {
			return fmt.Errorf("%s register %q: %w", b.Name(), r.Name, err)
		}
		ls, ok := ins[r.Name]
		if !ok || uint(len(ls)) != r.NumWires() {
			return fmt.Errorf("%s register %q: %d incoming labels for %d wires: %w",
				b.Name(), r.Name, len(ls), r.NumWires(), ErrNetwork)
		}
		for _, l := range ls {
			labels = append(labels, l)
			dims = append(dims, d)
		}
	}

	// Rank agreement is checked BEFORE any contraction is attempted.
	shape := t.Shape()
	if len(shape) != len(dims) {
		return fmt.Errorf("%s: tensor rank %d, signature wants %d axes: %w",
			b.Name(), len(shape), len(dims), ErrTensorRank)
	}
	for k := range dims {
		if shape[k] != dims[k] {
			return fmt.Errorf("%s: axis %d has dim %d, signature wants %d: %w",
				b.Name(), k, shape[k], dims[k], ErrTensorRank)
		}
	}
	*net = append(*net, labeled{labels: labels, t: t})
	return nil
}

// addComposite splices one composite's sub-network into the outer one,
// mapping its dangling boundary onto the surrounding labels.
func addComposite(net *[]labeled, cb *core.CompositeBloq, ins, outs map[string][]string, prefix string, g decompose.Guard) error {
	sig := cb.Signature()

	// Resolve the boundary: dangling soquet → surrounding label.
	inLbl := make(map[core.Soquet]string)
	for _, r := range sig.Lefts() {
		ss := core.SoquetsFor(core.LeftDangle, r)
		ls := ins[r.Name]
		if len(ls) != len(ss) {
			return fmt.Errorf("composite register %q: %d labels for %d wires: %w",
				r.Name, len(ls), len(ss), ErrNetwork)
		}
		for i, s := range ss {
			inLbl[s] = ls[i]
		}
	}
	outLbl := make(map[core.Soquet]string)
	for _, r := range sig.Rights() {
		ss := core.SoquetsFor(core.RightDangle, r)
		ls := outs[r.Name]
		if len(ls) != len(ss) {
			return fmt.Errorf("composite register %q: %d labels for %d wires: %w",
				r.Name, len(ls), len(ss), ErrNetwork)
		}
		for i, s := range ss {
			outLbl[s] = ls[i]
		}
	}

	// labelOf names the wire produced by soquet p at this nesting level.
	labelOf := func(p core.Soquet) string {
		if p.Binst == core.LeftDangle {
			return inLbl[p]
		}
		if c, ok := cb.ConsumerOf(p); ok && c.Binst == core.RightDangle {
			return outLbl[c]
		}
		return prefix + p.String()
	}

	// One tensor (or spliced sub-network) per instance.
	for _, bi := range cb.Instances() {
		bsig := bi.Bloq.Signature()
		subIns := make(map[string][]string)
		for _, r := range bsig.Lefts() {
			consumers := core.SoquetsFor(bi.ID, r)
			ls := make([]string, len(consumers))
			for i, c := range consumers {
				p, ok := cb.ProducerOf(c)
				if !ok {
					return fmt.Errorf("no producer for %s: %w", c, ErrNetwork)
				}
				ls[i] = labelOf(p)
			}
			subIns[r.Name] = ls
		}
		subOuts := make(map[string][]string)
		for _, r := range bsig.Rights() {
			producers := core.SoquetsFor(bi.ID, r)
			ls := make([]string, len(producers))
			for i, p := range producers {
				ls[i] = labelOf(p)
			}
			subOuts[r.Name] = ls
		}
		if err := addBloq(net, bi.Bloq, subIns, subOuts, fmt.Sprintf("%s%d/", prefix, bi.ID), g); err != nil {
			return err
		}
	}

	// Wires passing straight from the left boundary to the right one have
	// no owning instance; they contribute explicit identity tensors. A
	// zero-instance graph is all passthroughs - the identity on N wires.
	for _, c := range cb.Connections() {
		if c.From.Binst != core.LeftDangle || c.To.Binst != core.RightDangle {
			continue
		}
		r, err := sig.Get(c.From.Reg)
		if err != nil {
			return fmt.Errorf("passthrough %s: %w", c, err)
		}
		d, err := wireDim(r.Bitsize)
		if err != nil {
			return fmt.Errorf("passthrough %s: %w", c, err)
		}
		*net = append(*net, labeled{labels: []string{outLbl[c.To], inLbl[c.From]}, t: matrix.Eye(d)})
	}
	return nil
}

// boundaryLabels derives the outermost label maps and the final axis
// order (right wires then left wires) for bloq b.
func boundaryLabels(sig qreg.Signature) (ins, outs map[string][]string, order []string) {
	ins = make(map[string][]string)
	outs = make(map[string][]string)
	for _, r := range sig.Rights() {
		ss := core.SoquetsFor(core.RightDangle, r)
		ls := make([]string, len(ss))
		for i, s := range ss {
			ls[i] = "R:" + s.String()
		}
		outs[r.Name] = ls
		order = append(order, ls...)
	}
	for _, r := range sig.Lefts() {
		ss := core.SoquetsFor(core.LeftDangle, r)
		ls := make([]string, len(ss))
		for i, s := range ss {
			ls[i] = "L:" + s.String()
		}
		ins[r.Name] = ls
		order = append(order, ls...)
	}
	return ins, outs, order
}

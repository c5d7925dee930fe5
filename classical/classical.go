// SPDX-License-Identifier: MIT
// Package: qgraph/classical
//
// classical.go — basis-state evaluation of bloqs and composite graphs.
//
// Design contract (strict):
//   - Every value is validated against its register BEFORE it reaches an
//     operation, and every operation's output is validated before it is
//     forwarded; a misbehaving CallClassically cannot poison the walk.
//   - The walk is the graph's topological order, so a value exists for
//     every consumed wire by the time its consumer runs.
//   - Recursion into composites spends the same explicit depth budget as
//     the tensor engine (decompose.DefaultMaxDepth by default).

package classical

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/decompose"
	"github.com/katalvlaran/qgraph/qreg"
)

// ErrNotClassical indicates an operation with no classical transition and
// no decomposition to recurse into.
var ErrNotClassical = errors.New("classical: operation has no classical transition")

// ErrBadValue indicates a missing, miscounted, or too-wide classical value.
var ErrBadValue = errors.New("classical: bad value assignment")

// Vals carries one uint64 per wire, keyed by register name, row-major
// within a shaped register.
type Vals map[string][]uint64

// One returns the single value of a scalar register; it panics when the
// register is absent or not scalar, mirroring the ergonomics of
// builder.Soqs.One.
func (v Vals) One(name string) uint64 {
	ws, ok := v[name]
	if !ok || len(ws) != 1 {
		panic(fmt.Sprintf("classical: Vals.One(%q): want exactly 1 value, have %d", name, len(v[name])))
	}
	return ws[0]
}

// Apply evaluates a single bloq on one classical input assignment. A bloq
// with a native transition is called directly; otherwise it is expanded
// one level and propagated.
//
// Errors: ErrNotClassical, ErrBadValue, plus whatever the operation's own
// transition raises.
func Apply(b core.Bloq, in Vals, opts ...Option) (Vals, error) {
	cfg := newConfig(opts...)
	return apply(b, in, decompose.NewGuard(cfg.maxDepth))
}

// Propagate walks a composite graph in topological order, carrying one
// classical value per wire from the left boundary to the right, and
// returns the right-boundary assignment.
func Propagate(cb *core.CompositeBloq, in Vals, opts ...Option) (Vals, error) {
	cfg := newConfig(opts...)
	return propagate(cb, in, decompose.NewGuard(cfg.maxDepth))
}

func apply(b core.Bloq, in Vals, g decompose.Guard) (Vals, error) {
	sig := b.Signature()
	if err := checkVals("input", b.Name(), sig.Lefts(), in); err != nil {
		return nil, err
	}
	if clb, ok := b.(core.ClassicalBloq); ok {
		raw, err := clb.CallClassically(map[string][]uint64(in))
		if err != nil {
			return nil, fmt.Errorf("%s.CallClassically: %w", b.Name(), err)
		}
		out := Vals(raw)
		if err := checkVals("output", b.Name(), sig.Rights(), out); err != nil {
			return nil, err
		}
		return out, nil
	}
	g2, err := g.Descend()
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", b.Name(), err)
	}
	cb, err := decompose.OneLevel(b)
	if err != nil {
		if errors.Is(err, decompose.ErrNotDecomposable) {
			return nil, fmt.Errorf("%s: %w", b.Name(), ErrNotClassical)
		}
		return nil, err
	}
	return propagate(cb, in, g2)
}

func propagate(cb *core.CompositeBloq, in Vals, g decompose.Guard) (Vals, error) {
	sig := cb.Signature()
	if err := checkVals("input", cb.Name(), sig.Lefts(), in); err != nil {
		return nil, err
	}

	// val carries the classical value on every produced wire.
	val := make(map[core.Soquet]uint64)
	for name, soqs := range cb.LeftSoquets() {
		for i, s := range soqs {
			val[s] = in[name][i]
		}
	}

	for _, bi := range cb.Instances() {
		biIn := make(Vals)
		for _, r := range bi.Bloq.Signature().Lefts() {
			consumers := core.SoquetsFor(bi.ID, r)
			ws := make([]uint64, len(consumers))
			for i, c := range consumers {
				p, ok := cb.ProducerOf(c)
				if !ok {
					return nil, fmt.Errorf("no producer for %s: %w", c, core.ErrNeverWritten)
				}
				w, ok := val[p]
				if !ok {
					return nil, fmt.Errorf("no value on wire %s: %w", p, ErrBadValue)
				}
				ws[i] = w
			}
			biIn[r.Name] = ws
		}
		biOut, err := apply(bi.Bloq, biIn, g)
		if err != nil {
			return nil, fmt.Errorf("instance %s: %w", bi, err)
		}
		for _, r := range bi.Bloq.Signature().Rights() {
			for i, p := range core.SoquetsFor(bi.ID, r) {
				val[p] = biOut[r.Name][i]
			}
		}
	}

	out := make(Vals)
	for name, consumers := range cb.RightSoquets() {
		ws := make([]uint64, len(consumers))
		for i, c := range consumers {
			p, ok := cb.ProducerOf(c)
			if !ok {
				return nil, fmt.Errorf("no producer for boundary %s: %w", c, core.ErrNeverWritten)
			}
			w, ok := val[p]
			if !ok {
				return nil, fmt.Errorf("no value on boundary wire %s: %w", p, ErrBadValue)
			}
			ws[i] = w
		}
		out[name] = ws
	}
	return out, nil
}

// checkVals validates one assignment against one side of a signature:
// exact name coverage, wire counts, and per-wire width.
func checkVals(side, op string, regs []qreg.Register, v Vals) error {
	if len(v) != len(regs) {
		return fmt.Errorf("%s %s: %d registers assigned, signature wants %d: %w",
			op, side, len(v), len(regs), ErrBadValue)
	}
	for _, r := range regs {
		ws, ok := v[r.Name]
		if !ok {
			return fmt.Errorf("%s %s: register %q unassigned: %w", op, side, r.Name, ErrBadValue)
		}
		if uint(len(ws)) != r.NumWires() {
			return fmt.Errorf("%s %s: register %q: %d values for %d wires: %w",
				op, side, r.Name, len(ws), r.NumWires(), ErrBadValue)
		}
		for i, w := range ws {
			if r.Bitsize < 64 && w>>r.Bitsize != 0 {
				return fmt.Errorf("%s %s: register %q wire %d: value %d exceeds %d bits: %w",
					op, side, r.Name, i, w, r.Bitsize, qreg.ErrValueTooWide)
			}
		}
	}
	return nil
}

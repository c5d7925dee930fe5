// SPDX-License-Identifier: MIT
// Package: qgraph/decompose
//
// decompose.go — OneLevel, FlattenOnce, and the recursion Guard.
//
// Design contract (strict):
//   - OneLevel never recurses: one expansion, signature-checked.
//   - FlattenOnce rebuilds through the ordinary builder path, so every
//     inlined graph is re-validated for free.
//   - Guard is a value, not shared state: descending returns a new Guard,
//     which keeps concurrent engine walks independent.

package decompose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qgraph/builder"
	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/qreg"
)

// ErrNotDecomposable indicates an operation with no decomposition was
// asked to expand.
var ErrNotDecomposable = errors.New("decompose: operation declares no decomposition")

// ErrSignatureMismatch indicates a decomposition whose boundary registers
// do not exactly match the operation's own signature.
var ErrSignatureMismatch = errors.New("decompose: decomposition boundary differs from signature")

// ErrDepthExceeded indicates the explicit recursion budget ran out -
// almost always an operation whose decomposition never reaches primitives.
var ErrDepthExceeded = errors.New("decompose: recursion depth exceeded")

// DefaultMaxDepth is the recursion budget used when a caller does not
// choose one. Deep enough for any sane lowering chain, small enough to
// fail fast on a cyclic one.
const DefaultMaxDepth = 64

// Guard carries the explicit decomposition-recursion budget. The zero
// value is spent; construct with NewGuard.
type Guard struct {
	remaining int
}

// NewGuard returns a guard with the given budget; non-positive values fall
// back to DefaultMaxDepth. Complexity: O(1).
func NewGuard(maxDepth int) Guard {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return Guard{remaining: maxDepth}
}

// Descend spends one level of budget, returning the guard for the next
// level down. Errors: ErrDepthExceeded once the budget is spent.
// Complexity: O(1).
func (g Guard) Descend() (Guard, error) {
	if g.remaining <= 0 {
		return Guard{}, ErrDepthExceeded
	}
	return Guard{remaining: g.remaining - 1}, nil
}

// OneLevel expands a single operation into its CompositeBloq. A composite
// input is returned as-is (a composite already is its own one-level
// expansion). The result's boundary is checked against the operation's
// signature - the contract every engine relies on.
//
// Errors: ErrNotDecomposable, ErrSignatureMismatch, plus whatever the
// operation's own Decompose raises.
// Complexity: operation-defined.
func OneLevel(b core.Bloq) (*core.CompositeBloq, error) {
	if cb, ok := b.(*core.CompositeBloq); ok {
		return cb, nil
	}
	d, ok := b.(core.Decomposer)
	if !ok {
		return nil, fmt.Errorf("OneLevel(%s): %w", b.Name(), ErrNotDecomposable)
	}
	cb, err := d.Decompose()
	if err != nil {
		return nil, fmt.Errorf("OneLevel(%s): %w", b.Name(), err)
	}
	if !cb.Signature().Equal(b.Signature()) {
		return nil, fmt.Errorf("OneLevel(%s): %w", b.Name(), ErrSignatureMismatch)
	}
	return cb, nil
}

// FlattenOnce inlines every decomposable instance of cb one level,
// splicing each sub-graph's boundary onto the surrounding wires.
// Primitive instances pass through untouched. The result is rebuilt
// through the builder, so it is fully re-validated.
//
// Complexity: O(instances · wires) plus the cost of each Decompose call.
func FlattenOnce(cb *core.CompositeBloq) (*core.CompositeBloq, error) {
	bb, ins, err := builder.NewFromSignature(cb.Signature())
	if err != nil {
		return nil, fmt.Errorf("FlattenOnce: %w", err)
	}

	// env maps producing soquets of the OLD graph to soquets of the new
	// builder. Seed it with the left boundary.
	env := make(map[core.Soquet]core.Soquet)
	for name, olds := range cb.LeftSoquets() {
		for i, old := range olds {
			env[old] = ins[name][i]
		}
	}

	for _, bi := range cb.Instances() {
		inSoqs, err := gatherInputs(cb, bi, env)
		if err != nil {
			return nil, fmt.Errorf("FlattenOnce: %w", err)
		}
		var outSoqs builder.Soqs
		if core.Capabilities(bi.Bloq).Has(core.CanDecompose) {
			sub, err := OneLevel(bi.Bloq)
			if err != nil {
				return nil, fmt.Errorf("FlattenOnce: instance %s: %w", bi, err)
			}
			outSoqs, err = inline(bb, sub, inSoqs)
			if err != nil {
				return nil, fmt.Errorf("FlattenOnce: instance %s: %w", bi, err)
			}
		} else {
			outSoqs, err = bb.Add(bi.Bloq, inSoqs)
			if err != nil {
				return nil, fmt.Errorf("FlattenOnce: instance %s: %w", bi, err)
			}
		}
		bindOutputs(bi.ID, bi.Bloq.Signature(), outSoqs, env)
	}

	outs, err := boundaryOutputs(cb, env)
	if err != nil {
		return nil, fmt.Errorf("FlattenOnce: %w", err)
	}
	flat, err := bb.Finalize(outs)
	if err != nil {
		return nil, fmt.Errorf("FlattenOnce: %w", err)
	}
	return flat, nil
}

// inline replays one sub-graph's instances into bb WITHOUT expanding them
// further (one level only), wiring its left boundary to ins and returning
// its right boundary as fresh soquets.
func inline(bb *builder.Builder, sub *core.CompositeBloq, ins builder.Soqs) (builder.Soqs, error) {
	env := make(map[core.Soquet]core.Soquet)
	for name, olds := range sub.LeftSoquets() {
		for i, old := range olds {
			env[old] = ins[name][i]
		}
	}
	for _, bi := range sub.Instances() {
		inSoqs, err := gatherInputs(sub, bi, env)
		if err != nil {
			return nil, err
		}
		outSoqs, err := bb.Add(bi.Bloq, inSoqs)
		if err != nil {
			return nil, err
		}
		bindOutputs(bi.ID, bi.Bloq.Signature(), outSoqs, env)
	}
	return boundaryOutputs(sub, env)
}

// gatherInputs resolves, through env, the new soquets feeding one old
// instance's consuming registers.
func gatherInputs(cb *core.CompositeBloq, bi core.BloqInstance, env map[core.Soquet]core.Soquet) (builder.Soqs, error) {
	ins := make(builder.Soqs)
	for _, r := range bi.Bloq.Signature().Lefts() {
		consumers := core.SoquetsFor(bi.ID, r)
		ss := make([]core.Soquet, len(consumers))
		for i, c := range consumers {
			producer, ok := cb.ProducerOf(c)
			if !ok {
				return nil, fmt.Errorf("no producer for %s: %w", c, core.ErrNeverWritten)
			}
			mapped, ok := env[producer]
			if !ok {
				return nil, fmt.Errorf("producer %s not yet replayed: %w", producer, core.ErrCyclic)
			}
			ss[i] = mapped
		}
		ins[r.Name] = ss
	}
	return ins, nil
}

// bindOutputs records the new soquets standing for one old instance's
// produced wires.
func bindOutputs(id core.InstanceID, sig qreg.Signature, outs builder.Soqs, env map[core.Soquet]core.Soquet) {
	for _, r := range sig.Rights() {
		olds := core.SoquetsFor(id, r)
		for i, old := range olds {
			env[old] = outs[r.Name][i]
		}
	}
}

// boundaryOutputs resolves the new soquets that must reach the right
// boundary, keyed the way Finalize expects.
func boundaryOutputs(cb *core.CompositeBloq, env map[core.Soquet]core.Soquet) (builder.Soqs, error) {
	outs := make(builder.Soqs)
	for name, consumers := range cb.RightSoquets() {
		ss := make([]core.Soquet, len(consumers))
		for i, c := range consumers {
			producer, ok := cb.ProducerOf(c)
			if !ok {
				return nil, fmt.Errorf("no producer for boundary %s: %w", c, core.ErrNeverWritten)
			}
			mapped, ok := env[producer]
			if !ok {
				return nil, fmt.Errorf("boundary producer %s never replayed: %w", producer, core.ErrCyclic)
			}
			ss[i] = mapped
		}
		outs[name] = ss
	}
	return outs, nil
}

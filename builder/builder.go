// SPDX-License-Identifier: MIT
// Package: qgraph/builder
//
// builder.go — the Builder type: AddRegister, Add, Finalize.
//
// Design contract (strict):
//   - Validate-then-mutate: every method checks its entire input against
//     the bookkeeping BEFORE touching it, so a failed call leaves the
//     builder unchanged and usable.
//   - One "available" soquet per open wire is the whole linear-use
//     mechanism: consuming deletes it, producing inserts it. No post-hoc
//     graph walk is ever needed to enforce no-cloning.
//   - Deterministic: instance IDs are dense arena indices in call order;
//     connections are emitted in signature declaration order; surfaced
//     finalize registers are appended in sorted-name order.

package builder

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/katalvlaran/qgraph/bloqs"
	"github.com/katalvlaran/qgraph/core"
	"github.com/katalvlaran/qgraph/qreg"
)

// Soqs is the named-wire currency of the builder: one row-major soquet
// slice per register name (length 1 for scalar registers).
type Soqs map[string][]core.Soquet

// One returns the single soquet of a scalar register entry. It panics on a
// missing name or a non-scalar slice - fixture sugar in the spirit of
// MustSignature, for call sites where the shape is known by construction.
func (s Soqs) One(name string) core.Soquet {
	ss, ok := s[name]
	if !ok || len(ss) != 1 {
		panic(fmt.Sprintf("builder.Soqs.One(%q): want exactly one soquet, have %d", name, len(ss)))
	}
	return ss[0]
}

// Builder incrementally constructs a well-formed CompositeBloq. Zero value
// is not usable; construct with New or NewFromSignature.
type Builder struct {
	declared  []qreg.Register          // boundary registers in declaration order
	names     map[string]struct{}      // declared register names
	binsts    []core.BloqInstance      // arena; ID == slice index
	conns     []core.Connection        // producer → consumer, emission order
	available map[core.Soquet]uint     // open wire → bit width
	consumed  map[core.Soquet]struct{} // closed wires, for double-use diagnosis
	finalized bool
}

// New returns an empty builder with no declared registers.
// Complexity: O(1).
func New() *Builder {
	return &Builder{
		names:     make(map[string]struct{}),
		available: make(map[core.Soquet]uint),
		consumed:  make(map[core.Soquet]struct{}),
	}
}

// NewFromSignature pre-declares every register of sig on a fresh builder
// and returns the initial soquets of its consuming (LEFT|THRU) registers.
// This is the entry point decomposition authors use: the sub-graph's
// boundary then matches the operation's own signature by construction.
//
// Complexity: O(total boundary wires).
func NewFromSignature(sig qreg.Signature) (*Builder, Soqs, error) {
	bb := New()
	ins := make(Soqs)
	for _, r := range sig.Registers() {
		ss, err := bb.addDeclared(r)
		if err != nil {
			return nil, nil, fmt.Errorf("NewFromSignature: %w", err)
		}
		if r.Side.Consumes() {
			ins[r.Name] = ss
		}
	}
	return bb, ins, nil
}

// AddRegister declares one boundary register (THRU by default; use
// qreg.WithSide for LEFT-only inputs or RIGHT-only declared outputs) and
// returns its fresh left-boundary soquets - one per shape index, nil for a
// produced-only register.
//
// Errors: ErrFinalized, ErrDuplicateRegister, qreg validation sentinels.
// Complexity: O(register wire count).
func (bb *Builder) AddRegister(name string, bitsize uint, opts ...qreg.RegOption) ([]core.Soquet, error) {
	return bb.addDeclared(qreg.Thru(name, bitsize, opts...))
}

// addDeclared validates and records one boundary register.
func (bb *Builder) addDeclared(r qreg.Register) ([]core.Soquet, error) {
	if bb.finalized {
		return nil, fmt.Errorf("AddRegister(%q): %w", r.Name, ErrFinalized)
	}
	if _, dup := bb.names[r.Name]; dup {
		return nil, fmt.Errorf("AddRegister(%q): %w", r.Name, ErrDuplicateRegister)
	}
	// Piggyback on signature validation for width/shape/name checks.
	if _, err := qreg.NewSignature(r); err != nil {
		return nil, fmt.Errorf("AddRegister(%q): %w", r.Name, err)
	}
	bb.names[r.Name] = struct{}{}
	bb.declared = append(bb.declared, r)
	if !r.Side.Consumes() {
		return nil, nil
	}
	ss := core.SoquetsFor(core.LeftDangle, r)
	for _, s := range ss {
		bb.available[s] = r.Bitsize
	}
	return ss, nil
}

// Add instantiates operation b, consumes the supplied soquets for each of
// its LEFT|THRU registers, and returns freshly minted soquets for each of
// its RIGHT|THRU registers.
//
// Errors: ErrFinalized; ErrWrongRegister on a name/shape/width mismatch;
// ErrDoubleUse on a re-consumed soquet; ErrForeignSoquet on a soquet this
// builder never produced.
// Complexity: O(total wires of b's signature).
func (bb *Builder) Add(b core.Bloq, ins Soqs) (Soqs, error) {
	if bb.finalized {
		return nil, fmt.Errorf("Add(%s): %w", b.Name(), ErrFinalized)
	}
	sig := b.Signature()
	lefts := sig.Lefts()
	if len(ins) != len(lefts) {
		return nil, fmt.Errorf("Add(%s): %d named inputs for %d consuming registers: %w",
			b.Name(), len(ins), len(lefts), ErrWrongRegister)
	}

	// Stage 1: validate everything against the bookkeeping, mutate nothing.
	id := core.InstanceID(len(bb.binsts))
	plan := make([]core.Connection, 0, len(lefts))
	seen := make(map[core.Soquet]struct{}, len(lefts))
	for _, r := range lefts {
		ss, ok := ins[r.Name]
		if !ok {
			return nil, fmt.Errorf("Add(%s): register %q not supplied: %w", b.Name(), r.Name, ErrWrongRegister)
		}
		if uint(len(ss)) != r.NumWires() {
			return nil, fmt.Errorf("Add(%s): register %q wants %d wires, got %d: %w",
				b.Name(), r.Name, r.NumWires(), len(ss), ErrWrongRegister)
		}
		tos := core.SoquetsFor(id, r)
		for i, s := range ss {
			if err := bb.checkConsumable(b.Name(), s, seen); err != nil {
				return nil, err
			}
			if bb.available[s] != r.Bitsize {
				return nil, fmt.Errorf("Add(%s): register %q wants width %d, soquet %s has width %d: %w",
					b.Name(), r.Name, r.Bitsize, s, bb.available[s], ErrWrongRegister)
			}
			seen[s] = struct{}{}
			plan = append(plan, core.Connection{From: s, To: tos[i]})
		}
	}

	// Stage 2: commit - instance, connections, bookkeeping, fresh outputs.
	bb.binsts = append(bb.binsts, core.BloqInstance{ID: id, Bloq: b})
	for _, c := range plan {
		delete(bb.available, c.From)
		bb.consumed[c.From] = struct{}{}
		bb.conns = append(bb.conns, c)
	}
	outs := make(Soqs)
	for _, r := range sig.Rights() {
		ss := core.SoquetsFor(id, r)
		for _, s := range ss {
			bb.available[s] = r.Bitsize
		}
		outs[r.Name] = ss
	}
	return outs, nil
}

// checkConsumable classifies why a soquet cannot be consumed right now.
func (bb *Builder) checkConsumable(method string, s core.Soquet, seen map[core.Soquet]struct{}) error {
	if _, dup := seen[s]; dup {
		return fmt.Errorf("%s: soquet %s supplied twice in one call: %w", method, s, ErrDoubleUse)
	}
	if _, ok := bb.available[s]; ok {
		return nil
	}
	if _, was := bb.consumed[s]; was {
		return fmt.Errorf("%s: soquet %s: %w", method, s, ErrDoubleUse)
	}
	return fmt.Errorf("%s: soquet %s: %w", method, s, ErrForeignSoquet)
}

// Finalize connects the remaining live soquets to the right boundary under
// the given names, re-checks every structural invariant, and returns the
// frozen graph. Declared registers must all be covered; extra names
// surface allocated wires as fresh RIGHT-side boundary registers, appended
// in sorted-name order.
//
// Errors: ErrFinalized, ErrMissingOutput, ErrWrongRegister, ErrDoubleUse,
// ErrForeignSoquet, ErrUnusedSoquet, ErrUnfreedAncilla (leftovers are
// aggregated so every dangling wire is reported at once), plus anything
// core.NewCompositeBloq raises.
// Complexity: O(total wires + connections).
func (bb *Builder) Finalize(outs Soqs) (*core.CompositeBloq, error) {
	if bb.finalized {
		return nil, fmt.Errorf("Finalize: %w", ErrFinalized)
	}

	// Stage 1: declared coverage, in declaration order.
	plan := make([]core.Connection, 0, len(bb.available))
	seen := make(map[core.Soquet]struct{}, len(bb.available))
	covered := make(map[string]struct{}, len(outs))
	for _, r := range bb.declared {
		if !r.Side.Produces() {
			continue
		}
		ss, ok := outs[r.Name]
		if !ok {
			return nil, fmt.Errorf("Finalize: declared register %q: %w", r.Name, ErrMissingOutput)
		}
		if uint(len(ss)) != r.NumWires() {
			return nil, fmt.Errorf("Finalize: declared register %q wants %d wires, got %d: %w",
				r.Name, r.NumWires(), len(ss), ErrMissingOutput)
		}
		covered[r.Name] = struct{}{}
		if err := bb.planBoundary(r, ss, seen, &plan); err != nil {
			return nil, err
		}
	}

	// Stage 2: surfaced registers - extra names in sorted order.
	extra := make([]string, 0, len(outs))
	for name := range outs {
		if _, ok := covered[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	surfaced := make([]qreg.Register, 0, len(extra))
	for _, name := range extra {
		if _, dup := bb.names[name]; dup {
			return nil, fmt.Errorf("Finalize: surfaced name %q collides with a declared register: %w",
				name, ErrDuplicateRegister)
		}
		r, err := bb.surfacedRegister(name, outs[name])
		if err != nil {
			return nil, err
		}
		surfaced = append(surfaced, r)
		if err := bb.planBoundary(r, outs[name], seen, &plan); err != nil {
			return nil, err
		}
	}

	// Stage 3: leftovers - aggregate every dangling wire.
	var leftoverErr error
	remaining := make([]core.Soquet, 0, len(bb.available))
	for s := range bb.available {
		if _, ok := seen[s]; !ok {
			remaining = append(remaining, s)
		}
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].String() < remaining[j].String() })
	for _, s := range remaining {
		sentinel := ErrUnusedSoquet
		if !s.Binst.IsDangling() {
			if _, isAlloc := bb.binsts[s.Binst].Bloq.(bloqs.Allocate); isAlloc {
				sentinel = ErrUnfreedAncilla
			}
		}
		leftoverErr = multierr.Append(leftoverErr, fmt.Errorf("Finalize: %s: %w", s, sentinel))
	}
	if leftoverErr != nil {
		return nil, leftoverErr
	}

	// Stage 4: freeze - the composite constructor re-validates everything.
	sig, err := qreg.NewSignature(append(append([]qreg.Register(nil), bb.declared...), surfaced...)...)
	if err != nil {
		return nil, fmt.Errorf("Finalize: %w", err)
	}
	cb, err := core.NewCompositeBloq(sig, bb.binsts, append(append([]core.Connection(nil), bb.conns...), plan...))
	if err != nil {
		return nil, fmt.Errorf("Finalize: %w", err)
	}
	bb.finalized = true
	return cb, nil
}

// planBoundary validates one finalize entry and plans its right-boundary
// connections.
func (bb *Builder) planBoundary(r qreg.Register, ss []core.Soquet, seen map[core.Soquet]struct{}, plan *[]core.Connection) error {
	tos := core.SoquetsFor(core.RightDangle, r)
	for i, s := range ss {
		if err := bb.checkConsumable("Finalize", s, seen); err != nil {
			return err
		}
		if bb.available[s] != r.Bitsize {
			return fmt.Errorf("Finalize: register %q wants width %d, soquet %s has width %d: %w",
				r.Name, r.Bitsize, s, bb.available[s], ErrWrongRegister)
		}
		seen[s] = struct{}{}
		*plan = append(*plan, core.Connection{From: s, To: tos[i]})
	}
	return nil
}

// surfacedRegister derives the RIGHT-side register for an undeclared
// finalize name: scalar for one wire, shape (n,) for n equal-width wires.
func (bb *Builder) surfacedRegister(name string, ss []core.Soquet) (qreg.Register, error) {
	if len(ss) == 0 {
		return qreg.Register{}, fmt.Errorf("Finalize: surfaced name %q has no soquets: %w", name, ErrWrongRegister)
	}
	for _, s := range ss {
		if _, ok := bb.available[s]; !ok {
			return qreg.Register{}, bb.checkConsumable("Finalize", s, nil)
		}
	}
	w := bb.available[ss[0]]
	for _, s := range ss[1:] {
		if sw := bb.available[s]; sw != w {
			return qreg.Register{}, fmt.Errorf("Finalize: surfaced name %q mixes widths %d and %d: %w",
				name, w, sw, ErrWrongRegister)
		}
	}
	if len(ss) == 1 {
		return qreg.Right(name, w), nil
	}
	return qreg.Right(name, w, qreg.WithShape(uint(len(ss)))), nil
}

// SPDX-License-Identifier: MIT
// Package: qgraph/core
//
// validate.go — structural invariant checking for CompositeBloq.
//
// Purpose:
//   - Enumerate every consumable and producible register slot the arena and
//     the boundary expose, in deterministic order.
//   - Count reads/writes per slot from the connection list and report every
//     linearity violation (multierr aggregation - callers get the full
//     defect list in one error).
//   - Kahn topological sort over the instance dependency graph: both the
//     acyclicity proof and the deterministic instance order the engines
//     walk.
//
// Staged walk with wrapped sentinels, fixed iteration orders, no map-order
// dependence in emitted diagnostics.

package core

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/katalvlaran/qgraph/qreg"
)

// slotTable tracks the expected slots of one direction (consumers or
// producers) with deterministic enumeration order.
type slotTable struct {
	order []Soquet               // deterministic slot enumeration
	reg   map[Soquet]qreg.Register // slot → owning register
	count map[Soquet]int         // slot → observed connection endpoints
}

func newSlotTable() *slotTable {
	return &slotTable{reg: make(map[Soquet]qreg.Register), count: make(map[Soquet]int)}
}

// addRegister expands one register slot into its per-wire soquets.
func (t *slotTable) addRegister(id InstanceID, r qreg.Register) {
	for _, s := range SoquetsFor(id, r) {
		t.order = append(t.order, s)
		t.reg[s] = r
	}
}

// validateStructure runs every invariant check and, on success, returns the
// deterministic topological instance order.
func validateStructure(sig qreg.Signature, binsts []BloqInstance, conns []Connection) ([]BloqInstance, error) {
	var errs error

	// Stage 1: arena sanity - unique non-negative IDs.
	byID := make(map[InstanceID]BloqInstance, len(binsts))
	for _, bi := range binsts {
		if bi.ID.IsDangling() {
			errs = multierr.Append(errs, fmt.Errorf("instance %s uses a sentinel id: %w", bi, ErrDuplicateInstance))
			continue
		}
		if _, dup := byID[bi.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("instance id %d repeated: %w", bi.ID, ErrDuplicateInstance))
			continue
		}
		byID[bi.ID] = bi
	}

	// Stage 2: enumerate expected slots in deterministic order.
	// Consumers: each instance's LEFT|THRU wires, then RightDangle wires.
	// Producers: LeftDangle wires, then each instance's RIGHT|THRU wires.
	sorted := append([]BloqInstance(nil), binsts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	consumers := newSlotTable()
	producers := newSlotTable()
	for _, r := range sig.Lefts() {
		producers.addRegister(LeftDangle, r)
	}
	for _, bi := range sorted {
		bsig := bi.Bloq.Signature()
		for _, r := range bsig.Lefts() {
			consumers.addRegister(bi.ID, r)
		}
		for _, r := range bsig.Rights() {
			producers.addRegister(bi.ID, r)
		}
	}
	for _, r := range sig.Rights() {
		consumers.addRegister(RightDangle, r)
	}

	// Stage 3: walk connections - endpoint existence, width agreement,
	// read/write counting.
	for _, c := range conns {
		fromReg, okFrom := producers.reg[c.From]
		if okFrom {
			producers.count[c.From]++
		} else {
			errs = multierr.Append(errs, endpointError(c.From, byID, sig, "producing"))
		}
		toReg, okTo := consumers.reg[c.To]
		if okTo {
			consumers.count[c.To]++
		} else {
			errs = multierr.Append(errs, endpointError(c.To, byID, sig, "consuming"))
		}
		if okFrom && okTo && fromReg.Bitsize != toReg.Bitsize {
			errs = multierr.Append(errs, fmt.Errorf("%s: width %d vs %d: %w",
				c, fromReg.Bitsize, toReg.Bitsize, ErrWidthMismatch))
		}
	}

	// Stage 4: linearity - every slot hit exactly once.
	for _, s := range consumers.order {
		switch n := consumers.count[s]; {
		case n == 0:
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", s, ErrNeverRead))
		case n > 1:
			errs = multierr.Append(errs, fmt.Errorf("%s read %d times: %w", s, n, ErrReadTwice))
		}
	}
	for _, s := range producers.order {
		switch n := producers.count[s]; {
		case n == 0:
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", s, ErrNeverWritten))
		case n > 1:
			errs = multierr.Append(errs, fmt.Errorf("%s written %d times: %w", s, n, ErrWriteTwice))
		}
	}
	if errs != nil {
		return nil, errs
	}

	// Stage 5: Kahn toposort for acyclicity + deterministic walk order.
	topo, err := kahnOrder(sorted, conns)
	if err != nil {
		return nil, err
	}
	return topo, nil
}

// endpointError classifies a connection endpoint that matched no expected
// slot: unknown instance vs. unknown slot on a known instance/boundary.
func endpointError(s Soquet, byID map[InstanceID]BloqInstance, sig qreg.Signature, role string) error {
	if !s.Binst.IsDangling() {
		if _, ok := byID[s.Binst]; !ok {
			return fmt.Errorf("%s endpoint %s: %w", role, s, ErrUnknownInstance)
		}
	}
	return fmt.Errorf("%s endpoint %s: %w", role, s, ErrUnknownSlot)
}

// kahnOrder topologically sorts the instance dependency graph induced by
// the connections (edge: producer instance → consumer instance). Among
// ready instances the smallest ID goes first, which makes the order - and
// everything the engines derive from it - reproducible.
//
// Complexity: O(V log V + E).
func kahnOrder(sorted []BloqInstance, conns []Connection) ([]BloqInstance, error) {
	indeg := make(map[InstanceID]int, len(sorted))
	succ := make(map[InstanceID]map[InstanceID]struct{}, len(sorted))
	for _, bi := range sorted {
		indeg[bi.ID] = 0
	}
	for _, c := range conns {
		if c.From.Binst.IsDangling() || c.To.Binst.IsDangling() {
			continue
		}
		set, ok := succ[c.From.Binst]
		if !ok {
			set = make(map[InstanceID]struct{})
			succ[c.From.Binst] = set
		}
		if _, seen := set[c.To.Binst]; !seen {
			set[c.To.Binst] = struct{}{}
			indeg[c.To.Binst]++
		}
	}

	// Ready list kept sorted ascending; sorted input seeds it in ID order.
	byID := make(map[InstanceID]BloqInstance, len(sorted))
	var ready []InstanceID
	for _, bi := range sorted {
		byID[bi.ID] = bi
		if indeg[bi.ID] == 0 {
			ready = append(ready, bi.ID)
		}
	}

	out := make([]BloqInstance, 0, len(sorted))
	for len(ready) > 0 {
		// Pop the smallest ready ID.
		id := ready[0]
		ready = ready[1:]
		out = append(out, byID[id])
		// Release successors in ascending order for determinism.
		next := make([]InstanceID, 0, len(succ[id]))
		for s := range succ[id] {
			next = append(next, s)
		}
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		for _, s := range next {
			indeg[s]--
			if indeg[s] == 0 {
				ready = insertSorted(ready, s)
			}
		}
	}
	if len(out) != len(sorted) {
		return nil, fmt.Errorf("%d of %d instances unreachable by topological order: %w",
			len(sorted)-len(out), len(sorted), ErrCyclic)
	}
	return out, nil
}

// insertSorted inserts id into the ascending ready list.
func insertSorted(ready []InstanceID, id InstanceID) []InstanceID {
	i := sort.Search(len(ready), func(i int) bool { return ready[i] >= id })
	ready = append(ready, 0)
	copy(ready[i+1:], ready[i:])
	ready[i] = id
	return ready
}

// SPDX-License-Identifier: MIT
// Package: qgraph/core
//
// types.go — value types for wire identity: InstanceID, BloqInstance,
// Soquet, Connection, and the row-major index-key helpers.
//
// Design contract (strict):
//   - Soquet must stay comparable (usable as a map key): the index tuple is
//     therefore encoded as a canonical string key ("", "2", "1,0"), and
//     instances are referenced by small-integer arena IDs instead of
//     pointers. This keeps the graph a pure value with no ownership cycles.
//   - Dangling sentinels are negative IDs so that arena IDs can stay dense
//     and non-negative.
//   - All enumeration helpers emit row-major order; that order is load-
//     bearing for boundary wiring and tensor axis conventions.

package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qgraph/qreg"
)

// InstanceID identifies one operation instance inside a graph's arena.
// Non-negative values are arena indices; the two negative sentinels stand
// for the graph's external boundary.
type InstanceID int

const (
	// LeftDangle is the pseudo-instance producing the graph's external
	// inputs.
	LeftDangle InstanceID = -1

	// RightDangle is the pseudo-instance consuming the graph's external
	// outputs.
	RightDangle InstanceID = -2
)

// IsDangling reports whether the ID is a boundary sentinel.
// Complexity: O(1).
func (id InstanceID) IsDangling() bool { return id < 0 }

// String renders the ID for diagnostics.
func (id InstanceID) String() string {
	switch id {
	case LeftDangle:
		return "LeftDangle"
	case RightDangle:
		return "RightDangle"
	default:
		return strconv.Itoa(int(id))
	}
}

// BloqInstance places a Bloq value at a specific position in a graph. The
// same Bloq value may appear as many distinct instances; the ID is what
// tells them apart.
type BloqInstance struct {
	// ID is the arena-unique, non-negative instance id.
	ID InstanceID

	// Bloq is the immutable operation value placed here.
	Bloq Bloq
}

// String renders the instance for diagnostics, e.g. "XGate<3>".
func (bi BloqInstance) String() string {
	return fmt.Sprintf("%s<%d>", bi.Bloq.Name(), bi.ID)
}

// Soquet names one concrete wire segment: the instance that produces (or
// consumes) it, the register, and the row-major index within the register's
// shape. Soquets are immutable comparable values; equality is structural.
type Soquet struct {
	// Binst is the owning instance (or a dangling sentinel).
	Binst InstanceID

	// Reg is the register name within the owning signature.
	Reg string

	// Idx is the canonical row-major index key ("" for a scalar register).
	Idx string
}

// String renders the soquet for diagnostics, e.g. "3.q[1,0]".
func (s Soquet) String() string {
	if s.Idx == "" {
		return fmt.Sprintf("%s.%s", s.Binst, s.Reg)
	}
	return fmt.Sprintf("%s.%s[%s]", s.Binst, s.Reg, s.Idx)
}

// Connection records one wire: From is the producing soquet, To the
// consuming one.
type Connection struct {
	From Soquet
	To   Soquet
}

// String renders the connection for diagnostics.
func (c Connection) String() string { return c.From.String() + " -> " + c.To.String() }

// IdxKey folds a row-major index tuple into its canonical string key.
// The empty tuple (a scalar wire) maps to "".
// Complexity: O(len(idx)).
func IdxKey(idx []uint) string {
	if len(idx) == 0 {
		return ""
	}
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ",")
}

// Indices enumerates every index tuple of a shape in row-major order.
// An empty shape yields the single scalar tuple (nil).
// Complexity: O(Π shape · len(shape)).
func Indices(shape []uint) [][]uint {
	if len(shape) == 0 {
		return [][]uint{nil}
	}
	total := uint(1)
	for _, d := range shape {
		total *= d
	}
	out := make([][]uint, 0, total)
	idx := make([]uint, len(shape))
	for n := uint(0); n < total; n++ {
		out = append(out, append([]uint(nil), idx...))
		// Row-major increment: last axis fastest.
		for k := len(shape) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
		}
	}
	return out
}

// SoquetsFor enumerates, in row-major order, every soquet of one register
// slot on the given instance. For a scalar register the result has length
// one.
// Complexity: O(register wire count).
func SoquetsFor(id InstanceID, r qreg.Register) []Soquet {
	idxs := Indices(r.Shape)
	out := make([]Soquet, len(idxs))
	for i, idx := range idxs {
		out[i] = Soquet{Binst: id, Reg: r.Name, Idx: IdxKey(idx)}
	}
	return out
}

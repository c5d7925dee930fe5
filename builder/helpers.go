// SPDX-License-Identifier: MIT
// Package: qgraph/builder
//
// helpers.go — ancilla and wire-regrouping sugar. Each helper inserts one
// dedicated bloqs instance through the ordinary Add path, so every
// linear-use and width check applies unchanged.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qgraph/bloqs"
	"github.com/katalvlaran/qgraph/core"
)

// Allocate inserts a bloqs.Allocate instance and returns the fresh |0…0⟩
// ancilla wire of the given width. The wire must eventually be freed or
// surfaced; Finalize enforces the pairing with ErrUnfreedAncilla.
//
// Errors: ErrFinalized, bloqs.ErrBadWidth.
// Complexity: O(1).
func (bb *Builder) Allocate(bitsize uint) (core.Soquet, error) {
	a, err := bloqs.NewAllocate(bitsize)
	if err != nil {
		return core.Soquet{}, fmt.Errorf("Allocate: %w", err)
	}
	outs, err := bb.Add(a, Soqs{})
	if err != nil {
		return core.Soquet{}, fmt.Errorf("Allocate: %w", err)
	}
	return outs.One("alloc"), nil
}

// Free inserts a bloqs.Free instance consuming the given wire, closing an
// Allocate pairing.
//
// Errors: ErrFinalized, ErrDoubleUse, ErrForeignSoquet.
// Complexity: O(1).
func (bb *Builder) Free(s core.Soquet) error {
	w, ok := bb.available[s]
	if !ok {
		return bb.checkConsumable("Free", s, nil)
	}
	f, err := bloqs.NewFree(w)
	if err != nil {
		return fmt.Errorf("Free: %w", err)
	}
	if _, err = bb.Add(f, Soqs{"free": {s}}); err != nil {
		return fmt.Errorf("Free: %w", err)
	}
	return nil
}

// Split inserts a bloqs.Split instance decomposing one width-w wire into w
// width-1 wires (most significant bit first). Exact inverse of Join; both
// contract as identity tensors.
//
// Errors: ErrFinalized, ErrDoubleUse, ErrForeignSoquet, bloqs.ErrBadWidth
// for w < 2.
// Complexity: O(w).
func (bb *Builder) Split(s core.Soquet) ([]core.Soquet, error) {
	w, ok := bb.available[s]
	if !ok {
		return nil, bb.checkConsumable("Split", s, nil)
	}
	sp, err := bloqs.NewSplit(w)
	if err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}
	outs, err := bb.Add(sp, Soqs{"reg": {s}})
	if err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}
	return outs["split"], nil
}

// Join inserts a bloqs.Join instance fusing len(ss) width-1 wires into one
// width-len(ss) wire (first wire becomes the most significant bit).
//
// Errors: ErrFinalized, ErrWrongRegister for non-1-bit inputs,
// ErrDoubleUse, ErrForeignSoquet, bloqs.ErrBadWidth for fewer than 2 wires.
// Complexity: O(len(ss)).
func (bb *Builder) Join(ss []core.Soquet) (core.Soquet, error) {
	j, err := bloqs.NewJoin(uint(len(ss)))
	if err != nil {
		return core.Soquet{}, fmt.Errorf("Join: %w", err)
	}
	outs, err := bb.Add(j, Soqs{"join": ss})
	if err != nil {
		return core.Soquet{}, fmt.Errorf("Join: %w", err)
	}
	return outs.One("reg"), nil
}

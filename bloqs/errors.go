// SPDX-License-Identifier: MIT
// Package: qgraph/bloqs
//
// errors.go — sentinel errors for primitive bloq construction and their
// classical transitions. Same policy as everywhere: errors.Is to branch,
// %w context at the detection site.

package bloqs

import "errors"

// ErrBadWidth indicates a primitive constructed with an unusable width:
// Split/Join need N ≥ 2 (splitting a 1-bit wire is a no-op), every
// primitive needs N ≥ 1, and the classical helpers cap N at 64 bits.
var ErrBadWidth = errors.New("bloqs: invalid primitive width")

// ErrFreeNonZero indicates the classical path tried to free an ancilla
// wire holding a non-zero value. Freeing is only sound on |0…0⟩.
var ErrFreeNonZero = errors.New("bloqs: freed ancilla holds non-zero value")

// ErrMissingValue indicates a classical call lacked a value for one of the
// bloq's incoming registers, or supplied a wrong-length slice.
var ErrMissingValue = errors.New("bloqs: missing classical input value")

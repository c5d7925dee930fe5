// SPDX-License-Identifier: MIT

// Package bloqs provides the primitive operations the rest of the module
// leans on: the wiring utilities the builder inserts on your behalf
// (Split, Join, Allocate, Free) and a small set of basic gates
// (XGate, ZGate, Hadamard, CNOT, Swap) used by engines and tests.
//
// Every type here is a pure immutable value: construct it, compare it,
// share it. Capabilities at a glance:
//
//	           tensor  decompose  classical
//	Split        ✓         -          ✓
//	Join         ✓         -          ✓
//	Allocate     ✓         -          ✓
//	Free         ✓         -          ✓
//	XGate        ✓         -          ✓
//	ZGate        ✓         -          -
//	Hadamard     ✓         -          -
//	CNOT         ✓         -          ✓
//	Swap         ✓         ✓          ✓
//
// Split and Join are exact inverses and contract as identity tensors: they
// regroup bits without perturbing numerical content. Allocate emits |0…0⟩;
// Free projects onto ⟨0…0| (freeing a wire in any other classical state is
// an error on the classical path).
//
// Swap carries BOTH a native tensor and a three-CNOT decomposition, making
// it the reference fixture for decomposition-equivalence checks.
package bloqs

// SPDX-License-Identifier: MIT

// Package contract lowers a bloq or a composite graph to a dense numerical
// tensor by tensor-network contraction.
//
// How it works:
//
//  1. Every instance contributes one labeled tensor. A native-tensor bloq
//     is used directly, with index labels equal to the identities of its
//     surrounding wires. An instance without a native tensor is expanded
//     one level (decompose.OneLevel) and its sub-network is spliced in
//     under fresh, instance-scoped interior labels - recursively, under an
//     explicit depth budget.
//  2. The network is contracted over all interior labels. The pair order
//     is chosen greedily by smallest intermediate size; order affects only
//     performance, never the numerical result. Disconnected components
//     contract in parallel (errgroup) and are joined by outer product.
//  3. The result is read out with the fixed axis ordering every caller
//     relies on: all right-boundary wires (register declaration order,
//     row-major within a shape, big-endian within a wire) followed by all
//     left-boundary wires in the same convention. ToMatrix collapses that
//     to the familiar 2^R × 2^L dense matrix.
//
// Edge cases honored: a graph with zero instances contracts to the
// identity on its wires; Split/Join contribute identity tensors that only
// regroup bits.
//
// Errors:
//
//	ErrTensorRank     - a native tensor's axes disagree with the declared
//	                    register signature (detected before contraction).
//	ErrTensorTooLarge - an intermediate would exceed the element budget;
//	                    the resource-exhaustion guard of the engine.
//	ErrNetwork        - internal wiring inconsistency (a malformed graph
//	                    that bypassed the builder).
//	decompose.ErrNotDecomposable / ErrDepthExceeded - propagated from the
//	                    lowering path.
//
// A finalized graph is immutable, so Contract is safe to invoke
// concurrently - for different graphs or the same graph alike.
package contract

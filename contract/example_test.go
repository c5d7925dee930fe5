// SPDX-License-Identifier: MIT

package contract_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qgraph/bloqs"
	"github.com/katalvlaran/qgraph/builder"
	"github.com/katalvlaran/qgraph/contract"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleToMatrix
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build a two-qubit circuit - a single CNOT - through the builder, then
//	lower it to its dense 4×4 matrix. Rows index the outgoing basis state,
//	columns the incoming one, big-endian (ctrl, target).
//
// Use case:
//
//	Verifying a freshly composed circuit against its textbook matrix.
//
// Complexity: O(network build) + contraction cost.
func ExampleToMatrix() {
	bb := builder.New()
	ctrl, err := bb.AddRegister("ctrl", 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	target, err := bb.AddRegister("target", 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	outs, err := bb.Add(bloqs.CNOT{}, builder.Soqs{"ctrl": ctrl, "target": target})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	cb, err := bb.Finalize(builder.Soqs{"ctrl": outs["ctrl"], "target": outs["target"]})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	m, err := contract.ToMatrix(cb)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		var row strings.Builder
		for j := 0; j < cols; j++ {
			if j > 0 {
				row.WriteByte(' ')
			}
			fmt.Fprintf(&row, "%d", int(real(m.At(i, j))))
		}
		fmt.Println(row.String())
	}
	// Output:
	// 1 0 0 0
	// 0 1 0 0
	// 0 0 0 1
	// 0 0 1 0
}

// ExampleContract lowers a primitive gate directly: one axis per boundary
// wire, outgoing first.
func ExampleContract() {
	t, err := contract.Contract(bloqs.XGate{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(t.Shape())
	for _, v := range t.Data() {
		fmt.Print(int(real(v)), " ")
	}
	fmt.Println()
	// Output:
	// [2 2]
	// 0 1 1 0
}

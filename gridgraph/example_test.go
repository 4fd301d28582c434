// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridcolor/gridgraph"
)

// ExampleNew builds a 3×3 grid and inspects the centre and a corner.
//
//	0 ─ 1 ─ 2
//	│   │   │
//	3 ─ 4 ─ 5
//	│   │   │
//	6 ─ 7 ─ 8
func ExampleNew() {
	gg, err := gridgraph.New(3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", gg.Order(), "edges:", gg.EdgeCount())
	fmt.Println("centre neighbours:", gg.Neighbors(4))
	fmt.Println("corner neighbours:", gg.Neighbors(8))
	row, col := gg.Coordinate(5)
	fmt.Printf("node 5 at row %d, col %d\n", row, col)

	// Output:
	// nodes: 9 edges: 12
	// centre neighbours: [1 3 5 7]
	// corner neighbours: [5 7]
	// node 5 at row 1, col 2
}

// ExampleGrid_Components groups the even-indexed cells of a 2×3 grid into
// 4-connected regions; no two of them are orthogonal neighbours.
func ExampleGrid_Components() {
	gg, _ := gridgraph.New(2, 3)
	comps := gg.Components(func(i int) bool { return i%2 == 0 })
	fmt.Println(comps)

	// Output:
	// [[0] [2] [4]]
}

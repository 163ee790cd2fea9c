package engine_test

import (
	"fmt"

	"github.com/katalvlaran/hgpart/engine"
	"github.com/katalvlaran/hgpart/hypergraph"
)

// ExamplePartition partitions a tiny four-vertex hypergraph made of two
// disjoint edges into two blocks. The optimal split keeps each edge wholly
// inside one block, so KM1 reaches zero and the result is feasible.
func ExamplePartition() {
	h, err := hypergraph.Build(4, [][]int32{{0, 1}, {2, 3}})
	if err != nil {
		fmt.Println(err)
		return
	}

	assign, km1, feasible, _, err := engine.Partition(h, 2, 0, 1, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("km1=%d feasible=%t vertices=%d\n", km1, feasible, len(assign))

	// Output:
	// km1=0 feasible=true vertices=4
}

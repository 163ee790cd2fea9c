package validate_test

import (
	"fmt"

	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/katalvlaran/hgpart/validate"
)

// ExampleCheck recomputes KM1 and balance from scratch for a perfectly
// split two-edge hypergraph, independent of any incrementally maintained
// flagstore state.
func ExampleCheck() {
	h, err := hypergraph.Build(4, [][]int32{{0, 1}, {2, 3}})
	if err != nil {
		fmt.Println(err)
		return
	}

	report := validate.Check(h, []uint8{0, 0, 1, 1}, 2, 2)
	fmt.Printf("km1=%d feasible=%t\n", report.KM1, report.Feasible)

	// Output:
	// km1=0 feasible=true
}

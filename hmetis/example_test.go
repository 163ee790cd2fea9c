package hmetis_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hgpart/hmetis"
)

// ExampleParse parses a minimal three-edge .hgr file: a header declaring 3
// edges over 4 vertices, then the edge lines themselves as 1-indexed,
// space-separated pin lists.
func ExampleParse() {
	src := strings.NewReader("3 4\n1 2\n2 3\n3 4\n")

	parsed, err := hmetis.Parse(src)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("n=%d edges=%v\n", parsed.N, parsed.Edges)

	// Output:
	// n=4 edges=[[0 1] [1 2] [2 3]]
}

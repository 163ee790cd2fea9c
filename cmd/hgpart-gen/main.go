// Command hgpart-gen writes a deterministic synthetic .hgr hypergraph
// instance, for feeding into hgpart or scenario S6 style regression runs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/hgpart/genhgr"
	"github.com/katalvlaran/hgpart/hypergraph"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hgpart-gen", flag.ContinueOnError)
	var (
		n           = fs.Int("n", 1000, "vertex count")
		m           = fs.Int("m", 2000, "edge count")
		k           = fs.Int("k", 8, "hidden cluster count")
		seed        = fs.Int64("seed", 1, "RNG seed")
		clusterBias = fs.Float64("cluster-bias", 0.8, "probability an edge is drawn from one cluster")
		out         = fs.String("out", "", "output .hgr path (required)")
	)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *out == "" {
		fmt.Fprintln(os.Stderr, "usage: hgpart-gen -out=PATH [flags]")
		return 1
	}

	h, err := genhgr.Generate(*n, *m, *k, *seed, *clusterBias)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hgpart-gen:", err)
		return 1
	}

	if err := writeHgr(*out, h.NumVertices(), h.NumEdges(), edgeLines(h)); err != nil {
		fmt.Fprintln(os.Stderr, "hgpart-gen:", err)
		return 1
	}
	return 0
}

func edgeLines(h *hypergraph.Hypergraph) [][]int32 {
	lines := make([][]int32, h.NumEdges())
	for e := range lines {
		lines[e] = h.EdgePins(e)
	}
	return lines
}

func writeHgr(path string, n, m int, edges [][]int32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d %d\n", m, n); err != nil {
		return err
	}
	for _, edge := range edges {
		for i, v := range edge {
			if i > 0 {
				if _, err := fmt.Fprint(f, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(f, "%d", v+1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(f); err != nil {
			return err
		}
	}
	return nil
}

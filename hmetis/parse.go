package hmetis

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for malformed .hgr input (§6).
var (
	// ErrMalformedHeader indicates the first non-comment line is not "M N".
	ErrMalformedHeader = errors.New("hmetis: malformed header line")

	// ErrBadPin indicates a pin id of 0, greater than N, or repeated within
	// its own edge.
	ErrBadPin = errors.New("hmetis: invalid pin id")

	// ErrShortEdge indicates an edge line with fewer than two pins.
	ErrShortEdge = errors.New("hmetis: edge has fewer than two pins")

	// ErrEdgeCount indicates fewer edge lines were present than the header
	// declared.
	ErrEdgeCount = errors.New("hmetis: fewer edge lines than declared")
)

// Parsed is the result of parsing a .hgr file: N (vertex count) and the
// M edges, each a list of 0-indexed vertex ids ready for hypergraph.Build.
type Parsed struct {
	N     int
	Edges [][]int32
}

// ParseFile opens path and parses it as a .hgr file.
func ParseFile(path string) (Parsed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("hmetis.ParseFile: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the hMETIS .hgr format from r (§6): a header line "M N",
// %-prefixed comment lines skipped anywhere, then M edge lines of
// 1-indexed, space-separated vertex ids. Pin ids are converted to 0-indexed
// for hypergraph.Build. Rejects id=0, id>N, a repeated id within one edge,
// and any edge with fewer than two pins.
func Parse(r io.Reader) (Parsed, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	m, n, err := readHeader(scanner)
	if err != nil {
		return Parsed{}, err
	}

	edges := make([][]int32, 0, m)
	for len(edges) < m {
		line, ok := nextContentLine(scanner)
		if !ok {
			return Parsed{}, fmt.Errorf("hmetis.Parse: got %d of %d edge lines: %w", len(edges), m, ErrEdgeCount)
		}
		edge, err := parseEdgeLine(line, n)
		if err != nil {
			return Parsed{}, err
		}
		edges = append(edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return Parsed{}, fmt.Errorf("hmetis.Parse: %w", err)
	}

	return Parsed{N: n, Edges: edges}, nil
}

func readHeader(scanner *bufio.Scanner) (m, n int, err error) {
	line, ok := nextContentLine(scanner)
	if !ok {
		return 0, 0, fmt.Errorf("hmetis.Parse: empty input: %w", ErrMalformedHeader)
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("hmetis.Parse: header %q: %w", line, ErrMalformedHeader)
	}
	m, errM := strconv.Atoi(fields[0])
	n, errN := strconv.Atoi(fields[1])
	if errM != nil || errN != nil || m < 0 || n <= 0 {
		return 0, 0, fmt.Errorf("hmetis.Parse: header %q: %w", line, ErrMalformedHeader)
	}
	return m, n, nil
}

func parseEdgeLine(line string, n int) ([]int32, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("hmetis.Parse: edge %q: %w", line, ErrShortEdge)
	}
	seen := make(map[int32]bool, len(fields))
	edge := make([]int32, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil || id <= 0 || id > n {
			return nil, fmt.Errorf("hmetis.Parse: pin %q: %w", f, ErrBadPin)
		}
		v := int32(id - 1)
		if seen[v] {
			return nil, fmt.Errorf("hmetis.Parse: repeated pin %q: %w", f, ErrBadPin)
		}
		seen[v] = true
		edge = append(edge, v)
	}
	return edge, nil
}

// nextContentLine returns the next non-blank, non-comment line, or false at
// EOF. Comment lines begin with '%' per the hMETIS format.
func nextContentLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, true
	}
	return "", false
}

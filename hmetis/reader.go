package hmetis

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hyperflowcutter/whfc/hypergraph"
)

// ReadGraph parses an hMETIS ".hgr" file at path into a Hypergraph. Nodes
// and hyperedges default to weight/capacity 1 when the header's type bits
// say the file carries no explicit weights, matching hMETIS convention.
func ReadGraph(path string) (*hypergraph.Hypergraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hmetis: %w", err)
	}
	defer f.Close()
	return ParseGraph(f)
}

// ParseGraph parses an hMETIS-format stream into a Hypergraph.
func ParseGraph(r io.Reader) (*hypergraph.Hypergraph, error) {
	sc := newLineScanner(r)

	headerLine, ok := sc.next()
	if !ok {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedHeader)
	}
	m, n, edgeWeighted, nodeWeighted, err := parseHeader(headerLine)
	if err != nil {
		return nil, err
	}

	b := hypergraph.NewBuilder(n, nil)
	for v := 0; v < n; v++ {
		b.SetNodeWeight(hypergraph.NodeID(v), 1)
	}

	for i := 0; i < m; i++ {
		line, ok := sc.next()
		if !ok {
			return nil, fmt.Errorf("%w: expected %d hyperedge lines, got %d", ErrMalformedEdge, m, i)
		}
		capacity, pins, err := parseEdgeLine(line, edgeWeighted, n)
		if err != nil {
			return nil, err
		}
		b.AddHyperedge(capacity, pins)
	}

	if nodeWeighted {
		for v := 0; v < n; v++ {
			line, ok := sc.next()
			if !ok {
				return nil, fmt.Errorf("%w: expected %d node weight lines", ErrMalformedWeight, n)
			}
			w, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedWeight, err)
			}
			b.SetNodeWeight(hypergraph.NodeID(v), w)
		}
	}

	return b.Build()
}

// parseHeader parses the "m n [type]" header line.
func parseHeader(line string) (m, n int, edgeWeighted, nodeWeighted bool, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, false, false, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	m, errM := strconv.Atoi(fields[0])
	n, errN := strconv.Atoi(fields[1])
	if errM != nil || errN != nil || m < 0 || n < 0 {
		return 0, 0, false, false, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}

	typ := 0
	if len(fields) == 3 {
		typ, err = strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, false, false, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}
	}
	switch typ {
	case 0:
	case 1:
		edgeWeighted = true
	case 10:
		nodeWeighted = true
	case 11:
		edgeWeighted = true
		nodeWeighted = true
	default:
		return 0, 0, false, false, fmt.Errorf("%w: unknown type %d", ErrMalformedHeader, typ)
	}
	return m, n, edgeWeighted, nodeWeighted, nil
}

// parseEdgeLine parses one hyperedge line: an optional leading capacity
// (when edgeWeighted), then 1-based pin ids.
func parseEdgeLine(line string, edgeWeighted bool, n int) (int64, []hypergraph.NodeID, error) {
	fields := strings.Fields(line)

	capacity := int64(1)
	start := 0
	if edgeWeighted {
		if len(fields) == 0 {
			return 0, nil, fmt.Errorf("%w: missing capacity", ErrMalformedEdge)
		}
		w, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrMalformedEdge, err)
		}
		capacity = w
		start = 1
	}

	pinFields := fields[start:]
	if len(pinFields) < 2 {
		return 0, nil, fmt.Errorf("%w: %d pins", ErrMalformedEdge, len(pinFields))
	}
	pins := make([]hypergraph.NodeID, len(pinFields))
	for i, tok := range pinFields {
		id, err := strconv.Atoi(tok)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrMalformedEdge, err)
		}
		if id < 1 || id > n {
			return 0, nil, fmt.Errorf("%w: pin %d (graph has %d nodes)", ErrPinOutOfRange, id, n)
		}
		pins[i] = hypergraph.NodeID(id - 1)
	}
	return capacity, pins, nil
}

// lineScanner yields non-blank, non-comment (%) lines from r.
type lineScanner struct {
	sc *bufio.Scanner
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

func (l *lineScanner) next() (string, bool) {
	for l.sc.Scan() {
		line := strings.TrimSpace(l.sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, true
	}
	return "", false
}

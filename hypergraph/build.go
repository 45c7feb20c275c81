package hypergraph

import "fmt"

// Builder accumulates nodes and hyperedges and then freezes them into an
// immutable-topology Hypergraph. Mirrors the two-phase construct-then-freeze
// shape lvlath's builder package uses for its graph constructors: collect
// everything, validate once, allocate exact-sized arena arrays.
type Builder struct {
	weights  []int64
	capacity []int64
	pinLists [][]NodeID
	err      error
}

// NewBuilder creates a Builder with n nodes, all initialized to the given
// weights (len(weights) must equal n; pass nil for all-zero weights assigned
// later via SetNodeWeight).
func NewBuilder(n int, weights []int64) *Builder {
	b := &Builder{weights: make([]int64, n)}
	if weights != nil {
		copy(b.weights, weights)
	}
	return b
}

// SetNodeWeight overrides the weight of node v. Negative weights are
// rejected at Build() time.
func (b *Builder) SetNodeWeight(v NodeID, w int64) {
	if int(v) < 0 || int(v) >= len(b.weights) {
		b.err = fmt.Errorf("%w: node %d", ErrNodeOutOfRange, v)
		return
	}
	b.weights[v] = w
}

// AddHyperedge appends a hyperedge with the given capacity and pin set.
// Pins are NOT deduplicated here (the hMETIS format never produces
// duplicate pins per edge); duplicates would corrupt the pin-partition
// invariant and are rejected. Returns the new hyperedge's ID.
func (b *Builder) AddHyperedge(capacity int64, pins []NodeID) HyperedgeID {
	if capacity < 0 {
		b.err = fmt.Errorf("%w: hyperedge capacity %d", ErrNegativeWeight, capacity)
	}
	if len(pins) < 2 {
		b.err = fmt.Errorf("%w: %d pins", ErrSingletonHyperedge, len(pins))
	}
	seen := make(map[NodeID]struct{}, len(pins))
	cp := make([]NodeID, len(pins))
	for i, v := range pins {
		if int(v) < 0 || int(v) >= len(b.weights) {
			b.err = fmt.Errorf("%w: node %d", ErrNodeOutOfRange, v)
		}
		if _, dup := seen[v]; dup {
			b.err = fmt.Errorf("hypergraph: duplicate pin %d in hyperedge", v)
		}
		seen[v] = struct{}{}
		cp[i] = v
	}
	id := HyperedgeID(len(b.capacity))
	b.capacity = append(b.capacity, capacity)
	b.pinLists = append(b.pinLists, cp)
	return id
}

// Build freezes the accumulated nodes/hyperedges into a Hypergraph. All pin
// and incidence arrays are allocated exactly and filled in two passes:
// degree counting, then placement. No flow is routed yet, so every
// hyperedge starts with its whole pin range "neutral".
func (b *Builder) Build() (*Hypergraph, error) {
	if b.err != nil {
		return nil, b.err
	}
	n := len(b.weights)
	m := len(b.capacity)

	degree := make([]int, n)
	totalPins := 0
	for _, pins := range b.pinLists {
		totalPins += len(pins)
		for _, v := range pins {
			degree[v]++
		}
	}

	h := &Hypergraph{
		nodes:      make([]nodeRecord, n),
		hyperedges: make([]hyperedgeRecord, m),
		pins:       make([]pinEntry, totalPins),
		incidences: make([]incidenceEntry, totalPins),
		totalPins:  totalPins,
	}

	// Lay out each node's incidence range contiguously.
	cursor := IncidenceIndex(0)
	for v := 0; v < n; v++ {
		h.nodes[v] = nodeRecord{weight: b.weights[v], incBegin: cursor, incEnd: cursor + IncidenceIndex(degree[v])}
		cursor += IncidenceIndex(degree[v])
	}

	// fillPos[v] tracks how many incidences of node v have been placed so far.
	fillPos := make([]IncidenceIndex, n)
	for v := 0; v < n; v++ {
		fillPos[v] = h.nodes[v].incBegin
	}

	pinCursor := PinIndex(0)
	for e, pins := range b.pinLists {
		begin := pinCursor
		for _, v := range pins {
			pi := pinCursor
			ii := fillPos[v]
			h.pins[pi] = pinEntry{node: v, flow: 0, incIdx: ii}
			h.incidences[ii] = incidenceEntry{he: HyperedgeID(e), pinIdx: pi}
			fillPos[v]++
			pinCursor++
		}
		end := pinCursor
		h.hyperedges[e] = hyperedgeRecord{
			capacity:  b.capacity[e],
			flow:      0,
			pinsBegin: begin,
			sendEnd:   begin, // empty sending range
			recvBegin: end,   // empty receiving range
			pinsEnd:   end,
		}
	}

	return h, nil
}

// Reset clears all flow and restores every hyperedge's pin range to fully
// neutral, keeping topology (nodes, hyperedges, pins, incidences) intact for
// reuse across findBalancedCut calls. The view direction is reset to
// natural.
func (h *Hypergraph) Reset() {
	for i := range h.pins {
		h.pins[i].flow = 0
	}
	for e := range h.hyperedges {
		r := &h.hyperedges[e]
		r.flow = 0
		r.sendEnd = r.pinsBegin
		r.recvBegin = r.pinsEnd
	}
	h.viewDirection = false
}

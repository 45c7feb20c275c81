package isolated

import "github.com/hyperflowcutter/whfc/hypergraph"

// nodeID is a local alias kept short for the DP table's internal arrays.
type nodeID = hypergraph.NodeID

// Range is a maximal contiguous interval [From, To] such that every integer
// sum in it is a subset sum of the isolated-node weights added so far.
type Range struct {
	From, To int64
}

// Nodes tracks isolated nodes and their subset-sum DP table.
type Nodes struct {
	hg   *hypergraph.Hypergraph
	wMax int64

	mixedCount     []int32 // per-node count of incident mixed hyperedges
	hyperedgeMixed []bool  // per-hyperedge "already counted as mixed" flag
	isIsolated     []bool  // per-node isolation flag

	pending      []hypergraph.NodeID // newly isolated, not yet folded into the DP
	runningTotal int64                // Σ w(u) over u ∈ I so far folded into the DP

	reachable []bool               // reachable[x] == ∃ subset summing to x
	witness   []hypergraph.NodeID  // witness[x]: a node u with reachable[x-w(u)]
	ranges    []Range              // ordered, merged summable ranges
}

// New allocates an isolated-node tracker bound to hg, with a subset-sum
// table over [0, wMax].
func New(hg *hypergraph.Hypergraph, wMax int64) *Nodes {
	in := &Nodes{
		hg:             hg,
		wMax:           wMax,
		mixedCount:     make([]int32, hg.NumNodes()),
		hyperedgeMixed: make([]bool, hg.NumHyperedges()),
		isIsolated:     make([]bool, hg.NumNodes()),
		reachable:      make([]bool, wMax+1),
		witness:        make([]hypergraph.NodeID, wMax+1),
		ranges:         []Range{{From: 0, To: 0}},
	}
	in.reachable[0] = true
	return in
}

// Reset clears all isolation and DP state for reuse across findBalancedCut
// calls, keeping the allocated arrays.
func (in *Nodes) Reset() {
	for i := range in.mixedCount {
		in.mixedCount[i] = 0
		in.isIsolated[i] = false
	}
	for i := range in.hyperedgeMixed {
		in.hyperedgeMixed[i] = false
	}
	for i := range in.reachable {
		in.reachable[i] = false
	}
	in.reachable[0] = true
	in.ranges = in.ranges[:1]
	in.ranges[0] = Range{From: 0, To: 0}
	in.pending = in.pending[:0]
	in.runningTotal = 0
}

// IsIsolated reports v ∈ I.
func (in *Nodes) IsIsolated(v hypergraph.NodeID) bool { return in.isIsolated[v] }

// TotalWeight returns Σ_{u∈I} w(u) over nodes already folded into the DP
// table (i.e. excluding any still-pending UpdateDPTable call).
func (in *Nodes) TotalWeight() int64 { return in.runningTotal }

// Ranges returns the current ordered, non-overlapping summable ranges.
func (in *Nodes) Ranges() []Range { return append([]Range(nil), in.ranges...) }

// Summable reports whether x is a subset sum of the isolated-node weights
// folded into the DP so far.
func (in *Nodes) Summable(x int64) bool {
	if x < 0 || x > in.wMax {
		return false
	}
	return in.reachable[x]
}

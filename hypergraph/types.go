package hypergraph

// NodeID indexes into the node arrays of a Hypergraph. Valid range is
// [0, NumNodes).
type NodeID int32

// HyperedgeID indexes into the hyperedge arrays. Valid range is
// [0, NumHyperedges).
type HyperedgeID int32

// PinIndex indexes into the flattened, per-hyperedge pins array.
type PinIndex int32

// IncidenceIndex indexes into the flattened, per-node incidences array.
type IncidenceIndex int32

// invalidIndex marks an unset index field.
const invalidIndex = -1

// pinEntry is one (node, hyperedge) incidence as seen from the hyperedge's
// side: which node, how much flow it currently carries on this incidence,
// and the index of the matching incidenceEntry so swap-on-cross can fix up
// the node-side back-pointer in O(1).
type pinEntry struct {
	node   NodeID
	flow   int64          // f(v,e); sign convention: positive = flow enters e through v
	incIdx IncidenceIndex // back-pointer into incidences[]
}

// incidenceEntry is the same incidence as seen from the node's side: which
// hyperedge, and the index of the matching pinEntry.
type incidenceEntry struct {
	he     HyperedgeID
	pinIdx PinIndex // forward-pointer into pins[]
}

// nodeRecord holds a node's static weight and its contiguous range into the
// global incidences array. The range never changes after Build.
type nodeRecord struct {
	weight   int64
	incBegin IncidenceIndex
	incEnd   IncidenceIndex
}

// hyperedgeRecord holds a hyperedge's capacity, aggregate flow, and the
// mutable partition of its contiguous pins range into three sub-ranges:
//
//	[pinsBegin, sendEnd)   -- pins currently sending flow into e
//	[sendEnd, recvBegin)   -- pins with zero incidence flow
//	[recvBegin, pinsEnd)   -- pins currently receiving flow from e
//
// "Sending" / "receiving" are w.r.t. the natural (unflipped) direction;
// Hypergraph.viewDirection decides which label the caller-facing API uses.
type hyperedgeRecord struct {
	capacity  int64
	flow      int64 // f(e) = sum of positive f(v,e) over pins
	pinsBegin PinIndex
	sendEnd   PinIndex
	recvBegin PinIndex
	pinsEnd   PinIndex
}

// Hypergraph is the flow hypergraph: nodes with weights, hyperedges with
// capacities, and the pin/incidence arena backing residual-capacity and
// flow-routing operations. Built once via Builder, reused across many
// findBalancedCut calls via Reset.
type Hypergraph struct {
	nodes      []nodeRecord
	hyperedges []hyperedgeRecord
	pins       []pinEntry
	incidences []incidenceEntry

	totalPins int // p = sum of |e| over all hyperedges

	// viewDirection toggles which physical region ([pinsBegin,sendEnd) or
	// [recvBegin,pinsEnd)) is reported as "sending" versus "receiving", and
	// flips the sign read off pinEntry.flow. Flipping is O(1).
	viewDirection bool
}

// NumNodes returns n = |V|.
func (h *Hypergraph) NumNodes() int { return len(h.nodes) }

// NumHyperedges returns m = |E|.
func (h *Hypergraph) NumHyperedges() int { return len(h.hyperedges) }

// NumPins returns p = Σ_e |e|.
func (h *Hypergraph) NumPins() int { return h.totalPins }

// NodeWeight returns w(v).
func (h *Hypergraph) NodeWeight(v NodeID) int64 { return h.nodes[v].weight }

// TotalWeight returns Σ_v w(v).
func (h *Hypergraph) TotalWeight() int64 {
	var total int64
	for _, n := range h.nodes {
		total += n.weight
	}
	return total
}

// Degree returns the number of hyperedges incident to v.
func (h *Hypergraph) Degree(v NodeID) int {
	r := h.nodes[v]
	return int(r.incEnd - r.incBegin)
}

// PinCount returns |e|, the number of pins of hyperedge e.
func (h *Hypergraph) PinCount(e HyperedgeID) int {
	r := h.hyperedges[e]
	return int(r.pinsEnd - r.pinsBegin)
}

// ViewDirection reports the current view-direction bit (false = natural).
func (h *Hypergraph) ViewDirection() bool { return h.viewDirection }

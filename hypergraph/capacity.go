package hypergraph

// Capacity returns c(e).
func (h *Hypergraph) Capacity(e HyperedgeID) int64 { return h.hyperedges[e].capacity }

// Flow returns f(e) = Σ_{v∈pins(e)} max(0, f(v,e)).
func (h *Hypergraph) Flow(e HyperedgeID) int64 { return h.hyperedges[e].flow }

// ResidualCapacity returns c(e) − f(e).
func (h *Hypergraph) ResidualCapacity(e HyperedgeID) int64 {
	r := h.hyperedges[e]
	return r.capacity - r.flow
}

// IsSaturated reports whether f(e) == c(e).
func (h *Hypergraph) IsSaturated(e HyperedgeID) bool {
	r := h.hyperedges[e]
	return r.flow >= r.capacity
}

// findPin locates v's pin entry within hyperedge e's pin range, or
// invalidIndex if v is not a pin of e. O(|e|); callers on hot paths should
// prefer PinIndexOf when they already hold a PinIndex from iteration.
func (h *Hypergraph) findPin(v NodeID, e HyperedgeID) PinIndex {
	r := h.hyperedges[e]
	for i := r.pinsBegin; i < r.pinsEnd; i++ {
		if h.pins[i].node == v {
			return i
		}
	}
	return invalidIndex
}

// rawFlow returns f(v,e) in the natural (unflipped) sign convention:
// positive means flow enters e through v.
func (h *Hypergraph) rawFlow(pin PinIndex) int64 { return h.pins[pin].flow }

// FlowSent returns the flow v sends into e under the current view
// direction: max(0, f(v,e)) in natural orientation, or max(0, −f(v,e)) when
// flipped.
func (h *Hypergraph) FlowSent(v NodeID, e HyperedgeID) int64 {
	pin := h.findPin(v, e)
	if pin == invalidIndex {
		return 0
	}
	return h.absSentAtPin(pin)
}

// FlowReceived returns the flow v receives from e under the current view
// direction, symmetric to FlowSent.
func (h *Hypergraph) FlowReceived(v NodeID, e HyperedgeID) int64 {
	pin := h.findPin(v, e)
	if pin == invalidIndex {
		return 0
	}
	return h.absReceivedAtPin(pin)
}

func (h *Hypergraph) absSentAtPin(pin PinIndex) int64 {
	f := h.pins[pin].flow
	if h.viewDirection {
		f = -f
	}
	if f > 0 {
		return f
	}
	return 0
}

func (h *Hypergraph) absReceivedAtPin(pin PinIndex) int64 {
	f := h.pins[pin].flow
	if h.viewDirection {
		f = -f
	}
	if f < 0 {
		return -f
	}
	return 0
}

// ResidualCapacityPath returns residualCapacity(u,e,v): the residual of one
// augmenting-path step u → e → v, combining u's pending flow into e, v's
// pending flow out of e, and e's own slack.
//
//	residualCapacity(u,e,v) = absFlowReceived(u,e) + absFlowSent(v,e) + (c(e) − f(e))
func (h *Hypergraph) ResidualCapacityPath(u NodeID, e HyperedgeID, v NodeID) int64 {
	uPin := h.findPin(u, e)
	vPin := h.findPin(v, e)
	var recvU, sentV int64
	if uPin != invalidIndex {
		recvU = h.absReceivedAtPin(uPin)
	}
	if vPin != invalidIndex {
		sentV = h.absSentAtPin(vPin)
	}
	return recvU + sentV + h.ResidualCapacity(e)
}

// FlipViewDirection swaps the caller-facing meaning of "sending" and
// "receiving" pins and the sign read off every pin's flow. It is an
// involution: calling it twice restores the original observable state.
//
// Complexity: O(1). (The physical pin arrays are never reordered by a flip —
// only the bit that labels the two existing regions changes — so unlike the
// reference WHFC implementation this does not cost an O(m) vector swap.)
func (h *Hypergraph) FlipViewDirection() {
	h.viewDirection = !h.viewDirection
}

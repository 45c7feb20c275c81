package hypergraph

// Because the three pin sub-ranges of a hyperedge are laid out contiguously
// as [send | neutral | recv], both "sending pins" and "not-sending pins"
// (neutral ∪ receiving) are themselves contiguous ranges — under either view
// direction, just anchored at different boundaries. This is why
// FlipViewDirection never needs to touch the physical arrays: it only
// changes which boundary pair these accessors read.

// SendingPinsRange returns the [begin,end) sub-range of pins(e) currently
// sending flow into e, under the current view direction.
func (h *Hypergraph) SendingPinsRange(e HyperedgeID) (PinIndex, PinIndex) {
	r := h.hyperedges[e]
	if !h.viewDirection {
		return r.pinsBegin, r.sendEnd
	}
	return r.recvBegin, r.pinsEnd
}

// NotSendingPinsRange returns the [begin,end) sub-range of pins(e) with zero
// or receiving incidence flow (i.e. everything but the sending pins), under
// the current view direction.
func (h *Hypergraph) NotSendingPinsRange(e HyperedgeID) (PinIndex, PinIndex) {
	r := h.hyperedges[e]
	if !h.viewDirection {
		return r.sendEnd, r.pinsEnd
	}
	return r.pinsBegin, r.recvBegin
}

// AllPinsRange returns the full [begin,end) pin range of hyperedge e.
func (h *Hypergraph) AllPinsRange(e HyperedgeID) (PinIndex, PinIndex) {
	r := h.hyperedges[e]
	return r.pinsBegin, r.pinsEnd
}

// PinNode returns the node occupying pin slot i.
func (h *Hypergraph) PinNode(i PinIndex) NodeID { return h.pins[i].node }

// IncidentRange returns the [begin,end) range into the incidences array for
// node v's incident hyperedges. The range is stable for the lifetime of the
// Hypergraph (only pins, not incidences, are ever reordered).
func (h *Hypergraph) IncidentRange(v NodeID) (IncidenceIndex, IncidenceIndex) {
	r := h.nodes[v]
	return r.incBegin, r.incEnd
}

// IncidenceHyperedge returns the hyperedge referenced by incidence slot i.
func (h *Hypergraph) IncidenceHyperedge(i IncidenceIndex) HyperedgeID { return h.incidences[i].he }

// IncidencePin returns the pins[] index currently holding incidence slot i's
// flow; it changes as RouteFlow reorders pins, which is why callers must
// re-read it rather than cache it across mutations.
func (h *Hypergraph) IncidencePin(i IncidenceIndex) PinIndex { return h.incidences[i].pinIdx }

// IncidentHyperedges returns the (allocated) list of hyperedges incident to
// v. Convenience wrapper around IncidentRange for call sites where
// allocation is not on the hot path (settleNode, isolated-node bookkeeping).
func (h *Hypergraph) IncidentHyperedges(v NodeID) []HyperedgeID {
	begin, end := h.IncidentRange(v)
	out := make([]HyperedgeID, 0, end-begin)
	for i := begin; i < end; i++ {
		out = append(out, h.IncidenceHyperedge(i))
	}
	return out
}

// PinsOf returns the (allocated) list of nodes pinning hyperedge e.
func (h *Hypergraph) PinsOf(e HyperedgeID) []NodeID {
	begin, end := h.AllPinsRange(e)
	out := make([]NodeID, 0, end-begin)
	for i := begin; i < end; i++ {
		out = append(out, h.PinNode(i))
	}
	return out
}

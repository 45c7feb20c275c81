package hypergraph

import "fmt"

// RouteFlow pushes Δ units of flow along the path step u → e → v, where the
// roles of "u" (sending into e) and "v" (receiving from e) are read under
// the CURRENT view direction. Precondition: 0 < Δ ≤ ResidualCapacityPath(u,e,v).
//
// It updates f(u,e), f(v,e) and f(e), then restores the pin-partition
// invariant for both u's and v's pins in e (locating the two pins scans e,
// O(|e|); the repair itself takes at most two swaps per pin). All
// per-pin/per-incidence back-pointers remain consistent.
func (h *Hypergraph) RouteFlow(u NodeID, e HyperedgeID, v NodeID, delta int64) error {
	if delta <= 0 {
		return fmt.Errorf("%w: routeFlow delta %d must be positive", ErrResidualExceeded, delta)
	}
	uPin := h.findPin(u, e)
	vPin := h.findPin(v, e)
	if uPin == invalidIndex || vPin == invalidIndex {
		return fmt.Errorf("%w: routeFlow(%d,%d,%d)", ErrPinNotFound, u, e, v)
	}
	residual := h.ResidualCapacityPath(u, e, v)
	if delta > residual {
		return fmt.Errorf("%w: Δ=%d residual=%d", ErrResidualExceeded, delta, residual)
	}

	preRecvU := h.absReceivedAtPin(uPin)
	preSentV := h.absSentAtPin(vPin)

	sign := int64(1)
	if h.viewDirection {
		sign = -1
	}
	h.pins[uPin].flow += sign * delta
	h.pins[vPin].flow -= sign * delta
	h.hyperedges[e].flow += delta - preRecvU - preSentV

	h.maintainPartition(e, uPin)
	h.maintainPartition(e, vPin)

	return nil
}

// swapPins exchanges two pins' physical slots within the (shared) hyperedge
// pin array and fixes the corresponding incidence back-pointers so the
// node-side view stays consistent.
func (h *Hypergraph) swapPins(i, j PinIndex) {
	if i == j {
		return
	}
	h.pins[i], h.pins[j] = h.pins[j], h.pins[i]
	h.incidences[h.pins[i].incIdx].pinIdx = i
	h.incidences[h.pins[j].incIdx].pinIdx = j
}

// maintainPartition restores the three-region invariant of hyperedge e after
// the flow at pinIdx changed. The regions are defined in natural (unflipped)
// sign terms, so maintenance never depends on the view-direction bit — only
// the caller-facing accessors (SendingPins/NotSendingPins) apply the flip.
func (h *Hypergraph) maintainPartition(e HyperedgeID, pinIdx PinIndex) {
	r := &h.hyperedges[e]
	for {
		f := h.pins[pinIdx].flow
		switch {
		case f > 0:
			if pinIdx < r.sendEnd {
				return
			}
			if pinIdx < r.recvBegin {
				h.swapPins(r.sendEnd, pinIdx)
				pinIdx = r.sendEnd
				r.sendEnd++
				return
			}
			h.swapPins(r.recvBegin, pinIdx)
			pinIdx = r.recvBegin
			r.recvBegin++
			// pinIdx is now in the neutral region; loop continues to move it on.
		case f < 0:
			if pinIdx >= r.recvBegin {
				return
			}
			if pinIdx >= r.sendEnd {
				r.recvBegin--
				h.swapPins(r.recvBegin, pinIdx)
				pinIdx = r.recvBegin
				return
			}
			r.sendEnd--
			h.swapPins(r.sendEnd, pinIdx)
			pinIdx = r.sendEnd
			// pinIdx is now in the neutral region; loop continues to move it on.
		default: // f == 0
			if pinIdx >= r.sendEnd && pinIdx < r.recvBegin {
				return
			}
			if pinIdx < r.sendEnd {
				r.sendEnd--
				h.swapPins(r.sendEnd, pinIdx)
				return
			}
			h.swapPins(r.recvBegin, pinIdx)
			r.recvBegin++
			return
		}
	}
}

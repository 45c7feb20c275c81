package isolated

import "github.com/hyperflowcutter/whfc/hypergraph"

// MarkIsolated directly marks v as isolated and queues its weight for the
// next UpdateDPTable call. Used by tests that need to drive the DP table
// with a specific insertion order.
func (in *Nodes) MarkIsolated(v hypergraph.NodeID) {
	if in.isIsolated[v] {
		return
	}
	in.isIsolated[v] = true
	in.pending = append(in.pending, v)
}

// OnHyperedgeMixed must be called exactly once, the first time hyperedge e
// gains both a settled source pin and a settled target pin ("e becomes
// mixed"). It increments the mixed-incident-hyperedge counter of every pin
// of e and returns the nodes that just became isolated as a result (every
// incident hyperedge of each returned node is now mixed). Returned nodes are
// queued internally; call UpdateDPTable to fold their weights into the DP.
//
// The caller (package cutter) is responsible for removing newly-isolated
// nodes from SR/TR.
func (in *Nodes) OnHyperedgeMixed(e hypergraph.HyperedgeID) []hypergraph.NodeID {
	if in.hyperedgeMixed[e] {
		return nil
	}
	in.hyperedgeMixed[e] = true

	var newly []hypergraph.NodeID
	for _, v := range in.hg.PinsOf(e) {
		if in.isIsolated[v] {
			continue
		}
		in.mixedCount[v]++
		if int(in.mixedCount[v]) == in.hg.Degree(v) {
			in.isIsolated[v] = true
			newly = append(newly, v)
			in.pending = append(in.pending, v)
		}
	}
	return newly
}

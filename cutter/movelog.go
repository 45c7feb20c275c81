package cutter

import "github.com/hyperflowcutter/whfc/hypergraph"

// TrackMove appends one settle to the move log, so the most-balanced-cut
// search can record a trial sequence and later replay only the winning one
// against a fresh snapshot (spec §4.8).
func (cs *CutterState) TrackMove(v hypergraph.NodeID, toSource bool) {
	cs.trackedMoves = append(cs.trackedMoves, move{node: v, toSource: toSource})
}

// Moves returns the recorded move log.
func (cs *CutterState) Moves() []hypergraph.NodeID {
	out := make([]hypergraph.NodeID, len(cs.trackedMoves))
	for i, mv := range cs.trackedMoves {
		out[i] = mv.node
	}
	return out
}

// ClearMoves empties the move log, keeping the backing array.
func (cs *CutterState) ClearMoves() { cs.trackedMoves = cs.trackedMoves[:0] }

// ReplayMoves re-applies every recorded move in order against the current
// state (used after rewinding to the MBMC snapshot to apply the best trial
// found).
func (cs *CutterState) ReplayMoves() error {
	for _, mv := range cs.trackedMoves {
		if mv.toSource {
			if err := cs.SettleNode(mv.node); err != nil {
				return err
			}
			continue
		}
		cs.FlipViewDirection()
		err := cs.SettleNode(mv.node)
		cs.FlipViewDirection()
		if err != nil {
			return err
		}
	}
	return nil
}

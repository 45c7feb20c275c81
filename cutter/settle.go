package cutter

import (
	"fmt"

	"github.com/hyperflowcutter/whfc/hypergraph"
)

// SettleNode promotes v to the (current-direction) source side: v ∉ S ∪ T ∪
// I is required. For each incident hyperedge e, the first settled source
// pin sets e's source-pin flag; if e already carried a settled target pin
// (e becomes mixed), every pin of e has its mixed-incident-hyperedge counter
// bumped, and any node that counter pushes to full degree is removed from
// both SR and TR (spec §4.5, §4.4).
func (cs *CutterState) SettleNode(v hypergraph.NodeID) error {
	if !cs.canBeSettled(v) {
		return fmt.Errorf("%w: node %d", ErrAlreadySettled, v)
	}
	cs.reach.SettleSource(int(v))
	cs.sourceWeight += cs.hg.NodeWeight(v)
	cs.removeFromBorder(v)

	for _, e := range cs.hg.IncidentHyperedges(v) {
		wasMixed := cs.hasSourcePin[e] && cs.hasTargetPin[e]
		cs.hasSourcePin[e] = true
		becomesMixed := cs.hasTargetPin[e] && !wasMixed
		if becomesMixed {
			for _, u := range cs.iso.OnHyperedgeMixed(e) {
				cs.reach.ClearReachable(int(u))
				cs.removeFromBorder(u)
			}
		}
	}
	return nil
}

func (cs *CutterState) removeFromBorder(v hypergraph.NodeID) {
	if !cs.inBorder[v] {
		return
	}
	cs.inBorder[v] = false
	for i, u := range cs.border {
		if u == v {
			cs.border[i] = cs.border[len(cs.border)-1]
			cs.border = cs.border[:len(cs.border)-1]
			break
		}
	}
}

// AddToCut adds e to the cut set. Precondition (caller's responsibility):
// hg.IsSaturated(e) and e's all-pins sub-arc is not already fully
// source-reachable. Every still-settleable pin of e joins the border.
func (cs *CutterState) AddToCut(e hypergraph.HyperedgeID) error {
	if !cs.hg.IsSaturated(e) {
		return fmt.Errorf("%w: hyperedge %d", ErrNotSaturated, e)
	}
	if cs.inCut[e] {
		return fmt.Errorf("%w: hyperedge %d", ErrCutAlreadyHasEdge, e)
	}
	cs.inCut[e] = true
	cs.cutList = append(cs.cutList, e)

	for _, v := range cs.hg.PinsOf(e) {
		if cs.canBeSettled(v) && !cs.inBorder[v] {
			cs.inBorder[v] = true
			cs.border = append(cs.border, v)
		}
	}
	return nil
}

// FlipViewDirection swaps source and target roles across the hypergraph,
// reachability, piercing-node sets, and per-hyperedge pin-flag bookkeeping.
// An involution over observable state. Cut and border membership are
// direction-agnostic and untouched.
func (cs *CutterState) FlipViewDirection() {
	cs.hg.FlipViewDirection()
	cs.reach.FlipDirection()
	cs.sourcePiercing, cs.targetPiercing = cs.targetPiercing, cs.sourcePiercing
	cs.sourceWeight, cs.targetWeight = cs.targetWeight, cs.sourceWeight
	cs.hasSourcePin, cs.hasTargetPin = cs.hasTargetPin, cs.hasSourcePin
	cs.viewDirection = !cs.viewDirection
}

package cutter

import "github.com/hyperflowcutter/whfc/hypergraph"

// Partition is the final bipartition output: B0 holds every node reachable
// from source without crossing the cut, B1 every node reachable to target.
type Partition struct {
	B0, B1 []hypergraph.NodeID
}

// bestSplit is the minimizer found by outputMostBalancedPartition: which
// side the unclaimed mass goes to, how much isolated mass goes to source,
// and the resulting imbalance.
type bestSplit struct {
	uwToSource bool
	isoToSrc   int64
	diff       int64
	found      bool
}

// OutputMostBalancedPartition scans every summable range and both
// placements of the unclaimed mass, picks the split minimizing
// |B0_weight − B1_weight|, and materializes the bipartition by walking the
// isolated-nodes DP's witness chain for the chosen sum (spec §4.5).
func (cs *CutterState) OutputMostBalancedPartition() Partition {
	cs.iso.UpdateDPTable()
	cs.metrics.IncUpdate(cs.metricsAlgo)

	sw, tw := cs.sourceWeight, cs.targetWeight
	isoWeight := cs.iso.TotalWeight()

	var best bestSplit
	for _, r := range cs.iso.Ranges() {
		for _, uwToSource := range [2]bool{true, false} {
			a, b := sw, tw
			if uwToSource {
				a += cs.unclaimedWeight()
			} else {
				b += cs.unclaimedWeight()
			}
			var x int64
			if a < b {
				x = clamp((b-a)/2, r.From, r.To)
			} else {
				x = r.From
			}
			b0 := a + x
			b1 := b + (isoWeight - x)
			diff := b0 - b1
			if diff < 0 {
				diff = -diff
			}
			if !best.found || diff < best.diff {
				best = bestSplit{uwToSource: uwToSource, isoToSrc: x, diff: diff, found: true}
			}
		}
	}

	return cs.materializePartition(best)
}

func (cs *CutterState) unclaimedWeight() int64 {
	return cs.hg.TotalWeight() - cs.sourceWeight - cs.targetWeight - cs.iso.TotalWeight()
}

func clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// materializePartition assigns every node to B0 or B1 given the chosen
// split: settled nodes follow their settlement, isolated nodes follow the
// extracted subset, and unclaimed nodes follow best.uwToSource.
func (cs *CutterState) materializePartition(best bestSplit) Partition {
	toSource := make(map[hypergraph.NodeID]bool)
	for _, u := range cs.iso.ExtractSubset(best.isoToSrc) {
		toSource[u] = true
	}

	var p Partition
	n := cs.hg.NumNodes()
	for i := 0; i < n; i++ {
		v := hypergraph.NodeID(i)
		switch {
		case cs.reach.IsSourceSettled(int(v)):
			p.B0 = append(p.B0, v)
		case cs.reach.IsTargetSettled(int(v)):
			p.B1 = append(p.B1, v)
		case cs.iso.IsIsolated(v):
			if toSource[v] {
				p.B0 = append(p.B0, v)
			} else {
				p.B1 = append(p.B1, v)
			}
		default: // unclaimed
			if best.uwToSource {
				p.B0 = append(p.B0, v)
			} else {
				p.B1 = append(p.B1, v)
			}
		}
	}
	return p
}

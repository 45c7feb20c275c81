package flowalgo

import (
	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/hypergraph"
)

// scalingCutoff is the threshold below which ScalingDinic falls back to an
// unscaled Dinic pass (spec §4.6.3).
const scalingCutoff = 3

// ScalingDinic wraps Dinic with a capacity-scaling schedule over a
// threshold Δ, set at construction to the largest power of two not
// exceeding the hypergraph's largest hyperedge capacity and halved after
// every phase until it drops to scalingCutoff. Δ only decides whether a
// phase runs: one runs when some source-piercing node has an incident
// hyperedge whose capacity and residual both meet Δ. BFS and DFS never
// filter hyperedges by Δ; every phase that runs is an unscaled Dinic run to
// completion.
type ScalingDinic struct {
	inner *Dinic
	delta int64
}

// NewScalingDinic allocates a ScalingDinic sized for a hypergraph with n
// nodes and the given maximum hyperedge capacity.
func NewScalingDinic(n int, maxHyperedgeCapacity int64) *ScalingDinic {
	return &ScalingDinic{
		inner: NewDinic(n),
		delta: largestPowerOfTwoAtMost(maxHyperedgeCapacity),
	}
}

func largestPowerOfTwoAtMost(x int64) int64 {
	if x <= 1 {
		return 1
	}
	p := int64(1)
	for p*2 <= x {
		p *= 2
	}
	return p
}

// ExhaustFlow halves Δ down to scalingCutoff, running the wrapped Dinic's
// ExhaustFlow in each phase whose phaseHasAugmentingPath probe succeeds,
// then finishes with one more plain Dinic run. No phase excludes
// hyperedges below Δ from the search.
func (a *ScalingDinic) ExhaustFlow(cs *cutter.CutterState, upperFlowBound int64) (bool, error) {
	hg := cs.Hypergraph()
	for a.delta > scalingCutoff {
		if !a.phaseHasAugmentingPath(hg, cs) {
			a.delta /= 2
			continue
		}
		hasCut, err := a.inner.ExhaustFlow(cs, upperFlowBound)
		if err != nil || hasCut && cs.FlowValue() >= upperFlowBound {
			return hasCut, err
		}
		a.delta /= 2
	}
	return a.inner.ExhaustFlow(cs, upperFlowBound)
}

// phaseHasAugmentingPath is a cheap probe: does any source-piercing node
// have an incident hyperedge meeting the current threshold with positive
// residual toward an unsaturated neighbor? Used only to decide whether to
// spend a full Dinic phase at this Δ or halve immediately.
func (a *ScalingDinic) phaseHasAugmentingPath(hg *hypergraph.Hypergraph, cs *cutter.CutterState) bool {
	for _, s := range cs.SourcePiercingNodes() {
		begin, end := hg.IncidentRange(s)
		for inc := begin; inc < end; inc++ {
			e := hg.IncidenceHyperedge(inc)
			if hg.Capacity(e) < a.delta || hg.ResidualCapacity(e) < a.delta {
				continue
			}
			return true
		}
	}
	return false
}

// GrowFlowOrSourceReachable delegates to the wrapped Dinic; Δ plays no part.
func (a *ScalingDinic) GrowFlowOrSourceReachable(cs *cutter.CutterState) (int64, error) {
	return a.inner.GrowFlowOrSourceReachable(cs)
}

// GrowReachable delegates to the wrapped Dinic.
func (a *ScalingDinic) GrowReachable(cs *cutter.CutterState) error {
	return a.inner.GrowReachable(cs)
}

package flowalgo

import (
	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/queue"
	"github.com/hyperflowcutter/whfc/reachable"
)

// BidirectionalDinic grows layered BFS frontiers from the source-piercing
// and target-piercing sets in the same phase, always expanding whichever
// frontier currently holds fewer unprocessed nodes, until the two frontiers
// meet (spec §4.6.2). Meeting only decides whether an augmenting path is
// worth looking for this phase; the actual layering and DFS blocking-flow
// pass that routes flow is still Dinic's own forward-only pass, reused
// as-is so the already-verified bottleneck/cursor machinery in dinic.go
// never has to reason about a backward-discovered segment of a path.
type BidirectionalDinic struct {
	dinic *Dinic
	back  *queue.LayeredQueue[hypergraph.NodeID]
}

// NewBidirectionalDinic allocates a BidirectionalDinic sized for a
// hypergraph with n nodes.
func NewBidirectionalDinic(n int) *BidirectionalDinic {
	return &BidirectionalDinic{
		dinic: NewDinic(n),
		back:  queue.NewLayeredQueue[hypergraph.NodeID](n),
	}
}

// ExhaustFlow alternates a balanced meet-in-the-middle reachability check
// with Dinic's own forward BFS/DFS blocking-flow pass until the target side
// becomes unreachable or the flow bound is reached.
func (a *BidirectionalDinic) ExhaustFlow(cs *cutter.CutterState, upperFlowBound int64) (bool, error) {
	reach := a.dinic.distanceReach(cs)
	hg := cs.Hypergraph()

	for {
		if cs.FlowValue() >= upperFlowBound {
			return false, nil
		}
		if !a.frontiersMeet(hg, reach, cs) {
			return true, nil
		}
		if !a.dinic.RunBFSPhase(cs) {
			return true, nil
		}
		if done, err := a.dinic.DrainBlockingFlow(cs, upperFlowBound); done || err != nil {
			return false, err
		}
	}
}

// GrowFlowOrSourceReachable delegates to the wrapped Dinic: the balancing
// this type adds only pays off across repeated ExhaustFlow phases, not a
// single augmenting attempt.
func (a *BidirectionalDinic) GrowFlowOrSourceReachable(cs *cutter.CutterState) (int64, error) {
	return a.dinic.GrowFlowOrSourceReachable(cs)
}

// GrowReachable delegates to the wrapped Dinic.
func (a *BidirectionalDinic) GrowReachable(cs *cutter.CutterState) error {
	return a.dinic.GrowReachable(cs)
}

// frontiersMeet runs a layer at a time from whichever side (source or
// target) currently has the smaller unprocessed frontier, stopping as soon
// as one side's expansion lands on a node the other side already claimed.
// Both reachable-set windows are reset to empty before returning, so the
// subsequent RunBFSPhase call starts from a clean slate exactly as it would
// on a plain Dinic's first phase.
func (a *BidirectionalDinic) frontiersMeet(hg *hypergraph.Hypergraph, reach *reachable.Distance, cs *cutter.CutterState) bool {
	fq := a.dinic.queue
	bq := a.back
	fq.Clear()
	bq.Clear()

	for _, s := range cs.SourcePiercingNodes() {
		fq.Push(s)
	}
	fq.FinishNextLayer()
	reach.StartNextSourceLayer()

	for _, t := range cs.TargetPiercingNodes() {
		bq.Push(t)
	}
	bq.FinishNextLayer()
	reach.StartNextTargetLayer()

	met := false
	for !met && (!fq.Empty() || !bq.Empty()) {
		expandForward := !fq.Empty() && (bq.Empty() || fq.Len() <= bq.Len())
		if expandForward {
			met = a.drainForwardLayer(hg, reach)
		} else {
			met = a.drainBackwardLayer(hg, reach)
		}
	}

	reach.ResetSourceReachableToSource()
	reach.ResetTargetReachableToTarget()
	return met
}

// drainForwardLayer processes every node currently queued in the forward
// frontier, discovering new source-reachable nodes one hop further out, and
// reports whether any discovered node is already target-reachable.
func (a *BidirectionalDinic) drainForwardLayer(hg *hypergraph.Hypergraph, reach *reachable.Distance) bool {
	fq := a.dinic.queue
	met := false
	for remaining := fq.Len(); remaining > 0; remaining-- {
		u := fq.Pop()
		begin, end := hg.IncidentRange(u)
		for inc := begin; inc < end; inc++ {
			e := hg.IncidenceHyperedge(inc)
			for _, v := range hg.PinsOf(e) {
				if v == u || reach.IsSourceReachableUnsafe(int(v)) {
					continue
				}
				if hg.ResidualCapacityPath(u, e, v) <= 0 {
					continue
				}
				if reach.IsTargetSettled(int(v)) || reach.IsTargetReachableUnsafe(int(v)) {
					met = true
					continue
				}
				reach.SetSourceReachable(int(v))
				fq.Push(v)
			}
		}
	}
	reach.FinishSourceLayer()
	if !met && !fq.CurrentLayerEmpty() {
		fq.FinishNextLayer()
		reach.StartNextSourceLayer()
	}
	return met
}

// drainBackwardLayer mirrors drainForwardLayer, walking the residual graph
// in reverse (v is a valid predecessor of u along (v,e,u) whenever
// ResidualCapacityPath(v,e,u) is positive) to grow target-reachability.
func (a *BidirectionalDinic) drainBackwardLayer(hg *hypergraph.Hypergraph, reach *reachable.Distance) bool {
	bq := a.back
	met := false
	for remaining := bq.Len(); remaining > 0; remaining-- {
		u := bq.Pop()
		begin, end := hg.IncidentRange(u)
		for inc := begin; inc < end; inc++ {
			e := hg.IncidenceHyperedge(inc)
			for _, v := range hg.PinsOf(e) {
				if v == u || reach.IsTargetReachableUnsafe(int(v)) {
					continue
				}
				if hg.ResidualCapacityPath(v, e, u) <= 0 {
					continue
				}
				if reach.IsSourceSettled(int(v)) || reach.IsSourceReachableUnsafe(int(v)) {
					met = true
					continue
				}
				reach.SetTargetReachable(int(v))
				bq.Push(v)
			}
		}
	}
	reach.FinishTargetLayer()
	if !met && !bq.CurrentLayerEmpty() {
		bq.FinishNextLayer()
		reach.StartNextTargetLayer()
	}
	return met
}

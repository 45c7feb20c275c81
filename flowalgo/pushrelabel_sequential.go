package flowalgo

import (
	"math"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/reachable"
)

// relabelAlpha/relabelBeta set the global-relabel work threshold
// (alpha*N + 2p + m)/beta from spec §4.6.4.
const (
	relabelAlpha = 6
	relabelBeta  = 5
)

// SequentialPushRelabel implements push-relabel directly over the
// FlowHypergraph's (u,e,v) triples rather than literally materializing the
// in-node/out-node expansion: ResidualCapacityPath(u,e,v) already collapses
// a hyperedge traversal's two hops (u -> e_in -> e_out -> v) into one call
// with the combined residual, so a single per-hypernode level with the
// ordinary push-relabel admissibility rule (level(u) == level(v)+1) is
// sufficient — the auxiliary e_in/e_out levels the expansion would track
// separately never need their own state. Recorded as an open design
// decision in the project's grounding notes.
type SequentialPushRelabel struct {
	level  []int
	excess []int64
	active []bool
	queue  []hypergraph.NodeID

	workSinceRelabel int
	relabelThreshold int
}

// NewSequentialPushRelabel allocates state sized for a hypergraph with n
// nodes, m hyperedges, and p total pins.
func NewSequentialPushRelabel(n, m, p int) *SequentialPushRelabel {
	threshold := (relabelAlpha*n + 2*p + m) / relabelBeta
	if threshold < 1 {
		threshold = 1
	}
	return &SequentialPushRelabel{
		level:            make([]int, n),
		excess:           make([]int64, n),
		active:           make([]bool, n),
		relabelThreshold: threshold,
	}
}

func (a *SequentialPushRelabel) bitsetReach(cs *cutter.CutterState) *reachable.Bitset {
	b, ok := cs.Reach().(*reachable.Bitset)
	if !ok {
		panic("flowalgo: SequentialPushRelabel requires a CutterState built with reachable.Bitset")
	}
	return b
}

// fixSourceLevels pins every source-piercing node's level at n (higher than
// any level a relabel can legitimately produce for the n actual nodes),
// matching classical push-relabel's "source height = N" initialization so
// discharge never treats pushing back into the source as admissible except
// to undo flow it just pushed forward.
func (a *SequentialPushRelabel) fixSourceLevels(hg *hypergraph.Hypergraph, cs *cutter.CutterState) {
	n := hg.NumNodes()
	for _, s := range cs.SourcePiercingNodes() {
		a.level[s] = n
	}
}

func (a *SequentialPushRelabel) reset(n int) {
	for i := 0; i < n; i++ {
		a.level[i] = 0
		a.excess[i] = 0
		a.active[i] = false
	}
	a.queue = a.queue[:0]
	a.workSinceRelabel = 0
}

// ExhaustFlow runs findMinCuts to completion: saturate the source-piercing
// arcs, discharge active nodes (with periodic global relabeling) until none
// remain or the flow bound is hit, then derives the source-side residual
// reachability used for border/cut extraction (target-side reachability is
// not derived).
func (a *SequentialPushRelabel) ExhaustFlow(cs *cutter.CutterState, upperFlowBound int64) (bool, error) {
	reach := a.bitsetReach(cs)
	hg := cs.Hypergraph()
	a.reset(hg.NumNodes())
	a.fixSourceLevels(hg, cs)

	if err := a.saturateSourceEdges(hg, reach, cs); err != nil {
		return false, err
	}

	for len(a.queue) > 0 {
		if cs.FlowValue()+a.totalTargetExcess(cs) >= upperFlowBound {
			return false, nil
		}
		u := a.popActive()
		if err := a.discharge(hg, reach, u); err != nil {
			return false, err
		}
		a.workSinceRelabel++
		if a.workSinceRelabel >= a.relabelThreshold {
			a.globalRelabel(hg, cs)
			a.workSinceRelabel = 0
		}
	}

	cs.SetFlowValue(cs.FlowValue() + a.totalTargetExcess(cs))
	a.deriveSourceSideCut(hg, reach, cs)
	return true, nil
}

// GrowFlowOrSourceReachable attempts to push flow up to one more unit than
// currently committed; if the discharge loop finds no improvement, the
// residual-reachability pass it always runs at the end is all the caller
// needs.
func (a *SequentialPushRelabel) GrowFlowOrSourceReachable(cs *cutter.CutterState) (int64, error) {
	before := cs.FlowValue()
	if _, err := a.ExhaustFlow(cs, before+1); err != nil {
		return 0, err
	}
	return cs.FlowValue() - before, nil
}

// GrowReachable derives source-side residual reachability without
// attempting to push any flow.
func (a *SequentialPushRelabel) GrowReachable(cs *cutter.CutterState) error {
	reach := a.bitsetReach(cs)
	hg := cs.Hypergraph()
	a.reset(hg.NumNodes())
	a.fixSourceLevels(hg, cs)
	a.deriveSourceSideCut(hg, reach, cs)
	return nil
}

func (a *SequentialPushRelabel) totalTargetExcess(cs *cutter.CutterState) int64 {
	var total int64
	for _, t := range cs.TargetPiercingNodes() {
		total += a.excess[t]
	}
	return total
}

func (a *SequentialPushRelabel) activate(reach *reachable.Bitset, v hypergraph.NodeID) {
	if reach.IsSourceSettled(int(v)) || reach.IsTargetSettled(int(v)) {
		return
	}
	if a.active[v] {
		return
	}
	a.active[v] = true
	a.queue = append(a.queue, v)
}

func (a *SequentialPushRelabel) popActive() hypergraph.NodeID {
	v := a.queue[0]
	a.queue = a.queue[1:]
	a.active[v] = false
	return v
}

// saturateSourceEdges pushes as much flow as the residual graph allows from
// every source-piercing node directly to its neighbors, seeding the active
// queue with whichever neighbors received excess.
func (a *SequentialPushRelabel) saturateSourceEdges(hg *hypergraph.Hypergraph, reach *reachable.Bitset, cs *cutter.CutterState) error {
	for _, s := range cs.SourcePiercingNodes() {
		begin, end := hg.IncidentRange(s)
		for inc := begin; inc < end; inc++ {
			e := hg.IncidenceHyperedge(inc)
			for _, v := range hg.PinsOf(e) {
				if v == s {
					continue
				}
				r := hg.ResidualCapacityPath(s, e, v)
				if r <= 0 {
					continue
				}
				if err := hg.RouteFlow(s, e, v, r); err != nil {
					return err
				}
				a.excess[v] += r
				a.activate(reach, v)
			}
		}
	}
	return nil
}

// discharge repeatedly scans u's incident hyperedges, pushing u's excess
// along every admissible, residual-positive arc, until the excess is gone.
// After a scan that pushes nothing, u is relabeled to one more than the
// lowest level among its residual-positive neighbors; if it has none at
// all, discharge returns with the excess still on u (a sign, once global
// relabeling has run, that u cannot reach the target side).
func (a *SequentialPushRelabel) discharge(hg *hypergraph.Hypergraph, reach *reachable.Bitset, u hypergraph.NodeID) error {
	for a.excess[u] > 0 {
		begin, end := hg.IncidentRange(u)
		progressed := false
		minLevel := math.MaxInt
		for inc := begin; inc < end && a.excess[u] > 0; inc++ {
			e := hg.IncidenceHyperedge(inc)
			for _, v := range hg.PinsOf(e) {
				if v == u {
					continue
				}
				r := hg.ResidualCapacityPath(u, e, v)
				if r <= 0 {
					continue
				}
				if a.level[v] < minLevel {
					minLevel = a.level[v]
				}
				if a.level[u] != a.level[v]+1 {
					continue
				}
				delta := a.excess[u]
				if r < delta {
					delta = r
				}
				if err := hg.RouteFlow(u, e, v, delta); err != nil {
					return err
				}
				a.excess[u] -= delta
				wasZero := a.excess[v] == 0
				a.excess[v] += delta
				if wasZero {
					a.activate(reach, v)
				}
				progressed = true
				if a.excess[u] == 0 {
					break
				}
			}
		}
		if a.excess[u] == 0 {
			return nil
		}
		if !progressed {
			if minLevel == math.MaxInt {
				return nil
			}
			a.level[u] = minLevel + 1
		}
	}
	return nil
}

// globalRelabel runs a reverse BFS from the target-piercing set over
// residual-positive arcs, assigning every reachable node its exact hop
// distance to the target side.
func (a *SequentialPushRelabel) globalRelabel(hg *hypergraph.Hypergraph, cs *cutter.CutterState) {
	n := hg.NumNodes()
	visited := make([]bool, n)
	for _, s := range cs.SourcePiercingNodes() {
		visited[s] = true // fixed at level n; never reassigned by this BFS
	}
	queue := append([]hypergraph.NodeID(nil), cs.TargetPiercingNodes()...)
	for _, t := range queue {
		visited[t] = true
		a.level[t] = 0
	}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		begin, end := hg.IncidentRange(u)
		for inc := begin; inc < end; inc++ {
			e := hg.IncidenceHyperedge(inc)
			for _, v := range hg.PinsOf(e) {
				if v == u || visited[v] {
					continue
				}
				if hg.ResidualCapacityPath(v, e, u) <= 0 {
					continue
				}
				visited[v] = true
				a.level[v] = a.level[u] + 1
				queue = append(queue, v)
			}
		}
	}
}

// deriveSourceSideCut performs a forward BFS from the source-piercing set
// over the residual graph, tagging visited nodes source-reachable. Nodes
// still holding positive excess are seeded into the frontier even without a
// direct residual arc from a piercing node, per the preimage rule in spec
// §4.6.4.
func (a *SequentialPushRelabel) deriveSourceSideCut(hg *hypergraph.Hypergraph, reach *reachable.Bitset, cs *cutter.CutterState) {
	reach.ResetSourceReachableToSource()
	var queue []hypergraph.NodeID
	for _, s := range cs.SourcePiercingNodes() {
		if !reach.IsSourceReachable(int(s)) {
			reach.MarkSourceReachable(int(s))
			queue = append(queue, s)
		}
	}
	for v := 0; v < hg.NumNodes(); v++ {
		if a.excess[v] > 0 && !reach.IsSourceReachable(v) {
			reach.MarkSourceReachable(v)
			queue = append(queue, hypergraph.NodeID(v))
		}
	}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		begin, end := hg.IncidentRange(u)
		for inc := begin; inc < end; inc++ {
			e := hg.IncidenceHyperedge(inc)
			for _, v := range hg.PinsOf(e) {
				if v == u || reach.IsSourceReachable(int(v)) {
					continue
				}
				if hg.ResidualCapacityPath(u, e, v) <= 0 {
					continue
				}
				reach.MarkSourceReachable(int(v))
				queue = append(queue, v)
			}
		}
	}
}

// deriveTargetSideCut mirrors deriveSourceSideCut, walking the residual
// graph in reverse from the target-piercing set.
func (a *SequentialPushRelabel) deriveTargetSideCut(hg *hypergraph.Hypergraph, reach *reachable.Bitset, cs *cutter.CutterState) {
	reach.ResetTargetReachableToTarget()
	var queue []hypergraph.NodeID
	for _, t := range cs.TargetPiercingNodes() {
		if !reach.IsTargetReachable(int(t)) {
			reach.MarkTargetReachable(int(t))
			queue = append(queue, t)
		}
	}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		begin, end := hg.IncidentRange(u)
		for inc := begin; inc < end; inc++ {
			e := hg.IncidenceHyperedge(inc)
			for _, v := range hg.PinsOf(e) {
				if v == u || reach.IsTargetReachable(int(v)) {
					continue
				}
				if hg.ResidualCapacityPath(v, e, u) <= 0 {
					continue
				}
				reach.MarkTargetReachable(int(v))
				queue = append(queue, v)
			}
		}
	}
}

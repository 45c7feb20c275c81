package cutter

import (
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/isolated"
	"github.com/hyperflowcutter/whfc/metrics"
)

// ReachableNodes is the subset of reachable.Distance's and reachable.Bitset's
// APIs that CutterState needs: settle/reach queries plus the two O(1)-ish
// reset and direction-flip operations. Either concrete type satisfies it, so
// CutterState is agnostic to which ReachableSets variant the chosen
// FlowAlgorithm wants (spec §4.2).
type ReachableNodes interface {
	Reset()
	SettleSource(v int)
	SettleTarget(v int)
	IsSourceSettled(v int) bool
	IsTargetSettled(v int) bool
	IsSourceReachable(v int) bool
	IsTargetReachable(v int) bool
	ResetSourceReachableToSource()
	ResetTargetReachableToTarget()
	ClearReachable(v int)
	FlipDirection()
}

// CutterState is the mutable state of one findBalancedCut call: flow value,
// view direction, piercing sets, reachability, cut/border collections, and
// the isolated-nodes tracker (spec §4.5).
type CutterState struct {
	hg    *hypergraph.Hypergraph
	reach ReachableNodes
	iso   *isolated.Nodes
	wMax  int64

	viewDirection bool

	sourcePiercing []hypergraph.NodeID
	targetPiercing []hypergraph.NodeID

	sourceWeight int64
	targetWeight int64

	inCut   []bool
	cutList []hypergraph.HyperedgeID

	inBorder []bool
	border   []hypergraph.NodeID

	hasSourcePin []bool // hyperedge currently has ≥1 settled source pin
	hasTargetPin []bool // hyperedge currently has ≥1 settled target pin

	flowValue               int64
	hasCut                  bool
	augmentingPathAvailable bool

	trackedMoves []move // settle log for most-balanced-cut replay

	metrics     *metrics.Metrics
	metricsAlgo string
}

// move records one settle performed during MBMC exploration so the best
// sequence found can be replayed against a fresh snapshot.
type move struct {
	node     hypergraph.NodeID
	toSource bool
}

// New builds a CutterState bound to hg and reach, with balance threshold
// wMax applying independently to both blocks.
func New(hg *hypergraph.Hypergraph, reach ReachableNodes, wMax int64) *CutterState {
	n := hg.NumNodes()
	m := hg.NumHyperedges()
	return &CutterState{
		hg:           hg,
		reach:        reach,
		iso:          isolated.New(hg, wMax),
		wMax:         wMax,
		inCut:        make([]bool, m),
		inBorder:     make([]bool, n),
		hasSourcePin: make([]bool, m),
		hasTargetPin: make([]bool, m),
	}
}

// Reset clears all per-call state (flow, reachability, cut, border,
// isolated nodes, move log) for reuse across findBalancedCut calls, keeping
// the bound hypergraph and reachable-set backing arrays.
func (cs *CutterState) Reset() {
	cs.hg.Reset()
	cs.reach.Reset()
	cs.iso.Reset()
	cs.viewDirection = false
	cs.sourcePiercing = cs.sourcePiercing[:0]
	cs.targetPiercing = cs.targetPiercing[:0]
	cs.sourceWeight = 0
	cs.targetWeight = 0
	for i := range cs.inCut {
		cs.inCut[i] = false
	}
	cs.cutList = cs.cutList[:0]
	for i := range cs.inBorder {
		cs.inBorder[i] = false
	}
	cs.border = cs.border[:0]
	for i := range cs.hasSourcePin {
		cs.hasSourcePin[i] = false
		cs.hasTargetPin[i] = false
	}
	cs.flowValue = 0
	cs.hasCut = false
	cs.augmentingPathAvailable = false
	cs.trackedMoves = cs.trackedMoves[:0]
}

// FlowValue returns the current flow value pushed between the piercing sets.
func (cs *CutterState) FlowValue() int64 { return cs.flowValue }

// SetFlowValue is called by FlowAlgorithm after it augments flow.
func (cs *CutterState) SetFlowValue(f int64) { cs.flowValue = f }

// HasCut reports whether the last exhaustFlow call found a cut (target
// unreachable in the residual graph).
func (cs *CutterState) HasCut() bool { return cs.hasCut }

// SetHasCut is set by the driver/flow algorithm.
func (cs *CutterState) SetHasCut(v bool) { cs.hasCut = v }

// AugmentingPathAvailable reports whether the last piercing round left an
// augmenting path open between the piercing sets.
func (cs *CutterState) AugmentingPathAvailable() bool { return cs.augmentingPathAvailable }

// SetAugmentingPathAvailable is set by the driver/flow algorithm.
func (cs *CutterState) SetAugmentingPathAvailable(v bool) { cs.augmentingPathAvailable = v }

// Hypergraph exposes the bound FlowHypergraph for FlowAlgorithm use.
func (cs *CutterState) Hypergraph() *hypergraph.Hypergraph { return cs.hg }

// Reach exposes the bound ReachableSets implementation.
func (cs *CutterState) Reach() ReachableNodes { return cs.reach }

// Isolated exposes the bound IsolatedNodes tracker.
func (cs *CutterState) Isolated() *isolated.Nodes { return cs.iso }

// SetMetrics attaches a counter sink and the algorithm label to tag its
// increments with; snapshot_tester is the only caller that wants this, so a
// CutterState with no SetMetrics call just skips every increment (Metrics'
// Inc* methods are nil-safe).
func (cs *CutterState) SetMetrics(m *metrics.Metrics, algorithm string) {
	cs.metrics = m
	cs.metricsAlgo = algorithm
}

// Metrics exposes the attached counter sink (possibly nil) and its
// algorithm label, for FlowAlgorithm implementations to report discharge,
// global-relabel, saturate, and source-cut counts.
func (cs *CutterState) Metrics() (*metrics.Metrics, string) { return cs.metrics, cs.metricsAlgo }

// ViewDirection reports the current view-direction bit.
func (cs *CutterState) ViewDirection() bool { return cs.viewDirection }

// SourceWeight / TargetWeight return the total node weight currently
// assigned to each side.
func (cs *CutterState) SourceWeight() int64 { return cs.sourceWeight }
func (cs *CutterState) TargetWeight() int64 { return cs.targetWeight }

// AddSourcePiercingNode / AddTargetPiercingNode register v as a piercing
// node for the respective side, without settling it — the caller (driver or
// Piercer) is responsible for calling SettleNode separately.
func (cs *CutterState) AddSourcePiercingNode(v hypergraph.NodeID) {
	cs.sourcePiercing = append(cs.sourcePiercing, v)
}
func (cs *CutterState) AddTargetPiercingNode(v hypergraph.NodeID) {
	cs.targetPiercing = append(cs.targetPiercing, v)
}

// SourcePiercingNodes / TargetPiercingNodes expose the current piercing sets.
func (cs *CutterState) SourcePiercingNodes() []hypergraph.NodeID { return cs.sourcePiercing }
func (cs *CutterState) TargetPiercingNodes() []hypergraph.NodeID { return cs.targetPiercing }

// ClearPiercingNodes empties both piercing sets, keeping backing arrays.
func (cs *CutterState) ClearPiercingNodes() {
	cs.sourcePiercing = cs.sourcePiercing[:0]
	cs.targetPiercing = cs.targetPiercing[:0]
}

// Border returns the current border node set (candidates for piercing).
func (cs *CutterState) Border() []hypergraph.NodeID { return cs.border }

// IsBorder reports whether v is currently a border candidate.
func (cs *CutterState) IsBorder(v hypergraph.NodeID) bool { return cs.inBorder[v] }

// CutEdges returns the current cut hyperedge set.
func (cs *CutterState) CutEdges() []hypergraph.HyperedgeID { return cs.cutList }

// IsCutEdge reports whether e is currently in the cut.
func (cs *CutterState) IsCutEdge(e hypergraph.HyperedgeID) bool { return cs.inCut[e] }

// canBeSettled reports whether v is still eligible to join either side: not
// already source-settled, target-settled, or isolated.
func (cs *CutterState) canBeSettled(v hypergraph.NodeID) bool {
	nv := int(v)
	return !cs.reach.IsSourceSettled(nv) && !cs.reach.IsTargetSettled(nv) && !cs.iso.IsIsolated(v)
}

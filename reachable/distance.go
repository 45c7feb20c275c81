package reachable

import "math"

// distance sentinels. sourceSettledDistance/targetSettledDistance mark
// permanently-settled nodes/hyperedges; they never fall inside a layer
// window and survive rebases untouched.
const (
	unreached             int64 = math.MaxInt64
	sourceSettledDistance int64 = math.MaxInt64 - 1
	targetSettledDistance int64 = math.MaxInt64 - 2
	rebaseThreshold       int64 = math.MaxInt64 - 1_000_000
)

// Distance implements the distance-based ReachableSets variant over both
// nodes and hyperedges, sharing one monotonic generation counter so a single
// BFS layer index means the same thing for nodes and hyperedges alike.
//
// Hyperedges carry two distance arrays, inDist and outDist, corresponding to
// the two semantic sub-arcs Dinic's layered BFS walks: the flow-sending
// fan-in and the all-pins fan-out (spec §4.6.1).
type Distance struct {
	nodeDist []int64
	inDist   []int64 // flow-sending-pins reachability per hyperedge
	outDist  []int64 // all-pins reachability per hyperedge

	generation int64

	sBase, sUpper int64 // current source layer window
	tBase, tUpper int64 // current target layer window
}

// NewDistance allocates a Distance set for n nodes and m hyperedges, with
// every node/hyperedge unreached.
func NewDistance(n, m int) *Distance {
	d := &Distance{
		nodeDist: make([]int64, n),
		inDist:   make([]int64, m),
		outDist:  make([]int64, m),
	}
	d.resetAll()
	return d
}

func (d *Distance) resetAll() {
	for i := range d.nodeDist {
		d.nodeDist[i] = unreached
	}
	for i := range d.inDist {
		d.inDist[i] = unreached
		d.outDist[i] = unreached
	}
	d.generation = 0
	d.sBase, d.sUpper = 0, 0
	d.tBase, d.tUpper = 0, 0
}

// Reset clears all reachability state back to "everything unreached", for
// reuse across findBalancedCut calls.
func (d *Distance) Reset() { d.resetAll() }

// SettleSource marks node v permanently source-settled (v ∈ S).
func (d *Distance) SettleSource(v int) { d.nodeDist[v] = sourceSettledDistance }

// SettleTarget marks node v permanently target-settled (v ∈ T).
func (d *Distance) SettleTarget(v int) { d.nodeDist[v] = targetSettledDistance }

// IsSourceSettled reports v ∈ S.
func (d *Distance) IsSourceSettled(v int) bool { return d.nodeDist[v] == sourceSettledDistance }

// IsTargetSettled reports v ∈ T.
func (d *Distance) IsTargetSettled(v int) bool { return d.nodeDist[v] == targetSettledDistance }

// IsSourceReachable reports v ∈ SR: v ∈ S, or its distance falls in the
// current source layer window.
func (d *Distance) IsSourceReachable(v int) bool {
	dv := d.nodeDist[v]
	return dv == sourceSettledDistance || (dv >= d.sBase && dv < d.sUpper)
}

// IsSourceReachableUnsafe is IsSourceReachable without the upper-bound
// check: valid only while the caller has not yet "locked in" the current
// layer (i.e. mid-BFS, before FinishSourceLayer). Saves a comparison on the
// hottest path of layered BFS.
func (d *Distance) IsSourceReachableUnsafe(v int) bool {
	dv := d.nodeDist[v]
	return dv == sourceSettledDistance || dv >= d.sBase
}

// IsTargetReachable reports v ∈ TR.
func (d *Distance) IsTargetReachable(v int) bool {
	dv := d.nodeDist[v]
	return dv == targetSettledDistance || (dv >= d.tBase && dv < d.tUpper)
}

// IsTargetReachableUnsafe mirrors IsSourceReachableUnsafe for the target side.
func (d *Distance) IsTargetReachableUnsafe(v int) bool {
	dv := d.nodeDist[v]
	return dv == targetSettledDistance || dv >= d.tBase
}

// NodeDistance returns the raw distance label of v (for piercing heuristics
// that rank by hop distance from the cut).
func (d *Distance) NodeDistance(v int) int64 { return d.nodeDist[v] }

// CurrentSourceLayer returns the distance value assigned to nodes in the
// source layer currently being (or most recently) filled — the value
// SetSourceReachable would assign right now.
func (d *Distance) CurrentSourceLayer() int64 { return d.sUpper }

// ClearReachable forces v back to unreached, regardless of any settled or
// layered state. Used when v is discovered to be isolated and must leave
// both SR and TR (spec §4.4): an isolated node carries no flow between
// sides, so neither reachable set may still claim it.
func (d *Distance) ClearReachable(v int) { d.nodeDist[v] = unreached }

// SetSourceReachable assigns v the current (open) source layer distance,
// marking it newly source-reachable during BFS.
func (d *Distance) SetSourceReachable(v int) { d.nodeDist[v] = d.sUpper }

// SetTargetReachable assigns v the current (open) target layer distance.
func (d *Distance) SetTargetReachable(v int) { d.nodeDist[v] = d.tUpper }

// StartNextSourceLayer opens a new source BFS layer: bumps the generation
// counter and sets it as the new sUpper (the layer about to be filled).
// Call FinishSourceLayer once all nodes at this layer have been discovered.
func (d *Distance) StartNextSourceLayer() {
	d.bumpGeneration()
	d.sUpper = d.generation
}

// FinishSourceLayer closes the currently-open source layer: subsequent
// SetSourceReachable calls open a *new* layer one higher, and
// IsSourceReachable's upper-bound check now includes everything assigned so
// far.
func (d *Distance) FinishSourceLayer() { d.sBase = d.sUpper }

// StartNextTargetLayer / FinishTargetLayer mirror the source-side pair.
func (d *Distance) StartNextTargetLayer() {
	d.bumpGeneration()
	d.tUpper = d.generation
}
func (d *Distance) FinishTargetLayer() { d.tBase = d.tUpper }

func (d *Distance) bumpGeneration() {
	d.generation++
	if d.generation >= rebaseThreshold {
		d.rebase()
	}
}

// rebase renumbers every non-sentinel distance down to a small range when
// the generation counter nears overflow. O(n+m), extremely rare.
func (d *Distance) rebase() {
	base := d.generation - (d.sUpper - d.sBase) - (d.tUpper - d.tBase) - 2
	if base < 0 {
		base = 0
	}
	shift := func(v int64) int64 {
		if v == unreached || v == sourceSettledDistance || v == targetSettledDistance {
			return v
		}
		nv := v - base
		if nv < 0 {
			nv = 0
		}
		return nv
	}
	for i := range d.nodeDist {
		d.nodeDist[i] = shift(d.nodeDist[i])
	}
	for i := range d.inDist {
		d.inDist[i] = shift(d.inDist[i])
		d.outDist[i] = shift(d.outDist[i])
	}
	d.sBase -= base
	d.sUpper -= base
	d.tBase -= base
	d.tUpper -= base
	d.generation -= base
}

// ResetSourceReachableToSource shrinks SR to exactly S without touching
// T/TR: O(1), just moves the source layer window forward past everything
// currently reachable.
func (d *Distance) ResetSourceReachableToSource() {
	d.bumpGeneration()
	d.sBase = d.generation
	d.sUpper = d.generation
}

// ResetTargetReachableToTarget mirrors ResetSourceReachableToSource.
func (d *Distance) ResetTargetReachableToTarget() {
	d.bumpGeneration()
	d.tBase = d.generation
	d.tUpper = d.generation
}

// FlipDirection swaps the source/target roles across every field: an
// involution over observable state.
func (d *Distance) FlipDirection() {
	d.sBase, d.tBase = d.tBase, d.sBase
	d.sUpper, d.tUpper = d.tUpper, d.sUpper
	for i := range d.nodeDist {
		switch d.nodeDist[i] {
		case sourceSettledDistance:
			d.nodeDist[i] = targetSettledDistance
		case targetSettledDistance:
			d.nodeDist[i] = sourceSettledDistance
		}
	}
	for i := range d.inDist {
		d.inDist[i], d.outDist[i] = d.outDist[i], d.inDist[i]
	}
}

// --- hyperedge reachability (all-pins / flow-sending-pins) ---

// SetOutReachable marks hyperedge e reachable via its all-pins (bridge)
// sub-arc at the current source layer.
func (d *Distance) SetOutReachable(e int) { d.outDist[e] = d.sUpper }

// SetInReachable marks hyperedge e reachable via its flow-sending-pins
// sub-arc at the current source layer.
func (d *Distance) SetInReachable(e int) { d.inDist[e] = d.sUpper }

// IsAllPinsSourceReachable reports whether e's all-pins sub-arc was already
// discovered at or before the current source layer.
func (d *Distance) IsAllPinsSourceReachable(e int) bool {
	return d.outDist[e] != unreached && d.outDist[e] < d.sUpper
}

// AllPinsSourceReachableUnsafe drops the upper-bound check (valid only
// before FinishSourceLayer locks in the layer).
func (d *Distance) AllPinsSourceReachableUnsafe(e int) bool {
	return d.outDist[e] != unreached
}

// FlowSendingSourceReachable reports whether e's flow-sending sub-arc was
// already discovered.
func (d *Distance) FlowSendingSourceReachable(e int) bool {
	return d.inDist[e] != unreached
}

// OutDistanceAt / InDistanceAt expose raw labels for DFS admissibility
// checks ("outDistance[e] == dist(u)+1").
func (d *Distance) OutDistanceAt(e int) int64 { return d.outDist[e] }
func (d *Distance) InDistanceAt(e int) int64  { return d.inDist[e] }

package reachable

// Bitset implements the bitset-based ReachableSets variant: one timestamp
// per node, "reachable iff timestamp == current generation for that side".
// Simpler than Distance (no ordering, just membership), used where a flow
// algorithm only needs yes/no reachability tagging — SequentialPushRelabel's
// deriveSourceSideCut/deriveTargetSideCut BFS passes.
type Bitset struct {
	stamp        []uint32
	sourceGen    uint32
	targetGen    uint32
	sourceSettle uint32 // reserved stamp value meaning "permanently in S"
	targetSettle uint32 // reserved stamp value meaning "permanently in T"
}

// NewBitset allocates a Bitset reachability tracker for n nodes.
func NewBitset(n int) *Bitset {
	b := &Bitset{stamp: make([]uint32, n)}
	b.sourceSettle = 1
	b.targetSettle = 2
	b.sourceGen = 3
	b.targetGen = 4
	return b
}

// Reset clears all reachability state for reuse across findBalancedCut calls.
func (b *Bitset) Reset() {
	for i := range b.stamp {
		b.stamp[i] = 0
	}
	b.sourceGen = 3
	b.targetGen = 4
}

func (b *Bitset) SettleSource(v int) { b.stamp[v] = b.sourceSettle }
func (b *Bitset) SettleTarget(v int) { b.stamp[v] = b.targetSettle }

func (b *Bitset) IsSourceSettled(v int) bool { return b.stamp[v] == b.sourceSettle }
func (b *Bitset) IsTargetSettled(v int) bool { return b.stamp[v] == b.targetSettle }

func (b *Bitset) MarkSourceReachable(v int) { b.stamp[v] = b.sourceGen }
func (b *Bitset) MarkTargetReachable(v int) { b.stamp[v] = b.targetGen }

func (b *Bitset) IsSourceReachable(v int) bool {
	return b.stamp[v] == b.sourceSettle || b.stamp[v] == b.sourceGen
}
func (b *Bitset) IsTargetReachable(v int) bool {
	return b.stamp[v] == b.targetSettle || b.stamp[v] == b.targetGen
}

// ResetSourceReachableToSource shrinks SR to S in O(1) by advancing the
// source generation so that every previously SR-tagged (but not settled)
// node stops testing reachable.
func (b *Bitset) ResetSourceReachableToSource() {
	b.sourceGen += 2
	if b.sourceGen == b.sourceSettle || b.sourceGen == b.targetSettle || b.sourceGen == b.targetGen {
		b.sourceGen++
	}
}

// ResetTargetReachableToTarget mirrors ResetSourceReachableToSource.
func (b *Bitset) ResetTargetReachableToTarget() {
	b.targetGen += 2
	if b.targetGen == b.sourceSettle || b.targetGen == b.targetSettle || b.targetGen == b.sourceGen {
		b.targetGen++
	}
}

// ClearReachable forces v back to unreached/unsettled. Used when v is
// discovered to be isolated and must leave both SR and TR.
func (b *Bitset) ClearReachable(v int) { b.stamp[v] = 0 }

// FlipDirection swaps the source/target roles: an involution over
// observable state.
func (b *Bitset) FlipDirection() {
	b.sourceGen, b.targetGen = b.targetGen, b.sourceGen
	b.sourceSettle, b.targetSettle = b.targetSettle, b.sourceSettle
}

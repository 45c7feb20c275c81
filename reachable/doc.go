// Package reachable implements ReachableSets (spec §4.2, component C2): the
// per-node and per-hyperedge source/target reachability bookkeeping shared by
// every flow algorithm in package flowalgo.
//
// Two implementations exist, selected per flow algorithm, both giving O(1)
// resetSourceReachableToSource:
//
//   - Distance: a single monotonically increasing counter per node/hyperedge,
//     "reachable iff counter falls in the current [base, upperBound) window".
//     Used by the Dinic family, which already needs per-node distance labels
//     for layered BFS.
//   - Bitset: a timestamp-stamped boolean per node, "reachable iff
//     stamp == currentGeneration". Used by SequentialPushRelabel's
//     deriveSourceSideCut/deriveTargetSideCut, which only need a yes/no tag,
//     not an ordered distance.
//
// Both support FlipDirection (swap the source/target roles): O(1) for
// Bitset, O(n + m) for Distance, which rewrites every node and hyperedge
// label.
package reachable

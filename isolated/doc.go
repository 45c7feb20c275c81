// Package isolated implements IsolatedNodes (spec §4.4, component C4): the
// tracker for nodes whose every incident hyperedge has become "mixed" (has
// both a settled source pin and a settled target pin), and the subset-sum
// DP over their weights, compacted into an ordered list of summable ranges.
//
// The DP answers "can the isolated-node weights be split so that x of them
// land on the source side?" in O(1) per query (Summable) after each
// insertion does O(#ranges) work (UpdateDPTable), and ExtractSubset replays
// the witness chain to recover an actual subset in O(#chosen nodes).
package isolated

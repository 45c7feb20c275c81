// Command-less module root for HyperFlowCutter — a balanced s-t min-cut
// refinement system over weighted hypergraphs.
//
// The algorithmic core lives under:
//
//	hypergraph/ — pin/hyperedge storage, incidence ranges, view direction
//	reachable/  — BFS-layer and settle/reach tracking for the flow algorithms
//	queue/      — generic buffered work queues shared by flowalgo
//	isolated/   — isolated-node tracking and the subset-sum DP
//	cutter/     — CutterState: the mutable state of one findBalancedCut call
//	flowalgo/   — Dinic, BidirectionalDinic, sequential/parallel push-relabel
//	piercer/    — border-node piercing selection
//	hfc/        — the findBalancedCut driver and most-balanced-cut pass
//
// Supporting packages: hmetis/ (hMETIS + sidecar I/O), rng/ (seeded PRNG),
// config/ (layered parameter resolution), metrics/ (Prometheus counters),
// logging/ (structured logging). The three CLI entrypoints live under cmd/.
package whfc

// Package cutter implements CutterState (component C5): the per-call state
// of one findBalancedCut invocation — flow value, view direction, the two
// piercing-node sets, reachability over nodes and hyperedges, the cut and
// border collections, the isolated-nodes tracker, and the balance test and
// most-balanced-cut refinement that decide when a cut is good enough to
// hand back to the caller.
package cutter

// Package hypergraph provides the flow hypergraph data model: nodes with
// weights, hyperedges with capacities, pins binding nodes to hyperedges, and
// the residual-capacity/flow-routing primitives a max-flow engine needs.
//
// A hypergraph is built once via Builder and then reused across many
// findBalancedCut invocations (see package cutter / package hfc); only flow
// and pin ordering mutate between calls, and both are reset by Hypergraph.Reset.
//
// Storage is arena-style: pins and incidences live in flat slices indexed by
// PinIndex / IncidenceIndex, never behind pointers, so a clone is a few flat
// slice copies and resetting or iterating allocates nothing after
// construction. Each hyperedge owns a
// contiguous range of the global pins slice, split into three sub-ranges —
// sending, neutral, receiving — maintained by swap-on-cross (see RouteFlow).
//
// Complexity of the core operations:
//
//	ResidualCapacityPath(u,e,v) : O(|e|) (locating u's and v's pins scans e)
//	RouteFlow(u,e,v,Δ)          : O(|e|) for the pin lookups, plus a bounded
//	                              number of pin swaps
//	FlipViewDirection           : O(1)
//
// Errors returned by this package are sentinel values in errors.go, checked
// with errors.Is, per the project-wide error policy (see SPEC_FULL.md).
package hypergraph

// Package flowalgo implements FlowAlgorithm (component C6): the variants
// that incrementally grow flow between a CutterState's piercing sets and
// derive a minimum cut once no further augmenting path exists.
//
// All variants share the Algorithm interface (exhaustFlow,
// growFlowOrSourceReachable, growReachable, upperFlowBound). Augmenting-path
// variants (Dinic, BidirectionalDinic, ScalingDinic) walk the hypergraph's
// residual graph directly via Hypergraph.ResidualCapacityPath and RouteFlow;
// push-relabel variants (SequentialPushRelabel, ParallelPushRelabel) also
// operate directly on (u, e, v) pin triples through the same two calls,
// without expanding each hyperedge into in/out auxiliary nodes.
package flowalgo

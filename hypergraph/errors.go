package hypergraph

import "errors"

// Sentinel errors for the hypergraph package. Callers branch on these with
// errors.Is; messages are never matched as strings.
var (
	// ErrNodeOutOfRange indicates a NodeID outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("hypergraph: node id out of range")

	// ErrHyperedgeOutOfRange indicates a HyperedgeID outside [0, NumHyperedges).
	ErrHyperedgeOutOfRange = errors.New("hypergraph: hyperedge id out of range")

	// ErrSingletonHyperedge indicates a hyperedge was built with fewer than
	// two distinct pins; such hyperedges are rejected at load time per the
	// hMETIS input contract.
	ErrSingletonHyperedge = errors.New("hypergraph: hyperedge has fewer than two pins")

	// ErrNegativeWeight indicates a negative node weight or hyperedge capacity.
	ErrNegativeWeight = errors.New("hypergraph: negative weight or capacity")

	// ErrResidualExceeded is an InvariantViolation: RouteFlow was asked to
	// push more flow than residualCapacity(u,e,v) allows.
	ErrResidualExceeded = errors.New("hypergraph: route flow exceeds residual capacity")

	// ErrNotBuilt indicates an operation was attempted on a Builder that has
	// not yet been finalized with Build(), or on a Hypergraph obtained from
	// a failed Build().
	ErrNotBuilt = errors.New("hypergraph: hypergraph not built")

	// ErrPinNotFound indicates node v is not a pin of hyperedge e.
	ErrPinNotFound = errors.New("hypergraph: node is not a pin of hyperedge")
)

package flowalgo

import "github.com/hyperflowcutter/whfc/cutter"

// Algorithm is the shared contract every FlowAlgorithm variant implements
// (spec §4.6). The driver (package hfc) is generic over this interface; it
// never branches on which concrete variant it holds.
type Algorithm interface {
	// ExhaustFlow pushes augmenting flow from source-piercing nodes toward
	// target-piercing nodes until either the target becomes unreachable in
	// the residual graph (a min cut has been found — returns true) or
	// cs.FlowValue() reaches upperFlowBound.
	ExhaustFlow(cs *cutter.CutterState, upperFlowBound int64) (bool, error)

	// GrowFlowOrSourceReachable attempts one unit of augmenting-path
	// improvement; if none exists, it instead marks every node reachable
	// from the source-piercing set in the reachable-sets so the caller can
	// still derive a one-sided cut.
	GrowFlowOrSourceReachable(cs *cutter.CutterState) (int64, error)

	// GrowReachable propagates source-reachability without augmenting.
	GrowReachable(cs *cutter.CutterState) error
}

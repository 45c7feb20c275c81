package flowalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/flowalgo"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/reachable"
)

// diamond builds two parallel capacity-1 paths 0->1->3 and 0->2->3, giving a
// max s=0,t=3 flow of 2.
func diamond(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	b := hypergraph.NewBuilder(4, []int64{10, 10, 10, 10})
	b.AddHyperedge(1, []hypergraph.NodeID{0, 1})
	b.AddHyperedge(1, []hypergraph.NodeID{1, 3})
	b.AddHyperedge(1, []hypergraph.NodeID{0, 2})
	b.AddHyperedge(1, []hypergraph.NodeID{2, 3})
	h, err := b.Build()
	require.NoError(t, err)
	return h
}

func TestDinic_ExhaustFlow_DiamondMaxFlowIsTwo(t *testing.T) {
	h := diamond(t)
	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	cs := cutter.New(h, reach, 100)

	require.NoError(t, cs.SettleNode(0))
	cs.FlipViewDirection()
	require.NoError(t, cs.SettleNode(3))
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(0)
	cs.AddTargetPiercingNode(3)

	algo := flowalgo.NewDinic(h.NumNodes())
	hasCut, err := algo.ExhaustFlow(cs, 1000)
	require.NoError(t, err)
	require.True(t, hasCut)
	require.Equal(t, int64(2), cs.FlowValue())
}

func TestDinic_ExhaustFlow_SingleEdgeCappedAtCapacity(t *testing.T) {
	b := hypergraph.NewBuilder(2, []int64{10, 10})
	b.AddHyperedge(3, []hypergraph.NodeID{0, 1})
	h, err := b.Build()
	require.NoError(t, err)

	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	cs := cutter.New(h, reach, 100)
	require.NoError(t, cs.SettleNode(0))
	cs.FlipViewDirection()
	require.NoError(t, cs.SettleNode(1))
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(0)
	cs.AddTargetPiercingNode(1)

	algo := flowalgo.NewDinic(h.NumNodes())
	hasCut, err := algo.ExhaustFlow(cs, 1000)
	require.NoError(t, err)
	require.True(t, hasCut)
	require.Equal(t, int64(3), cs.FlowValue())
}

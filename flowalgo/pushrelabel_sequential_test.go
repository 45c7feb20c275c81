package flowalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/flowalgo"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/reachable"
)

func TestSequentialPushRelabel_ExhaustFlow_DiamondMaxFlowIsTwo(t *testing.T) {
	h := diamond(t)
	reach := reachable.NewBitset(h.NumNodes())
	cs := cutter.New(h, reach, 100)

	require.NoError(t, cs.SettleNode(0))
	cs.FlipViewDirection()
	require.NoError(t, cs.SettleNode(3))
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(0)
	cs.AddTargetPiercingNode(3)

	algo := flowalgo.NewSequentialPushRelabel(h.NumNodes(), h.NumHyperedges(), h.NumPins())
	hasCut, err := algo.ExhaustFlow(cs, 1000)
	require.NoError(t, err)
	require.True(t, hasCut)
	require.Equal(t, int64(2), cs.FlowValue())
}

func TestSequentialPushRelabel_ExhaustFlow_SingleEdgeCappedAtCapacity(t *testing.T) {
	b := hypergraph.NewBuilder(2, []int64{10, 10})
	b.AddHyperedge(3, []hypergraph.NodeID{0, 1})
	h, err := b.Build()
	require.NoError(t, err)
	reach := reachable.NewBitset(h.NumNodes())
	cs := cutter.New(h, reach, 100)
	require.NoError(t, cs.SettleNode(0))
	cs.FlipViewDirection()
	require.NoError(t, cs.SettleNode(1))
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(0)
	cs.AddTargetPiercingNode(1)

	algo := flowalgo.NewSequentialPushRelabel(h.NumNodes(), h.NumHyperedges(), h.NumPins())
	hasCut, err := algo.ExhaustFlow(cs, 1000)
	require.NoError(t, err)
	require.True(t, hasCut)
	require.Equal(t, int64(3), cs.FlowValue())
}

package flowalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/flowalgo"
	"github.com/hyperflowcutter/whfc/reachable"
)

func TestBidirectionalDinic_ExhaustFlow_DiamondMaxFlowIsTwo(t *testing.T) {
	h := diamond(t)
	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	cs := cutter.New(h, reach, 100)

	require.NoError(t, cs.SettleNode(0))
	cs.FlipViewDirection()
	require.NoError(t, cs.SettleNode(3))
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(0)
	cs.AddTargetPiercingNode(3)

	algo := flowalgo.NewBidirectionalDinic(h.NumNodes())
	hasCut, err := algo.ExhaustFlow(cs, 1000)
	require.NoError(t, err)
	require.True(t, hasCut)
	require.Equal(t, int64(2), cs.FlowValue())
}

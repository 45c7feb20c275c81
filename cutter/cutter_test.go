package cutter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/reachable"
)

// chain builds a 4-node path 0-1-2-3 via three binary hyperedges, all
// weight-1 nodes and capacity-1 edges.
func chain(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	b := hypergraph.NewBuilder(4, []int64{1, 1, 1, 1})
	b.AddHyperedge(1, []hypergraph.NodeID{0, 1})
	b.AddHyperedge(1, []hypergraph.NodeID{1, 2})
	b.AddHyperedge(1, []hypergraph.NodeID{2, 3})
	h, err := b.Build()
	require.NoError(t, err)
	return h
}

func newState(t *testing.T, h *hypergraph.Hypergraph, wMax int64) *cutter.CutterState {
	t.Helper()
	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	return cutter.New(h, reach, wMax)
}

func TestSettleNode_RejectsDoubleSettle(t *testing.T) {
	h := chain(t)
	cs := newState(t, h, 10)
	require.NoError(t, cs.SettleNode(0))
	require.ErrorIs(t, cs.SettleNode(0), cutter.ErrAlreadySettled)
	require.Equal(t, int64(1), cs.SourceWeight())
}

func TestAddToCut_RequiresSaturation(t *testing.T) {
	h := chain(t)
	cs := newState(t, h, 10)
	require.ErrorIs(t, cs.AddToCut(0), cutter.ErrNotSaturated)
}

func TestAddToCut_PopulatesBorder(t *testing.T) {
	h := chain(t)
	require.NoError(t, h.RouteFlow(0, 0, 1, 1)) // saturate hyperedge 0
	cs := newState(t, h, 10)
	require.NoError(t, cs.AddToCut(0))
	require.True(t, cs.IsCutEdge(0))
	require.ElementsMatch(t, []hypergraph.NodeID{0, 1}, cs.Border())

	require.NoError(t, cs.SettleNode(0))
	// 0 leaves the border once settled.
	require.False(t, cs.IsBorder(0))
}

func TestFlipViewDirection_IsInvolution(t *testing.T) {
	h := chain(t)
	cs := newState(t, h, 10)
	require.NoError(t, cs.SettleNode(0))
	before := cs.SourceWeight()

	cs.FlipViewDirection()
	require.Equal(t, int64(0), cs.SourceWeight())
	require.Equal(t, before, cs.TargetWeight())

	cs.FlipViewDirection()
	require.Equal(t, before, cs.SourceWeight())
	require.False(t, h.ViewDirection())
}

func TestIsBalanced_UnclaimedMassCanFitEitherSide(t *testing.T) {
	b := hypergraph.NewBuilder(4, []int64{6, 2, 2, 4})
	b.AddHyperedge(1, []hypergraph.NodeID{0, 1})
	b.AddHyperedge(1, []hypergraph.NodeID{0, 2})
	h, err := b.Build()
	require.NoError(t, err)

	cs := newState(t, h, 10)
	require.NoError(t, cs.SettleNode(0)) // sw=6, tw=0, uw=8, iso=0
	require.True(t, cs.IsBalanced())     // all of uw to the target side: 6<=10 / 0+8<=10
}

func TestIsBalanced_RejectsOverflowingSide(t *testing.T) {
	b := hypergraph.NewBuilder(2, []int64{11, 1})
	b.AddHyperedge(1, []hypergraph.NodeID{0, 1})
	h, err := b.Build()
	require.NoError(t, err)

	cs := newState(t, h, 10)
	require.NoError(t, cs.SettleNode(0)) // sw=11 > Wmax=10
	require.False(t, cs.IsBalanced())
}

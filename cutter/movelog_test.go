package cutter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/reachable"
)

func chainHypergraph(t *testing.T, n int, cap int64) *hypergraph.Hypergraph {
	t.Helper()
	weights := make([]int64, n)
	for i := range weights {
		weights[i] = 1
	}
	b := hypergraph.NewBuilder(n, weights)
	for i := 0; i < n-1; i++ {
		b.AddHyperedge(cap, []hypergraph.NodeID{hypergraph.NodeID(i), hypergraph.NodeID(i + 1)})
	}
	h, err := b.Build()
	require.NoError(t, err)
	return h
}

func TestMoveLog_TrackAndClear(t *testing.T) {
	h := chainHypergraph(t, 5, 10)
	reach := reachable.NewBitset(h.NumNodes())
	cs := cutter.New(h, reach, 10)

	require.Empty(t, cs.Moves())

	require.NoError(t, cs.SettleNode(0))
	cs.TrackMove(0, true)
	require.NoError(t, cs.SettleNode(1))
	cs.TrackMove(1, true)

	require.Equal(t, []hypergraph.NodeID{0, 1}, cs.Moves())

	cs.ClearMoves()
	require.Empty(t, cs.Moves())
}

func TestMoveLog_ReplayMovesReappliesSourceSettles(t *testing.T) {
	h := chainHypergraph(t, 5, 10)
	reach := reachable.NewBitset(h.NumNodes())
	cs := cutter.New(h, reach, 10)

	cs.TrackMove(0, true)
	cs.TrackMove(1, true)
	cs.TrackMove(2, true)

	require.NoError(t, cs.ReplayMoves())
	require.True(t, reach.IsSourceSettled(0))
	require.True(t, reach.IsSourceSettled(1))
	require.True(t, reach.IsSourceSettled(2))
}

func TestMoveLog_ReplayMovesAppliesTargetSettlesViaFlip(t *testing.T) {
	h := chainHypergraph(t, 5, 10)
	reach := reachable.NewBitset(h.NumNodes())
	cs := cutter.New(h, reach, 10)

	cs.TrackMove(4, false)

	require.NoError(t, cs.ReplayMoves())
	require.True(t, reach.IsTargetSettled(4))
	require.False(t, cs.ViewDirection())
}

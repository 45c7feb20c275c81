package hfc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/flowalgo"
	"github.com/hyperflowcutter/whfc/hfc"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/piercer"
	"github.com/hyperflowcutter/whfc/reachable"
	"github.com/hyperflowcutter/whfc/rng"
)

// chainGraph builds a 0-1-2-...-(n-1) path of capacity-cap hyperedges, all
// node weights 1.
func chainGraph(t *testing.T, n int, cap int64) *hypergraph.Hypergraph {
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

func TestFindBalancedCut_ChainIsTriviallyBalanced(t *testing.T) {
	h := chainGraph(t, 5, 10)
	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	cs := cutter.New(h, reach, 10)

	require.NoError(t, cs.SettleNode(0))
	cs.FlipViewDirection()
	require.NoError(t, cs.SettleNode(4))
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(0)
	cs.AddTargetPiercingNode(4)

	algo := flowalgo.NewDinic(h.NumNodes())
	pc := piercer.New(piercer.Config{AvoidAugmentingPaths: true, ConcedeWhenAllOppositeReachable: true}, rng.New(1))

	result, err := hfc.FindBalancedCut(cs, algo, pc, hfc.DefaultConfig())
	require.NoError(t, err)
	require.True(t, result.Balanced)
	require.Equal(t, int64(10), result.FlowValue)

	seen := make(map[hypergraph.NodeID]bool)
	for _, v := range append(append([]hypergraph.NodeID(nil), result.Partition.B0...), result.Partition.B1...) {
		require.False(t, seen[v], "node %d assigned to both blocks", v)
		seen[v] = true
	}
	require.Equal(t, h.NumNodes(), len(seen))
}

func TestFindBalancedCut_TightBalanceForcesPiercing(t *testing.T) {
	h := chainGraph(t, 7, 1000)
	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	cs := cutter.New(h, reach, 4)

	require.NoError(t, cs.SettleNode(0))
	cs.FlipViewDirection()
	require.NoError(t, cs.SettleNode(6))
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(0)
	cs.AddTargetPiercingNode(6)

	algo := flowalgo.NewDinic(h.NumNodes())
	pc := piercer.New(piercer.Config{AvoidAugmentingPaths: true, ConcedeWhenAllOppositeReachable: true}, rng.New(1))

	result, err := hfc.FindBalancedCut(cs, algo, pc, hfc.DefaultConfig())
	require.NoError(t, err)

	seen := make(map[hypergraph.NodeID]bool)
	for _, v := range append(append([]hypergraph.NodeID(nil), result.Partition.B0...), result.Partition.B1...) {
		require.False(t, seen[v])
		seen[v] = true
	}
	require.Equal(t, h.NumNodes(), len(seen))
	require.LessOrEqual(t, len(result.Partition.B0), 4)
	require.LessOrEqual(t, len(result.Partition.B1), 4)
}

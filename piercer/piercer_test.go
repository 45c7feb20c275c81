package piercer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/piercer"
	"github.com/hyperflowcutter/whfc/reachable"
	"github.com/hyperflowcutter/whfc/rng"
)

// chain builds 0-1-2-3-4 as a path of zero-capacity hyperedges, trivially
// saturated so AddToCut can be exercised without routing real flow.
func chain(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	b := hypergraph.NewBuilder(5, []int64{1, 1, 1, 1, 1})
	for i := 0; i < 4; i++ {
		b.AddHyperedge(0, []hypergraph.NodeID{hypergraph.NodeID(i), hypergraph.NodeID(i + 1)})
	}
	h, err := b.Build()
	require.NoError(t, err)
	return h
}

func TestPierce_EmptyBorderConcedes(t *testing.T) {
	h := chain(t)
	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	cs := cutter.New(h, reach, 100)

	p := piercer.New(piercer.Config{}, rng.New(1))
	_, ok := p.Pierce(cs)
	require.False(t, ok)
}

func TestPierce_PrefersNodeNotReachableFromOppositeSide(t *testing.T) {
	h := chain(t)
	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	cs := cutter.New(h, reach, 100)

	require.NoError(t, cs.SettleNode(0))
	require.NoError(t, cs.AddToCut(hypergraph.HyperedgeID(0)))
	require.NoError(t, cs.AddToCut(hypergraph.HyperedgeID(1)))
	require.ElementsMatch(t, []hypergraph.NodeID{1, 2}, cs.Border())

	// Mark node 2 target-reachable (without settling it, so it stays on
	// the border) via the same layer-open/close dance bfs uses.
	reach.StartNextTargetLayer()
	reach.SetTargetReachable(2)
	reach.FinishTargetLayer()
	reach.StartNextTargetLayer()
	require.True(t, reach.IsTargetReachable(2))

	p := piercer.New(piercer.Config{AvoidAugmentingPaths: true, ConcedeWhenAllOppositeReachable: true}, rng.New(1))
	v, ok := p.Pierce(cs)
	require.True(t, ok)
	require.Equal(t, hypergraph.NodeID(1), v)
}

func TestPierce_ConcedesWhenPolicyAllows(t *testing.T) {
	h := chain(t)
	reach := reachable.NewDistance(h.NumNodes(), h.NumHyperedges())
	cs := cutter.New(h, reach, 100)

	require.NoError(t, cs.SettleNode(0))
	require.NoError(t, cs.AddToCut(hypergraph.HyperedgeID(0)))
	reach.StartNextTargetLayer()
	reach.SetTargetReachable(1)
	reach.FinishTargetLayer()
	reach.StartNextTargetLayer()
	require.True(t, reach.IsTargetReachable(1))

	p := piercer.New(piercer.Config{AvoidAugmentingPaths: true, ConcedeWhenAllOppositeReachable: false}, rng.New(1))
	_, ok := p.Pierce(cs)
	require.False(t, ok)

	p2 := piercer.New(piercer.Config{AvoidAugmentingPaths: true, ConcedeWhenAllOppositeReachable: true}, rng.New(1))
	v, ok := p2.Pierce(cs)
	require.True(t, ok)
	require.Equal(t, hypergraph.NodeID(1), v)
}

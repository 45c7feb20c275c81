package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/hypergraph"
)

func triangle(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	b := hypergraph.NewBuilder(3, []int64{1, 1, 1})
	b.AddHyperedge(5, []hypergraph.NodeID{0, 1, 2})
	h, err := b.Build()
	require.NoError(t, err)
	return h
}

func TestBuilder_RejectsSingletonHyperedge(t *testing.T) {
	b := hypergraph.NewBuilder(2, []int64{1, 1})
	b.AddHyperedge(1, []hypergraph.NodeID{0})
	_, err := b.Build()
	require.ErrorIs(t, err, hypergraph.ErrSingletonHyperedge)
}

func TestBuilder_RejectsNegativeCapacity(t *testing.T) {
	b := hypergraph.NewBuilder(2, []int64{1, 1})
	b.AddHyperedge(-1, []hypergraph.NodeID{0, 1})
	_, err := b.Build()
	require.ErrorIs(t, err, hypergraph.ErrNegativeWeight)
}

func TestBuilder_RejectsOutOfRangeNode(t *testing.T) {
	b := hypergraph.NewBuilder(2, []int64{1, 1})
	b.AddHyperedge(1, []hypergraph.NodeID{0, 5})
	_, err := b.Build()
	require.ErrorIs(t, err, hypergraph.ErrNodeOutOfRange)
}

func TestBuilder_BasicTopology(t *testing.T) {
	h := triangle(t)
	require.Equal(t, 3, h.NumNodes())
	require.Equal(t, 1, h.NumHyperedges())
	require.Equal(t, 3, h.NumPins())
	require.Equal(t, int64(5), h.Capacity(0))
	require.Equal(t, int64(0), h.Flow(0))
	require.Equal(t, 1, h.Degree(hypergraph.NodeID(0)))
	require.ElementsMatch(t, []hypergraph.NodeID{0, 1, 2}, h.PinsOf(0))
}

func TestHypergraph_Reset(t *testing.T) {
	h := triangle(t)
	require.NoError(t, h.RouteFlow(0, 0, 1, 3))
	require.Equal(t, int64(3), h.Flow(0))
	h.Reset()
	require.Equal(t, int64(0), h.Flow(0))
	require.Equal(t, int64(0), h.FlowSent(0, 0))
}

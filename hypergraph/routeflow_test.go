package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/hypergraph"
)

// path builds 0 -e0- 1 -e1- 2, a two-hyperedge chain, each capacity 4.
func path(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	b := hypergraph.NewBuilder(3, []int64{1, 1, 1})
	b.AddHyperedge(4, []hypergraph.NodeID{0, 1})
	b.AddHyperedge(4, []hypergraph.NodeID{1, 2})
	h, err := b.Build()
	require.NoError(t, err)
	return h
}

func TestRouteFlow_BasicInvariants(t *testing.T) {
	h := path(t)

	require.NoError(t, h.RouteFlow(0, 0, 1, 3))
	require.Equal(t, int64(3), h.Flow(0))
	require.Equal(t, int64(3), h.FlowSent(0, 0))
	require.Equal(t, int64(3), h.FlowReceived(1, 0))
	require.Equal(t, int64(1), h.ResidualCapacity(0))

	require.NoError(t, h.RouteFlow(1, 1, 2, 2))
	require.Equal(t, int64(2), h.Flow(1))
}

func TestRouteFlow_RejectsOverResidual(t *testing.T) {
	h := path(t)
	err := h.RouteFlow(0, 0, 1, 5)
	require.ErrorIs(t, err, hypergraph.ErrResidualExceeded)
}

func TestRouteFlow_ConservationAtSharedNode(t *testing.T) {
	h := path(t)
	require.NoError(t, h.RouteFlow(0, 0, 1, 4))
	require.NoError(t, h.RouteFlow(1, 1, 2, 4))
	// node 1 receives 4 from e0 and sends 4 into e1: conservation holds.
	require.Equal(t, int64(4), h.FlowReceived(1, 0))
	require.Equal(t, int64(4), h.FlowSent(1, 1))
}

func TestFlipViewDirection_IsInvolution(t *testing.T) {
	h := path(t)
	require.NoError(t, h.RouteFlow(0, 0, 1, 3))

	sentBefore := h.FlowSent(0, 0)
	recvBefore := h.FlowReceived(1, 0)

	h.FlipViewDirection()
	require.Equal(t, recvBefore, h.FlowSent(1, 0))
	require.Equal(t, sentBefore, h.FlowReceived(0, 0))

	h.FlipViewDirection()
	require.Equal(t, sentBefore, h.FlowSent(0, 0))
	require.Equal(t, recvBefore, h.FlowReceived(1, 0))
}

func TestPinPartition_SendingAndNotSendingRanges(t *testing.T) {
	h := path(t)
	require.NoError(t, h.RouteFlow(0, 0, 1, 3))

	sb, se := h.SendingPinsRange(0)
	require.Equal(t, 1, int(se-sb))
	require.Equal(t, hypergraph.NodeID(0), h.PinNode(sb))

	nb, ne := h.NotSendingPinsRange(0)
	require.Equal(t, 1, int(ne-nb))
	require.Equal(t, hypergraph.NodeID(1), h.PinNode(nb))
}

func TestClone_IsIndependentSnapshot(t *testing.T) {
	h := path(t)
	require.NoError(t, h.RouteFlow(0, 0, 1, 2))

	snap := h.Clone()
	require.NoError(t, h.RouteFlow(0, 0, 1, 2))
	require.Equal(t, int64(4), h.Flow(0))
	require.Equal(t, int64(2), snap.Flow(0))

	h.RestoreFrom(snap)
	require.Equal(t, int64(2), h.Flow(0))
}

package reachable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/reachable"
)

func TestDistance_LayeringAndReachability(t *testing.T) {
	d := reachable.NewDistance(5, 2)
	d.SettleSource(0)
	require.True(t, d.IsSourceReachable(0))
	require.True(t, d.IsSourceSettled(0))

	d.StartNextSourceLayer()
	d.SetSourceReachable(1)
	d.SetSourceReachable(2)
	require.True(t, d.IsSourceReachableUnsafe(1))
	require.False(t, d.IsSourceReachable(1)) // layer not finished yet
	d.FinishSourceLayer()
	require.True(t, d.IsSourceReachable(1))
	require.True(t, d.IsSourceReachable(2))
	require.False(t, d.IsSourceReachable(3))
}

func TestDistance_ResetSourceReachableToSourceIsO1AndKeepsTarget(t *testing.T) {
	d := reachable.NewDistance(4, 1)
	d.SettleSource(0)
	d.SettleTarget(3)
	d.StartNextSourceLayer()
	d.SetSourceReachable(1)
	d.FinishSourceLayer()
	d.StartNextTargetLayer()
	d.SetTargetReachable(2)
	d.FinishTargetLayer()

	d.ResetSourceReachableToSource()
	require.False(t, d.IsSourceReachable(1))
	require.True(t, d.IsSourceReachable(0)) // settled survives
	require.True(t, d.IsTargetReachable(2)) // target untouched
}

func TestDistance_FlipDirectionIsInvolution(t *testing.T) {
	d := reachable.NewDistance(3, 1)
	d.SettleSource(0)
	d.SettleTarget(2)

	d.FlipDirection()
	require.True(t, d.IsTargetSettled(0))
	require.True(t, d.IsSourceSettled(2))

	d.FlipDirection()
	require.True(t, d.IsSourceSettled(0))
	require.True(t, d.IsTargetSettled(2))
}

func TestBitset_BasicReachability(t *testing.T) {
	b := reachable.NewBitset(4)
	b.SettleSource(0)
	b.MarkSourceReachable(1)
	require.True(t, b.IsSourceReachable(0))
	require.True(t, b.IsSourceReachable(1))
	require.False(t, b.IsSourceReachable(2))

	b.ResetSourceReachableToSource()
	require.True(t, b.IsSourceReachable(0))
	require.False(t, b.IsSourceReachable(1))
}

func TestBitset_FlipDirectionIsInvolution(t *testing.T) {
	b := reachable.NewBitset(3)
	b.SettleSource(0)
	b.FlipDirection()
	require.True(t, b.IsTargetSettled(0))
	b.FlipDirection()
	require.True(t, b.IsSourceSettled(0))
}

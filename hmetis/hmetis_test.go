package hmetis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/hmetis"
	"github.com/hyperflowcutter/whfc/hypergraph"
)

const sampleGraph = `% a tiny triangle-ish hypergraph
3 4 11
5 1 2 3
2 2 3
3 1 4
1
1
1
1
`

func TestParseGraph_WeightedBothAxes(t *testing.T) {
	hg, err := hmetis.ParseGraph(strings.NewReader(sampleGraph))
	require.NoError(t, err)
	require.Equal(t, 4, hg.NumNodes())
	require.Equal(t, 3, hg.NumHyperedges())
	require.Equal(t, int64(5), hg.Capacity(0))
	require.Equal(t, int64(1), hg.NodeWeight(0))

	pins := hg.PinsOf(0)
	require.ElementsMatch(t, []hypergraph.NodeID{0, 1, 2}, pins)
}

func TestParseGraph_UnweightedDefaultsToOne(t *testing.T) {
	const body = "2 3\n1 2\n2 3\n"
	hg, err := hmetis.ParseGraph(strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, int64(1), hg.Capacity(0))
	require.Equal(t, int64(1), hg.NodeWeight(0))
}

func TestParseGraph_RejectsSingletonHyperedge(t *testing.T) {
	const body = "1 3\n1\n"
	_, err := hmetis.ParseGraph(strings.NewReader(body))
	require.Error(t, err)
}

func TestParseGraph_RejectsPinOutOfRange(t *testing.T) {
	const body = "1 2\n1 5\n"
	_, err := hmetis.ParseGraph(strings.NewReader(body))
	require.ErrorIs(t, err, hmetis.ErrPinOutOfRange)
}

func TestParseGraph_RejectsMalformedHeader(t *testing.T) {
	_, err := hmetis.ParseGraph(strings.NewReader("not-a-header\n"))
	require.ErrorIs(t, err, hmetis.ErrMalformedHeader)
}

func TestRenderGraph_RoundTrips(t *testing.T) {
	hg, err := hmetis.ParseGraph(strings.NewReader(sampleGraph))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, hmetis.RenderGraph(&sb, hg))

	hg2, err := hmetis.ParseGraph(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, hg.NumNodes(), hg2.NumNodes())
	require.Equal(t, hg.NumHyperedges(), hg2.NumHyperedges())
	for e := 0; e < hg.NumHyperedges(); e++ {
		require.Equal(t, hg.Capacity(hypergraph.HyperedgeID(e)), hg2.Capacity(hypergraph.HyperedgeID(e)))
	}
}

func TestParseSidecar(t *testing.T) {
	sc, err := hmetis.ParseSidecar("10 10 1000 14 10\n")
	require.NoError(t, err)
	require.Equal(t, [2]int64{10, 10}, sc.MaxBlockWeight)
	require.Equal(t, int64(1000), sc.UpperFlowBound)
	require.Equal(t, hypergraph.NodeID(14), sc.S)
	require.Equal(t, hypergraph.NodeID(10), sc.T)
}

func TestParseSidecar_WrongFieldCount(t *testing.T) {
	_, err := hmetis.ParseSidecar("10 10 1000\n")
	require.ErrorIs(t, err, hmetis.ErrMalformedSidecar)
}

func TestSidecar_ValidateAgainst(t *testing.T) {
	hg, err := hmetis.ParseGraph(strings.NewReader(sampleGraph))
	require.NoError(t, err)

	sc := hmetis.Sidecar{S: 0, T: 3}
	require.NoError(t, sc.ValidateAgainst(hg))

	bad := hmetis.Sidecar{S: 0, T: 99}
	require.ErrorIs(t, bad.ValidateAgainst(hg), hmetis.ErrTerminalOutOfRange)
}

func TestReadRNGSidecars_MissingYieldsNotOK(t *testing.T) {
	_, _, ok, err := hmetis.ReadRNGSidecars(t.TempDir() + "/nonexistent.hgr")
	require.NoError(t, err)
	require.False(t, ok)
}

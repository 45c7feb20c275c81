package hmetis

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hyperflowcutter/whfc/hypergraph"
)

// WriteGraph serializes hg to path in hMETIS format. Hyperedge capacities
// and node weights are always written explicitly (type 11), so a
// round-tripped file never silently drops weight information the original
// may have carried as the type-0 default of 1.
func WriteGraph(path string, hg *hypergraph.Hypergraph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hmetis: %w", err)
	}
	defer f.Close()
	return RenderGraph(f, hg)
}

// RenderGraph writes hg to w in hMETIS format (type 11: edge- and
// node-weighted).
func RenderGraph(w io.Writer, hg *hypergraph.Hypergraph) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	if _, err := fmt.Fprintf(bw, "%d %d 11\n", hg.NumHyperedges(), hg.NumNodes()); err != nil {
		return err
	}
	for e := 0; e < hg.NumHyperedges(); e++ {
		eid := hypergraph.HyperedgeID(e)
		if _, err := fmt.Fprintf(bw, "%d", hg.Capacity(eid)); err != nil {
			return err
		}
		for _, v := range hg.PinsOf(eid) {
			if _, err := fmt.Fprintf(bw, " %d", int(v)+1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return err
		}
	}
	for v := 0; v < hg.NumNodes(); v++ {
		if _, err := fmt.Fprintf(bw, "%d\n", hg.NodeWeight(hypergraph.NodeID(v))); err != nil {
			return err
		}
	}
	return nil
}

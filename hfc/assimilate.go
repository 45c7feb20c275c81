package hfc

import (
	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/hypergraph"
)

// GrowAssimilated grows the source side to include everything reachable from
// it through non-cut hyperedges (GLOSSARY: Assimilate), settling every node
// it reaches. BFS from the source-piercing nodes, mirroring
// algorithm/grow_assimilated.h's grow(): for each hyperedge incident to the
// node being scanned, either every pin of it is safe to settle (e is
// non-saturated, or still receiving flow at the scanned node — it cannot be
// a cut edge yet), or e is a candidate cut edge and only its
// already-flow-sending pins settle with it. Isolated nodes are left alone —
// settling them would wrongly remove them from the isolated-nodes subset-sum
// DP, which is the only place their placement is decided (spec §4.4/§4.5).
//
// Run once per round right after ExhaustFlow reports the target unreachable,
// so the border and settled source side reflect the cut the flow phase just
// converged to before IsBalanced or the next piercer call looks at it.
func GrowAssimilated(cs *cutter.CutterState) error {
	m, algo := cs.Metrics()
	m.IncAssimilate(algo)

	hg := cs.Hypergraph()
	reach := cs.Reach()
	iso := cs.Isolated()

	scan := append([]hypergraph.NodeID(nil), cs.SourcePiercingNodes()...)

	for len(scan) > 0 {
		u := scan[len(scan)-1]
		scan = scan[:len(scan)-1]

		begin, end := hg.IncidentRange(u)
		for inc := begin; inc < end; inc++ {
			e := hg.IncidenceHyperedge(inc)
			if allPinsSourceSettled(hg, reach, e) {
				continue
			}

			scanAllPins := !hg.IsSaturated(e) || hg.FlowReceived(u, e) > 0
			var pinsBegin, pinsEnd hypergraph.PinIndex
			if scanAllPins {
				pinsBegin, pinsEnd = hg.AllPinsRange(e)
			} else {
				if !cs.IsCutEdge(e) {
					if err := cs.AddToCut(e); err != nil {
						return err
					}
				}
				if allSendingPinsSourceSettled(hg, reach, e) {
					continue
				}
				pinsBegin, pinsEnd = hg.SendingPinsRange(e)
			}

			for i := pinsBegin; i < pinsEnd; i++ {
				v := hg.PinNode(i)
				if reach.IsSourceSettled(int(v)) || iso.IsIsolated(v) {
					continue
				}
				if err := cs.SettleNode(v); err != nil {
					return err
				}
				scan = append(scan, v)
			}
		}
	}
	return nil
}

func allPinsSourceSettled(hg *hypergraph.Hypergraph, reach cutter.ReachableNodes, e hypergraph.HyperedgeID) bool {
	begin, end := hg.AllPinsRange(e)
	for i := begin; i < end; i++ {
		if !reach.IsSourceSettled(int(hg.PinNode(i))) {
			return false
		}
	}
	return true
}

func allSendingPinsSourceSettled(hg *hypergraph.Hypergraph, reach cutter.ReachableNodes, e hypergraph.HyperedgeID) bool {
	begin, end := hg.SendingPinsRange(e)
	for i := begin; i < end; i++ {
		if !reach.IsSourceSettled(int(hg.PinNode(i))) {
			return false
		}
	}
	return true
}

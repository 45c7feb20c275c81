package piercer

import (
	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/rng"
)

// Config selects which preferences Pierce applies, per spec §4.7.
type Config struct {
	// AvoidAugmentingPaths prefers border nodes not currently reachable
	// from the opposite side, so the next exhaustFlow call can short
	// circuit on "no augmenting path" rather than discover one immediately.
	AvoidAugmentingPaths bool

	// UseDistancesFromCut prefers, among otherwise-equal candidates, the
	// one with the largest hop distance from the cut. Only takes effect
	// when the bound ReachableNodes exposes NodeDistance (i.e. the caller
	// used reachable.Distance, not reachable.Bitset).
	UseDistancesFromCut bool

	// ConcedeWhenAllOppositeReachable controls what happens when every
	// border candidate is reachable from the opposite side: true picks
	// the best candidate anyway, false reports no candidate (the driver
	// then treats this as "no more piercing candidates").
	ConcedeWhenAllOppositeReachable bool
}

// distancer is implemented by reachable.Distance but not reachable.Bitset;
// Piercer degrades UseDistancesFromCut to a no-op when it is absent.
type distancer interface {
	NodeDistance(v int) int64
}

// Piercer selects piercing nodes from a CutterState's current border,
// breaking ties with an explicit PRNG stream rather than a global one.
type Piercer struct {
	cfg    Config
	source *rng.Source
}

// New builds a Piercer applying cfg and drawing tie-break randomness from
// source.
func New(cfg Config, source *rng.Source) *Piercer {
	return &Piercer{cfg: cfg, source: source}
}

// Pierce selects one node from cs.Border() to become the next
// source-piercing node, or reports false when no candidate qualifies
// (empty border, or every candidate is opposite-reachable and the
// configured policy does not concede).
func (p *Piercer) Pierce(cs *cutter.CutterState) (hypergraph.NodeID, bool) {
	border := cs.Border()
	if len(border) == 0 {
		return 0, false
	}

	reach := cs.Reach()
	var preferred, conceded []hypergraph.NodeID
	for _, v := range border {
		if p.cfg.AvoidAugmentingPaths && reach.IsTargetReachable(int(v)) {
			conceded = append(conceded, v)
			continue
		}
		preferred = append(preferred, v)
	}

	candidates := preferred
	if len(candidates) == 0 {
		if !p.cfg.ConcedeWhenAllOppositeReachable {
			return 0, false
		}
		candidates = conceded
	}

	return p.pickFrom(cs, candidates), true
}

// pickFrom applies the hop-distance preference (when available and
// enabled) and breaks remaining ties uniformly at random.
func (p *Piercer) pickFrom(cs *cutter.CutterState, candidates []hypergraph.NodeID) hypergraph.NodeID {
	if p.cfg.UseDistancesFromCut {
		if dist, ok := cs.Reach().(distancer); ok {
			candidates = farthestFromCut(dist, candidates)
		}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[p.source.Intn(len(candidates))]
}

// farthestFromCut narrows candidates down to those sharing the maximum
// NodeDistance value.
func farthestFromCut(dist distancer, candidates []hypergraph.NodeID) []hypergraph.NodeID {
	best := int64(-1)
	var out []hypergraph.NodeID
	for _, v := range candidates {
		d := dist.NodeDistance(int(v))
		switch {
		case d > best:
			best = d
			out = out[:0]
			out = append(out, v)
		case d == best:
			out = append(out, v)
		}
	}
	return out
}

package hfc

import (
	"math"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/flowalgo"
	"github.com/hyperflowcutter/whfc/piercer"
)

// Config bounds one FindBalancedCut call.
type Config struct {
	// MaxPiercingRounds bounds how many piercing nodes the driver will add
	// while searching for a feasible cut, guarding against hypergraphs with
	// no balanced bipartition at all.
	MaxPiercingRounds int

	// MostBalancedCutMode, while no balanced cut has been found, keeps the
	// best-balanced partition among the unbalanced cuts seen so far and
	// returns it once MBMCPatience cut rounds in a row bring no improvement.
	// It does not search past a balanced cut: FindBalancedCut returns the
	// first balanced cut in either mode.
	MostBalancedCutMode bool

	// MBMCPatience bounds how many further piercing rounds run after the
	// best-balanced partition seen so far before the driver gives up and
	// returns that best partition.
	MBMCPatience int
}

// DefaultConfig returns the driver's default bounds.
func DefaultConfig() Config {
	return Config{
		MaxPiercingRounds:   1 << 20,
		MostBalancedCutMode: true,
		MBMCPatience:        25,
	}
}

// Result is one FindBalancedCut outcome.
type Result struct {
	Partition cutter.Partition
	FlowValue int64
	Balanced  bool
	Piercings int
}

const unrestrictedFlowBound = int64(math.MaxInt64)

// memo is the best-balanced partition seen so far during MBMC deepening. A
// Partition is an immutable value snapshot (two node-ID slices), so keeping
// one from an earlier round and returning it even after the search explores
// further needs no rewind of cs or its hypergraph — unlike the reference's
// multi-trial search, which snapshots and rewinds the flow hypergraph itself
// via Hypergraph.Clone/RestoreFrom to back out of a losing branch. That
// style of rewind would also need undoing CutterState's settle bookkeeping
// (reach, border, cut, weights), and no inverse of SettleNode exists to do
// so; building one was judged out of scope here. Recorded as an open design
// decision in the project's grounding notes.
type memo struct {
	partition cutter.Partition
	diff      int64
}

// FindBalancedCut runs the enumerate-cuts-until-balanced-or-flow-bound-exceeded
// loop (spec §4.8): alternately exhaust augmenting flow and pierce the
// border, until the residual min cut it settles into is balanced, the
// piercing round budget is exhausted, or no further piercing candidate
// exists.
func FindBalancedCut(cs *cutter.CutterState, algo flowalgo.Algorithm, pc *piercer.Piercer, cfg Config) (Result, error) {
	cs.ClearMoves()

	var best *memo
	staleRounds := 0
	piercings := 0

	for {
		hasCut, err := algo.ExhaustFlow(cs, unrestrictedFlowBound)
		if err != nil {
			return Result{}, err
		}
		cs.SetHasCut(hasCut)

		if hasCut {
			if err := GrowAssimilated(cs); err != nil {
				return Result{}, err
			}
			if cs.IsBalanced() {
				return Result{
					Partition: cs.OutputMostBalancedPartition(),
					FlowValue: cs.FlowValue(),
					Balanced:  true,
					Piercings: piercings,
				}, nil
			}

			if cfg.MostBalancedCutMode {
				p := cs.OutputMostBalancedPartition()
				diff := partitionWeightDiff(cs, p)
				if best == nil || diff < best.diff {
					best = &memo{partition: p, diff: diff}
					staleRounds = 0
				} else {
					staleRounds++
					if staleRounds >= cfg.MBMCPatience {
						return Result{
							Partition: best.partition,
							FlowValue: cs.FlowValue(),
							Balanced:  false,
							Piercings: piercings,
						}, nil
					}
				}
			}
		}

		if piercings >= cfg.MaxPiercingRounds {
			break
		}

		// side_to_pierce alternates to grow the lighter side (spec §4.8):
		// pierce the target side, via a flip/settle/flip-back dance, whenever
		// it is currently lighter than the source side, exactly as
		// cutter.ReplayMoves replays a toSource=false move.
		growTarget := cs.TargetWeight() < cs.SourceWeight()
		if growTarget {
			cs.FlipViewDirection()
		}
		v, ok := pc.Pierce(cs)
		if !ok {
			if growTarget {
				cs.FlipViewDirection()
			}
			break
		}
		if err := cs.SettleNode(v); err != nil {
			if growTarget {
				cs.FlipViewDirection()
			}
			return Result{}, err
		}
		cs.AddSourcePiercingNode(v)
		if growTarget {
			cs.FlipViewDirection()
		}
		cs.TrackMove(v, !growTarget)
		piercings++
		m, algo := cs.Metrics()
		m.IncPierce(algo)
	}

	if best != nil {
		return Result{Partition: best.partition, FlowValue: cs.FlowValue(), Balanced: false, Piercings: piercings}, nil
	}
	return Result{
		Partition: cs.OutputMostBalancedPartition(),
		FlowValue: cs.FlowValue(),
		Balanced:  cs.IsBalanced(),
		Piercings: piercings,
	}, nil
}

func partitionWeightDiff(cs *cutter.CutterState, p cutter.Partition) int64 {
	hg := cs.Hypergraph()
	var w0, w1 int64
	for _, v := range p.B0 {
		w0 += hg.NodeWeight(v)
	}
	for _, v := range p.B1 {
		w1 += hg.NodeWeight(v)
	}
	d := w0 - w1
	if d < 0 {
		d = -d
	}
	return d
}

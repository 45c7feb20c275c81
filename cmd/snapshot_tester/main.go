// Command snapshot_tester reads an hMETIS graph and its .whfc sidecar, runs
// the full driver over ParallelPushRelabel at a given thread count, and
// writes one CSV row of counters to stdout (spec §6):
//
//	graph,algorithm,seed,threads,improved,flow,flowbound,time,mbc_time,
//	time_limit_exceeded,num_cuts,discharge,global_relabel,update,
//	source_cut,saturate,assimilate,pierce
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/flowalgo"
	"github.com/hyperflowcutter/whfc/hfc"
	"github.com/hyperflowcutter/whfc/hmetis"
	"github.com/hyperflowcutter/whfc/logging"
	"github.com/hyperflowcutter/whfc/metrics"
	"github.com/hyperflowcutter/whfc/piercer"
	"github.com/hyperflowcutter/whfc/reachable"
	"github.com/hyperflowcutter/whfc/rng"
)

const algorithmLabel = "push_relabel_parallel"

func main() {
	logging.Init("info")
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: snapshot_tester <hgfile> [threads]")
		os.Exit(2)
	}
	threads := 1
	if len(os.Args) == 3 {
		t, err := strconv.Atoi(os.Args[2])
		if err != nil || t < 1 {
			fmt.Fprintln(os.Stderr, "threads must be a positive integer")
			os.Exit(2)
		}
		threads = t
	}

	row, err := run(os.Args[1], threads)
	if err != nil {
		logging.Error("snapshot_tester failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(row)
}

func run(hgfile string, threads int) (string, error) {
	hg, err := hmetis.ReadGraph(hgfile)
	if err != nil {
		return "", err
	}
	sc, err := hmetis.ReadSidecar(hgfile + ".whfc")
	if err != nil {
		return "", err
	}
	if err := sc.ValidateAgainst(hg); err != nil {
		return "", err
	}

	seed := uint64(1)
	if _, genData, ok, err := hmetis.ReadRNGSidecars(hgfile); err != nil {
		return "", err
	} else if ok {
		var src rng.Source
		if err := src.UnmarshalBinary(genData); err != nil {
			return "", err
		}
		seed = src.State()
	}

	m := metrics.New("whfc")
	reach := reachable.NewBitset(hg.NumNodes())
	cs := cutter.New(hg, reach, maxInt64(sc.MaxBlockWeight[0], sc.MaxBlockWeight[1]))
	cs.SetMetrics(m, algorithmLabel)

	if err := cs.SettleNode(sc.S); err != nil {
		return "", err
	}
	cs.FlipViewDirection()
	if err := cs.SettleNode(sc.T); err != nil {
		return "", err
	}
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(sc.S)
	cs.AddTargetPiercingNode(sc.T)

	algo := flowalgo.NewParallelPushRelabel(hg.NumNodes(), hg.NumHyperedges(), hg.NumPins(), threads)
	pc := piercer.New(piercer.Config{AvoidAugmentingPaths: true, ConcedeWhenAllOppositeReachable: true}, rng.New(seed))

	upperBound := sc.UpperFlowBound
	if upperBound <= 0 {
		upperBound = int64(math.MaxInt64)
	}
	cfg := hfc.DefaultConfig()

	stopTimer := m.Timer(algorithmLabel)
	result, err := hfc.FindBalancedCut(cs, algo, pc, cfg)
	elapsed := stopTimer()
	if err != nil {
		return "", err
	}

	improved := result.Balanced
	if ws := cs.Isolated().Stats(); ws.Count > 0 {
		logging.Info("isolated node weight distribution",
			"count", ws.Count, "mean", ws.Mean, "variance", ws.Variance)
	}
	snap, err := m.Snapshot()
	if err != nil {
		return "", err
	}
	counter := func(name string) int64 {
		return int64(snap[fmt.Sprintf("whfc_%s_total{algorithm=%s}", name, algorithmLabel)])
	}

	row := fmt.Sprintf(
		"%s,%s,%d,%d,%t,%d,%d,%f,%f,%t,%d,%d,%d,%d,%d,%d,%d,%d",
		hgfile, algorithmLabel, seed, threads, improved,
		result.FlowValue, upperBound, elapsed.Seconds(), elapsed.Seconds(), false,
		result.Piercings,
		counter("discharge"), counter("global_relabel"), counter("update"),
		counter("source_cut"), counter("saturate"), counter("assimilate"), counter("pierce"),
	)
	return row, nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

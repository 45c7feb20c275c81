// Command whfc runs the full findBalancedCut driver over one hMETIS graph
// with explicit terminals (spec §6):
//
//	whfc <hgfile> s t
//
// The block weight bound is the larger of <hgfile>.whfc's two
// maxBlockWeight values, applied to both blocks, or the total node weight
// when that sidecar cannot be read. The sidecar's flow bound is not used:
// the driver runs with no flow bound. s and t are taken from the command
// line, never from the sidecar. Every
// other parameter (which FlowAlgorithm, worker count, piercing-round and
// MBMC bounds, RNG seed) comes from config.Config, resolved from defaults
// plus WHFC_-prefixed environment overrides.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hyperflowcutter/whfc/config"
	"github.com/hyperflowcutter/whfc/cutter"
	"github.com/hyperflowcutter/whfc/flowalgo"
	"github.com/hyperflowcutter/whfc/hfc"
	"github.com/hyperflowcutter/whfc/hmetis"
	"github.com/hyperflowcutter/whfc/hypergraph"
	"github.com/hyperflowcutter/whfc/logging"
	"github.com/hyperflowcutter/whfc/metrics"
	"github.com/hyperflowcutter/whfc/piercer"
	"github.com/hyperflowcutter/whfc/reachable"
	"github.com/hyperflowcutter/whfc/rng"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: whfc <hgfile> s t")
		os.Exit(2)
	}
	s, errS := strconv.Atoi(os.Args[2])
	t, errT := strconv.Atoi(os.Args[3])
	if errS != nil || errT != nil {
		fmt.Fprintln(os.Stderr, "s and t must be integers")
		os.Exit(2)
	}

	cfg, err := config.NewLoader(config.WithEnvPrefix("WHFC_")).Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(2)
	}
	logging.Init(cfg.LogLevel)
	runID := logging.NewRunID()
	log := logging.WithRunID(runID)

	result, err := run(os.Args[1], hypergraph.NodeID(s), hypergraph.NodeID(t), cfg)
	if err != nil {
		log.Error("whfc failed", "err", err)
		os.Exit(1)
	}

	log.Info("findBalancedCut finished",
		"flow", result.FlowValue, "balanced", result.Balanced, "piercings", result.Piercings,
		"b0", len(result.Partition.B0), "b1", len(result.Partition.B1))
	fmt.Printf("flow=%d balanced=%t piercings=%d |B0|=%d |B1|=%d\n",
		result.FlowValue, result.Balanced, result.Piercings, len(result.Partition.B0), len(result.Partition.B1))
	if !result.Balanced {
		os.Exit(1)
	}
}

func run(hgfile string, s, t hypergraph.NodeID, cfg config.Config) (hfc.Result, error) {
	hg, err := hmetis.ReadGraph(hgfile)
	if err != nil {
		return hfc.Result{}, err
	}

	wMax := int64(hg.TotalWeight())
	if sc, err := hmetis.ReadSidecar(hgfile + ".whfc"); err == nil {
		wMax = maxInt64(sc.MaxBlockWeight[0], sc.MaxBlockWeight[1])
	}
	if int(s) >= hg.NumNodes() || int(t) >= hg.NumNodes() || s < 0 || t < 0 {
		return hfc.Result{}, fmt.Errorf("terminal out of range: s=%d t=%d n=%d", s, t, hg.NumNodes())
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("whfc")
	}

	reach, algo := buildAlgorithm(hg, cfg)
	cs := cutter.New(hg, reach, wMax)
	cs.SetMetrics(m, string(cfg.Algorithm))

	if err := cs.SettleNode(s); err != nil {
		return hfc.Result{}, err
	}
	cs.FlipViewDirection()
	if err := cs.SettleNode(t); err != nil {
		return hfc.Result{}, err
	}
	cs.FlipViewDirection()
	cs.AddSourcePiercingNode(s)
	cs.AddTargetPiercingNode(t)

	pc := piercer.New(piercer.Config{AvoidAugmentingPaths: true, ConcedeWhenAllOppositeReachable: true}, rng.New(cfg.RNGSeed))

	driverCfg := hfc.Config{
		MaxPiercingRounds:   cfg.MaxPiercingRounds,
		MostBalancedCutMode: cfg.MostBalancedCutMode,
		MBMCPatience:        cfg.MBMCPatience,
	}
	return hfc.FindBalancedCut(cs, algo, pc, driverCfg)
}

// buildAlgorithm picks the FlowAlgorithm named by cfg.Algorithm and the
// ReachableNodes implementation it expects: Dinic and BidirectionalDinic
// run BFS layering over reachable.Distance, both push-relabel variants only
// need reachable.Bitset's settle/reach bits.
func buildAlgorithm(hg *hypergraph.Hypergraph, cfg config.Config) (cutter.ReachableNodes, flowalgo.Algorithm) {
	n, m, p := hg.NumNodes(), hg.NumHyperedges(), hg.NumPins()
	switch cfg.Algorithm {
	case config.AlgorithmBidirectionalDinic:
		return reachable.NewDistance(n, m), flowalgo.NewBidirectionalDinic(n)
	case config.AlgorithmPushRelabelSequential:
		return reachable.NewBitset(n), flowalgo.NewSequentialPushRelabel(n, m, p)
	case config.AlgorithmPushRelabelParallel:
		return reachable.NewBitset(n), flowalgo.NewParallelPushRelabel(n, m, p, cfg.Workers)
	default:
		return reachable.NewDistance(n, m), flowalgo.NewDinic(n)
	}
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

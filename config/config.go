package config

// Algorithm names one of flowalgo's Algorithm implementations.
type Algorithm string

const (
	AlgorithmDinic                 Algorithm = "dinic"
	AlgorithmBidirectionalDinic    Algorithm = "bidirectional_dinic"
	AlgorithmPushRelabelSequential Algorithm = "push_relabel_sequential"
	AlgorithmPushRelabelParallel   Algorithm = "push_relabel_parallel"
)

// Config is one findBalancedCut run's resolved parameters, layered from
// defaults and environment overrides by Loader.
type Config struct {
	Algorithm Algorithm `koanf:"algorithm"`

	// Workers bounds ParallelPushRelabel's worker pool; ignored by the
	// sequential algorithms.
	Workers int `koanf:"workers"`

	// MaxPiercingRounds and MostBalancedCutMode and MBMCPatience feed
	// hfc.Config directly.
	MaxPiercingRounds   int  `koanf:"max_piercing_rounds"`
	MostBalancedCutMode bool `koanf:"mbmc_enabled"`
	MBMCPatience        int  `koanf:"mbmc_patience"`

	// RNGSeed seeds rng.New for the piercer's tie-breaking. 0 is
	// remapped by rng.New to a fixed non-degenerate seed, not special here.
	RNGSeed uint64 `koanf:"rng_seed"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// Validate checks the fields Loader cannot enforce structurally.
func (c Config) Validate() error {
	switch c.Algorithm {
	case AlgorithmDinic, AlgorithmBidirectionalDinic, AlgorithmPushRelabelSequential, AlgorithmPushRelabelParallel:
	default:
		return ErrInvalidAlgorithm
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.MBMCPatience < 0 {
		return ErrInvalidMBMCPatience
	}
	return nil
}

func defaults() map[string]any {
	return map[string]any{
		"algorithm":           string(AlgorithmDinic),
		"workers":             1,
		"max_piercing_rounds": 1 << 20,
		"mbmc_enabled":        true,
		"mbmc_patience":       25,
		"rng_seed":            uint64(1),
		"log_level":           "info",
		"log_format":          "json",
		"metrics_enabled":     false,
	}
}

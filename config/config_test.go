package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.NewLoader().Load()
	require.NoError(t, err)
	require.Equal(t, config.AlgorithmDinic, cfg.Algorithm)
	require.Equal(t, 1, cfg.Workers)
	require.True(t, cfg.MostBalancedCutMode)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("WHFC_ALGORITHM", "push_relabel_parallel")
	t.Setenv("WHFC_WORKERS", "8")
	t.Setenv("WHFC_MBMC_PATIENCE", "5")

	cfg, err := config.NewLoader().Load()
	require.NoError(t, err)
	require.Equal(t, config.AlgorithmPushRelabelParallel, cfg.Algorithm)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, 5, cfg.MBMCPatience)
}

func TestLoad_CustomEnvPrefix(t *testing.T) {
	os.Unsetenv("WHFC_WORKERS")
	t.Setenv("CUSTOM_WORKERS", "3")

	cfg, err := config.NewLoader(config.WithEnvPrefix("CUSTOM_")).Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Workers)
}

func TestLoad_InvalidAlgorithmFailsValidation(t *testing.T) {
	t.Setenv("WHFC_ALGORITHM", "bubble_sort")
	_, err := config.NewLoader().Load()
	require.ErrorIs(t, err, config.ErrInvalidAlgorithm)
}

func TestLoad_ZeroWorkersFailsValidation(t *testing.T) {
	t.Setenv("WHFC_WORKERS", "0")
	_, err := config.NewLoader().Load()
	require.ErrorIs(t, err, config.ErrInvalidWorkers)
}

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/metrics"
)

func TestMetrics_CountersIncrementIndependently(t *testing.T) {
	m := metrics.New("whfc_test")
	m.Discharge.WithLabelValues("dinic").Inc()
	m.Discharge.WithLabelValues("dinic").Inc()
	m.Pierce.WithLabelValues("dinic").Inc()

	snap, err := m.Snapshot()
	require.NoError(t, err)
	require.Equal(t, float64(2), snap[`whfc_test_discharge_total{algorithm=dinic}`])
	require.Equal(t, float64(1), snap[`whfc_test_pierce_total{algorithm=dinic}`])
}

func TestMetrics_Timer_ObservesDuration(t *testing.T) {
	m := metrics.New("whfc_test")
	stop := m.Timer("dinic")
	d := stop()
	require.GreaterOrEqual(t, d.Seconds(), float64(0))

	snap, err := m.Snapshot()
	require.NoError(t, err)
	_, ok := snap[`whfc_test_run_duration_seconds{algorithm=dinic}`]
	require.True(t, ok)
}

func TestMetrics_FlowValueGauge(t *testing.T) {
	m := metrics.New("whfc_test")
	m.FlowValue.WithLabelValues("dinic").Set(42)

	snap, err := m.Snapshot()
	require.NoError(t, err)
	require.Equal(t, float64(42), snap[`whfc_test_flow_value{algorithm=dinic}`])
}

func TestMetrics_IndependentRegistriesDoNotCollide(t *testing.T) {
	a := metrics.New("whfc_a")
	b := metrics.New("whfc_b")
	a.Pierce.WithLabelValues("dinic").Inc()

	snapA, err := a.Snapshot()
	require.NoError(t, err)
	snapB, err := b.Snapshot()
	require.NoError(t, err)
	require.Equal(t, float64(1), snapA[`whfc_a_pierce_total{algorithm=dinic}`])
	require.Equal(t, float64(0), snapB[`whfc_b_pierce_total{algorithm=dinic}`])
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the set of counters one findBalancedCut run increments,
// labeled by which flow algorithm produced them so a single Registry can
// hold counters from several algorithms' runs.
type Metrics struct {
	Registry *prometheus.Registry

	Discharge     *prometheus.CounterVec
	GlobalRelabel *prometheus.CounterVec
	Update        *prometheus.CounterVec
	SourceCut     *prometheus.CounterVec
	Saturate      *prometheus.CounterVec
	Assimilate    *prometheus.CounterVec
	Pierce        *prometheus.CounterVec

	FlowValue *prometheus.GaugeVec
	Duration  *prometheus.HistogramVec
}

// New registers a fresh set of counters under namespace on a private
// Registry, so concurrent runs (or repeated test runs) never collide on
// the global default registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, []string{"algorithm"})
	}

	m := &Metrics{
		Registry:      reg,
		Discharge:     counter("discharge_total", "Number of discharge steps performed"),
		GlobalRelabel: counter("global_relabel_total", "Number of global relabel passes performed"),
		Update:        counter("update_total", "Number of isolated-node DP table updates performed"),
		SourceCut:     counter("source_cut_total", "Number of source-side cut derivations performed"),
		Saturate:      counter("saturate_total", "Number of source-edge saturation passes performed"),
		Assimilate:    counter("assimilate_total", "Number of GrowAssimilated passes performed"),
		Pierce:        counter("pierce_total", "Number of border nodes pierced"),
		FlowValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flow_value",
			Help:      "Max flow value reached by the run",
		}, []string{"algorithm"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a findBalancedCut run",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
	}

	reg.MustRegister(m.Discharge, m.GlobalRelabel, m.Update, m.SourceCut,
		m.Saturate, m.Assimilate, m.Pierce, m.FlowValue, m.Duration)
	return m
}

// IncDischarge, IncGlobalRelabel, IncUpdate, IncSourceCut, IncSaturate,
// IncAssimilate, and IncPierce bump their respective counter under the
// given algorithm label. m may be nil: every method is then a no-op, so
// callers that don't care about metrics (flow_tester, tests) can pass a nil
// *Metrics through instead of branching at every call site.
func (m *Metrics) IncDischarge(algorithm string) {
	if m != nil {
		m.Discharge.WithLabelValues(algorithm).Inc()
	}
}
func (m *Metrics) IncGlobalRelabel(algorithm string) {
	if m != nil {
		m.GlobalRelabel.WithLabelValues(algorithm).Inc()
	}
}
func (m *Metrics) IncUpdate(algorithm string) {
	if m != nil {
		m.Update.WithLabelValues(algorithm).Inc()
	}
}
func (m *Metrics) IncSourceCut(algorithm string) {
	if m != nil {
		m.SourceCut.WithLabelValues(algorithm).Inc()
	}
}
func (m *Metrics) IncSaturate(algorithm string) {
	if m != nil {
		m.Saturate.WithLabelValues(algorithm).Inc()
	}
}
func (m *Metrics) IncAssimilate(algorithm string) {
	if m != nil {
		m.Assimilate.WithLabelValues(algorithm).Inc()
	}
}
func (m *Metrics) IncPierce(algorithm string) {
	if m != nil {
		m.Pierce.WithLabelValues(algorithm).Inc()
	}
}

// Timer returns a function that, when called, observes the elapsed time
// since Timer was called into Duration under the given algorithm label.
func (m *Metrics) Timer(algorithm string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		m.Duration.WithLabelValues(algorithm).Observe(d.Seconds())
		return d
	}
}

// Snapshot gathers every registered metric family into a flat
// "metric_name{labels}" -> value map, the shape snapshot_tester writes out
// as CSV columns.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range metric.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			switch {
			case metric.Counter != nil:
				out[key] = metric.Counter.GetValue()
			case metric.Gauge != nil:
				out[key] = metric.Gauge.GetValue()
			case metric.Histogram != nil:
				out[key] = metric.Histogram.GetSampleSum()
			}
		}
	}
	return out, nil
}

package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	runDuration      prom.Histogram
	runOutcomes      *prom.CounterVec
	documentOutcomes *prom.CounterVec
	fragmentResults  *prom.CounterVec
	lastRun          prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "layoutsync",
			Name:      "run_duration_seconds",
			Help:      "Duration of a full sync run",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "layoutsync",
			Name:      "run_outcomes_total",
			Help:      "Sync runs by final status",
		}, []string{"outcome"}),
		documentOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "layoutsync",
			Name:      "document_outcomes_total",
			Help:      "Target documents by outcome (updated, unchanged, not_found)",
		}, []string{"outcome"}),
		fragmentResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "layoutsync",
			Name:      "fragment_results_total",
			Help:      "Fragment replacement results per fragment",
		}, []string{"fragment", "result"}),
		lastRun: prom.NewGauge(prom.GaugeOpts{
			Namespace: "layoutsync",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last sync run finished",
		}),
	}
	reg.MustRegister(pr.runDuration, pr.runOutcomes, pr.documentOutcomes, pr.fragmentResults, pr.lastRun)
	return pr
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
	p.lastRun.SetToCurrentTime()
}

func (p *PrometheusRecorder) IncRunOutcome(outcome RunOutcomeLabel) {
	if p == nil {
		return
	}
	p.runOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncDocumentOutcome(outcome string) {
	if p == nil {
		return
	}
	p.documentOutcomes.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncFragmentResult(fragment string, result FragmentResult) {
	if p == nil {
		return
	}
	p.fragmentResults.WithLabelValues(fragment, string(result)).Inc()
}

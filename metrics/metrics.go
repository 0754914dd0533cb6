// Package metrics supplies a Prometheus-backed moea.Observer, mirroring
// the teacher's own use of prometheus/client_golang for its scheduling
// plugin's score metrics. It is optional: Driver falls back to a no-op
// observer when none is configured.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	moea "github.com/andresliszt/moo-go"
)

// PrometheusObserver reports per-generation counters and gauges.
type PrometheusObserver struct {
	generations    prometheus.Counter
	populationSize prometheus.Gauge
	frontCount     prometheus.Gauge
	duration       prometheus.Histogram
}

// NewPrometheusObserver creates and registers the collectors against reg.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	o := &PrometheusObserver{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "moea", Name: "generations_total", Help: "Number of generations executed.",
		}),
		populationSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "moea", Name: "population_size", Help: "Current population size.",
		}),
		frontCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "moea", Name: "front_count", Help: "Number of Pareto fronts in the current population.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "moea", Name: "generation_duration_seconds", Help: "Wall-clock time per generation.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(o.generations, o.populationSize, o.frontCount, o.duration)
	return o
}

// Generation implements moea.Observer.
func (o *PrometheusObserver) Generation(_ int, populationSize, frontCount int, elapsed time.Duration) {
	o.generations.Inc()
	o.populationSize.Set(float64(populationSize))
	o.frontCount.Set(float64(frontCount))
	o.duration.Observe(elapsed.Seconds())
}

var _ moea.Observer = (*PrometheusObserver)(nil)

// Package metrics exposes Prometheus collectors for maze searches.
//
// Collectors live on a private registry rather than the global default one,
// so several recorders (one per test, one per app) never collide.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search results used as the "result" label.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Recorder records search activity. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	registry *prometheus.Registry

	searches   *prometheus.CounterVec
	tasks      prometheus.Counter
	visits     prometheus.Counter
	duration   prometheus.Histogram
	pathLength prometheus.Histogram
}

// New creates a Recorder with its own registry. Go runtime and process
// collectors are registered alongside the search collectors.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "amazego_searches_total",
			Help: "Total searches by result",
		}, []string{"result"}),
		tasks: factory.NewCounter(prometheus.CounterOpts{
			Name: "amazego_search_tasks_total",
			Help: "Total search tasks started, the root task included",
		}),
		visits: factory.NewCounter(prometheus.CounterOpts{
			Name: "amazego_nodes_visited_total",
			Help: "Total nodes claimed across all searches",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "amazego_search_duration_seconds",
			Help:    "Search wall time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
		pathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "amazego_path_length_nodes",
			Help:    "Length of returned paths in nodes",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
	}
}

// Registry returns the registry the collectors are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// TaskStarted counts one search task.
func (r *Recorder) TaskStarted() {
	if r == nil {
		return
	}
	r.tasks.Inc()
}

// ObserveSearch records a finished search.
func (r *Recorder) ObserveSearch(result string, elapsed time.Duration, visited int64, pathLen int) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(result).Inc()
	r.visits.Add(float64(visited))
	r.duration.Observe(elapsed.Seconds())
	if result == ResultFound {
		r.pathLength.Observe(float64(pathLen))
	}
}

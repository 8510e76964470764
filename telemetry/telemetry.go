// Package telemetry exports search statistics as Prometheus metrics.
//
// A Collector is a session.Observer: register it with session.WithObserver and
// every completed search updates the metrics below.
//
//	gridpath_search_total{algorithm,found}            counter
//	gridpath_search_duration_seconds{algorithm}       histogram
//	gridpath_search_expanded_tiles{algorithm}         histogram
//	gridpath_search_last_path_weight{algorithm}       gauge
//	gridpath_session_generation                       gauge
package telemetry

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/session"
)

const namespace = "gridpath"

// Collector holds the gridpath metric families.
type Collector struct {
	registry *prometheus.Registry

	Searches   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Expanded   *prometheus.HistogramVec
	PathWeight *prometheus.GaugeVec
	Generation prometheus.Gauge
}

// NewCollector registers the metric families on a private registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "total",
			Help:      "Completed searches by algorithm and outcome.",
		}, []string{"algorithm", "found"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time of a search, excluding replay.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"algorithm"}),
		Expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expanded_tiles",
			Help:      "Tiles expanded per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		}, []string{"algorithm"}),
		PathWeight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "last_path_weight",
			Help:      "Weight of the most recent path found, by algorithm.",
		}, []string{"algorithm"}),
		Generation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "generation",
			Help:      "Generation of the most recent search.",
		}),
	}
}

// SearchCompleted implements session.Observer.
func (c *Collector) SearchCompleted(r session.Result) {
	algo := r.Algorithm.String()
	c.Searches.WithLabelValues(algo, strconv.FormatBool(r.Summary.Found)).Inc()
	c.Duration.WithLabelValues(algo).Observe(r.Elapsed.Seconds())
	c.Expanded.WithLabelValues(algo).Observe(float64(r.Summary.Expanded))
	if r.Summary.Found {
		c.PathWeight.WithLabelValues(algo).Set(float64(r.Summary.PathWeight))
	}
	c.Generation.Set(float64(r.Generation))
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the collector's metrics in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Package metrics instruments the topic engine with Prometheus
// collectors. It is the one place this module promotes a dependency
// that the teacher repo (axmq-ax) carries only indirectly and never
// imports — prometheus/client_golang rides along via its go.mod
// closure but is wired to nothing there.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Set groups the collectors the engine reports to. A nil *Set, or one
// returned by NewNoop, disables instrumentation: every method is a
// nil-safe no-op so the hot path never branches on "is metrics
// enabled".
type Set struct {
	publishes         prometheus.Counter
	triggeredOverflow prometheus.Counter
	triggeredTopics   prometheus.Gauge
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	drainDuration     prometheus.Histogram
}

// NewNoop returns a Set whose methods do nothing. Used as the default
// when Config.Metrics is left nil.
func NewNoop() *Set {
	return &Set{}
}

// New builds a Set and, if reg is non-nil, registers its collectors
// with it.
func New(reg prometheus.Registerer) *Set {
	s := &Set{
		publishes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "topicengine_publishes_total",
			Help: "Total number of Publish calls.",
		}),
		triggeredOverflow: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "topicengine_triggered_overflow_total",
			Help: "Total number of publishes that dropped a match because the triggered-topic capacity was exceeded.",
		}),
		triggeredTopics: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "topicengine_triggered_topics",
			Help: "Number of distinct topics triggered at the start of the most recent drain.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "topicengine_intersection_cache_hits_total",
			Help: "Total number of drain deliveries that reused a cached intersection payload.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "topicengine_intersection_cache_misses_total",
			Help: "Total number of drain deliveries that built a new intersection payload.",
		}),
		drainDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "topicengine_drain_duration_seconds",
			Help:    "Wall-clock duration of Drain calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(
			s.publishes,
			s.triggeredOverflow,
			s.triggeredTopics,
			s.cacheHits,
			s.cacheMisses,
			s.drainDuration,
		)
	}
	return s
}

func (s *Set) Publish() {
	if s == nil || s.publishes == nil {
		return
	}
	s.publishes.Inc()
}

func (s *Set) TriggeredOverflow() {
	if s == nil || s.triggeredOverflow == nil {
		return
	}
	s.triggeredOverflow.Inc()
}

func (s *Set) TriggeredTopics(n int) {
	if s == nil || s.triggeredTopics == nil {
		return
	}
	s.triggeredTopics.Set(float64(n))
}

func (s *Set) CacheHit() {
	if s == nil || s.cacheHits == nil {
		return
	}
	s.cacheHits.Inc()
}

func (s *Set) CacheMiss() {
	if s == nil || s.cacheMisses == nil {
		return
	}
	s.cacheMisses.Inc()
}

func (s *Set) DrainDuration(d time.Duration) {
	if s == nil || s.drainDuration == nil {
		return
	}
	s.drainDuration.Observe(d.Seconds())
}

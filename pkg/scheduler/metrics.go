package scheduler

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func levelLabel(level uint32) string {
	return strconv.FormatUint(uint64(level), 10)
}

// Metrics groups the scheduler's optional prometheus instrumentation,
// grounded on the Namespace/Name/Help GaugeOpts/CounterOpts shape the
// reference corpus's basePrometheusManager.initializeMetrics builds its
// metrics with. Nil-safe throughout: a *Scheduler built without
// WithMetrics leaves this field nil and every setter method below
// short-circuits.
type Metrics struct {
	idleWorkers  prometheus.Gauge
	queueDepth   *prometheus.GaugeVec
	tagsAdvanced prometheus.Counter
}

// NewMetrics builds a Metrics registered against reg, the way the
// reference corpus registers its own gauges/counters against a
// prometheus.Registerer at startup.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		idleWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "reactor_scheduler",
			Name:      "idle_workers",
			Help:      "Number of worker goroutines currently parked waiting for work.",
		}),
		queueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "reactor_scheduler",
			Name:      "level_queue_depth",
			Help:      "Number of reactions currently queued at a given precedence level.",
		}, []string{"level"}),
		tagsAdvanced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reactor_scheduler",
			Name:      "tags_advanced_total",
			Help:      "Total number of logical tags the scheduler has advanced through.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.idleWorkers, m.queueDepth, m.tagsAdvanced)
	}
	return m
}

func (m *Metrics) setIdleWorkers(n int32) {
	if m == nil {
		return
	}
	m.idleWorkers.Set(float64(n))
}

func (m *Metrics) setQueueDepth(level uint32, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(levelLabel(level)).Set(float64(depth))
}

func (m *Metrics) incTagsAdvanced() {
	if m == nil {
		return
	}
	m.tagsAdvanced.Inc()
}

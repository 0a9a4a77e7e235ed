package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements Recorder backed by Prometheus collectors.
// Collectors are created and registered on first use.
type Prometheus struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	attempts     *prometheus.CounterVec
	draws        *prometheus.CounterVec
	drawAttempts prometheus.Histogram
	drawDuration prometheus.Histogram
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus creates a Prometheus-backed recorder.
//
// Parameters:
//   - reg: registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace ("secretsanta" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "secretsanta"
	}

	return &Prometheus{reg: reg, namespace: namespace}
}

func (p *Prometheus) ensureRegistered() {
	p.once.Do(func() {
		p.attempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "attempts_total",
			Help:      "Total search attempts by result (complete, dead_end).",
		}, []string{"result"})

		p.draws = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "draws_total",
			Help:      "Total Assign calls by outcome.",
		}, []string{"outcome"})

		p.drawAttempts = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "draw_attempts",
			Help:      "Attempts used per Assign call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		})

		p.drawDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "draw_duration_seconds",
			Help:      "Wall time of Assign calls in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		})

		p.reg.MustRegister(p.attempts, p.draws, p.drawAttempts, p.drawDuration)
	})
}

// RecordAttempt implements Recorder.
func (p *Prometheus) RecordAttempt(deadEnd bool) {
	p.ensureRegistered()
	result := "complete"
	if deadEnd {
		result = "dead_end"
	}
	p.attempts.WithLabelValues(result).Inc()
}

// RecordDraw implements Recorder.
func (p *Prometheus) RecordDraw(outcome string, attempts int, seconds float64) {
	p.ensureRegistered()
	p.draws.WithLabelValues(outcome).Inc()
	if attempts > 0 {
		p.drawAttempts.Observe(float64(attempts))
	}
	p.drawDuration.Observe(seconds)
}

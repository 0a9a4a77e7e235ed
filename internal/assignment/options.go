package assignment

import (
	"log/slog"
	"time"

	"github.com/mmynk/secretsanta/internal/metrics"
	"github.com/mmynk/secretsanta/internal/models"
)

// DefaultMaxAttempts is the attempt ceiling used when none is configured.
const DefaultMaxAttempts = 10000

// Option configures an Engine.
type Option func(*Engine)

// WithMaxAttempts caps the number of search attempts per Assign call.
// Values below one keep the default.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithTimeBudget caps the wall time of one Assign call. The first attempt
// always runs. Zero disables the budget.
func WithTimeBudget(d time.Duration) Option {
	return func(e *Engine) { e.timeBudget = d }
}

// WithSeed makes every Assign call replay the same random stream.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.seeded = true
	}
}

// WithPruning enables the family-count look-ahead described in the package doc.
func WithPruning(enabled bool) Option {
	return func(e *Engine) { e.prune = enabled }
}

// WithExclusions forbids the given giver to receiver pairs, e.g. pairs drawn
// in earlier years. Edges naming unknown people are ignored.
func WithExclusions(edges []models.Edge) Option {
	return func(e *Engine) {
		for _, edge := range edges {
			e.exclusions[edge] = struct{}{}
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithLogger sets the logger used for dead-end and exhaustion events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

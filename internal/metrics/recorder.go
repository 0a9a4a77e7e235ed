// Package metrics records assignment engine activity.
//
// The engine only depends on the Recorder interface. Nop is the default;
// Prometheus exports counters and histograms for the server binary.
package metrics

// Draw outcomes passed to Recorder.RecordDraw.
const (
	OutcomeSuccess    = "success"
	OutcomeInvalid    = "invalid"
	OutcomeInfeasible = "infeasible"
	OutcomeExhausted  = "exhausted"
)

// Recorder defines methods for recording engine metrics.
//
// Implementations must be safe for concurrent use: one Engine may serve
// several Assign calls at once.
type Recorder interface {
	// RecordAttempt records one finished search attempt.
	// deadEnd is true when the attempt was discarded.
	RecordAttempt(deadEnd bool)

	// RecordDraw records the outcome of one Assign call.
	//
	// Parameters:
	//   - outcome: one of the Outcome* constants
	//   - attempts: attempts used (0 when validation failed)
	//   - seconds: wall time of the call
	RecordDraw(outcome string, attempts int, seconds float64)
}

// Nop discards everything.
type Nop struct{}

var _ Recorder = Nop{}

// NewNop returns a Recorder that does nothing.
func NewNop() Nop { return Nop{} }

func (Nop) RecordAttempt(bool)              {}
func (Nop) RecordDraw(string, int, float64) {}

package assignment

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/mmynk/secretsanta/internal/metrics"
	"github.com/mmynk/secretsanta/internal/models"
)

// Engine draws assignments. Build it with New; the zero value is not usable.
type Engine struct {
	maxAttempts int
	timeBudget  time.Duration
	seed        uint64
	seeded      bool
	prune       bool
	exclusions  map[models.Edge]struct{}
	recorder    metrics.Recorder
	logger      *slog.Logger
}

// New creates an Engine with the given options applied over the defaults.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxAttempts: DefaultMaxAttempts,
		exclusions:  make(map[models.Edge]struct{}),
		recorder:    metrics.NewNop(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assign draws one assignment over people.
//
// Errors wrap ErrInvalidInput, ErrInfeasibleInput or ErrExhaustedRetries.
// On error the returned Assignment is always nil.
func (e *Engine) Assign(people []models.Person) (*Assignment, error) {
	start := time.Now()

	if err := CheckFeasibility(people); err != nil {
		outcome := metrics.OutcomeInvalid
		if errors.Is(err, ErrInfeasibleInput) {
			outcome = metrics.OutcomeInfeasible
		}
		e.recorder.RecordDraw(outcome, 0, time.Since(start).Seconds())
		return nil, err
	}

	rng := e.newRand()
	s := newSearch(people, e.exclusions, e.prune)

	attempts := 0
	for attempts < e.maxAttempts {
		if attempts > 0 && e.timeBudget > 0 && time.Since(start) > e.timeBudget {
			break
		}
		attempts++

		ok := s.attempt(rng)
		e.recorder.RecordAttempt(!ok)
		if !ok {
			e.logger.Debug("assignment dead end", "attempt", attempts, "people", len(people))
			continue
		}

		a := s.result(people, attempts)
		if err := Verify(people, a); err != nil {
			// Unreachable unless the search itself is broken.
			return nil, fmt.Errorf("assignment: search produced a bad result: %w", err)
		}
		e.recorder.RecordDraw(metrics.OutcomeSuccess, attempts, time.Since(start).Seconds())
		return a, nil
	}

	elapsed := time.Since(start)
	e.recorder.RecordDraw(metrics.OutcomeExhausted, attempts, elapsed.Seconds())
	e.logger.Warn("assignment search exhausted",
		"attempts", attempts,
		"people", len(people),
		"duration_ms", elapsed.Milliseconds(),
	)
	return nil, fmt.Errorf("%w: no valid assignment after %d attempts in %s", ErrExhaustedRetries, attempts, elapsed)
}

// newRand returns the random stream for one Assign call.
// Seeded engines replay the same stream on every call.
func (e *Engine) newRand() *rand.Rand {
	if e.seeded {
		return rand.New(rand.NewPCG(e.seed, e.seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// search holds the index-based state of one Assign call.
// Everything is reset at the start of each attempt.
type search struct {
	n        int
	family   []int // family index per person
	sizes    []int // people per family index
	excluded map[[2]int]struct{}
	prune    bool

	order      []int
	taken      []bool
	receiverOf []int
	candidates []int

	// Remaining givers/receivers per family, maintained only when pruning.
	givers    []int
	receivers []int
}

func newSearch(people []models.Person, exclusions map[models.Edge]struct{}, prune bool) *search {
	n := len(people)
	s := &search{
		n:          n,
		family:     make([]int, n),
		prune:      prune,
		order:      make([]int, n),
		taken:      make([]bool, n),
		receiverOf: make([]int, n),
		candidates: make([]int, 0, n),
	}

	familyIndex := make(map[string]int)
	personIndex := make(map[string]int, n)
	for i, p := range people {
		f, ok := familyIndex[p.FamilyID]
		if !ok {
			f = len(familyIndex)
			familyIndex[p.FamilyID] = f
			s.sizes = append(s.sizes, 0)
		}
		s.family[i] = f
		s.sizes[f]++
		personIndex[p.ID] = i
	}

	if len(exclusions) > 0 {
		s.excluded = make(map[[2]int]struct{}, len(exclusions))
		for edge := range exclusions {
			g, gok := personIndex[edge.GiverID]
			r, rok := personIndex[edge.ReceiverID]
			if gok && rok {
				s.excluded[[2]int{g, r}] = struct{}{}
			}
		}
	}

	if prune {
		s.givers = make([]int, len(s.sizes))
		s.receivers = make([]int, len(s.sizes))
	}

	return s
}

// attempt runs one greedy pass. It reports false on a dead end.
func (s *search) attempt(rng *rand.Rand) bool {
	for i := range s.order {
		s.order[i] = i
		s.taken[i] = false
	}
	rng.Shuffle(s.n, func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	if s.prune {
		copy(s.givers, s.sizes)
		copy(s.receivers, s.sizes)
	}

	remaining := s.n
	for _, g := range s.order {
		s.candidates = s.candidates[:0]
		for r := 0; r < s.n; r++ {
			if s.taken[r] || r == g || s.family[r] == s.family[g] {
				continue
			}
			if _, ok := s.excluded[[2]int{g, r}]; ok {
				continue
			}
			if s.prune && !s.fitsAfter(g, r, remaining) {
				continue
			}
			s.candidates = append(s.candidates, r)
		}
		if len(s.candidates) == 0 {
			return false
		}

		r := s.candidates[rng.IntN(len(s.candidates))]
		s.taken[r] = true
		s.receiverOf[g] = r
		if s.prune {
			s.givers[s.family[g]]--
			s.receivers[s.family[r]]--
		}
		remaining--
	}

	return true
}

// fitsAfter reports whether the remaining people still admit a perfect
// matching once g gives to r: every family f needs givers_f + receivers_f <= m.
func (s *search) fitsAfter(g, r, remaining int) bool {
	m := remaining - 1
	for f := range s.givers {
		load := s.givers[f] + s.receivers[f]
		if f == s.family[g] {
			load--
		}
		if f == s.family[r] {
			load--
		}
		if load > m {
			return false
		}
	}
	return true
}

// result copies the committed attempt into a fresh Assignment.
func (s *search) result(people []models.Person, attempts int) *Assignment {
	edges := make([]models.Edge, s.n)
	for g := 0; g < s.n; g++ {
		edges[g] = models.Edge{
			GiverID:    people[g].ID,
			ReceiverID: people[s.receiverOf[g]].ID,
		}
	}
	return FromEdges(edges, attempts)
}

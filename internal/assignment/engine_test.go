package assignment_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/secretsanta/internal/assignment"
	"github.com/mmynk/secretsanta/internal/models"
)

// roster builds people from family sizes: family i gets sizes[i] members
// named "f<i>-<j>".
func roster(sizes ...int) []models.Person {
	var people []models.Person
	for f, size := range sizes {
		for j := 0; j < size; j++ {
			id := fmt.Sprintf("f%d-%d", f, j)
			people = append(people, models.Person{ID: id, FamilyID: fmt.Sprintf("f%d", f), Name: id})
		}
	}
	return people
}

func repeat(size, times int) []int {
	out := make([]int, times)
	for i := range out {
		out[i] = size
	}
	return out
}

type countingRecorder struct {
	mu       sync.Mutex
	deadEnds int
	complete int
	outcomes []string
}

func (r *countingRecorder) RecordAttempt(deadEnd bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if deadEnd {
		r.deadEnds++
	} else {
		r.complete++
	}
}

func (r *countingRecorder) RecordDraw(outcome string, _ int, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func TestAssign_ValidRosters(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
	}{
		{"two singletons", []int{1, 1}},
		{"two pairs", []int{2, 2}},
		{"three singletons", []int{1, 1, 1}},
		{"uneven families", []int{3, 2, 1}},
		{"family exactly half", []int{4, 1, 1, 1, 1}},
		{"many small families", repeat(2, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people := roster(tt.sizes...)
			for seed := uint64(1); seed <= 25; seed++ {
				a, err := assignment.New(assignment.WithSeed(seed)).Assign(people)
				require.NoError(t, err, "seed %d", seed)
				require.NoError(t, assignment.Verify(people, a), "seed %d", seed)
				require.GreaterOrEqual(t, a.Attempts, 1)
			}
		})
	}
}

func TestAssign_TwoPeopleIsForced(t *testing.T) {
	people := []models.Person{
		{ID: "a", FamilyID: "0", Name: "A"},
		{ID: "b", FamilyID: "1", Name: "B"},
	}

	for i := 0; i < 20; i++ {
		a, err := assignment.New().Assign(people)
		require.NoError(t, err)
		require.Equal(t, []models.Edge{
			{GiverID: "a", ReceiverID: "b"},
			{GiverID: "b", ReceiverID: "a"},
		}, a.Edges)
		require.Equal(t, 1, a.Attempts)
	}
}

func TestAssign_TwoFamiliesOfTwo(t *testing.T) {
	people := []models.Person{
		{ID: "A", FamilyID: "0"},
		{ID: "B", FamilyID: "0"},
		{ID: "C", FamilyID: "1"},
		{ID: "D", FamilyID: "1"},
	}
	family := map[string]string{"A": "0", "B": "0", "C": "1", "D": "1"}

	seen := make(map[string]bool)
	for seed := uint64(1); seed <= 200; seed++ {
		a, err := assignment.New(assignment.WithSeed(seed)).Assign(people)
		require.NoError(t, err)
		require.NoError(t, assignment.Verify(people, a))

		key := ""
		for _, e := range a.Edges {
			require.NotEqual(t, family[e.GiverID], family[e.ReceiverID])
			key += e.GiverID + e.ReceiverID + " "
		}
		seen[key] = true
	}

	// A and B each give to C or D, C and D each give to A or B: 2 x 2 outcomes.
	require.Len(t, seen, 4)
}

func TestAssign_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		people []models.Person
	}{
		{"empty", nil},
		{"single person", []models.Person{{ID: "a", FamilyID: "0"}}},
		{"missing ID", []models.Person{{ID: "a", FamilyID: "0"}, {FamilyID: "1"}}},
		{"missing family", []models.Person{{ID: "a", FamilyID: "0"}, {ID: "b"}}},
		{"duplicate ID", []models.Person{{ID: "a", FamilyID: "0"}, {ID: "a", FamilyID: "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := assignment.New().Assign(tt.people)
			require.ErrorIs(t, err, assignment.ErrInvalidInput)
			require.Nil(t, a)
		})
	}
}

func TestAssign_InfeasibleInput(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
	}{
		{"single family", []int{4}},
		{"strict majority", []int{3, 2}},
		{"majority against many singletons", []int{6, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &countingRecorder{}
			a, err := assignment.New(assignment.WithRecorder(rec)).Assign(roster(tt.sizes...))
			require.ErrorIs(t, err, assignment.ErrInfeasibleInput)
			require.Nil(t, a)
			require.Zero(t, rec.deadEnds+rec.complete, "infeasible input must not be searched")
			require.Equal(t, []string{"infeasible"}, rec.outcomes)
		})
	}
}

func TestAssign_RepeatedRunsStayValid(t *testing.T) {
	people := roster(3, 3, 2, 2, 1)
	engine := assignment.New()

	for i := 0; i < 200; i++ {
		a, err := engine.Assign(people)
		require.NoError(t, err)
		require.NoError(t, assignment.Verify(people, a))
	}
}

func TestAssign_StressHundredPeople(t *testing.T) {
	people := roster(repeat(5, 20)...)

	for _, prune := range []bool{false, true} {
		t.Run(fmt.Sprintf("prune=%v", prune), func(t *testing.T) {
			engine := assignment.New(
				assignment.WithPruning(prune),
				assignment.WithMaxAttempts(assignment.DefaultMaxAttempts),
			)
			for i := 0; i < 20; i++ {
				a, err := engine.Assign(people)
				require.NoError(t, err)
				require.Equal(t, 100, a.Len())
				require.NoError(t, assignment.Verify(people, a))
				require.LessOrEqual(t, a.Attempts, assignment.DefaultMaxAttempts)
			}
		})
	}
}

func TestAssign_SeedIsDeterministic(t *testing.T) {
	people := roster(repeat(3, 8)...)

	first, err := assignment.New(assignment.WithSeed(42)).Assign(people)
	require.NoError(t, err)

	engine := assignment.New(assignment.WithSeed(42))
	for i := 0; i < 5; i++ {
		again, err := engine.Assign(people)
		require.NoError(t, err)
		require.Equal(t, first.Edges, again.Edges)
		require.Equal(t, first.Attempts, again.Attempts)
	}
}

func TestAssign_DoesNotMutateInput(t *testing.T) {
	people := roster(2, 2, 2)
	before := append([]models.Person(nil), people...)

	_, err := assignment.New().Assign(people)
	require.NoError(t, err)
	require.Equal(t, before, people)
}

func TestAssign_EdgesFollowRosterOrder(t *testing.T) {
	people := roster(2, 2, 2)

	a, err := assignment.New().Assign(people)
	require.NoError(t, err)
	for i, p := range people {
		require.Equal(t, p.ID, a.Edges[i].GiverID)
		r, ok := a.ReceiverOf(p.ID)
		require.True(t, ok)
		require.Equal(t, a.Edges[i].ReceiverID, r)
	}
}

func TestAssign_HonoursExclusions(t *testing.T) {
	people := roster(1, 1, 1, 1)
	excluded := []models.Edge{
		{GiverID: "f0-0", ReceiverID: "f1-0"},
		{GiverID: "f0-0", ReceiverID: "f2-0"},
		{GiverID: "f1-0", ReceiverID: "f0-0"},
	}

	for seed := uint64(1); seed <= 30; seed++ {
		a, err := assignment.New(assignment.WithSeed(seed), assignment.WithExclusions(excluded)).Assign(people)
		require.NoError(t, err)
		require.NoError(t, assignment.Verify(people, a))

		r, _ := a.ReceiverOf("f0-0")
		require.Equal(t, "f3-0", r)
		r, _ = a.ReceiverOf("f1-0")
		require.NotEqual(t, "f0-0", r)
	}

	t.Run("unknown people are ignored", func(t *testing.T) {
		pair := roster(1, 1)
		a, err := assignment.New(assignment.WithExclusions([]models.Edge{
			{GiverID: "ghost", ReceiverID: "f1-0"},
			{GiverID: "f0-0", ReceiverID: "ghost"},
		})).Assign(pair)
		require.NoError(t, err)
		require.Equal(t, []models.Edge{
			{GiverID: "f0-0", ReceiverID: "f1-0"},
			{GiverID: "f1-0", ReceiverID: "f0-0"},
		}, a.Edges)
	})
}

func TestAssign_ExhaustsAttemptCeiling(t *testing.T) {
	people := roster(1, 1)
	rec := &countingRecorder{}
	engine := assignment.New(
		assignment.WithMaxAttempts(7),
		assignment.WithExclusions([]models.Edge{{GiverID: "f0-0", ReceiverID: "f1-0"}}),
		assignment.WithRecorder(rec),
	)

	a, err := engine.Assign(people)
	require.ErrorIs(t, err, assignment.ErrExhaustedRetries)
	require.Nil(t, a)
	require.Equal(t, 7, rec.deadEnds)
	require.Zero(t, rec.complete)
	require.Equal(t, []string{"exhausted"}, rec.outcomes)
}

func TestAssign_ExhaustsTimeBudget(t *testing.T) {
	people := roster(1, 1)
	rec := &countingRecorder{}
	engine := assignment.New(
		assignment.WithMaxAttempts(1_000_000_000),
		assignment.WithTimeBudget(time.Millisecond),
		assignment.WithExclusions([]models.Edge{{GiverID: "f1-0", ReceiverID: "f0-0"}}),
		assignment.WithRecorder(rec),
	)

	start := time.Now()
	_, err := engine.Assign(people)
	require.True(t, errors.Is(err, assignment.ErrExhaustedRetries))
	require.Less(t, time.Since(start), 5*time.Second)
	require.GreaterOrEqual(t, rec.deadEnds, 1)
}

func TestAssign_PruningAvoidsDeadEnds(t *testing.T) {
	// One family holds exactly half: every other giver must give into it.
	sizes := append([]int{50}, repeat(1, 50)...)
	people := roster(sizes...)

	for seed := uint64(1); seed <= 10; seed++ {
		rec := &countingRecorder{}
		a, err := assignment.New(
			assignment.WithSeed(seed),
			assignment.WithPruning(true),
			assignment.WithRecorder(rec),
		).Assign(people)
		require.NoError(t, err)
		require.NoError(t, assignment.Verify(people, a))
		require.Equal(t, 1, a.Attempts)
		require.Zero(t, rec.deadEnds)
	}
}

func TestAssign_ConcurrentCalls(t *testing.T) {
	people := roster(repeat(4, 10)...)
	engine := assignment.New()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := engine.Assign(people)
			if err == nil {
				err = assignment.Verify(people, a)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

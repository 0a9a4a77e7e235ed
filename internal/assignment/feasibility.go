package assignment

import (
	"fmt"

	"github.com/mmynk/secretsanta/internal/models"
)

// CheckFeasibility validates people and checks that an assignment can exist.
// It returns an error wrapping ErrInvalidInput or ErrInfeasibleInput, or nil.
func CheckFeasibility(people []models.Person) error {
	if len(people) < 2 {
		return fmt.Errorf("%w: need at least two people, got %d", ErrInvalidInput, len(people))
	}

	seen := make(map[string]struct{}, len(people))
	sizes := make(map[string]int)
	for i, p := range people {
		if p.ID == "" {
			return fmt.Errorf("%w: person %d has no ID", ErrInvalidInput, i)
		}
		if p.FamilyID == "" {
			return fmt.Errorf("%w: person %q has no family ID", ErrInvalidInput, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate person ID %q", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
		sizes[p.FamilyID]++
	}

	if len(sizes) < 2 {
		return fmt.Errorf("%w: need at least two families, got %d", ErrInfeasibleInput, len(sizes))
	}
	for family, size := range sizes {
		if 2*size > len(people) {
			return fmt.Errorf("%w: family %q holds %d of %d people", ErrInfeasibleInput, family, size, len(people))
		}
	}

	return nil
}

// Verify checks that a is a permutation over people with no self edges and
// no edges inside a family.
func Verify(people []models.Person, a *Assignment) error {
	if a == nil {
		return fmt.Errorf("%w: nil assignment", ErrInvalidAssignment)
	}
	if len(a.Edges) != len(people) {
		return fmt.Errorf("%w: %d edges for %d people", ErrInvalidAssignment, len(a.Edges), len(people))
	}

	family := make(map[string]string, len(people))
	for _, p := range people {
		family[p.ID] = p.FamilyID
	}

	gives := make(map[string]bool, len(people))
	receives := make(map[string]bool, len(people))
	for _, e := range a.Edges {
		gf, ok := family[e.GiverID]
		if !ok {
			return fmt.Errorf("%w: unknown giver %q", ErrInvalidAssignment, e.GiverID)
		}
		rf, ok := family[e.ReceiverID]
		if !ok {
			return fmt.Errorf("%w: unknown receiver %q", ErrInvalidAssignment, e.ReceiverID)
		}
		if gives[e.GiverID] {
			return fmt.Errorf("%w: %q gives twice", ErrInvalidAssignment, e.GiverID)
		}
		if receives[e.ReceiverID] {
			return fmt.Errorf("%w: %q receives twice", ErrInvalidAssignment, e.ReceiverID)
		}
		if e.GiverID == e.ReceiverID {
			return fmt.Errorf("%w: %q gives to themselves", ErrInvalidAssignment, e.GiverID)
		}
		if gf == rf {
			return fmt.Errorf("%w: %q and %q share family %q", ErrInvalidAssignment, e.GiverID, e.ReceiverID, gf)
		}
		gives[e.GiverID] = true
		receives[e.ReceiverID] = true
	}

	return nil
}

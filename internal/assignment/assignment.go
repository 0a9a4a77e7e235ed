package assignment

import "github.com/mmynk/secretsanta/internal/models"

// Assignment is a complete giver to receiver mapping.
// It never aliases the roster it was drawn from.
type Assignment struct {
	// Edges holds one edge per person, in roster order of givers.
	Edges []models.Edge

	// Attempts is the number of search attempts used, including the
	// successful one. Zero for assignments rebuilt from storage.
	Attempts int

	receivers map[string]string
}

// FromEdges wraps already committed edges, e.g. a draw loaded from storage.
// The edges are copied.
func FromEdges(edges []models.Edge, attempts int) *Assignment {
	a := &Assignment{
		Edges:     make([]models.Edge, len(edges)),
		Attempts:  attempts,
		receivers: make(map[string]string, len(edges)),
	}
	copy(a.Edges, edges)
	for _, e := range edges {
		a.receivers[e.GiverID] = e.ReceiverID
	}
	return a
}

// ReceiverOf returns who the given person gives to.
func (a *Assignment) ReceiverOf(giverID string) (string, bool) {
	r, ok := a.receivers[giverID]
	return r, ok
}

// Len returns the number of edges.
func (a *Assignment) Len() int {
	return len(a.Edges)
}

package models

// Event is a named roster owned by an organizer.
// Draws are always run against the people of exactly one event.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string

	// Name is the display name of the event (e.g., "Smiths 2026").
	Name string

	// People is the roster, in the order it was submitted.
	People []Person

	// PassphraseHash is the bcrypt hash of the organizer passphrase.
	// Never exposed by the service layer.
	PassphraseHash string

	// CreatedAt is the Unix timestamp when the event was created.
	CreatedAt int64
}

// Draw is one committed assignment for an event.
type Draw struct {
	// ID is the unique identifier for the draw (UUID format).
	ID string

	// EventID is the event this draw belongs to.
	EventID string

	// Edges holds one edge per person, in roster order of givers.
	Edges []Edge

	// Attempts is how many search attempts the engine used.
	Attempts int

	// CreatedAt is the Unix timestamp when the draw was committed.
	CreatedAt int64
}

// DrawSummary is the list view of a draw, without its edges.
type DrawSummary struct {
	ID        string
	EventID   string
	Attempts  int
	CreatedAt int64
}

// PersonByID indexes the event roster by person ID.
func (e *Event) PersonByID() map[string]Person {
	out := make(map[string]Person, len(e.People))
	for _, p := range e.People {
		out[p.ID] = p
	}
	return out
}

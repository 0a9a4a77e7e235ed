// Package api defines the DrawService wire messages and its Connect
// handler and client. Messages travel as JSON through a Connect codec, so no
// generated code is involved.
package api

// Family is one family in a CreateEvent request.
type Family struct {
	Name    string   `json:"name,omitempty"`
	Members []string `json:"members"`
}

// Person is one participant as exposed by the service.
type Person struct {
	ID       string `json:"id"`
	FamilyID string `json:"family_id"`
	Name     string `json:"name"`
}

// Event is an event without any secret material.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	People    []*Person `json:"people,omitempty"`
	CreatedAt int64     `json:"created_at"`
}

// Pair is one giver/receiver pair by person ID and name.
type Pair struct {
	GiverID      string `json:"giver_id"`
	GiverName    string `json:"giver_name"`
	ReceiverID   string `json:"receiver_id"`
	ReceiverName string `json:"receiver_name"`
}

// RevealToken hands one giver the token that reveals their receiver.
type RevealToken struct {
	GiverID   string `json:"giver_id"`
	GiverName string `json:"giver_name"`
	Token     string `json:"token"`
}

// DrawSummary is a draw without its pairs.
type DrawSummary struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Attempts  int32  `json:"attempts"`
	CreatedAt int64  `json:"created_at"`
}

// CreateEventRequest registers a roster under an organizer passphrase.
type CreateEventRequest struct {
	Name       string    `json:"name"`
	Passphrase string    `json:"passphrase"`
	Families   []*Family `json:"families"`
}

// CreateEventResponse returns the stored event with generated person IDs.
type CreateEventResponse struct {
	Event *Event `json:"event"`
}

// GetEventRequest names the event to load.
type GetEventRequest struct {
	EventID string `json:"event_id"`
}

// GetEventResponse carries the roster and the event's draws, newest first.
type GetEventResponse struct {
	Event *Event         `json:"event"`
	Draws []*DrawSummary `json:"draws,omitempty"`
}

// ListEventsRequest lists every event.
type ListEventsRequest struct{}

// ListEventsResponse holds events without their rosters.
type ListEventsResponse struct {
	Events []*Event `json:"events"`
}

// DeleteEventRequest removes an event and its draws. Organizer only.
type DeleteEventRequest struct {
	EventID    string `json:"event_id"`
	Passphrase string `json:"passphrase"`
}

// DeleteEventResponse is empty.
type DeleteEventResponse struct{}

// RunDrawRequest draws and commits a new assignment. Organizer only.
type RunDrawRequest struct {
	EventID    string `json:"event_id"`
	Passphrase string `json:"passphrase"`
	// AvoidPrevious excludes every pair drawn in this many most recent draws.
	AvoidPrevious int32 `json:"avoid_previous,omitempty"`
}

// RunDrawResponse holds the committed draw and one reveal token per giver.
type RunDrawResponse struct {
	Draw   *DrawSummary   `json:"draw"`
	Tokens []*RevealToken `json:"tokens"`
}

// GetDrawRequest asks for every pair of a draw. Organizer only.
type GetDrawRequest struct {
	DrawID     string `json:"draw_id"`
	Passphrase string `json:"passphrase"`
}

// GetDrawResponse lists the pairs in roster order of givers.
type GetDrawResponse struct {
	Draw  *DrawSummary `json:"draw"`
	Pairs []*Pair      `json:"pairs"`
}

// RevealRequest carries nothing: the reveal token in the Authorization
// header identifies both the draw and the giver.
type RevealRequest struct{}

// RevealResponse names the token holder and who they give to.
type RevealResponse struct {
	GiverName    string `json:"giver_name"`
	ReceiverName string `json:"receiver_name"`
}

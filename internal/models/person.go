package models

// Person is one participant in a gift exchange.
type Person struct {
	// ID is the unique identifier for the person (UUID format when loaded from a roster).
	ID string

	// FamilyID groups people who must not exchange gifts with each other.
	FamilyID string

	// Name is the display name of the person.
	Name string
}

// Edge is an ordered pair meaning "giver gives a gift to receiver".
type Edge struct {
	GiverID    string
	ReceiverID string
}

// Family is a labelled set of members, as written in a roster or a request.
type Family struct {
	// Name is the family label. Empty names are replaced by a positional ID.
	Name string

	// Members is the list of display names in this family.
	Members []string
}

// Families regroups people by FamilyID, keeping roster order within each family.
func Families(people []Person) map[string][]Person {
	out := make(map[string][]Person)
	for _, p := range people {
		out[p.FamilyID] = append(out[p.FamilyID], p)
	}
	return out
}

// Package report formats a drawn assignment for people to read.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmynk/secretsanta/internal/assignment"
	"github.com/mmynk/secretsanta/internal/models"
)

// Pair is one giver/receiver line, by display name.
type Pair struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

// Pairs resolves the assignment to display names, in roster order of givers.
// Givers missing from the assignment are skipped.
func Pairs(people []models.Person, a *assignment.Assignment) []Pair {
	byID := make(map[string]string, len(people))
	for _, p := range people {
		byID[p.ID] = p.Name
	}

	out := make([]Pair, 0, len(people))
	for _, p := range people {
		r, ok := a.ReceiverOf(p.ID)
		if !ok {
			continue
		}
		out = append(out, Pair{Giver: p.Name, Receiver: byID[r]})
	}
	return out
}

// WriteText writes aligned "Giver -> Receiver" lines.
func WriteText(w io.Writer, people []models.Person, a *assignment.Assignment) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, p := range Pairs(people, a) {
		if _, err := fmt.Fprintf(tw, "%s\t-> %s\n", p.Giver, p.Receiver); err != nil {
			return err
		}
	}
	return tw.Flush()
}

type jsonReport struct {
	Attempts int    `json:"attempts"`
	Pairs    []Pair `json:"pairs"`
}

// WriteJSON writes {"attempts": n, "pairs": [...]}.
func WriteJSON(w io.Writer, people []models.Person, a *assignment.Assignment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Attempts: a.Attempts, Pairs: Pairs(people, a)})
}

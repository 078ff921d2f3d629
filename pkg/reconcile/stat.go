// Package reconcile merges an ingested dataset into an existing hierarchy
// document in place, deciding for every city whether it is new, unchanged,
// relocated, or in conflict, and reports the changes as a Stat.
package reconcile

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is a single added or deleted city.
type Entry struct {
	Code string // fully-qualified "COUNTRY REGION CITY"
	Name string
}

// Move records a city relocated out of the placeholder region.
type Move struct {
	From string
	To   string
	Name string
}

// Conflict records a city whose existing region disagrees with the dataset.
// Conflicts are never resolved automatically; both codes are reported for a
// human to reconcile.
type Conflict struct {
	Existing string
	Incoming string
	Name     string
}

// Stat is the outcome of one reconciliation call.
type Stat struct {
	Added     []Entry
	Deleted   []Entry
	Moved     []Move
	Conflicts []Conflict

	// Todo is set when any placeholder name was synthesized.
	Todo bool
}

// HasChanges returns true if the stat contains any changes.
func (s *Stat) HasChanges() bool {
	return len(s.Added) > 0 || len(s.Deleted) > 0 ||
		len(s.Moved) > 0 || len(s.Conflicts) > 0
}

// Sort orders every collection by code for reporting. Sorting is a
// presentation concern; the engine itself makes no ordering promises.
func (s *Stat) Sort() {
	sort.Slice(s.Added, func(i, j int) bool { return s.Added[i].Code < s.Added[j].Code })
	sort.Slice(s.Deleted, func(i, j int) bool { return s.Deleted[i].Code < s.Deleted[j].Code })
	sort.Slice(s.Moved, func(i, j int) bool { return s.Moved[i].From < s.Moved[j].From })
	sort.Slice(s.Conflicts, func(i, j int) bool { return s.Conflicts[i].Existing < s.Conflicts[j].Existing })
}

// String returns a human-readable summary of the stat.
func (s *Stat) String() string {
	if !s.HasChanges() {
		return "No changes detected"
	}
	var parts []string
	if len(s.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(s.Added)))
	}
	if len(s.Moved) > 0 {
		parts = append(parts, fmt.Sprintf("%d moved", len(s.Moved)))
	}
	if len(s.Deleted) > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", len(s.Deleted)))
	}
	if len(s.Conflicts) > 0 {
		parts = append(parts, fmt.Sprintf("%d conflicting", len(s.Conflicts)))
	}
	total := len(s.Added) + len(s.Moved) + len(s.Deleted) + len(s.Conflicts)
	return fmt.Sprintf("Cities: %s (Total: %d changes)", strings.Join(parts, ", "), total)
}

// Print outputs a detailed, human-readable view of the stat.
func (s *Stat) Print() {
	fmt.Println(s.String())
	if !s.HasChanges() {
		return
	}
	fmt.Println(strings.Repeat("─", 80))

	if len(s.Added) > 0 {
		fmt.Printf("\nAdded cities (%d):\n", len(s.Added))
		for _, e := range s.Added {
			fmt.Printf("  • %s (%s)\n", e.Code, e.Name)
		}
	}
	if len(s.Moved) > 0 {
		fmt.Printf("\nMoved cities (%d):\n", len(s.Moved))
		for _, m := range s.Moved {
			fmt.Printf("  • %s → %s (%s)\n", m.From, m.To, m.Name)
		}
	}
	if len(s.Deleted) > 0 {
		fmt.Printf("\nDeleted cities (%d):\n", len(s.Deleted))
		for _, e := range s.Deleted {
			fmt.Printf("  • %s (%s)\n", e.Code, e.Name)
		}
	}
	if len(s.Conflicts) > 0 {
		fmt.Printf("\nConflicting cities (%d):\n", len(s.Conflicts))
		for _, c := range s.Conflicts {
			fmt.Printf("  • %s vs %s (%s)\n", c.Existing, c.Incoming, c.Name)
		}
	}
	if s.Todo {
		fmt.Println("\nPlaceholder names were generated; search the output for the TODO marker.")
	}
}

// Package roster holds the player roster, its recycle pools, and the
// snake-draft stat distributor.
//
// Roster, Player and Stat are not safe for concurrent use; callers that
// share a Roster across goroutines must serialize access (see package table).
package roster

import "strconv"

// Stat is a single named ability score.
type Stat struct {
	Name  string
	Value int
}

// NewStat returns a Stat with the given label and value.
func NewStat(name string, value int) *Stat {
	return &Stat{Name: name, Value: value}
}

// SetValue overwrites the stat's value. No range validation is applied; see Range.
func (s *Stat) SetValue(v int) {
	s.Value = v
}

// StatName returns the positional label for the 1-based position pos.
func StatName(pos int) string {
	return "Stat " + strconv.Itoa(pos)
}

// Range is an inclusive bound on stat values.
type Range struct {
	Min int
	Max int
}

// Clamp returns v limited to [r.Min, r.Max].
//
// Precondition: r.Min <= r.Max.
func (r Range) Clamp(v int) int {
	return max(r.Min, min(v, r.Max))
}

// Contains reports whether v lies within r.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Package dice provides the randomness abstraction, dice expressions and
// roll-result types used to generate stat values.
package dice

import "fmt"

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier. Dropped dice never count.
type RollResult struct {
	Expression string // original expression string, e.g. "4d6kh3"
	Dice       []int  // kept die results before modifier
	Dropped    []int  // die results discarded by a keep/drop suffix
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all kept die results plus the modifier.
//
// Postcondition: return value == sum(r.Dice) + r.Modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"4d6kh3 → [6 5 4] drop [2] +0 = 15"
//
// The drop segment is omitted when nothing was dropped.
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	diceStr := fmt.Sprintf("%v", r.Dice)
	if len(r.Dropped) > 0 {
		diceStr += fmt.Sprintf(" drop %v", r.Dropped)
	}
	modStr := fmt.Sprintf("%+d", r.Modifier)
	return fmt.Sprintf("%s → %s %s = %d", r.Expression, diceStr, modStr, r.Total())
}

// Source is the randomness provider for dice rolls and shuffles.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

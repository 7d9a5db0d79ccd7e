package roster

import "fmt"

// ValueFunc produces one stat value per call.
type ValueFunc func() (int, error)

// RollAll overwrites every active stat of every player with a value from next.
//
// Postcondition: on success every active stat holds a fresh value; on error
// the stats visited before the failure keep their new values.
func RollAll(r *Roster, next ValueFunc) error {
	for i, p := range r.players {
		for j, s := range p.stats {
			v, err := next()
			if err != nil {
				return fmt.Errorf("rolling player %d stat %d: %w", i+1, j+1, err)
			}
			s.SetValue(v)
		}
	}
	return nil
}

// Shuffle permutes each active player's stats uniformly at random and then
// relabels them by position. intn must return a value in [0, n).
func Shuffle(r *Roster, intn func(n int) int) {
	for _, p := range r.players {
		p.shuffleStats(intn)
		p.ReindexStats()
	}
}

package roster

import (
	"cmp"
	"slices"
)

// SnakeIndex returns the player that receives the k-th (0-based) dealt stat
// among n players: forward on even rounds, backward on odd rounds.
//
// Precondition: n > 0, k >= 0.
func SnakeIndex(n, k int) int {
	round, pos := k/n, k%n
	if round%2 == 1 {
		return n - 1 - pos
	}
	return pos
}

// SnakeOrder returns the player index for each of total dealt stats among n
// players, e.g. n=3: 0 1 2 2 1 0 0 1 2 ...
// It returns nil when n <= 0 or total <= 0.
func SnakeOrder(n, total int) []int {
	if n <= 0 || total <= 0 {
		return nil
	}
	out := make([]int, total)
	for k := range out {
		out[k] = SnakeIndex(n, k)
	}
	return out
}

// Distribute pools every active stat, sorts the pool ascending by value and
// deals it back to the players in snake order, so the lowest value goes to
// player 0, the next to player 1, and the direction reverses at each end.
//
// Ties keep collection order (player order, then stat order). Each dealt
// stat is appended to its player, so post-distribution order is deal order.
// An empty roster or a roster without stats is left untouched.
//
// Postcondition: the multiset of values across the roster is unchanged.
func Distribute(r *Roster) {
	n := len(r.players)
	if n == 0 {
		return
	}

	var pool []*Stat
	for _, p := range r.players {
		pool = append(pool, p.drainStats()...)
	}
	if len(pool) == 0 {
		return
	}

	slices.SortStableFunc(pool, func(a, b *Stat) int {
		return cmp.Compare(a.Value, b.Value)
	})

	for k, s := range pool {
		r.players[SnakeIndex(n, k)].appendStat(s)
	}
}

package roster

import (
	"fmt"
	"strconv"
)

// Roster is an ordered collection of players plus a recycle bin of players
// removed when the roster shrinks.
//
// Invariant: after Rebuild, Len() == TargetPlayerCount() and every player,
// active or recycled, holds TargetStatCount() stats.
type Roster struct {
	players           []*Player
	recycleBin        []*Player
	targetPlayerCount int
	targetStatCount   int
}

// New returns a Roster initialized to players players holding stats stats each.
// Negative counts are treated as zero.
func New(players, stats int) *Roster {
	r := &Roster{
		targetPlayerCount: max(players, 0),
		targetStatCount:   max(stats, 0),
	}
	r.Rebuild()
	return r
}

// NewPlayerName returns the default label for a player created at 1-based position pos.
func NewPlayerName(pos int) string {
	return "New Player " + strconv.Itoa(pos)
}

// Len returns the number of active players.
func (r *Roster) Len() int { return len(r.players) }

// TargetPlayerCount returns the requested player count.
func (r *Roster) TargetPlayerCount() int { return r.targetPlayerCount }

// TargetStatCount returns the requested per-player stat count.
func (r *Roster) TargetStatCount() int { return r.targetStatCount }

// Players returns the active players in order. The slice is a copy; the
// players are shared.
func (r *Roster) Players() []*Player {
	out := make([]*Player, len(r.players))
	copy(out, r.players)
	return out
}

// Player returns the i-th active player, or nil when i is out of range.
func (r *Roster) Player(i int) *Player {
	if i < 0 || i >= len(r.players) {
		return nil
	}
	return r.players[i]
}

// RecycledPlayers returns the players waiting in the recycle bin, front first.
func (r *Roster) RecycledPlayers() []*Player {
	out := make([]*Player, len(r.recycleBin))
	copy(out, r.recycleBin)
	return out
}

// SetTargetPlayerCount sets the requested player count and rebuilds.
// A negative n is treated as zero.
func (r *Roster) SetTargetPlayerCount(n int) {
	r.targetPlayerCount = max(n, 0)
	r.Rebuild()
}

// SetTargetStatCount sets the requested per-player stat count and rebuilds.
// A negative n is treated as zero.
func (r *Roster) SetTargetStatCount(n int) {
	r.targetStatCount = max(n, 0)
	r.Rebuild()
}

// Rebuild reshapes the roster to the target counts.
//
// Every player, active and recycled, is resized to the target stat count so
// recycled players come back with the right shape. Surplus players move from
// the tail onto the recycle bin; missing players are taken from the front of
// the bin, or created as "New Player <position>" once the bin is empty.
//
// Postcondition: Len() == TargetPlayerCount(); every player holds
// TargetStatCount() stats.
func (r *Roster) Rebuild() {
	diff := len(r.players) - r.targetPlayerCount

	for _, p := range r.players {
		p.ResizeStats(r.targetStatCount)
	}
	for _, p := range r.recycleBin {
		p.ResizeStats(r.targetStatCount)
	}

	for ; diff > 0; diff-- {
		last := len(r.players) - 1
		r.recycleBin = append(r.recycleBin, r.players[last])
		r.players[last] = nil
		r.players = r.players[:last]
	}
	for ; diff < 0; diff++ {
		if len(r.recycleBin) > 0 {
			p := r.recycleBin[0]
			r.recycleBin[0] = nil
			r.recycleBin = r.recycleBin[1:]
			r.players = append(r.players, p)
			continue
		}
		r.players = append(r.players, NewPlayer(r.targetStatCount, NewPlayerName(len(r.players)+1)))
	}

	r.checkInvariants()
}

func (r *Roster) checkInvariants() {
	if len(r.players) != r.targetPlayerCount {
		panic(fmt.Sprintf("roster: rebuild left %d players, want %d", len(r.players), r.targetPlayerCount))
	}
	for i, p := range r.players {
		if p.StatCount() != r.targetStatCount {
			panic(fmt.Sprintf("roster: player %d holds %d stats, want %d", i, p.StatCount(), r.targetStatCount))
		}
	}
}

// ReindexStats relabels every active player's stats by position.
func (r *Roster) ReindexStats() {
	for _, p := range r.players {
		p.ReindexStats()
	}
}

// Values returns every active stat value, in player order then stat order.
func (r *Roster) Values() []int {
	var out []int
	for _, p := range r.players {
		out = append(out, p.Values()...)
	}
	return out
}

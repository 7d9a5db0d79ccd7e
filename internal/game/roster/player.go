package roster

import "github.com/google/uuid"

// Player is an ordered collection of stats plus a recycle bin of stats
// removed when the stat count shrinks.
//
// Invariant: after a roster rebuild len(stats) equals the roster's target
// stat count.
type Player struct {
	id         uuid.UUID
	name       string
	stats      []*Stat
	recycleBin []*Stat
}

// NewPlayer returns a Player holding statCount zero-valued stats labeled
// "Stat 1" through "Stat statCount".
//
// A negative statCount is treated as zero.
func NewPlayer(statCount int, name string) *Player {
	statCount = max(statCount, 0)
	p := &Player{
		id:    uuid.New(),
		name:  name,
		stats: make([]*Stat, 0, statCount),
	}
	for i := 0; i < statCount; i++ {
		p.stats = append(p.stats, NewStat(StatName(i+1), 0))
	}
	return p
}

// ID returns the player's stable identity. It survives recycling.
func (p *Player) ID() uuid.UUID { return p.id }

// Name returns the display name.
func (p *Player) Name() string { return p.name }

// SetName changes the display name.
func (p *Player) SetName(name string) { p.name = name }

// StatCount returns the number of active stats.
func (p *Player) StatCount() int { return len(p.stats) }

// Stats returns a copy of the player's active stats in order.
func (p *Player) Stats() []Stat {
	out := make([]Stat, len(p.stats))
	for i, s := range p.stats {
		out[i] = *s
	}
	return out
}

// Values returns the player's stat values in order.
func (p *Player) Values() []int {
	out := make([]int, len(p.stats))
	for i, s := range p.stats {
		out[i] = s.Value
	}
	return out
}

// Stat returns the i-th active stat, or nil when i is out of range.
func (p *Player) Stat(i int) *Stat {
	if i < 0 || i >= len(p.stats) {
		return nil
	}
	return p.stats[i]
}

// RecycledStats returns the number of stats waiting in the recycle bin.
func (p *Player) RecycledStats() int { return len(p.recycleBin) }

// ResizeStats grows or shrinks the active stats until exactly target remain.
// It converges in a single call.
//
// Growth takes stats from the front of the recycle bin first, relabeling
// each for its new position, and creates fresh zero-valued stats once the
// bin is empty. Shrinking moves stats from the tail onto the bin.
// A negative target is treated as zero.
//
// Postcondition: p.StatCount() == max(target, 0).
func (p *Player) ResizeStats(target int) {
	target = max(target, 0)
	for len(p.stats) < target {
		pos := len(p.stats) + 1
		if len(p.recycleBin) > 0 {
			s := p.recycleBin[0]
			p.recycleBin[0] = nil
			p.recycleBin = p.recycleBin[1:]
			s.Name = StatName(pos)
			p.stats = append(p.stats, s)
			continue
		}
		p.stats = append(p.stats, NewStat(StatName(pos), 0))
	}
	for len(p.stats) > target {
		last := len(p.stats) - 1
		p.recycleBin = append(p.recycleBin, p.stats[last])
		p.stats[last] = nil
		p.stats = p.stats[:last]
	}
}

// ClearStats moves every active stat onto the recycle bin, in order, and
// leaves the player with no stats.
func (p *Player) ClearStats() {
	p.recycleBin = append(p.recycleBin, p.stats...)
	p.stats = nil
}

// ReindexStats relabels every active stat "Stat <1-based position>",
// keeping values and order.
func (p *Player) ReindexStats() {
	for i, s := range p.stats {
		s.Name = StatName(i + 1)
	}
}

// drainStats removes and returns the active stats without recycling them.
func (p *Player) drainStats() []*Stat {
	out := p.stats
	p.stats = nil
	return out
}

func (p *Player) appendStat(s *Stat) {
	p.stats = append(p.stats, s)
}

// shuffleStats permutes the active stats with a uniform Fisher–Yates pass.
func (p *Player) shuffleStats(intn func(n int) int) {
	for i := len(p.stats) - 1; i > 0; i-- {
		j := intn(i + 1)
		p.stats[i], p.stats[j] = p.stats[j], p.stats[i]
	}
}

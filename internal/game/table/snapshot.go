package table

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/serpentine/internal/game/report"
)

// StatView is a read-only copy of one stat.
type StatView struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// PlayerView is a read-only copy of one player.
type PlayerView struct {
	ID      string         `yaml:"id"`
	Name    string         `yaml:"name"`
	Stats   []StatView     `yaml:"stats"`
	Summary report.Summary `yaml:"summary"`
}

// Snapshot is a point-in-time copy of the roster for rendering.
type Snapshot struct {
	TargetPlayers   int            `yaml:"target_players"`
	TargetStats     int            `yaml:"target_stats"`
	RecycledPlayers int            `yaml:"recycled_players"`
	Players         []PlayerView   `yaml:"players"`
	Summary         report.Summary `yaml:"summary"`
}

// Values returns every stat value in the snapshot, player order then stat order.
func (s Snapshot) Values() []int {
	var out []int
	for _, p := range s.Players {
		for _, st := range p.Stats {
			out = append(out, st.Value)
		}
	}
	return out
}

// Snapshot copies the current roster state.
func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		TargetPlayers:   t.roster.TargetPlayerCount(),
		TargetStats:     t.roster.TargetStatCount(),
		RecycledPlayers: len(t.roster.RecycledPlayers()),
		Players:         make([]PlayerView, 0, t.roster.Len()),
	}
	for _, p := range t.roster.Players() {
		pv := PlayerView{
			ID:      p.ID().String(),
			Name:    p.Name(),
			Stats:   make([]StatView, 0, p.StatCount()),
			Summary: report.Summarize(p.Values()),
		}
		for _, s := range p.Stats() {
			pv.Stats = append(pv.Stats, StatView{Name: s.Name, Value: s.Value})
		}
		snap.Players = append(snap.Players, pv)
	}
	snap.Summary = report.Summarize(snap.Values())
	return snap
}

// ExportYAML renders the current snapshot as YAML.
func (t *Table) ExportYAML() ([]byte, error) {
	out, err := yaml.Marshal(t.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshalling snapshot: %w", err)
	}
	return out, nil
}

// Package table is the session service the presentation layer drives: it
// owns one roster and serializes every mutation of it.
package table

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/serpentine/internal/game/dice"
	"github.com/cory-johannsen/serpentine/internal/game/roster"
)

var (
	// ErrPlayerIndex is returned when a 1-based player index is out of range.
	ErrPlayerIndex = errors.New("player index out of range")
	// ErrStatIndex is returned when a 1-based stat index is out of range.
	ErrStatIndex = errors.New("stat index out of range")
)

// Generator produces one stat value per call.
type Generator interface {
	Roll() (int, error)
}

// ExpressionGenerator rolls expr with roller for every stat.
type ExpressionGenerator struct {
	Roller *dice.Roller
	Expr   dice.Expression
}

// Roll implements Generator.
func (g ExpressionGenerator) Roll() (int, error) {
	return g.Roller.RollTotal(g.Expr)
}

// Options configures a new Table.
type Options struct {
	Players     int
	Stats       int
	PlayerNames []string
	// Clamp, when non-nil, limits values passed to SetStatValue.
	Clamp *roster.Range
}

// Table owns a roster and exposes the operations the presentation layer
// needs. All methods are safe for concurrent use.
type Table struct {
	mu      sync.Mutex
	roster  *roster.Roster
	gen     Generator
	shuffle dice.Source
	clamp   *roster.Range
	logger  *zap.Logger
}

// New builds a Table with an initialized roster.
//
// Precondition: gen, shuffle and logger must be non-nil.
// Postcondition: the roster holds opts.Players players with opts.Stats stats
// each; the first len(opts.PlayerNames) players carry those names.
func New(opts Options, gen Generator, shuffle dice.Source, logger *zap.Logger) *Table {
	r := roster.New(opts.Players, opts.Stats)
	for i, name := range opts.PlayerNames {
		if p := r.Player(i); p != nil && name != "" {
			p.SetName(name)
		}
	}
	return &Table{
		roster:  r,
		gen:     gen,
		shuffle: shuffle,
		clamp:   opts.Clamp,
		logger:  logger,
	}
}

// SetTargetPlayerCount resizes the roster to n players.
func (t *Table) SetTargetPlayerCount(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.roster.SetTargetPlayerCount(n)
	t.logShape("player count changed")
}

// SetTargetStatCount resizes every player to n stats.
func (t *Table) SetTargetStatCount(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.roster.SetTargetStatCount(n)
	t.logShape("stat count changed")
}

// Rebuild reapplies the current target counts.
func (t *Table) Rebuild() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.roster.Rebuild()
	t.logShape("roster rebuilt")
}

// RollAll overwrites every stat with a freshly generated value. Values are
// generated before any stat is touched, so a failure leaves the roster as it was.
func (t *Table) RollAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.roster.Len() * t.roster.TargetStatCount()
	vals := make([]int, n)
	for i := range vals {
		v, err := t.gen.Roll()
		if err != nil {
			return fmt.Errorf("rolling stats: %w", err)
		}
		vals[i] = v
	}

	i := 0
	if err := roster.RollAll(t.roster, func() (int, error) {
		v := vals[i]
		i++
		return v, nil
	}); err != nil {
		return err
	}
	t.logger.Debug("stats rolled",
		zap.Int("players", t.roster.Len()),
		zap.Ints("values", vals),
	)
	return nil
}

// Distribute deals all stat values across players in snake order and
// relabels each player's stats by position.
func (t *Table) Distribute() {
	t.mu.Lock()
	defer t.mu.Unlock()
	roster.Distribute(t.roster)
	t.roster.ReindexStats()
	t.logger.Debug("stats distributed",
		zap.Int("players", t.roster.Len()),
		zap.Int("stats", t.roster.TargetStatCount()),
	)
}

// RandomizeOrder shuffles each player's stats uniformly and relabels them.
func (t *Table) RandomizeOrder() {
	t.mu.Lock()
	defer t.mu.Unlock()
	roster.Shuffle(t.roster, t.shuffle.Intn)
	t.logger.Debug("stat order randomized", zap.Int("players", t.roster.Len()))
}

// SetStatValue sets stat s of player p (both 1-based) to v, clamped when the
// table has a clamp range, and returns the stored value.
func (t *Table) SetStatValue(p, s, v int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	player := t.roster.Player(p - 1)
	if player == nil {
		return 0, fmt.Errorf("setting player %d stat %d: %w", p, s, ErrPlayerIndex)
	}
	stat := player.Stat(s - 1)
	if stat == nil {
		return 0, fmt.Errorf("setting player %d stat %d: %w", p, s, ErrStatIndex)
	}
	if t.clamp != nil {
		v = t.clamp.Clamp(v)
	}
	stat.SetValue(v)
	t.logger.Debug("stat value set",
		zap.Int("player", p),
		zap.Int("stat", s),
		zap.Int("value", v),
	)
	return v, nil
}

// RenamePlayer sets the display name of player p (1-based).
func (t *Table) RenamePlayer(p int, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	player := t.roster.Player(p - 1)
	if player == nil {
		return fmt.Errorf("renaming player %d: %w", p, ErrPlayerIndex)
	}
	player.SetName(name)
	t.logger.Debug("player renamed", zap.Int("player", p), zap.String("name", name))
	return nil
}

// Values returns every active stat value in player order then stat order.
func (t *Table) Values() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.roster.Values()
}

func (t *Table) logShape(msg string) {
	t.logger.Debug(msg,
		zap.Int("players", t.roster.Len()),
		zap.Int("stats", t.roster.TargetStatCount()),
		zap.Int("recycled_players", len(t.roster.RecycledPlayers())),
	)
}

package table

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/serpentine/internal/config"
	"github.com/cory-johannsen/serpentine/internal/game/dice"
	"github.com/cory-johannsen/serpentine/internal/game/roster"
	"github.com/cory-johannsen/serpentine/internal/scripting"
)

// NewFromConfig wires a Table from configuration: the dice source (seeded
// or crypto), the stat generator (Lua script or dice expression) and the
// clamp range. The returned close function releases the script VM, if any.
//
// Precondition: cfg must have passed Validate; logger must be non-nil.
func NewFromConfig(cfg config.Config, logger *zap.Logger) (*Table, func(), error) {
	src := dice.NewSource(cfg.Dice.Seed)
	roller := dice.NewLoggedRoller(src, logger)

	var (
		gen     Generator
		closeFn = func() {}
	)
	if cfg.Dice.Script != "" {
		script, err := scripting.LoadStatScript(cfg.Dice.Script, cfg.Dice.ScriptInstructionLimit, roller, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("loading stat script: %w", err)
		}
		gen, closeFn = script, script.Close
		logger.Info("using scripted stat generator", zap.String("script", cfg.Dice.Script))
	} else {
		expr, err := dice.Parse(cfg.Dice.Expression)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing dice expression: %w", err)
		}
		gen = ExpressionGenerator{Roller: roller, Expr: expr}
	}

	opts := Options{
		Players:     cfg.Roster.Players,
		Stats:       cfg.Roster.Stats,
		PlayerNames: cfg.Roster.PlayerNames,
	}
	if cfg.Roster.Clamp {
		opts.Clamp = &roster.Range{Min: cfg.Roster.MinValue, Max: cfg.Roster.MaxValue}
	}

	return New(opts, gen, src, logger), closeFn, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/serpentine/internal/config"
	"github.com/cory-johannsen/serpentine/internal/frontend/console"
	"github.com/cory-johannsen/serpentine/internal/game/command"
	"github.com/cory-johannsen/serpentine/internal/game/roster"
	"github.com/cory-johannsen/serpentine/internal/game/table"
	"github.com/cory-johannsen/serpentine/internal/observability"
	"github.com/cory-johannsen/serpentine/internal/server"
)

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"players":    "roster.players",
	"stats":      "roster.stats",
	"names":      "roster.player_names",
	"clamp":      "roster.clamp",
	"expression": "dice.expression",
	"seed":       "dice.seed",
	"script":     "dice.script",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

type options struct {
	configPath string
	noColor    bool
}

// app is everything a command needs once configuration has been resolved.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	table    *table.Table
	renderer *console.Renderer
	close    func()
}

func newRootCmd() *cobra.Command {
	v := config.New()
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "serpentine",
		Short:   "Roll ability scores and deal them out to players in snake-draft order.",
		Args:    cobra.NoArgs,
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(v, opts)
			if err != nil {
				return err
			}
			defer a.close()
			return runConsole(cmd.Context(), a, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	fs := cmd.PersistentFlags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML configuration file")
	fs.IntP("players", "p", 4, "number of players (env: SERPENTINE_ROSTER_PLAYERS)")
	fs.IntP("stats", "s", 6, "number of stats per player (env: SERPENTINE_ROSTER_STATS)")
	fs.StringSlice("names", nil, "comma-separated player names (env: SERPENTINE_ROSTER_PLAYER_NAMES)")
	fs.Bool("clamp", false, "clamp entered values to the configured range (env: SERPENTINE_ROSTER_CLAMP)")
	fs.StringP("expression", "e", "4d6kh3", "dice expression rolled for each stat (env: SERPENTINE_DICE_EXPRESSION)")
	fs.Int64("seed", 0, "seed for reproducible rolls, 0 for random (env: SERPENTINE_DICE_SEED)")
	fs.String("script", "", "Lua script defining roll_stat() (env: SERPENTINE_DICE_SCRIPT)")
	fs.String("log-level", "info", "log level: debug, info, warn, error (env: SERPENTINE_LOGGING_LEVEL)")
	fs.String("log-format", "console", "log format: console or json (env: SERPENTINE_LOGGING_FORMAT)")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors")

	for name, key := range flagKeys {
		_ = v.BindPFlag(key, fs.Lookup(name))
	}

	cmd.AddCommand(newDealCmd(v, opts))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("serpentine v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func newDealCmd(v *viper.Viper, opts *options) *cobra.Command {
	var (
		shuffle   bool
		summary   bool
		histogram bool
		asYAML    bool
	)

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Roll, distribute and print the roster once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(v, opts)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.table.RollAll(); err != nil {
				return err
			}
			a.table.Distribute()
			if shuffle {
				a.table.RandomizeOrder()
			}

			out := cmd.OutOrStdout()
			if asYAML {
				b, err := a.table.ExportYAML()
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			}

			snap := a.table.Snapshot()
			text := a.renderer.Roster(snap)
			if summary {
				text += "\n" + a.renderer.Summary(snap)
			}
			if histogram {
				text += "\n" + a.renderer.Histogram(snap.Values())
			}
			_, err = io.WriteString(out, text)
			return err
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&shuffle, "shuffle", false, "shuffle each player's stat order after dealing")
	fs.BoolVar(&summary, "summary", false, "print summary statistics")
	fs.BoolVar(&histogram, "histogram", false, "print a histogram of all values")
	fs.BoolVar(&asYAML, "yaml", false, "print the roster as YAML")

	return cmd
}

// setup resolves configuration and builds the logger, table and renderer.
func setup(v *viper.Viper, opts *options) (*app, error) {
	if err := config.ReadFile(v, opts.configPath); err != nil {
		return nil, err
	}
	if opts.noColor {
		v.Set("display.color", false)
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	t, closeTable, err := table.NewFromConfig(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	renderer := console.NewRenderer(
		cfg.Display.Color,
		cfg.Display.Palette,
		roster.Range{Min: cfg.Roster.MinValue, Max: cfg.Roster.MaxValue},
		cfg.Display.HistogramWidth,
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		table:    t,
		renderer: renderer,
		close: func() {
			closeTable()
			_ = logger.Sync()
		},
	}, nil
}

// runConsole runs the interactive console under the signal-aware lifecycle.
func runConsole(ctx context.Context, a *app, in io.Reader, out io.Writer) error {
	con := console.New(a.table, command.DefaultRegistry(), in, out, a.renderer, a.logger)

	lc := server.NewLifecycle(a.logger)
	lc.Add("console", &server.FuncService{
		StartFn: con.Run,
		StopFn:  con.Stop,
	})

	a.logger.Info("serpentine ready",
		zap.Int("players", a.cfg.Roster.Players),
		zap.Int("stats", a.cfg.Roster.Stats),
		zap.String("expression", a.cfg.Dice.Expression),
		zap.String("script", a.cfg.Dice.Script),
		zap.Bool("seeded", a.cfg.Dice.Seed != 0),
	)
	return lc.Run(ctx)
}

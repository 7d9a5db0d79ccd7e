// Package config provides Viper-based configuration loading for the stat distributor.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/serpentine/internal/game/dice"
)

// EnvPrefix is prepended to every environment override, e.g. SERPENTINE_ROSTER_PLAYERS.
const EnvPrefix = "SERPENTINE"

// RosterConfig holds the initial roster shape and stat value policy.
type RosterConfig struct {
	// Players is the initial number of players.
	Players int `mapstructure:"players"`
	// Stats is the initial number of stats per player.
	Stats int `mapstructure:"stats"`
	// PlayerNames names the first len(PlayerNames) players.
	PlayerNames []string `mapstructure:"player_names"`
	// Clamp limits manually entered values to [MinValue, MaxValue].
	Clamp    bool `mapstructure:"clamp"`
	MinValue int  `mapstructure:"min_value"`
	MaxValue int  `mapstructure:"max_value"`
}

// DiceConfig selects how stat values are generated.
type DiceConfig struct {
	// Expression is the dice expression rolled per stat, e.g. "4d6kh3".
	Expression string `mapstructure:"expression"`
	// Seed makes rolls reproducible when non-zero; zero uses crypto/rand.
	Seed int64 `mapstructure:"seed"`
	// Script is an optional Lua file defining roll_stat(); it replaces Expression.
	Script string `mapstructure:"script"`
	// ScriptInstructionLimit caps Lua opcodes per roll_stat call; 0 uses the default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
}

// DisplayConfig holds console rendering settings.
type DisplayConfig struct {
	// Color enables ANSI colors.
	Color bool `mapstructure:"color"`
	// Palette holds one "#rrggbb" color per player slot, cycled.
	Palette []string `mapstructure:"palette"`
	// HistogramWidth is the widest histogram bar, in cells.
	HistogramWidth int `mapstructure:"histogram_width"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Roster  RosterConfig  `mapstructure:"roster"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DefaultPalette is the original five-color player scheme.
var DefaultPalette = []string{"#7a6c5d", "#E6C79C", "#ddc9b4", "#bcac9b", "#c17c74"}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	for _, check := range []func() error{
		func() error { return validateRoster(c.Roster) },
		func() error { return validateDice(c.Dice) },
		func() error { return validateDisplay(c.Display) },
		func() error { return validateLogging(c.Logging) },
	} {
		if err := check(); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRoster(r RosterConfig) error {
	var errs []string
	if r.Players < 0 {
		errs = append(errs, fmt.Sprintf("roster.players must be >= 0, got %d", r.Players))
	}
	if r.Stats < 0 {
		errs = append(errs, fmt.Sprintf("roster.stats must be >= 0, got %d", r.Stats))
	}
	if r.MinValue > r.MaxValue {
		errs = append(errs, fmt.Sprintf("roster.min_value (%d) must not exceed roster.max_value (%d)", r.MinValue, r.MaxValue))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDice(d DiceConfig) error {
	if d.Script != "" {
		if d.ScriptInstructionLimit < 0 {
			return fmt.Errorf("dice.script_instruction_limit must be >= 0, got %d", d.ScriptInstructionLimit)
		}
		return nil
	}
	if _, err := dice.Parse(d.Expression); err != nil {
		return fmt.Errorf("dice.expression: %w", err)
	}
	return nil
}

func validateDisplay(d DisplayConfig) error {
	var errs []string
	if len(d.Palette) == 0 {
		errs = append(errs, "display.palette must not be empty")
	}
	for _, c := range d.Palette {
		if !hexColor.MatchString(c) {
			errs = append(errs, fmt.Sprintf("display.palette entry %q must be #rrggbb", c))
		}
	}
	if d.HistogramWidth < 1 {
		errs = append(errs, fmt.Sprintf("display.histogram_width must be >= 1, got %d", d.HistogramWidth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

// New returns a Viper instance with defaults and SERPENTINE_ environment
// overrides applied. Callers may bind flags into it before LoadFromViper.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads configuration from the given YAML file, applies environment
// variable overrides, and validates the result. An empty path loads
// defaults and environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("roster.players", 4)
	v.SetDefault("roster.stats", 6)
	v.SetDefault("roster.player_names", []string{})
	v.SetDefault("roster.clamp", false)
	v.SetDefault("roster.min_value", 3)
	v.SetDefault("roster.max_value", 18)

	v.SetDefault("dice.expression", dice.FourDSixDropLowest)
	v.SetDefault("dice.seed", 0)
	v.SetDefault("dice.script", "")
	v.SetDefault("dice.script_instruction_limit", 0)

	v.SetDefault("display.color", true)
	v.SetDefault("display.palette", DefaultPalette)
	v.SetDefault("display.histogram_width", 30)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}

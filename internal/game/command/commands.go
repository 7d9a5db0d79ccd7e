// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryRoster  = "roster"
	CategoryStats   = "stats"
	CategoryDisplay = "display"
	CategorySystem  = "system"
)

// Handler identifiers mapping commands to console handlers.
const (
	HandlerPlayers    = "players"
	HandlerStats      = "stats"
	HandlerName       = "name"
	HandlerRoll       = "roll"
	HandlerDistribute = "distribute"
	HandlerShuffle    = "shuffle"
	HandlerSet        = "set"
	HandlerShow       = "show"
	HandlerSummary    = "summary"
	HandlerHistogram  = "histogram"
	HandlerExport     = "export"
	HandlerHelp       = "help"
	HandlerQuit       = "quit"
)

// Command defines a console command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument shape, e.g. "players <n>".
	Usage string
	// Help is the short help text.
	Help string
	// Category groups the command for help output.
	Category string
	// Handler maps to the console handler.
	Handler string
}

// BuiltinCommands returns all built-in console commands.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "players", Aliases: []string{"p"}, Usage: "players <n>", Help: "Set the number of players", Category: CategoryRoster, Handler: HandlerPlayers},
		{Name: "stats", Aliases: []string{"s"}, Usage: "stats <n>", Help: "Set the number of stats per player", Category: CategoryRoster, Handler: HandlerStats},
		{Name: "name", Aliases: []string{"rename"}, Usage: "name <player> <name>", Help: "Rename a player", Category: CategoryRoster, Handler: HandlerName},

		{Name: "roll", Aliases: []string{"r"}, Usage: "roll", Help: "Roll every stat", Category: CategoryStats, Handler: HandlerRoll},
		{Name: "distribute", Aliases: []string{"deal", "d"}, Usage: "distribute", Help: "Deal all stats back out in snake order", Category: CategoryStats, Handler: HandlerDistribute},
		{Name: "shuffle", Aliases: []string{"randomize"}, Usage: "shuffle", Help: "Shuffle the order of each player's stats", Category: CategoryStats, Handler: HandlerShuffle},
		{Name: "set", Aliases: nil, Usage: "set <player> <stat> <value>", Help: "Set one stat value", Category: CategoryStats, Handler: HandlerSet},

		{Name: "show", Aliases: []string{"ls", "look"}, Usage: "show", Help: "Show the roster", Category: CategoryDisplay, Handler: HandlerShow},
		{Name: "summary", Aliases: []string{"sum"}, Usage: "summary", Help: "Show totals, means and standard deviations", Category: CategoryDisplay, Handler: HandlerSummary},
		{Name: "histogram", Aliases: []string{"hist"}, Usage: "histogram", Help: "Show the distribution of stat values", Category: CategoryDisplay, Handler: HandlerHistogram},
		{Name: "export", Aliases: nil, Usage: "export", Help: "Print the roster as YAML", Category: CategoryDisplay, Handler: HandlerExport},

		{Name: "help", Aliases: []string{"?"}, Usage: "help", Help: "List commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Usage: "quit", Help: "Leave the console", Category: CategorySystem, Handler: HandlerQuit},
	}
}

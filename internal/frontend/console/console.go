// Package console implements the interactive line-oriented front end that
// drives a table.Table from a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/serpentine/internal/game/command"
	"github.com/cory-johannsen/serpentine/internal/game/table"
)

const prompt = "> "

// Console reads commands from an input stream and writes rendered results.
type Console struct {
	table    *table.Table
	registry *command.Registry
	renderer *Renderer
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a Console.
//
// Precondition: all arguments must be non-nil.
func New(t *table.Table, reg *command.Registry, in io.Reader, out io.Writer, renderer *Renderer, logger *zap.Logger) *Console {
	return &Console{
		table:    t,
		registry: reg,
		renderer: renderer,
		in:       in,
		out:      out,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run prints the roster and processes input lines until quit, end of input
// or Stop.
//
// Postcondition: returns nil on quit, EOF or Stop; otherwise the read error.
func (c *Console) Run() error {
	// Releases the reader goroutine if it is still waiting to hand off a line.
	defer c.Stop()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-c.done:
				return
			}
		}
		readErr <- sc.Err()
	}()

	c.write(c.renderer.Notice("Type help for a list of commands."))
	c.write(c.renderer.Roster(c.table.Snapshot()))
	for {
		c.write(prompt)
		select {
		case <-c.done:
			return nil
		case line := <-lines:
			if c.Execute(line) {
				c.logger.Info("console quit requested")
				return nil
			}
		case err := <-readErr:
			c.write("\n")
			if err != nil {
				return fmt.Errorf("reading console input: %w", err)
			}
			c.logger.Info("console input closed")
			return nil
		}
	}
}

// Stop makes Run return. Safe to call more than once.
func (c *Console) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Execute runs one command line and reports whether the console should exit.
func (c *Console) Execute(line string) (quit bool) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return false
	}

	cmd, ok := c.registry.Resolve(parsed.Command)
	if !ok {
		msg := fmt.Sprintf("Unknown command %q.", parsed.Command)
		if near := c.registry.Suggest(parsed.Command); len(near) > 0 {
			msg += " Did you mean: " + strings.Join(near, ", ") + "?"
		} else {
			msg += " Type help for a list of commands."
		}
		c.write(c.renderer.Error(msg))
		return false
	}
	c.logger.Debug("console command",
		zap.String("command", cmd.Name),
		zap.Strings("args", parsed.Args),
	)

	var err error
	switch cmd.Handler {
	case command.HandlerQuit:
		return true
	case command.HandlerHelp:
		c.write(c.renderer.Help(c.registry))
	case command.HandlerShow:
		c.showRoster()
	case command.HandlerSummary:
		c.write(c.renderer.Summary(c.table.Snapshot()))
	case command.HandlerHistogram:
		c.write(c.renderer.Histogram(c.table.Values()))
	case command.HandlerExport:
		err = c.export()
	case command.HandlerPlayers:
		err = c.resize(parsed, c.table.SetTargetPlayerCount)
	case command.HandlerStats:
		err = c.resize(parsed, c.table.SetTargetStatCount)
	case command.HandlerRoll:
		err = c.roll()
	case command.HandlerDistribute:
		c.table.Distribute()
		c.showRoster()
	case command.HandlerShuffle:
		c.table.RandomizeOrder()
		c.showRoster()
	case command.HandlerSet:
		err = c.set(parsed)
	case command.HandlerName:
		err = c.rename(parsed)
	default:
		err = fmt.Errorf("command %q has no handler", cmd.Name)
	}

	if err != nil {
		c.logger.Debug("console command failed", zap.String("command", cmd.Name), zap.Error(err))
		c.write(c.renderer.Error(err.Error()))
		if errors.Is(err, errUsage) {
			c.write("usage: " + cmd.Usage + "\n")
		}
	}
	return false
}

var errUsage = errors.New("invalid arguments")

func (c *Console) resize(parsed command.ParseResult, setTarget func(int)) error {
	n, err := parsed.Int(0)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if n < 0 {
		return fmt.Errorf("%w: count must not be negative", errUsage)
	}
	setTarget(n)
	c.table.Rebuild()
	c.showRoster()
	return nil
}

func (c *Console) roll() error {
	if err := c.table.RollAll(); err != nil {
		return err
	}
	c.showRoster()
	return nil
}

func (c *Console) set(parsed command.ParseResult) error {
	var args [3]int
	for i := range args {
		v, err := parsed.Int(i)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		args[i] = v
	}
	stored, err := c.table.SetStatValue(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	if stored != args[2] {
		c.write(c.renderer.Notice(fmt.Sprintf("%d is out of range; stored %d.", args[2], stored)))
	}
	c.showRoster()
	return nil
}

func (c *Console) rename(parsed command.ParseResult) error {
	p, err := parsed.Int(0)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	name := parsed.Rest(1)
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", errUsage)
	}
	if err := c.table.RenamePlayer(p, name); err != nil {
		return err
	}
	c.showRoster()
	return nil
}

func (c *Console) export() error {
	out, err := c.table.ExportYAML()
	if err != nil {
		return err
	}
	c.write(string(out))
	return nil
}

func (c *Console) showRoster() {
	c.write(c.renderer.Roster(c.table.Snapshot()))
}

func (c *Console) write(s string) {
	if _, err := io.WriteString(c.out, s); err != nil {
		c.logger.Warn("console write failed", zap.Error(err))
	}
}

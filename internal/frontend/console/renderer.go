package console

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/serpentine/internal/frontend/ansi"
	"github.com/cory-johannsen/serpentine/internal/game/command"
	"github.com/cory-johannsen/serpentine/internal/game/report"
	"github.com/cory-johannsen/serpentine/internal/game/roster"
	"github.com/cory-johannsen/serpentine/internal/game/table"
)

// categoryOrder fixes the order categories appear in help output.
var categoryOrder = []string{
	command.CategoryRoster,
	command.CategoryStats,
	command.CategoryDisplay,
	command.CategorySystem,
}

// Renderer formats table state as terminal text.
type Renderer struct {
	color   bool
	palette []string
	bounds  roster.Range
	width   int
}

// NewRenderer creates a Renderer.
//
// Precondition: bounds.Min <= bounds.Max.
// Postcondition: when color is false or palette is empty, output contains no escapes.
func NewRenderer(color bool, palette []string, bounds roster.Range, histogramWidth int) *Renderer {
	return &Renderer{
		color:   color && len(palette) > 0,
		palette: palette,
		bounds:  bounds,
		width:   histogramWidth,
	}
}

func (r *Renderer) paint(color, text string) string {
	if !r.color || color == "" {
		return text
	}
	return ansi.Colorize(color, text)
}

// playerColor returns the background escape for player slot i.
func (r *Renderer) playerColor(i int) string {
	if !r.color {
		return ""
	}
	return ansi.Background(r.palette[i%len(r.palette)])
}

// Roster renders one row per player: index, name, stat values and total.
func (r *Renderer) Roster(snap table.Snapshot) string {
	var b strings.Builder

	b.WriteString(r.paint(ansi.BrightYellow,
		fmt.Sprintf("Players: %d  Stats: %d", snap.TargetPlayers, snap.TargetStats)))
	if snap.RecycledPlayers > 0 {
		b.WriteString(r.paint(ansi.Dim, fmt.Sprintf("  (%d set aside)", snap.RecycledPlayers)))
	}
	b.WriteString("\n")

	if len(snap.Players) == 0 {
		b.WriteString(r.paint(ansi.Dim, "  no players"))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range snap.Players {
		var row strings.Builder
		fmt.Fprintf(&row, " %2d. %-14s", i+1, p.Name)
		for _, s := range p.Stats {
			fmt.Fprintf(&row, " %3d", s.Value)
		}
		fmt.Fprintf(&row, "  | %4d ", p.Summary.Total)
		b.WriteString(r.paint(r.playerColor(i), row.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// Summary renders per-player and overall statistics.
func (r *Renderer) Summary(snap table.Snapshot) string {
	var b strings.Builder
	b.WriteString(r.paint(ansi.Cyan, fmt.Sprintf("%-18s %5s %4s %4s %6s %6s", "player", "total", "min", "max", "mean", "stddev")))
	b.WriteString("\n")
	for i, p := range snap.Players {
		line := fmt.Sprintf("%-18s", fmt.Sprintf("%d. %s", i+1, p.Name)) + " " + summaryColumns(p.Summary)
		b.WriteString(r.paint(r.playerColor(i), line))
		b.WriteString("\n")
	}
	b.WriteString(r.paint(ansi.Bold, fmt.Sprintf("%-18s %s", "all", summaryColumns(snap.Summary))))
	b.WriteString("\n")
	return b.String()
}

func summaryColumns(s report.Summary) string {
	return fmt.Sprintf("%5d %4d %4d %6.2f %6.2f", s.Total, s.Min, s.Max, s.Mean, s.StdDev)
}

// Histogram renders one bar per value in the configured bounds.
func (r *Renderer) Histogram(values []int) string {
	bins := report.Histogram(values, r.bounds.Min, r.bounds.Max)
	peak := report.Peak(bins)

	var b strings.Builder
	for _, bin := range bins {
		bar := strings.Repeat("#", report.Scale(bin.Count, peak, r.width))
		fmt.Fprintf(&b, "%3d | %s", bin.Value, r.paint(ansi.Green, bar))
		if bin.Count > 0 {
			fmt.Fprintf(&b, " %d", bin.Count)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Help lists commands grouped by category.
func (r *Renderer) Help(reg *command.Registry) string {
	var b strings.Builder
	cats := reg.CommandsByCategory()
	for _, cat := range categoryOrder {
		cmds := cats[cat]
		if len(cmds) == 0 {
			continue
		}
		b.WriteString(r.paint(ansi.BrightCyan, strings.ToUpper(cat[:1])+cat[1:]+":"))
		b.WriteString("\n")
		for _, cmd := range cmds {
			usage := cmd.Usage
			if len(cmd.Aliases) > 0 {
				usage += " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			fmt.Fprintf(&b, "  %-36s %s\n", usage, cmd.Help)
		}
	}
	return b.String()
}

// Error renders an error message.
func (r *Renderer) Error(msg string) string {
	return r.paint(ansi.Red, msg) + "\n"
}

// Notice renders an informational message.
func (r *Renderer) Notice(msg string) string {
	return r.paint(ansi.Yellow, msg) + "\n"
}

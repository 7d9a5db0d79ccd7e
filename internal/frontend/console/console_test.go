package console_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/serpentine/internal/frontend/console"
	"github.com/cory-johannsen/serpentine/internal/game/command"
	"github.com/cory-johannsen/serpentine/internal/game/dice"
	"github.com/cory-johannsen/serpentine/internal/game/roster"
	"github.com/cory-johannsen/serpentine/internal/game/table"
)

// seqGen yields 1, 2, 3, ...
type seqGen struct{ n int }

func (g *seqGen) Roll() (int, error) {
	g.n++
	return g.n, nil
}

type fixture struct {
	table   *table.Table
	console *console.Console
	out     *bytes.Buffer
}

func newFixture(t *testing.T, in io.Reader, players, stats int) fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)
	tb := table.New(table.Options{
		Players: players,
		Stats:   stats,
		Clamp:   &roster.Range{Min: 3, Max: 18},
	}, &seqGen{}, dice.NewSeededSource(7), logger)
	out := &bytes.Buffer{}
	r := console.NewRenderer(false, nil, roster.Range{Min: 3, Max: 18}, 20)
	return fixture{
		table:   tb,
		console: console.New(tb, command.DefaultRegistry(), in, out, r, logger),
		out:     out,
	}
}

func TestExecute_PlayersAndStats(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 4, 6)

	assert.False(t, f.console.Execute("players 2"))
	assert.False(t, f.console.Execute("STATS 3"))

	snap := f.table.Snapshot()
	assert.Equal(t, 2, snap.TargetPlayers)
	assert.Equal(t, 3, snap.TargetStats)
	assert.Equal(t, 2, snap.RecycledPlayers)
	require.Len(t, snap.Players, 2)
	assert.Len(t, snap.Players[0].Stats, 3)
	assert.Contains(t, f.out.String(), "Players: 2  Stats: 3")
}

func TestExecute_NegativeCountIsRejected(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 4, 6)

	f.console.Execute("players -1")

	assert.Len(t, f.table.Snapshot().Players, 4)
	assert.Contains(t, f.out.String(), "usage: players <n>")
}

func TestExecute_RollThenDistribute(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 4, 6)

	f.console.Execute("roll")
	f.console.Execute("deal")

	snap := f.table.Snapshot()
	var got [][]int
	for _, p := range snap.Players {
		var vals []int
		for _, s := range p.Stats {
			vals = append(vals, s.Value)
		}
		got = append(got, vals)
	}
	assert.Equal(t, [][]int{
		{1, 8, 9, 16, 17, 24},
		{2, 7, 10, 15, 18, 23},
		{3, 6, 11, 14, 19, 22},
		{4, 5, 12, 13, 20, 21},
	}, got)
	assert.Equal(t, "Stat 1", snap.Players[0].Stats[0].Name)
}

func TestExecute_ShuffleKeepsValues(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 3, 4)
	f.console.Execute("roll")
	before := f.table.Snapshot()

	f.console.Execute("shuffle")

	after := f.table.Snapshot()
	for i := range before.Players {
		assert.Equal(t, before.Players[i].Summary.Total, after.Players[i].Summary.Total)
	}
}

func TestExecute_SetClampsAndReports(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 2, 2)

	f.console.Execute("set 1 2 25")

	assert.Equal(t, 18, f.table.Snapshot().Players[0].Stats[1].Value)
	assert.Contains(t, f.out.String(), "25 is out of range; stored 18.")
}

func TestExecute_SetErrors(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 2, 2)

	f.console.Execute("set 1 x 10")
	assert.Contains(t, f.out.String(), "usage: set <player> <stat> <value>")

	f.out.Reset()
	f.console.Execute("set 9 1 10")
	assert.Contains(t, f.out.String(), table.ErrPlayerIndex.Error())
	assert.NotContains(t, f.out.String(), "usage:")

	f.out.Reset()
	f.console.Execute("set 1 3 10")
	assert.Contains(t, f.out.String(), table.ErrStatIndex.Error())
}

func TestExecute_Name(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 2, 1)

	f.console.Execute("name 2 Sir  Robin")
	assert.Equal(t, "Sir  Robin", f.table.Snapshot().Players[1].Name)

	f.out.Reset()
	f.console.Execute("name 2")
	assert.Contains(t, f.out.String(), "usage: name <player> <name>")
}

func TestExecute_Export(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 2, 1)

	f.console.Execute("export")

	assert.Contains(t, f.out.String(), "target_players: 2")
	assert.Contains(t, f.out.String(), "name: New Player 1")
}

func TestExecute_DisplayCommands(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 2, 2)
	f.console.Execute("roll")

	f.out.Reset()
	f.console.Execute("summary")
	assert.Contains(t, f.out.String(), "stddev")

	f.out.Reset()
	f.console.Execute("hist")
	assert.Contains(t, f.out.String(), " 18 | ")

	f.out.Reset()
	f.console.Execute("help")
	assert.Contains(t, f.out.String(), "Display:")
}

func TestExecute_UnknownAndBlank(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 2, 2)

	assert.False(t, f.console.Execute("teleport home"))
	assert.Contains(t, f.out.String(), `Unknown command "teleport". Type help`)

	f.out.Reset()
	f.console.Execute("sh")
	assert.Contains(t, f.out.String(), "Did you mean: show, shuffle?")

	f.out.Reset()
	assert.False(t, f.console.Execute("   "))
	assert.Empty(t, f.out.String())
}

func TestExecute_Quit(t *testing.T) {
	f := newFixture(t, strings.NewReader(""), 2, 2)
	assert.True(t, f.console.Execute("quit"))
	assert.True(t, f.console.Execute("q"))
}

func TestRun_StopsOnQuit(t *testing.T) {
	f := newFixture(t, strings.NewReader("players 3\nquit\nplayers 1\n"), 2, 2)

	require.NoError(t, f.console.Run())

	assert.Len(t, f.table.Snapshot().Players, 3)
	assert.Contains(t, f.out.String(), "> ")
}

func TestRun_StopsOnEOF(t *testing.T) {
	f := newFixture(t, strings.NewReader("roll\n"), 2, 2)

	require.NoError(t, f.console.Run())

	assert.Equal(t, []int{1, 2, 3, 4}, f.table.Values())
}

func TestRun_ReturnsReadError(t *testing.T) {
	f := newFixture(t, iotest.ErrReader(errors.New("tty gone")), 2, 2)

	err := f.console.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestRun_Stop(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	f := newFixture(t, pr, 2, 2)

	done := make(chan error, 1)
	go func() { done <- f.console.Run() }()

	f.console.Stop()
	f.console.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

package scripting

import (
	"fmt"
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/serpentine/internal/game/dice"
)

// RollHook is the Lua global a stat script must define. It takes no
// arguments and returns one integer stat value.
const RollHook = "roll_stat"

// StatScript is a loaded Lua stat generator.
//
// A StatScript is safe for concurrent Roll calls; calls are serialized
// because an LState is single-threaded.
type StatScript struct {
	mu     sync.Mutex
	name   string
	L      *lua.LState
	limit  int
	roller *dice.Roller
	logger *zap.Logger
}

// LoadStatScript reads the Lua file at path and prepares it for rolling.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: Returns a StatScript whose RollHook is a function, or an error.
func LoadStatScript(path string, instLimit int, roller *dice.Roller, logger *zap.Logger) (*StatScript, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading %q: %w", path, err)
	}
	return NewStatScript(path, string(src), instLimit, roller, logger)
}

// NewStatScript compiles source in a fresh sandbox. The "dice" module is
// available to the script:
//
//	dice.roll(expr) -> total, kept, dropped
//	dice.intn(n)    -> integer in [0, n)
//
// Precondition: roller and logger must be non-nil.
func NewStatScript(name, source string, instLimit int, roller *dice.Roller, logger *zap.Logger) (*StatScript, error) {
	s := &StatScript{
		name:   name,
		L:      NewSandboxedState(),
		limit:  instLimit,
		roller: roller,
		logger: logger,
	}
	s.registerDice()

	if err := runLimited(s.L, s.limit, func() error { return s.L.DoString(source) }); err != nil {
		s.L.Close()
		return nil, fmt.Errorf("scripting: loading %q: %w", name, err)
	}
	if fn := s.L.GetGlobal(RollHook); fn.Type() != lua.LTFunction {
		s.L.Close()
		return nil, fmt.Errorf("scripting: %q must define function %s, found %s", name, RollHook, fn.Type())
	}
	return s, nil
}

// Roll calls the script's roll_stat function and returns its result.
//
// Postcondition: Returns the integer the hook returned, or an error when the
// hook fails, exceeds its instruction budget, or returns a non-integer.
func (s *StatScript) Roll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn := s.L.GetGlobal(RollHook)
	err := runLimited(s.L, s.limit, func() error {
		return s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true})
	})
	if err != nil {
		s.logger.Warn("scripting: Lua runtime error",
			zap.String("script", s.name),
			zap.Error(err),
		)
		return 0, fmt.Errorf("scripting: %s in %q: %w", RollHook, s.name, err)
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("scripting: %s in %q returned %s, want number", RollHook, s.name, ret.Type())
	}
	if float64(n) != float64(int(n)) {
		return 0, fmt.Errorf("scripting: %s in %q returned non-integer %v", RollHook, s.name, float64(n))
	}
	return int(n), nil
}

// Close releases the Lua VM.
func (s *StatScript) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.L.Close()
}

func (s *StatScript) registerDice() {
	mod := s.L.NewTable()
	s.L.SetField(mod, "roll", s.L.NewFunction(s.luaRoll))
	s.L.SetField(mod, "intn", s.L.NewFunction(s.luaIntn))
	s.L.SetGlobal("dice", mod)
}

func (s *StatScript) luaRoll(L *lua.LState) int {
	res, err := s.roller.RollExpr(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(res.Total()))
	L.Push(intsTable(L, res.Dice))
	L.Push(intsTable(L, res.Dropped))
	return 3
}

func (s *StatScript) luaIntn(L *lua.LState) int {
	n := L.CheckInt(1)
	if n <= 0 {
		L.ArgError(1, "n must be > 0")
		return 0
	}
	L.Push(lua.LNumber(s.roller.Source().Intn(n)))
	return 1
}

func intsTable(L *lua.LState, vals []int) *lua.LTable {
	t := L.CreateTable(len(vals), 0)
	for _, v := range vals {
		t.Append(lua.LNumber(v))
	}
	return t
}

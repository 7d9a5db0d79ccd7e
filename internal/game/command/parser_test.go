package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("")
	assert.Equal(t, "", result.Command)
	assert.Nil(t, result.Args)
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("roll")
	assert.Equal(t, "roll", result.Command)
	assert.Nil(t, result.Args)
	assert.Equal(t, "", result.RawArgs)
}

func TestParse_Lowercase(t *testing.T) {
	result := Parse("DISTRIBUTE")
	assert.Equal(t, "distribute", result.Command)
}

func TestParse_WithArgs(t *testing.T) {
	result := Parse("set 2 3 17")
	assert.Equal(t, "set", result.Command)
	assert.Equal(t, []string{"2", "3", "17"}, result.Args)
	assert.Equal(t, "2 3 17", result.RawArgs)
}

func TestParse_ExtraWhitespace(t *testing.T) {
	result := Parse("  name   1   Sir  Robin  ")
	assert.Equal(t, "name", result.Command)
	assert.Equal(t, []string{"1", "Sir", "Robin"}, result.Args)
	assert.Equal(t, "1   Sir  Robin", result.RawArgs)
}

func TestParseResult_Int(t *testing.T) {
	result := Parse("set 2 x")

	n, err := result.Int(0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = result.Int(1)
	assert.ErrorContains(t, err, "not a number")

	_, err = result.Int(5)
	assert.ErrorContains(t, err, "missing argument 6")
}

func TestParseResult_Int_Negative(t *testing.T) {
	n, err := Parse("players -3").Int(0)
	require.NoError(t, err)
	assert.Equal(t, -3, n)
}

func TestParseResult_Rest(t *testing.T) {
	result := Parse("name 1 Sir  Robin the Brave")
	assert.Equal(t, "Sir  Robin the Brave", result.Rest(1))
	assert.Equal(t, "1 Sir  Robin the Brave", result.Rest(0))
	assert.Equal(t, "", Parse("name 1").Rest(1))
}

func TestPropertyParseAlwaysLowercasesCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "word")
		result := Parse(word)
		for _, c := range result.Command {
			if c >= 'A' && c <= 'Z' {
				t.Fatalf("command %q contains uppercase char in Parse result %q", word, result.Command)
			}
		}
	})
}

func TestPropertyParseNonEmptyInputHasCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "word")
		result := Parse(word)
		if result.Command == "" {
			t.Fatalf("non-empty input %q produced empty command", word)
		}
	})
}

func TestPropertyIntRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-1000, 1000).Draw(t, "n")
		got, err := Parse(fmt.Sprintf("players %d", n)).Int(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != n {
			t.Fatalf("got %d, want %d", got, n)
		}
	})
}

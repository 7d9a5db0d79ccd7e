package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[31mlow\033[0m", Colorize(Red, "low"))
}

func TestColorf(t *testing.T) {
	assert.Equal(t, "\033[32mtotal: 72\033[0m", Colorf(Green, "total: %d", 72))
}

func TestParseHex(t *testing.T) {
	r, g, b, err := ParseHex("#7a6c5d")
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0x7a, 0x6c, 0x5d}, [3]uint8{r, g, b})

	_, _, _, err = ParseHex("#12")
	assert.Error(t, err)
	_, _, _, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestBackground_PicksReadableForeground(t *testing.T) {
	assert.Equal(t, "\033[48;2;230;199;156m"+Black, Background("#E6C79C"))
	assert.Equal(t, "\033[48;2;0;0;0m"+White, Background("#000000"))
	assert.Equal(t, "", Background("nope"))
}

func TestStripANSI(t *testing.T) {
	input := "\033[31mred\033[0m normal \033[1m\033[32mbold green\033[0m"
	assert.Equal(t, "red normal bold green", StripANSI(input))
}

func TestStripANSI_TrueColor(t *testing.T) {
	assert.Equal(t, "Ada", StripANSI(Colorize(Background("#c17c74"), "Ada")))
}

func TestStripANSI_NoEscapes(t *testing.T) {
	assert.Equal(t, "plain text", StripANSI("plain text"))
}

// Property: StripANSI(Colorize(color, text)) == text for any ASCII text.
func TestPropertyStripANSIInversesColorize(t *testing.T) {
	colors := []string{Red, Green, Yellow, Cyan, White, Bold, Dim, Background("#7a6c5d")}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 ]{0,50}`).Draw(t, "text")
		colorIdx := rapid.IntRange(0, len(colors)-1).Draw(t, "color")
		assert.Equal(t, text, StripANSI(Colorize(colors[colorIdx], text)))
	})
}

// Property: every #rrggbb color yields a non-empty background escape.
func TestPropertyBackgroundAlwaysParses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hex := rapid.StringMatching(`#[0-9a-f]{6}`).Draw(t, "hex")
		assert.NotEmpty(t, Background(hex))
	})
}

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/serpentine/internal/game/report"
)

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, report.Summary{}, report.Summarize(nil))
}

func TestSummarize_Known(t *testing.T) {
	s := report.Summarize([]int{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, s.Count)
	assert.Equal(t, 40, s.Total)
	assert.Equal(t, 2, s.Min)
	assert.Equal(t, 9, s.Max)
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 2.0, s.StdDev, 1e-9)
}

func TestSummarize_Constant(t *testing.T) {
	s := report.Summarize([]int{11, 11, 11})
	assert.Zero(t, s.StdDev)
	assert.InDelta(t, 11.0, s.Mean, 1e-9)
}

// Property: Min <= Mean <= Max and StdDev >= 0.
func TestSummarize_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		vals := rapid.SliceOfN(rapid.IntRange(3, 18), 1, 50).Draw(rt, "values")
		s := report.Summarize(vals)
		assert.LessOrEqual(rt, float64(s.Min), s.Mean+1e-9)
		assert.GreaterOrEqual(rt, float64(s.Max), s.Mean-1e-9)
		assert.GreaterOrEqual(rt, s.StdDev, 0.0)
		assert.Equal(rt, len(vals), s.Count)
	})
}

func TestHistogram_BinsByValue(t *testing.T) {
	bins := report.Histogram([]int{3, 3, 5, 18}, 3, 6)
	assert.Equal(t, []report.Bin{{3, 2}, {4, 0}, {5, 1}, {6, 1}}, bins)
}

// Property: bin counts always sum to the number of values.
func TestHistogram_CountsSum_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		vals := rapid.SliceOf(rapid.IntRange(-5, 30)).Draw(rt, "values")
		bins := report.Histogram(vals, 3, 18)
		sum := 0
		for _, b := range bins {
			sum += b.Count
		}
		assert.Equal(rt, len(vals), sum)
		assert.Len(rt, bins, 16)
	})
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0, report.Scale(0, 10, 30))
	assert.Equal(t, 30, report.Scale(10, 10, 30))
	assert.Equal(t, 15, report.Scale(5, 10, 30))
	assert.Equal(t, 1, report.Scale(1, 100, 30))
	assert.Equal(t, 0, report.Scale(3, 0, 30))
}

func TestPeak(t *testing.T) {
	assert.Equal(t, 0, report.Peak(nil))
	assert.Equal(t, 4, report.Peak([]report.Bin{{1, 2}, {2, 4}, {3, 1}}))
}

// Package report computes summary statistics and histograms over stat values.
package report

import (
	"math"
	"slices"
)

// Summary describes a set of stat values.
//
// Invariant: when Count == 0 every other field is zero.
type Summary struct {
	Count  int     `yaml:"count"`
	Total  int     `yaml:"total"`
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
}

// Summarize returns the count, total, extremes, mean and population standard
// deviation of values.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{
		Count: len(values),
		Min:   slices.Min(values),
		Max:   slices.Max(values),
	}
	for _, v := range values {
		s.Total += v
	}
	s.Mean = float64(s.Total) / float64(s.Count)

	var m2 float64
	for _, v := range values {
		d := float64(v) - s.Mean
		m2 += d * d
	}
	s.StdDev = math.Sqrt(m2 / float64(s.Count))
	return s
}

// Bin counts how many values equal Value.
type Bin struct {
	Value int
	Count int
}

// Histogram bins values by integer over the inclusive range [lo, hi].
// Values outside the range are counted in the nearest edge bin.
//
// Precondition: lo <= hi.
// Postcondition: len(result) == hi-lo+1 and the counts sum to len(values).
func Histogram(values []int, lo, hi int) []Bin {
	bins := make([]Bin, hi-lo+1)
	for i := range bins {
		bins[i].Value = lo + i
	}
	for _, v := range values {
		bins[max(lo, min(v, hi))-lo].Count++
	}
	return bins
}

// Scale maps count onto a bar of at most width cells relative to peak.
// A non-zero count always gets at least one cell.
func Scale(count, peak, width int) int {
	if count <= 0 || peak <= 0 || width <= 0 {
		return 0
	}
	return max(1, count*width/peak)
}

// Peak returns the largest bin count.
func Peak(bins []Bin) int {
	p := 0
	for _, b := range bins {
		p = max(p, b.Count)
	}
	return p
}

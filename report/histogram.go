package report

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the number of histogram bins used by the reports.
const DefaultBins = 20

// ErrInvalidBins is returned when a histogram is requested with fewer than one bin.
var ErrInvalidBins = errors.New("report: bin count must be at least 1")

// Bin is one histogram bucket covering [Low, High); the last bin of a
// Histogram also includes High.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram is a sequence of equal-width, adjacent bins.
type Histogram struct {
	Bins []Bin
}

// Total returns the number of counted values.
func (h Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

// MaxCount returns the largest bin count.
func (h Histogram) MaxCount() int {
	m := 0
	for _, b := range h.Bins {
		if b.Count > m {
			m = b.Count
		}
	}
	return m
}

// DegreeHistogram buckets values into bins equal-width bins over
// [min(values), max(values)], the maximum falling into the last bin.
// When every value is equal the range is widened to [v-0.5, v+0.5].
// An empty input yields an empty Histogram.
func DegreeHistogram(values []float64, bins int) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, ErrInvalidBins
	}
	if len(values) == 0 {
		return Histogram{}, nil
	}

	x := append([]float64(nil), values...)
	sort.Float64s(x)
	lo, hi := x[0], x[len(x)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	bounds := append([]float64(nil), dividers...)
	// stat.Histogram bins are half-open; nudge the top divider so hi counts.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, x, nil)
	h := Histogram{Bins: make([]Bin, bins)}
	for i := range h.Bins {
		h.Bins[i] = Bin{Low: bounds[i], High: bounds[i+1], Count: int(counts[i])}
	}
	return h, nil
}

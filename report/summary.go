package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64 // population standard deviation
	CV     float64 // StdDev / Mean, 0 when Mean is 0
}

// Summarize computes the Summary of values. An empty slice yields the zero
// Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	mean, std := stat.PopMeanStdDev(values, nil)
	s := Summary{
		Count:  len(values),
		Mean:   mean,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		StdDev: std,
	}
	if mean != 0 {
		s.CV = std / mean
	}
	return s
}

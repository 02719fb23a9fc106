// Package report turns a centrality.Table into the run's outputs: summary
// statistics (mean, min, max, coefficient of variation), an equal-width
// degree histogram, the per-node metrics CSV and terminal tables.
//
// Statistics come from gonum's stat and floats packages; terminal output
// is rendered with lipgloss. Everything here is read-only over its inputs.
package report

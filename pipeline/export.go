package pipeline

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/contactnet/centrality"
	"github.com/katalvlaran/contactnet/internal/config"
	"github.com/katalvlaran/contactnet/report"
)

// ErrNoResult is returned when exporting a nil Result.
var ErrNoResult = errors.New("pipeline: no result to export")

// Rankings are the metrics listed in the text report, in order.
var Rankings = []centrality.Metric{centrality.Betweenness, centrality.Closeness, centrality.PageRank}

// sortComponents orders components by size, largest first; equal sizes keep
// their order (by smallest member).
func sortComponents(comps [][]string) {
	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })
}

// Export writes the metrics CSV to cfg.OutputPath() and the full text
// report to w. The CSV is written atomically, before anything reaches w.
func Export(res *Result, cfg *config.Config, w io.Writer) error {
	if res == nil || res.Table == nil {
		return ErrNoResult
	}
	if err := report.WriteCSVFile(cfg.OutputPath(), res.Table); err != nil {
		return err
	}
	if err := WriteReport(w, res, cfg.Top); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "metrics written to %s\n", cfg.OutputPath())
	return err
}

// WriteReport writes the header, the degree section and one top-k table per
// ranking metric.
func WriteReport(w io.Writer, res *Result, k int) error {
	if res == nil || res.Table == nil {
		return ErrNoResult
	}
	if err := WriteDegrees(w, res); err != nil {
		return err
	}
	for _, m := range Rankings {
		if _, err := fmt.Fprintf(w, "\n%s\n", report.RenderTopK(m, res.Table.TopK(m, k))); err != nil {
			return err
		}
	}
	return nil
}

// WriteDegrees writes the run header, the degree and strength summaries and
// the degree histogram.
func WriteDegrees(w io.Writer, res *Result) error {
	if res == nil || res.Table == nil {
		return ErrNoResult
	}
	largest := 0
	if len(res.Components) > 0 {
		largest = len(res.Components[0])
	}
	header := fmt.Sprintf("run %s  dataset=%s  nodes=%d  edges=%d  components=%d  largest=%d",
		res.RunID, res.Dataset, res.Graph.VertexCount(), res.Graph.EdgeCount(), len(res.Components), largest)
	if res.Events > 0 {
		header += "  events=" + strconv.Itoa(res.Events)
	}

	summary := report.RenderSummary(
		[]string{"degree", "strength"},
		[]report.Summary{res.DegreeSummary, res.StrengthSummary},
	)
	hist := report.RenderHistogram(fmt.Sprintf("Degree distribution (%d bins)", len(res.Histogram.Bins)), res.Histogram)

	_, err := fmt.Fprintf(w, "%s\n\n%s\n\n%s", header, summary, hist)
	return err
}

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/contactnet/centrality"
)

// Columns is the header of the per-node metrics CSV.
var Columns = []string{
	"id", "household", "age", "sex", "class",
	"degree", "strength", "betweenness", "closeness", "pagerank",
}

// WriteCSV writes one line per row of t, in the table's id order, under
// the Columns header. Unknown ages are written as empty fields; strength
// keeps its exact decimal form.
func WriteCSV(w io.Writer, t *centrality.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	if t != nil {
		for _, r := range t.Rows {
			age := ""
			if r.Attrs.Age != nil {
				age = strconv.Itoa(*r.Attrs.Age)
			}
			rec := []string{
				r.ID,
				r.Attrs.Household,
				age,
				r.Attrs.Sex,
				r.Attrs.Class,
				strconv.Itoa(r.Degree),
				r.Strength.String(),
				formatFloat(r.Betweenness),
				formatFloat(r.Closeness),
				formatFloat(r.PageRank),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("report: write %s: %w", r.ID, err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}
	return nil
}

// WriteCSVFile writes the table to path atomically: the data goes to a
// temporary file in the same directory which is renamed over path only
// after a successful write. On failure path is left untouched.
func WriteCSVFile(path string, t *centrality.Table) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("report: create temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, t); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("report: sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: rename to %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

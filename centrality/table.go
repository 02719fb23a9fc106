package centrality

import (
	"context"
	"sort"

	"github.com/katalvlaran/contactnet/core"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Row is the metrics record of one vertex.
type Row struct {
	ID          string
	Attrs       core.Attributes
	Degree      int
	Strength    decimal.Decimal
	Betweenness float64
	Closeness   float64
	PageRank    float64
}

// Value returns the row's score for m as a float64.
func (r Row) Value(m Metric) float64 {
	switch m {
	case Degree:
		return float64(r.Degree)
	case Strength:
		return r.Strength.InexactFloat64()
	case Betweenness:
		return r.Betweenness
	case Closeness:
		return r.Closeness
	case PageRank:
		return r.PageRank
	default:
		return 0
	}
}

// Table holds one Row per vertex, sorted by ID. It is read-only once built.
type Table struct {
	Rows []Row

	index map[string]int
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Lookup returns the row of id.
func (t *Table) Lookup(id string) (Row, bool) {
	i, ok := t.index[id]
	if !ok {
		return Row{}, false
	}
	return t.Rows[i], true
}

// Values returns the column of m in row order.
func (t *Table) Values(m Metric) []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Value(m)
	}
	return out
}

// TopK returns the k rows with the highest m, ties broken by ascending ID.
// k ≤ 0 returns nil; k beyond the table size returns every row.
// Strength is ranked on exact decimals.
func (t *Table) TopK(m Metric, k int) []Row {
	if k <= 0 {
		return nil
	}
	rows := append([]Row(nil), t.Rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if m == Strength {
			if c := a.Strength.Cmp(b.Strength); c != 0 {
				return c > 0
			}
		} else if va, vb := a.Value(m), b.Value(m); va != vb {
			return va > vb
		}
		return a.ID < b.ID
	})
	if k > len(rows) {
		k = len(rows)
	}
	return rows[:k]
}

// Compute evaluates degree, strength, betweenness, closeness and PageRank
// over g and joins them into a Table.
//
// The five metrics share no mutable state and run concurrently on an
// errgroup (unless WithSequential); the first failure cancels the rest.
// An empty graph yields an empty Table without error.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	var (
		degree   map[string]int
		strength map[string]decimal.Decimal
		between  map[string]float64
		nearness map[string]float64
		rank     map[string]float64
	)
	jobs := []func(ctx context.Context) error{
		func(context.Context) (err error) { degree, err = DegreeOf(g); return err },
		func(context.Context) (err error) { strength, err = StrengthOf(g); return err },
		func(context.Context) (err error) { between, err = BetweennessOf(g); return err },
		func(ctx context.Context) (err error) { nearness, err = ClosenessOf(ctx, g); return err },
		func(ctx context.Context) (err error) { rank, err = PageRankOf(ctx, g, opts...); return err },
	}

	if o.Sequential {
		for _, job := range jobs {
			if err := job(ctx); err != nil {
				return nil, err
			}
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		for _, job := range jobs {
			job := job
			eg.Go(func() error { return job(egCtx) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	ids := g.Vertices()
	t := &Table{Rows: make([]Row, len(ids)), index: make(map[string]int, len(ids))}
	for i, id := range ids {
		attrs, err := g.Attributes(id)
		if err != nil {
			return nil, err
		}
		t.Rows[i] = Row{
			ID:          id,
			Attrs:       attrs,
			Degree:      degree[id],
			Strength:    strength[id],
			Betweenness: between[id],
			Closeness:   nearness[id],
			PageRank:    rank[id],
		}
		t.index[id] = i
	}

	return t, nil
}

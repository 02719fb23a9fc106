package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/contactnet/bfs"
	"github.com/katalvlaran/contactnet/builder"
	"github.com/katalvlaran/contactnet/centrality"
	"github.com/katalvlaran/contactnet/contact"
	"github.com/katalvlaran/contactnet/core"
	"github.com/katalvlaran/contactnet/internal/config"
	"github.com/katalvlaran/contactnet/loader"
	"github.com/katalvlaran/contactnet/report"
	"go.uber.org/zap"
)

// Result is everything one run produces.
type Result struct {
	RunID   uuid.UUID
	Dataset string

	// Events is the number of contact events read (village runs only).
	Events int

	// Aggregation is the edge/node set the graph was built from.
	Aggregation *contact.Aggregation

	Graph *core.Graph
	Table *centrality.Table

	DegreeSummary   report.Summary
	StrengthSummary report.Summary
	Histogram       report.Histogram

	// Components lists the connected components, largest first.
	Components [][]string
}

// run carries the state shared by the steps of one Run.
type run struct {
	cfg *config.Config
	log *zap.Logger
	res *Result
}

// step is one stage of a run; steps execute in order and the first error aborts.
type step struct {
	name string
	fn   func(ctx context.Context, r *run) error
}

// Run executes the configured analysis. cfg is validated first; a nil
// logger discards output.
//
// Errors from loading, aggregation, building or the metrics engine are
// returned wrapped with the failing step's name.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &run{
		cfg: cfg,
		res: &Result{RunID: uuid.New(), Dataset: cfg.Dataset},
	}
	r.log = logger.With(zap.String("run_id", r.res.RunID.String()), zap.String("dataset", cfg.Dataset))

	steps := []step{{"load", load}, {"build", build}, {"metrics", metrics}, {"summarize", summarize}}
	started := time.Now()
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t0 := time.Now()
		if err := s.fn(ctx, r); err != nil {
			r.log.Error("run failed", zap.String("step", s.name), zap.Error(err))
			return nil, fmt.Errorf("pipeline: %s: %w", s.name, err)
		}
		r.log.Debug("step done", zap.String("step", s.name), zap.Duration("took", time.Since(t0)))
	}

	r.log.Info("run complete",
		zap.Int("vertices", r.res.Graph.VertexCount()),
		zap.Int("edges", r.res.Graph.EdgeCount()),
		zap.Int("components", len(r.res.Components)),
		zap.Duration("took", time.Since(started)),
	)
	return r.res, nil
}

func load(_ context.Context, r *run) error {
	opts := []loader.Option{
		loader.WithComma(r.cfg.CommaRune()),
		loader.WithWeightAttribute(r.cfg.Loader.WeightAttribute),
	}

	if r.cfg.Dataset == config.DatasetSchool {
		agg, err := loader.ReadGEXFFile(r.cfg.Inputs[0], opts...)
		if err != nil {
			return err
		}
		r.res.Aggregation = agg
		r.log.Info("graph loaded", zap.String("input", r.cfg.Inputs[0]), zap.Int("nodes", len(agg.Nodes)), zap.Int("edges", len(agg.Edges)))
		return nil
	}

	events, err := loader.ReadContactFiles(r.cfg.Inputs, opts...)
	if err != nil {
		return err
	}
	policy, err := contact.ParseAttributePolicy(r.cfg.Aggregation.Policy)
	if err != nil {
		return err
	}
	agg, err := contact.Aggregate(events, contact.WithAttributePolicy(policy))
	if err != nil {
		return err
	}
	r.res.Events = len(events)
	r.res.Aggregation = agg
	r.log.Info("events aggregated",
		zap.Strings("inputs", r.cfg.Inputs),
		zap.Int("events", len(events)),
		zap.Int("pairs", len(agg.Edges)),
		zap.Int("participants", len(agg.Nodes)),
	)
	return nil
}

func build(_ context.Context, r *run) error {
	opts := []builder.BuilderOption{builder.WithLogger(r.log.Named("builder"))}
	if r.cfg.Dataset == config.DatasetSchool {
		opts = append(opts, builder.WithIsolatedNodes())
	}
	g, err := builder.Build(r.res.Aggregation, opts...)
	if err != nil {
		return err
	}
	r.res.Graph = g
	return nil
}

func metrics(ctx context.Context, r *run) error {
	m := r.cfg.Metrics
	opts := []centrality.Option{
		centrality.WithDamping(m.Damping),
		centrality.WithTolerance(m.Tolerance),
		centrality.WithMaxIterations(m.MaxIterations),
	}
	if m.Sequential {
		opts = append(opts, centrality.WithSequential())
	}
	t, err := centrality.Compute(ctx, r.res.Graph, opts...)
	if err != nil {
		return err
	}
	r.res.Table = t
	return nil
}

func summarize(ctx context.Context, r *run) error {
	degrees := r.res.Table.Values(centrality.Degree)
	r.res.DegreeSummary = report.Summarize(degrees)
	r.res.StrengthSummary = report.Summarize(r.res.Table.Values(centrality.Strength))

	h, err := report.DegreeHistogram(degrees, r.cfg.Bins)
	if err != nil {
		return err
	}
	r.res.Histogram = h

	comps, err := bfs.Components(ctx, r.res.Graph)
	if err != nil {
		return err
	}
	sortComponents(comps)
	r.res.Components = comps
	return nil
}

package pipeline_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/contactnet/centrality"
	"github.com/katalvlaran/contactnet/internal/config"
	"github.com/katalvlaran/contactnet/loader"
	"github.com/katalvlaran/contactnet/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func villageConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Inputs = []string{"testdata/within.csv", "testdata/across.csv"}
	cfg.Output = filepath.Join(t.TempDir(), "village.csv")
	return cfg
}

func schoolConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Dataset = config.DatasetSchool
	cfg.Inputs = []string{"testdata/school.gexf"}
	cfg.Output = filepath.Join(t.TempDir(), "school.csv")
	return cfg
}

func TestRun_Village(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	res, err := pipeline.Run(context.Background(), villageConfig(t), zap.New(obsCore))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.Equal(t, config.DatasetVillage, res.Dataset)
	assert.Equal(t, 5, res.Events)
	assert.Equal(t, 5, res.Graph.VertexCount())
	assert.Equal(t, 4, res.Graph.EdgeCount())
	require.Len(t, res.Components, 1, "G_1–E_2–E_1–F_1–F_2 is one path")

	assert.InDelta(t, 1.6, res.DegreeSummary.Mean, 1e-12)
	assert.Equal(t, 1.0, res.DegreeSummary.Min)
	assert.Equal(t, 2.0, res.DegreeSummary.Max)
	assert.InDelta(t, 192.0, res.StrengthSummary.Mean, 1e-9)
	assert.Equal(t, 0.0, res.StrengthSummary.Min)
	assert.Equal(t, 5, res.Histogram.Total())
	assert.Len(t, res.Histogram.Bins, 20)

	top := res.Table.TopK(centrality.Betweenness, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "E_1", top[0].ID)
	assert.InDelta(t, 4.0/6.0, top[0].Betweenness, 1e-9)

	row, ok := res.Table.Lookup("E_1")
	require.True(t, ok)
	assert.Equal(t, "E", row.Attrs.Household)
	require.NotNil(t, row.Attrs.Age)
	assert.Equal(t, 34, *row.Attrs.Age, "first-seen age wins")

	done := logs.FilterMessage("run complete").All()
	require.Len(t, done, 1)
	assert.Equal(t, res.RunID.String(), done[0].ContextMap()["run_id"])
	assert.NotEmpty(t, logs.FilterMessage("graph built").All(), "builder logs through the run logger")
}

func TestRun_AttributePolicy(t *testing.T) {
	// Across-household rows first: E_1 is recorded with age 35, then 34.
	cfg := villageConfig(t)
	cfg.Inputs = []string{"testdata/across.csv", "testdata/within.csv"}

	for policy, want := range map[string]int{"first": 35, "last": 34} {
		cfg.Aggregation.Policy = policy
		res, err := pipeline.Run(context.Background(), cfg, nil)
		require.NoError(t, err)

		row, ok := res.Table.Lookup("E_1")
		require.True(t, ok)
		require.NotNil(t, row.Attrs.Age)
		assert.Equal(t, want, *row.Attrs.Age, policy)
	}
}

func TestRun_School(t *testing.T) {
	res, err := pipeline.Run(context.Background(), schoolConfig(t), nil)
	require.NoError(t, err)

	assert.Zero(t, res.Events)
	assert.Equal(t, 4, res.Graph.VertexCount())
	require.Len(t, res.Components, 2)
	assert.Len(t, res.Components[0], 3)
	assert.Equal(t, []string{"1600"}, res.Components[1])

	isolated, ok := res.Table.Lookup("1600")
	require.True(t, ok)
	assert.Zero(t, isolated.Degree)
	assert.Zero(t, isolated.Betweenness)
	assert.Zero(t, isolated.Closeness)
	assert.Equal(t, "2A", isolated.Attrs.Class)

	hub, _ := res.Table.Lookup("1558")
	assert.Equal(t, "200", hub.Strength.String())
	assert.Equal(t, 0.0, res.DegreeSummary.Min)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	_, err := pipeline.Run(ctx, cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid, "no inputs")

	cfg = villageConfig(t)
	cfg.Inputs = []string{"testdata/absent.csv"}
	_, err = pipeline.Run(ctx, cfg, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg = villageConfig(t)
	cfg.Inputs = []string{"testdata/broken.csv"}
	_, err = pipeline.Run(ctx, cfg, nil)
	assert.ErrorIs(t, err, loader.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "pipeline: load")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = pipeline.Run(cancelled, villageConfig(t), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExport(t *testing.T) {
	cfg := villageConfig(t)
	cfg.Top = 3
	res, err := pipeline.Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, pipeline.Export(res, cfg, &out))

	text := out.String()
	assert.Contains(t, text, res.RunID.String())
	assert.Contains(t, text, "events=5")
	assert.Contains(t, text, "Degree distribution (20 bins)")
	for _, m := range pipeline.Rankings {
		assert.Contains(t, text, "Top 3 by "+m.String())
	}
	assert.Contains(t, text, "metrics written to "+cfg.Output)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "E_1,E,34,F,,2,180,"), lines[1])
}

func TestExport_NoResult(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, pipeline.Export(nil, config.Default(), &out), pipeline.ErrNoResult)
	assert.ErrorIs(t, pipeline.WriteDegrees(&out, &pipeline.Result{}), pipeline.ErrNoResult)
	assert.Empty(t, out.String())
}

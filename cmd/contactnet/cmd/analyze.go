package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/contactnet/internal/config"
	"github.com/katalvlaran/contactnet/internal/logging"
	"github.com/katalvlaran/contactnet/pipeline"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "analyze",
		Short: "Compute every centrality metric and export them",
		Long: `Load the inputs, aggregate contacts into a weighted network, compute
degree, strength, betweenness, closeness and PageRank, write the per-node
metrics CSV and print the summaries, the degree histogram and the top-k
rankings.

Examples:
  contactnet analyze -i within.csv -i across.csv --out centralities_village.csv
  contactnet analyze --dataset school -i school.gexf --top 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := pipeline.Run(cmd.Context(), a.cfg, logging.Named("pipeline"))
			if err != nil {
				return err
			}
			return pipeline.Export(res, a.cfg, cmd.OutOrStdout())
		},
	}

	def := config.Default()
	fs := c.Flags()
	addInputFlags(fs)
	fs.StringP(flagOut, "o", "", "metrics CSV path (default centralities_<dataset>.csv)")
	fs.IntP(flagTop, "k", def.Top, "length of each ranking")
	fs.Float64(flagDamping, def.Metrics.Damping, "PageRank damping factor")
	fs.Bool(flagSequential, false, "compute the metrics one after another")
	return c
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/contactnet/internal/config"
)

// Flag names shared by the analysis commands.
const (
	flagDataset    = "dataset"
	flagInput      = "input"
	flagOut        = "out"
	flagTop        = "top"
	flagBins       = "bins"
	flagPolicy     = "policy"
	flagComma      = "comma"
	flagWeight     = "weight-attribute"
	flagDamping    = "damping"
	flagSequential = "sequential"
)

// addInputFlags registers the flags every analysis command accepts.
// Their defaults only document the built-in configuration; a flag
// overrides the config file and environment only when it is set.
func addInputFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.String(flagDataset, def.Dataset, "dataset kind: village (contact CSVs) or school (GEXF)")
	fs.StringArrayP(flagInput, "i", nil, "input file, repeatable; CSV files are concatenated in order")
	fs.String(flagPolicy, def.Aggregation.Policy, "attribute policy for repeated participants: first or last")
	fs.String(flagComma, def.Loader.Comma, "CSV field delimiter")
	fs.String(flagWeight, def.Loader.WeightAttribute, "GEXF edge attribute read as the weight")
	fs.Int(flagBins, def.Bins, "degree histogram bins")
}

// applyFlags copies every explicitly set flag of cmd onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set(flagDataset, func() { cfg.Dataset, _ = fs.GetString(flagDataset) })
	set(flagInput, func() { cfg.Inputs, _ = fs.GetStringArray(flagInput) })
	set(flagOut, func() { cfg.Output, _ = fs.GetString(flagOut) })
	set(flagTop, func() { cfg.Top, _ = fs.GetInt(flagTop) })
	set(flagBins, func() { cfg.Bins, _ = fs.GetInt(flagBins) })
	set(flagPolicy, func() { cfg.Aggregation.Policy, _ = fs.GetString(flagPolicy) })
	set(flagComma, func() { cfg.Loader.Comma, _ = fs.GetString(flagComma) })
	set(flagWeight, func() { cfg.Loader.WeightAttribute, _ = fs.GetString(flagWeight) })
	set(flagDamping, func() { cfg.Metrics.Damping, _ = fs.GetFloat64(flagDamping) })
	set(flagSequential, func() { cfg.Metrics.Sequential, _ = fs.GetBool(flagSequential) })
}

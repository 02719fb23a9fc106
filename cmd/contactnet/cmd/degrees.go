package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/contactnet/internal/logging"
	"github.com/katalvlaran/contactnet/pipeline"
)

func newDegreesCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "degrees",
		Short: "Print degree and strength summaries and the degree histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := pipeline.Run(cmd.Context(), a.cfg, logging.Named("pipeline"))
			if err != nil {
				return err
			}
			return pipeline.WriteDegrees(cmd.OutOrStdout(), res)
		},
	}
	addInputFlags(c.Flags())
	return c
}

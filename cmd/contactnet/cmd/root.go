// Package cmd provides the contactnet CLI commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contactnet/internal/config"
	"github.com/katalvlaran/contactnet/internal/logging"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "0.1.0"

// app holds the state shared by one command tree.
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

// NewRootCommand builds the command tree. Output goes to out and errors
// to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "contactnet",
		Short: "Aggregate contact records into a weighted network and rank its nodes",
		Long: `contactnet builds an undirected, duration-weighted contact network from
proximity records and computes degree, strength, betweenness, closeness and
PageRank for every individual.

Examples:
  contactnet analyze --input within.csv --input across.csv
  contactnet analyze --dataset school --input school.gexf --top 5
  contactnet degrees --input within.csv --bins 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logging.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "TOML config file (defaults apply when empty)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCommand(a), newDegreesCommand(a), newVersionCommand())
	return root
}

// Execute runs the CLI on the process arguments. SIGINT and SIGTERM cancel
// the running analysis.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// init resolves the configuration: defaults, then the --config file,
// then .env and CONTACTNET_* variables, then explicit flags.
func (a *app) init(cmd *cobra.Command) error {
	if err := config.LoadEnvFiles(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	a.cfg = cfg
	return nil
}

// newVersionCommand prints version information.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// No config or logging needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "contactnet version %s\n", Version)
		},
	}
}

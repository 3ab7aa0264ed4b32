// SPDX-License-Identifier: MIT
// Package: contactnet/cmd/netgen
//
// root.go - cobra root, generate and stats commands.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/contactnet/analysis"
	"github.com/katalvlaran/contactnet/codec"
	"github.com/katalvlaran/contactnet/network"
	"github.com/katalvlaran/contactnet/random"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// rootOptions are flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "netgen",
		Short:        "Generate and inspect random contact networks",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newGenerateCmd(opts), newStatsCmd(opts))
	return cmd
}

// load resolves the config file and applies the shared flags.
func (o *rootOptions) load() (*Config, error) {
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var (
		nodes      int
		meanDegree float64
		seed       int64
		out        string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw node values and random links, then write a YAML snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			applyGenerateFlags(cmd.Flags(), cfg, nodes, meanDegree, seed, out)
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr(), zap.String("cmd", "generate"))
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			src := random.New(cfg.Seed, random.WithNormal(cfg.Normal.Mean, cfg.Normal.StdDev))
			net := network.New(network.WithSource(src))
			net.Resize(cfg.Nodes)
			total := net.RandomConnect(cfg.MeanDegree)
			logger.Info("network generated",
				zap.Int("nodes", net.Size()),
				zap.Float64("mean_degree", cfg.MeanDegree),
				zap.Int64("seed", src.Seed()),
				zap.Int("links", total),
			)

			return writeOutput(cmd.OutOrStdout(), cfg.Output, logger, func(w io.Writer) error {
				return codec.Encode(w, net)
			})
		},
	}
	def := DefaultConfig()
	cmd.Flags().IntVar(&nodes, "nodes", def.Nodes, "number of nodes")
	cmd.Flags().Float64Var(&meanDegree, "mean-degree", def.MeanDegree, "target mean number of links drawn per node")
	cmd.Flags().Int64Var(&seed, "seed", def.Seed, "random seed (0 selects the built-in default)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

// applyGenerateFlags overrides cfg with the flags set on the command line.
func applyGenerateFlags(fs *pflag.FlagSet, cfg *Config, nodes int, meanDegree float64, seed int64, out string) {
	if fs.Changed("nodes") {
		cfg.Nodes = nodes
	}
	if fs.Changed("mean-degree") {
		cfg.MeanDegree = meanDegree
	}
	if fs.Changed("seed") {
		cfg.Seed = seed
	}
	if fs.Changed("out") {
		cfg.Output = out
	}
}

func newStatsCmd(root *rootOptions) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print structural statistics of a YAML snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr(), zap.String("cmd", "stats"))
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			r := cmd.InOrStdin()
			if in != "-" {
				f, err := os.Open(in)
				if err != nil {
					logger.Error("failed to open snapshot", zap.String("path", in), zap.Error(err))
					return err
				}
				defer f.Close()
				r = f
			}
			net, err := codec.Decode(r)
			if err != nil {
				logger.Error("failed to decode snapshot", zap.String("path", in), zap.Error(err))
				return err
			}
			if err := analysis.Validate(net); err != nil {
				logger.Warn("snapshot violates network invariants", zap.Error(err))
			}
			sum, err := analysis.Summarize(cmd.Context(), net)
			if err != nil {
				return err
			}
			logger.Debug("summary computed",
				zap.Int("nodes", sum.Nodes),
				zap.Int("components", sum.Components),
			)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(sum); err != nil {
				return fmt.Errorf("encode summary: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "snapshot file (- for stdin)")
	return cmd
}

// writeOutput runs write against path, or stdout when path is empty.
func writeOutput(stdout io.Writer, path string, logger *zap.Logger, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Error("failed to create output", zap.String("path", path), zap.Error(err))
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("snapshot written", zap.String("path", path))
	return nil
}

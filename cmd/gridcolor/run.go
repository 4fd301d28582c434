package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcolor/internal/config"
	"github.com/katalvlaran/gridcolor/internal/experiment"
	"github.com/katalvlaran/gridcolor/internal/logging"
	"github.com/katalvlaran/gridcolor/metrics"
	"github.com/katalvlaran/gridcolor/render"
)

func newRunCmd() *cobra.Command {
	def := config.Default()
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the colouring experiments",
		Long: `Builds a grid per strategy, assigns initial colours, resolves conflicts
and prints the final colouring plus a one-line summary per strategy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := experimentFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

			out := cmd.OutOrStdout()
			rnd, err := render.New(cfg.Renderer, render.WithProfile(termenv.NewOutput(out).EnvColorProfile()))
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			col, err := metrics.NewCollector(reg)
			if err != nil {
				return err
			}

			r := &experiment.Runner{
				Config:   cfg,
				Renderer: rnd,
				Logger:   logger,
				Metrics:  col,
				Out:      out,
			}
			if _, err := r.Run(); err != nil {
				return err
			}

			if cfg.MetricsFile != "" {
				if err := writeMetrics(cfg.MetricsFile, reg); err != nil {
					logger.Error("failed to write metrics", "error", err)
					return err
				}
			}

			return nil
		},
	}

	f := runCmd.Flags()
	f.String("config", "", "YAML experiment file; flags override its values")
	f.IntP("rows", "m", def.Rows, "Grid rows")
	f.IntP("cols", "n", def.Cols, "Grid columns")
	f.IntP("colors", "k", def.Colors, "Number of colours")
	f.Int("cluster-size", def.ClusterSize, "Run length of the clustered strategy")
	f.StringSlice("strategy", def.Strategies, "Initial colouring strategy (random, clustered); repeatable")
	f.String("schedule", def.Schedule, "Resolver schedule (snapshot, inplace)")
	f.Int64("seed", def.Seed, "Base random seed; strategy j uses seed+j")
	f.Int("max-iterations", def.MaxIterations, "Iteration cap")
	f.Int("workers", def.Workers, "Goroutines for the snapshot scan")
	f.String("render", def.Renderer, "Renderer (text, mermaid, none)")
	f.String("log-level", def.LogLevel, "Log level (debug, info, warn, error)")
	f.String("metrics-file", "", "Write Prometheus text metrics to this file")

	return runCmd
}

// experimentFromFlags loads --config (or the defaults) and applies every
// flag the user set explicitly.
func experimentFromFlags(cmd *cobra.Command) (config.Experiment, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if f.Changed("rows") {
		cfg.Rows, _ = f.GetInt("rows")
	}
	if f.Changed("cols") {
		cfg.Cols, _ = f.GetInt("cols")
	}
	if f.Changed("colors") {
		cfg.Colors, _ = f.GetInt("colors")
	}
	if f.Changed("cluster-size") {
		cfg.ClusterSize, _ = f.GetInt("cluster-size")
	}
	if f.Changed("strategy") {
		cfg.Strategies, _ = f.GetStringSlice("strategy")
	}
	if f.Changed("schedule") {
		cfg.Schedule, _ = f.GetString("schedule")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("max-iterations") {
		cfg.MaxIterations, _ = f.GetInt("max-iterations")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("render") {
		cfg.Renderer, _ = f.GetString("render")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile, _ = f.GetString("metrics-file")
	}

	return cfg, nil
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := metrics.WriteText(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

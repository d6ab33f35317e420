// SPDX-License-Identifier: MIT

// Command matbench benchmarks the quadmul multipliers and checks that they agree.
//
//	matbench run --sizes 64,128,256 --algo strassen,dc --runs 20 --csv-dir results
//	matbench compare --size 512
//	matbench run --config bench.yaml --verbose
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/quadmul/bench"
	"github.com/katalvlaran/quadmul/matmul"
)

// flags mirrors bench.Config on the command line; set flags override YAML.
type flags struct {
	config    string
	verbose   bool
	algos     []string
	sizes     []int
	runs      int
	threshold int
	depth     int
	workers   int
	seed      int64
	csvDir    string
	size      int
}

func makeMatbenchCommand() *cobra.Command {
	var f flags
	command := &cobra.Command{
		Use:   "matbench [command] (flags)",
		Short: "matbench times and cross-checks the iterative, divide-and-conquer and Strassen multipliers.",
		Long: `matbench times and cross-checks the iterative, divide-and-conquer and Strassen multipliers.

Typical usage:
    matbench run --sizes 64,128,256,512 --runs 20 --csv-dir results
        Time every algorithm on fresh random operands; append "size,avg_us"
        rows to results/<algorithm>.csv.

    matbench compare --size 256
        Multiply one random pair with every algorithm and check each product
        against the iterative one.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := command.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "YAML config file (flags override its values)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log every run at debug level")
	pf.StringSliceVar(&f.algos, "algo", nil, "algorithms to run: "+algorithmList())
	pf.IntVar(&f.threshold, "threshold", matmul.DefaultThreshold, "recursion base-case side")
	pf.IntVar(&f.depth, "depth", matmul.DefaultMaxParallelDepth, "maximum recursion depth that still forks")
	pf.IntVar(&f.workers, "workers", 0, "fork-join pool size (0 = GOMAXPROCS)")
	pf.Int64Var(&f.seed, "seed", 0, "operand RNG seed (0 = time based)")

	command.AddCommand(makeRunCommand(&f))
	command.AddCommand(makeCompareCommand(&f))

	return command
}

func makeRunCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark the selected algorithms over a grid of power-of-two sizes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(f.verbose)
			r, err := newRunner(cmd, f, logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			results, err := r.Run(ctx)
			bench.WriteTable(cmd.OutOrStdout(), results)
			return err
		},
	}
	cmd.Flags().IntSliceVar(&f.sizes, "sizes", nil, "square sides, each a power of two (default 1..2048)")
	cmd.Flags().IntVar(&f.runs, "runs", bench.DefaultRuns, "timed multiplies per algorithm and size")
	cmd.Flags().StringVar(&f.csvDir, "csv-dir", "", "append size,avg_us rows to <dir>/<algorithm>.csv")

	return cmd
}

func makeCompareCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Multiply one random pair with every algorithm and check the products agree.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(f.verbose)
			r, err := newRunner(cmd, f, logger)
			if err != nil {
				return err
			}
			cs, err := r.Compare(f.size)
			bench.WriteComparison(cmd.OutOrStdout(), cs)
			if err != nil {
				return err
			}
			if !bench.AllEqual(cs) {
				return errors.Newf("products differ at size %d", f.size)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&f.size, "size", 256, "square side, a power of two")

	return cmd
}

// newRunner builds the bench config: defaults, then YAML, then explicitly set flags.
func newRunner(cmd *cobra.Command, f *flags, logger *slog.Logger) (*bench.Runner, error) {
	cfg := bench.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = bench.LoadConfig(f.config); err != nil {
			return nil, err
		}
	}
	applyFlags(cmd.Flags(), f, &cfg)

	r, err := bench.NewRunner(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "invalid benchmark configuration")
	}

	return r, nil
}

// applyFlags copies only the flags the user actually set, so YAML values survive.
func applyFlags(fs *pflag.FlagSet, f *flags, cfg *bench.Config) {
	if fs.Changed("algo") {
		cfg.Algorithms = f.algos
	}
	if fs.Changed("sizes") {
		cfg.Sizes = f.sizes
	}
	if fs.Changed("runs") {
		cfg.Runs = f.runs
	}
	if fs.Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if fs.Changed("depth") {
		d := f.depth
		cfg.MaxParallelDepth = &d
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("csv-dir") {
		cfg.CSVDir = f.csvDir
	}
}

func algorithmList() string {
	names := lo.Map(matmul.Algorithms(), func(a matmul.Algorithm, _ int) string { return a.String() })

	return strings.Join(names, ", ")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	cmd := makeMatbenchCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		newLogger(false).Error("matbench failed", "err", err)
		os.Exit(1)
	}
}

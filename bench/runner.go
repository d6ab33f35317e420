// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/quadmul/builder"
	"github.com/katalvlaran/quadmul/forkjoin"
	"github.com/katalvlaran/quadmul/matmul"
)

// Result is one benchmark cell.
type Result struct {
	Algorithm matmul.Algorithm
	Size      int
	Runs      int
	Total     time.Duration
}

// Avg is the mean wall time per multiply.
func (r Result) Avg() time.Duration {
	if r.Runs == 0 {
		return 0
	}

	return r.Total / time.Duration(r.Runs)
}

// Runner executes benchmark grids and compare checks for one Config.
// A Runner is not safe for concurrent use: it owns one RNG stream.
type Runner struct {
	cfg  Config
	algs []matmul.Algorithm
	opts []matmul.Option
	pool *forkjoin.Pool
	rng  *rand.Rand
	seed int64
	log  *slog.Logger
}

// NewRunner normalizes and validates cfg. A nil logger discards output.
func NewRunner(cfg Config, logger *slog.Logger) (*Runner, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algs, err := cfg.algorithms()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pool := forkjoin.New(cfg.Workers)

	return &Runner{
		cfg:  cfg,
		algs: algs,
		opts: append(cfg.options(), matmul.WithPool(pool)),
		pool: pool,
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
		log:  logger,
	}, nil
}

// Config returns the normalized configuration.
func (r *Runner) Config() Config { return r.cfg }

// Seed returns the seed actually used for operand generation.
func (r *Runner) Seed() int64 { return r.seed }

// Run benchmarks every (algorithm, size) cell in config order, appending
// each finished cell to CSV when CSVDir is set. ctx is checked between
// multiplies; a single multiply is not interruptible.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	r.log.Info("benchmark start",
		"algorithms", r.cfg.Algorithms, "sizes", r.cfg.Sizes, "runs", r.cfg.Runs,
		"threshold", r.cfg.Threshold, "workers", r.pool.Workers(), "seed", r.seed)

	results := make([]Result, 0, len(r.algs)*len(r.cfg.Sizes))
	for _, alg := range r.algs {
		for _, n := range r.cfg.Sizes {
			res, err := r.cell(ctx, alg, n)
			if err != nil {
				return results, err
			}
			results = append(results, res)
			r.log.Info("benchmark cell",
				"algorithm", alg.String(), "size", n,
				"total", res.Total, "avg", res.Avg())

			if r.cfg.CSVDir == "" {
				continue
			}
			if err = AppendCSV(r.cfg.CSVDir, res); err != nil {
				return results, err
			}
		}
	}
	st := r.pool.Stats()
	r.log.Debug("pool stats", "forked", st.Forked, "inlined", st.Inlined, "joins", st.Joins)

	return results, nil
}

// cell times Runs multiplies of fresh size×size operands.
func (r *Runner) cell(ctx context.Context, alg matmul.Algorithm, n int) (Result, error) {
	res := Result{Algorithm: alg, Size: n, Runs: r.cfg.Runs}
	for i := 0; i < r.cfg.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "%s n=%d interrupted after %d runs", alg, n, i)
		}
		a, b, err := builder.RandomPair(n, builder.WithRand(r.rng))
		if err != nil {
			return res, errors.Wrapf(err, "generating %dx%d operands", n, n)
		}

		start := time.Now()
		if _, err = matmul.Multiply(alg, a, b, r.opts...); err != nil {
			return res, errors.Wrapf(err, "%s n=%d", alg, n)
		}
		elapsed := time.Since(start)
		res.Total += elapsed
		r.log.Debug("run", "algorithm", alg.String(), "size", n, "iteration", i, "elapsed", elapsed)
	}

	return res, nil
}

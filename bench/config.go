// SPDX-License-Identifier: MIT

package bench

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quadmul/matmul"
	"github.com/katalvlaran/quadmul/matrix"
)

// ErrInvalidConfig marks every configuration validation failure. Some
// failures also carry a more specific cause (matrix.ErrInvalidShape); the
// mark is attached with errors.Mark, so match it with
// github.com/cockroachdb/errors.Is.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Defaults for a benchmark run.
const (
	DefaultRuns    = 20
	DefaultMinSize = 1
	DefaultMaxSize = 2048
	DefaultCSVDir  = "" // no CSV output
)

// Config drives Runner. Zero fields are filled by Normalize.
type Config struct {
	// Algorithms by short name (see matmul.ParseAlgorithm).
	Algorithms []string `yaml:"algorithms"`
	// Sizes are square sides; each must be a power of two.
	Sizes []int `yaml:"sizes"`
	// Runs is the number of timed multiplies per (algorithm, size).
	Runs int `yaml:"runs"`
	// Threshold is the recursion base-case side.
	Threshold int `yaml:"threshold"`
	// MaxParallelDepth caps forking depth; nil keeps the library default.
	MaxParallelDepth *int `yaml:"max_parallel_depth"`
	// Workers sizes the shared pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Seed for operand generation; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
	// CSVDir receives <algorithm>.csv files; empty disables CSV output.
	CSVDir string `yaml:"csv_dir"`
}

// DefaultSizes returns 1, 2, 4, ... DefaultMaxSize.
func DefaultSizes() []int {
	var out []int
	for n := DefaultMinSize; n <= DefaultMaxSize; n *= 2 {
		out = append(out, n)
	}

	return out
}

// DefaultConfig returns a config that benchmarks every algorithm over DefaultSizes.
func DefaultConfig() Config {
	return Config{
		Algorithms: lo.Map(matmul.Algorithms(), func(a matmul.Algorithm, _ int) string { return a.String() }),
		Sizes:      DefaultSizes(),
		Runs:       DefaultRuns,
		Threshold:  matmul.DefaultThreshold,
		CSVDir:     DefaultCSVDir,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}

	return ParseConfig(raw)
}

// ParseConfig decodes YAML bytes over DefaultConfig. Keys present in the
// document replace the defaults; absent keys keep them.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Mark(errors.Wrap(err, "decoding config"), ErrInvalidConfig)
	}

	return cfg, nil
}

// Normalize fills zero fields with defaults, de-duplicates Algorithms, and
// de-duplicates and sorts Sizes.
func (c *Config) Normalize() {
	if len(c.Algorithms) == 0 {
		c.Algorithms = DefaultConfig().Algorithms
	}
	if len(c.Sizes) == 0 {
		c.Sizes = DefaultSizes()
	}
	if c.Runs == 0 {
		c.Runs = DefaultRuns
	}
	if c.Threshold == 0 {
		c.Threshold = matmul.DefaultThreshold
	}
	c.Algorithms = lo.Uniq(c.Algorithms)
	c.Sizes = lo.Uniq(c.Sizes)
	slices.Sort(c.Sizes)
}

// Validate checks the normalized config.
//
// Errors (all marked ErrInvalidConfig):
//   - matrix.ErrInvalidShape for a size that is not a power of two.
//   - matmul.ErrUnknownAlgorithm for an unknown algorithm name.
//   - plain ErrInvalidConfig for Runs, Threshold, depth or Workers out of range.
func (c Config) Validate() error {
	if c.Runs < 1 {
		return errors.Wrapf(ErrInvalidConfig, "runs=%d must be >= 1", c.Runs)
	}
	if c.Threshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "threshold=%d must be >= 1", c.Threshold)
	}
	if c.MaxParallelDepth != nil && *c.MaxParallelDepth < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_parallel_depth=%d must be >= 0", *c.MaxParallelDepth)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers=%d must be >= 0", c.Workers)
	}
	if bad := lo.Filter(c.Sizes, func(n int, _ int) bool { return !matrix.IsPowerOfTwo(n) }); len(bad) > 0 {
		err := errors.Wrapf(matrix.ErrInvalidShape, "sizes %v are not powers of two", bad)
		return errors.Mark(err, ErrInvalidConfig)
	}
	if _, err := c.algorithms(); err != nil {
		return errors.Mark(err, ErrInvalidConfig)
	}

	return nil
}

// algorithms parses Algorithms in order.
func (c Config) algorithms() ([]matmul.Algorithm, error) {
	out := make([]matmul.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		alg, err := matmul.ParseAlgorithm(name)
		if err != nil {
			return nil, errors.Wrapf(err, "algorithm %q", name)
		}
		out = append(out, alg)
	}

	return out, nil
}

// options translates the tuning knobs into matmul options.
func (c Config) options() []matmul.Option {
	opts := []matmul.Option{matmul.WithThreshold(c.Threshold)}
	if c.MaxParallelDepth != nil {
		opts = append(opts, matmul.WithMaxParallelDepth(*c.MaxParallelDepth))
	}

	return opts
}

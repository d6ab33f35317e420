// SPDX-License-Identifier: MIT

package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmul/bench"
	"github.com/katalvlaran/quadmul/matmul"
	"github.com/katalvlaran/quadmul/matrix"
)

func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	require.Equal(t, bench.DefaultRuns, cfg.Runs)
	require.Equal(t, 1, cfg.Sizes[0])
	require.Equal(t, 2048, cfg.Sizes[len(cfg.Sizes)-1])
	require.Len(t, cfg.Sizes, 12)
	require.Len(t, cfg.Algorithms, len(matmul.Algorithms()))
	require.NoError(t, cfg.Validate())
}

func TestParseConfig_OverDefaults(t *testing.T) {
	cfg, err := bench.ParseConfig([]byte(`
algorithms: [strassen, iterative]
sizes: [64, 16, 64]
runs: 3
max_parallel_depth: 2
csv_dir: out
`))
	require.NoError(t, err)
	require.Equal(t, []string{"strassen", "iterative"}, cfg.Algorithms)
	require.Equal(t, 3, cfg.Runs)
	require.Equal(t, matmul.DefaultThreshold, cfg.Threshold)
	require.NotNil(t, cfg.MaxParallelDepth)
	require.Equal(t, 2, *cfg.MaxParallelDepth)
	require.Equal(t, "out", cfg.CSVDir)

	cfg.Normalize()
	require.Equal(t, []int{16, 64}, cfg.Sizes)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := bench.ParseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, bench.DefaultConfig(), cfg)
}

func TestParseConfig_UnknownKey(t *testing.T) {
	_, err := bench.ParseConfig([]byte("runz: 3\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, bench.ErrInvalidConfig))
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: 7\nsizes: [8]\n"), 0o644))
	cfg, err := bench.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Runs)
	require.Equal(t, []int{8}, cfg.Sizes)

	_, err = bench.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	base := bench.DefaultConfig()

	cfg := base
	cfg.Sizes = []int{4, 6, 8, 12}
	err := cfg.Validate()
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	require.True(t, errors.Is(err, bench.ErrInvalidConfig))
	require.Contains(t, err.Error(), "[6 12]")

	cfg = base
	cfg.Algorithms = []string{"iterative", "bogus"}
	err = cfg.Validate()
	require.ErrorIs(t, err, matmul.ErrUnknownAlgorithm)
	require.True(t, errors.Is(err, bench.ErrInvalidConfig))

	cfg = base
	cfg.Runs = 0
	require.True(t, errors.Is(cfg.Validate(), bench.ErrInvalidConfig))

	cfg = base
	neg := -1
	cfg.MaxParallelDepth = &neg
	require.True(t, errors.Is(cfg.Validate(), bench.ErrInvalidConfig))
}

func TestNormalize_FillsZeroes(t *testing.T) {
	var cfg bench.Config
	cfg.Normalize()
	require.Equal(t, bench.DefaultConfig(), cfg)
}

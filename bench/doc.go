// SPDX-License-Identifier: MIT

// Package bench times the multipliers on random square inputs and persists
// the averages.
//
// One benchmark cell is (algorithm, size): for each of Runs iterations a
// fresh pair of size×size operands with entries in [0,10) is drawn, and one
// multiply is timed with the monotonic clock. The cell reports the total and
// the average per multiply. Operand generation is excluded from the timing.
//
// Results can be:
//   - appended to <CSVDir>/<algorithm>.csv as "size,avg_us" rows,
//   - rendered as a table (WriteTable),
//   - logged through the injected *slog.Logger.
//
// Compare mode multiplies one random pair with every algorithm and checks
// each product against the iterative one.
//
// Configuration comes from YAML (LoadConfig) with defaults filled in, and
// is validated before any work starts: sizes must be powers of two.
package bench

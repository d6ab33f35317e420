// SPDX-License-Identifier: MIT

// Package builder produces deterministic int64 matrix fixtures for tests,
// examples and the benchmark harness.
//
// Components:
//   - Option:   functional options resolved into an internal config.
//   - Random:   entries drawn uniformly from [lo, hi) (default [0, 10)).
//   - RandomPair: two operands of one side drawn from the same source, in order.
//   - Ramp:     row-major counting fill, handy for hand-checked expectations.
//
// Guarantees:
//   - Same options and seed ⇒ identical matrices.
//   - Option constructors panic on nonsensical values; builders return
//     sentinel errors and never panic.
//   - Stochastic builders require an explicit source (WithSeed or WithRand);
//     there is no hidden global RNG.
package builder

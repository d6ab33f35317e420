// SPDX-License-Identifier: MIT

// Package matmul multiplies dense int64 matrices with three interchangeable
// algorithms and returns bit-identical results from all of them.
//
// Algorithms:
//   - Iterative: the classic triple loop in i→k→j order. Any compatible shapes.
//   - DivideAndConquer: block recursion over quadrants, eight half-size
//     products per level. DivideAndConquerInto accumulates into one output
//     buffer instead of allocating per level.
//   - Strassen: seven half-size products per level plus extra additions.
//
// The recursive algorithms take square power-of-two operands, stop at a
// configurable threshold (WithThreshold) and hand the leaves to the
// iterative kernel. Their parallel variants fork independent branches on a
// forkjoin.Pool; forking stops at WithMaxParallelDepth and the rest of the
// recursion runs sequentially on the branch goroutine.
//
// Inputs are matrix.View values, so quadrants are zero-copy windows over the
// caller's buffer. Inputs are never mutated; every forked branch writes only
// to storage it allocated itself or to a disjoint window of the output.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int64{{5, 6}, {7, 8}})
//	c, err := matmul.Multiply(matmul.AlgStrassen, a, b, matmul.WithThreshold(1))
//	// c = [[19, 22], [43, 50]]
//
// Overflow:
//   - Arithmetic wraps silently like any int64 expression. Every algorithm
//     only adds, subtracts and multiplies, so results stay identical modulo
//     2^64 even when intermediates wrap.
package matmul

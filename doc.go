// Package quadmul multiplies dense integer matrices with three
// interchangeable algorithms that always agree bit for bit:
//
//	• Iterative: the cache-friendly i→k→j triple loop
//	• Divide-and-conquer: block recursion over quadrant views
//	• Strassen: seven half-size products per level, O(n^2.81)
//
// The recursive algorithms split operands into zero-copy strided views,
// hand small blocks to the iterative kernel, and fork independent branches
// on a bounded fork-join pool.
//
// Packages:
//
//	matrix/      owned Dense storage, View/ViewMut windows, Split, Add/Sub, MergeQuadrants
//	matmul/      Iterative, DivideAndConquer(*), Strassen(*), Multiply dispatch, options
//	forkjoin/    Pool.Join: spawn N tasks, block until all finish; inline fallback when saturated
//	builder/     seeded random and ramp fixtures
//	bench/       timing loops, CSV persistence, compare mode, YAML config
//	cmd/matbench command-line front end for bench
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int64{{5, 6}, {7, 8}})
//	c, _ := matmul.Multiply(matmul.AlgStrassen, a, b, matmul.WithThreshold(1))
//	fmt.Print(c) // [19, 22]\n[43, 50]
//
// Recursive algorithms require square operands with a power-of-two side.
package quadmul

// SPDX-License-Identifier: MIT

package forkjoin_test

import (
	"fmt"

	"github.com/katalvlaran/quadmul/forkjoin"
)

// ExamplePool_Join sums two halves of a slice on a bounded pool.
func ExamplePool_Join() {
	xs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	var left, right int
	sum := func(dst *int, part []int) forkjoin.Task {
		return func() error {
			for _, x := range part {
				*dst += x
			}
			return nil
		}
	}

	pool := forkjoin.New(2)
	if err := pool.Join(sum(&left, xs[:4]), sum(&right, xs[4:])); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(left, right, left+right)

	// Output:
	// 10 26 36
}

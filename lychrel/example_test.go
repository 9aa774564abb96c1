package lychrel_test

import (
	"fmt"

	"github.com/katalvlaran/lychrel/lychrel"
	"github.com/katalvlaran/lychrel/number"
)

// ExampleNewThread prints the thread of 4, which is palindromic after one step.
func ExampleNewThread() {
	th, err := lychrel.NewThread(number.MustNew("4", 10), 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for v := range th.All() {
		fmt.Println(v)
	}
	fmt.Println(th.Outcome(), th.Iterations())
	// Output:
	// 8
	// palindrome 1
}

// ExampleClassifyBatch finds the only candidate among 190..199 in base 10.
func ExampleClassifyBatch() {
	var seeds []number.Number
	n := number.MustNew("190", 10)
	for i := 0; i < 10; i++ {
		seeds = append(seeds, n)
		n, _ = number.Increment(n)
	}

	candidates, err := lychrel.ClassifyBatch(seeds, lychrel.DefaultBatchDepth, lychrel.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(candidates)
	// Output:
	// [196]
}

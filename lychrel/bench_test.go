package lychrel_test

import (
	"testing"

	"github.com/katalvlaran/lychrel/lychrel"
	"github.com/katalvlaran/lychrel/number"
)

// BenchmarkRun_196 measures a full 500-step candidate thread.
func BenchmarkRun_196(b *testing.B) {
	seed := number.MustNew("196", 10)
	for i := 0; i < b.N; i++ {
		if _, err := lychrel.Run(seed, lychrel.DefaultBatchDepth); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClassifyBatch compares sequential and pooled classification.
func BenchmarkClassifyBatch(b *testing.B) {
	seeds := make([]number.Number, 0, 1000)
	n := number.MustNew("1", 10)
	for i := 0; i < 1000; i++ {
		seeds = append(seeds, n)
		n, _ = number.Increment(n)
	}

	for _, bc := range []struct {
		name    string
		workers int
	}{{"seq", 1}, {"pool4", 4}} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := lychrel.ClassifyBatch(seeds, lychrel.DefaultBatchDepth, lychrel.WithWorkers(bc.workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

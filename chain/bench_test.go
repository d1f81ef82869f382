// Package chain_test provides benchmarks for Chain copy, concatenation,
// population and rendering, using deterministic input lines.
package chain_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlchain/chain"
)

// benchSizes are the element counts to benchmark.
var benchSizes = []int{16, 256, 4096}

// sinks to defeat dead-code elimination
var (
	sinkC *chain.Chain[int]
	sinkS string
)

// intLine builds "0 1 2 ... n-1".
func intLine(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(i)
	}

	return strings.Join(parts, " ")
}

func BenchmarkParseLine(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			line := intLine(n)
			c := chain.New[int]()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := c.ParseLine(line); err != nil {
					b.Fatal(err)
				}
			}
			sinkC = c
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			c := mustParse[int](b, intLine(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkC = c.Clone()
			}
		})
	}
}

func BenchmarkConcat(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			l := mustParse[int](b, intLine(n))
			r := mustParse[int](b, intLine(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkC = l.Concat(r)
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			c := mustParse[int](b, intLine(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = c.String()
			}
		})
	}
}

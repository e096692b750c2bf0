package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvtopo/field"
	"github.com/katalvlaran/lvtopo/matrix"
)

var sinkDense *matrix.Dense[int64]

func BenchmarkMul_Modular64(b *testing.B) {
	const n = 64
	z := field.MustModular(7919)
	a, _ := matrix.NewDense[int64](z, n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			_ = a.Set(i, j, int64(i*n+j)%7919)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkDense, _ = matrix.Mul(a, a)
	}
}
